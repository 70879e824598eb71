package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"storefront/internal/api"
	"storefront/internal/api/handler"
	"storefront/internal/api/router"
	"storefront/internal/config"
	"storefront/internal/infra/cache"
	"storefront/internal/infra/notify"
	"storefront/internal/infra/repository/db"
	"storefront/internal/pkg/metrics"
	"storefront/internal/service"
)

func main() {
	cf, err := config.LoadConfig(".env")
	if err != nil {
		log.Fatal(err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "storefront").Logger()

	conn, err := db.GetDbConn(cf.DbName, cf.DbHost, cf.DbPort, cf.DbUser, cf.DbPas)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}
	dao := db.NewDbDao(conn)
	if err := dao.InitMigrate(); err != nil {
		logger.Fatal().Err(err).Msg("schema migration failed")
	}

	productRepo := db.NewProductRepo(dao)
	orderRepo := db.NewOrderRepo(dao)
	currencyRepo := db.NewCurrencyRepo(dao)

	var rateCache service.RateCache
	if cf.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cf.RedisAddr, Password: cf.RedisPassword})
		rateCache = cache.NewRateCache(rdb, 10*time.Minute)
	}

	var notifier service.OrderNotifier
	var kafkaNotifier *notify.KafkaNotifier
	if brokers := cf.Brokers(); len(brokers) > 0 {
		kafkaNotifier = notify.NewKafkaNotifier(brokers, cf.KafkaOrderTopic)
		notifier = kafkaNotifier
	}

	currencyService := service.NewCurrencyService(currencyRepo, rateCache, cf.BaseCurrency)
	orderService := service.NewOrderService(productRepo, orderRepo, currencyService, dao, notifier, logger)
	productService := service.NewProductService(productRepo)

	serverMetrics := metrics.NewServerMetrics("api")
	server := api.NewServer(
		handler.NewOrderHandler(orderService, serverMetrics),
		handler.NewProductHandler(productService),
		handler.NewCurrencyHandler(currencyService),
	)
	r := router.SetupRouter(server, logger, serverMetrics)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cf.ServerPort),
		Handler: r,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	shutdownCompleted := make(chan struct{}, 1)
	go func() {
		<-sigChan
		logger.Info().Msg("received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("server shutdown error")
		}
		if kafkaNotifier != nil {
			if err := kafkaNotifier.Close(); err != nil {
				logger.Error().Err(err).Msg("kafka notifier shutdown error")
			}
		}

		shutdownCompleted <- struct{}{}
	}()

	logger.Info().Str("addr", srv.Addr).Msg("server starting")
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("server stopped unexpectedly")
	}
	<-shutdownCompleted
	logger.Info().Msg("shutdown completed")
}
