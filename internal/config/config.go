package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort      string `mapstructure:"SERVER_PORT"`
	DbName          string `mapstructure:"POSTGRES_DB"`
	DbHost          string `mapstructure:"POSTGRES_HOST"`
	DbPort          string `mapstructure:"POSTGRES_PORT"`
	DbUser          string `mapstructure:"POSTGRES_USER"`
	DbPas           string `mapstructure:"POSTGRES_PASSWORD"`
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	RedisPassword   string `mapstructure:"REDIS_PASSWORD"`
	KafkaBrokers    string `mapstructure:"KAFKA_BROKERS"`
	KafkaOrderTopic string `mapstructure:"KAFKA_ORDER_TOPIC"`
	BaseCurrency    string `mapstructure:"BASE_CURRENCY"`
}

// Brokers splits the comma-separated broker list; empty means kafka
// notification is disabled.
func (c *Config) Brokers() []string {
	if c.KafkaBrokers == "" {
		return nil
	}
	return strings.Split(c.KafkaBrokers, ",")
}

// LoadConfig reads path (a .env file) when present and lets environment
// variables override it. Defaults must be registered for AutomaticEnv to
// surface unbound keys through Unmarshal.
func LoadConfig(path string) (*Config, error) {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("POSTGRES_DB", "storefront")
	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", "5432")
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("KAFKA_BROKERS", "")
	viper.SetDefault("KAFKA_ORDER_TOPIC", "storefront.orders.created")
	viper.SetDefault("BASE_CURRENCY", "USD")

	viper.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		viper.SetConfigFile(path)
		viper.SetConfigType("env")
		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cf := &Config{}
	if err := viper.Unmarshal(cf); err != nil {
		return nil, err
	}
	return cf, nil
}
