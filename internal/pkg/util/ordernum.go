package util

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const orderNumberPrefix = "ORD"

// NewOrderNumber returns a time-derived, human-facing order number.
// Uniqueness is expected but not guaranteed under concurrent load; the
// commit step handles a collision with DisambiguateOrderNumber and a
// single retry.
func NewOrderNumber() string {
	return fmt.Sprintf("%s-%d", orderNumberPrefix, time.Now().UnixNano())
}

// DisambiguateOrderNumber appends a short random suffix to a colliding
// order number.
func DisambiguateOrderNumber(orderNumber string) string {
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("%s-%s", orderNumber, suffix)
}
