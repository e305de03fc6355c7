package service

import (
	"errors"
	"strings"

	"mini-orders/internal/model"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var orderOperations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "order_service",
	Subsystem: "orders",
	Name:      "operations_total",
	Help:      "Total number of order operations by outcome.",
}, []string{"operation", "outcome"})

// observe records the outcome of an order operation.
func observe(operation string, err error) {
	orderOperations.WithLabelValues(operation, outcome(err)).Inc()
}

func outcome(err error) string {
	if err == nil {
		return "success"
	}

	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		return strings.ToLower(domainErr.Code)
	}
	return "error"
}
