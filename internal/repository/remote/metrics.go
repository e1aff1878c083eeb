package remote

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var gatewayRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "postmanager_gateway_requests_total",
	Help: "Number of calls made to the remote posts API",
}, []string{"op", "outcome"})

var gatewayRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "postmanager_gateway_request_duration_seconds",
	Help:    "Latency of calls made to the remote posts API",
	Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
}, []string{"op"})
