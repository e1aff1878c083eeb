package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var activeSessions = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "postmanager_sessions",
	Help: "Number of sessions holding a PostManager",
})
