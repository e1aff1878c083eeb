package config

import (
	"net/http"
	"time"
)

type ServerConfig struct {
	Port           string
	Handler        http.Handler
	MaxHeaderBytes int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

type GatewayConfig struct {
	BaseURL string
}

type SessionConfig struct {
	Max        int
	CookieName string
}
