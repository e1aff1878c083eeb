package repository

import (
	"net/http"

	"github.com/BloggingApp/post-manager/internal/config"
	"github.com/BloggingApp/post-manager/internal/repository/remote"
)

type Repository struct {
	Remote *remote.RemoteRepository
}

func New(cfg config.GatewayConfig) *Repository {
	return &Repository{
		Remote: remote.New(cfg.BaseURL, &http.Client{}),
	}
}
