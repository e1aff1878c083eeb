package service

import (
	"context"

	"github.com/BloggingApp/post-manager/internal/config"
	"github.com/BloggingApp/post-manager/internal/model"
	"github.com/BloggingApp/post-manager/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PostManager owns the list, form and view state of one browser session.
type PostManager interface {
	Load(ctx context.Context) error
	OpenAdd()
	OpenEdit(id int64) error
	Cancel(dialog model.Dialog)
	SetField(field model.Field, value string)
	SubmitAdd(ctx context.Context) error
	SubmitEdit(ctx context.Context) error
	Delete(ctx context.Context, id int64) error
	Search(term string)
	SetPage(page int)
	View() model.View
}

type Sessions interface {
	Get(id uuid.UUID) PostManager
	Remove(id uuid.UUID)
	Len() int
}

type Service struct {
	Sessions
}

func New(logger *zap.Logger, repo *repository.Repository, cfg config.SessionConfig) (*Service, error) {
	sessions, err := newSessions(logger, repo, cfg.Max)
	if err != nil {
		return nil, err
	}

	return &Service{
		Sessions: sessions,
	}, nil
}
