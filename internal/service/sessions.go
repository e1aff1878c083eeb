package service

import (
	"sync"

	"github.com/BloggingApp/post-manager/internal/repository"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

const DEFAULT_MAX_SESSIONS = 1024

type sessions struct {
	logger *zap.Logger
	repo   *repository.Repository

	mu       sync.Mutex
	managers *lru.Cache[uuid.UUID, PostManager]
}

func newSessions(logger *zap.Logger, repo *repository.Repository, max int) (*sessions, error) {
	if max <= 0 {
		max = DEFAULT_MAX_SESSIONS
	}

	managers, err := lru.New[uuid.UUID, PostManager](max)
	if err != nil {
		return nil, err
	}

	return &sessions{
		logger:   logger,
		repo:     repo,
		managers: managers,
	}, nil
}

// Get returns the session's PostManager, creating an empty one on first use.
func (s *sessions) Get(id uuid.UUID) PostManager {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m, ok := s.managers.Get(id); ok {
		return m
	}

	m := newPostManager(s.logger, s.repo)
	if evicted := s.managers.Add(id, m); evicted {
		s.logger.Sugar().Infof("session limit reached, evicted least recently used session")
	}
	activeSessions.Set(float64(s.Len()))
	return m
}

// Remove drops the session's PostManager. The next Get starts from scratch.
func (s *sessions) Remove(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.managers.Remove(id)
	activeSessions.Set(float64(s.Len()))
}

func (s *sessions) Len() int {
	return s.managers.Len()
}
