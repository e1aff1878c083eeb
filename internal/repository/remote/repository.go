package remote

import (
	"context"
	"net/http"
	"strings"

	"github.com/BloggingApp/post-manager/internal/model"
)

type Post interface {
	List(ctx context.Context) ([]model.Post, error)
	Create(ctx context.Context, fields model.FormFields) (*model.Post, error)
	Update(ctx context.Context, id int64, fields model.FormFields) (*model.Post, error)
	Delete(ctx context.Context, id int64) error
}

type RemoteRepository struct {
	Post
}

// New builds the repository against baseURL. A nil client means a plain
// http.Client without a timeout.
func New(baseURL string, httpClient *http.Client) *RemoteRepository {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &RemoteRepository{
		Post: newPostRepo(strings.TrimRight(baseURL, "/"), httpClient),
	}
}
