package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BloggingApp/post-manager/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T, h http.HandlerFunc) *RemoteRepository {
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", srv.Client())
}

func TestList(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/posts", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"userId":1,"id":1,"title":"a","body":"b"},{"id":2,"title":"c","body":"d"}]`))
	})

	posts, err := repo.Post.List(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	require.NotNil(t, posts[0].UserID)
	assert.Equal(t, int64(1), *posts[0].UserID)
	assert.Nil(t, posts[1].UserID)
	assert.Equal(t, "c", posts[1].Title)
}

func TestCreateSendsFields(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/posts", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var fields model.FormFields
		require.NoError(t, json.NewDecoder(r.Body).Decode(&fields))
		assert.Equal(t, model.FormFields{Title: "T", Body: "B"}, fields)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":101,"title":"T","body":"B"}`))
	})

	post, err := repo.Post.Create(context.Background(), model.FormFields{Title: "T", Body: "B"})
	require.NoError(t, err)
	assert.Equal(t, &model.Post{ID: 101, Title: "T", Body: "B"}, post)
}

func TestUpdate(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/posts/7", r.URL.Path)
		w.Write([]byte(`{"id":7,"title":"new","body":"text"}`))
	})

	post, err := repo.Post.Update(context.Background(), 7, model.FormFields{Title: "new", Body: "text"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), post.ID)
	assert.Equal(t, "new", post.Title)
}

func TestDeleteIgnoresBody(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/posts/3", r.URL.Path)
		w.Write([]byte(`not json`))
	})

	assert.NoError(t, repo.Post.Delete(context.Background(), 3))
}

func TestFailuresAreNetworkErrors(t *testing.T) {
	tests := []struct {
		name string
		h    http.HandlerFunc
	}{
		{
			name: "non-2xx",
			h: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{}`))
			},
		},
		{
			name: "malformed json",
			h: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`<html>`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepo(t, tt.h)

			_, err := repo.Post.List(context.Background())
			assert.ErrorIs(t, err, ErrNetwork)

			_, err = repo.Post.Create(context.Background(), model.FormFields{Title: "T", Body: "B"})
			assert.ErrorIs(t, err, ErrNetwork)
		})
	}
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	repo := New(url, nil)

	_, err := repo.Post.List(context.Background())
	assert.ErrorIs(t, err, ErrNetwork)
	assert.ErrorIs(t, repo.Post.Delete(context.Background(), 1), ErrNetwork)
}
