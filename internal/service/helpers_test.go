package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/BloggingApp/post-manager/internal/model"
	"github.com/BloggingApp/post-manager/internal/repository"
	"github.com/BloggingApp/post-manager/internal/repository/remote"
	"go.uber.org/zap"
)

// fakePosts stands in for the remote API.
type fakePosts struct {
	mu      sync.Mutex
	posts   []model.Post
	nextID  int64
	fail    bool
	release chan struct{}

	listCalls   atomic.Int32
	createCalls atomic.Int32
	updateCalls atomic.Int32
	deleteCalls atomic.Int32
}

func newFakePosts(n int) *fakePosts {
	f := &fakePosts{nextID: 101}
	for i := 1; i <= n; i++ {
		f.posts = append(f.posts, model.Post{ID: int64(i), Title: fmt.Sprintf("title %d", i), Body: fmt.Sprintf("body %d", i)})
	}
	return f
}

func (f *fakePosts) err(op string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return fmt.Errorf("%w: %s failed", remote.ErrNetwork, op)
	}
	return nil
}

func (f *fakePosts) List(ctx context.Context) ([]model.Post, error) {
	f.listCalls.Add(1)
	if f.release != nil {
		<-f.release
	}
	if err := f.err("list"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Post(nil), f.posts...), nil
}

func (f *fakePosts) Create(ctx context.Context, fields model.FormFields) (*model.Post, error) {
	f.createCalls.Add(1)
	if err := f.err("create"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return &model.Post{ID: f.nextID, Title: fields.Title, Body: fields.Body}, nil
}

func (f *fakePosts) Update(ctx context.Context, id int64, fields model.FormFields) (*model.Post, error) {
	f.updateCalls.Add(1)
	if err := f.err("update"); err != nil {
		return nil, err
	}
	return &model.Post{ID: id, Title: fields.Title, Body: fields.Body}, nil
}

func (f *fakePosts) Delete(ctx context.Context, id int64) error {
	f.deleteCalls.Add(1)
	return f.err("delete")
}

func (f *fakePosts) setFail(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail = fail
}

func newTestRepository(f *fakePosts) *repository.Repository {
	return &repository.Repository{
		Remote: &remote.RemoteRepository{Post: f},
	}
}

func newTestManager(f *fakePosts) PostManager {
	return newPostManager(zap.NewNop(), newTestRepository(f))
}

func messages(ns []model.Notification) []string {
	var out []string
	for _, n := range ns {
		out = append(out, n.Message)
	}
	return out
}
