package service

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/BloggingApp/post-manager/internal/model"
	"github.com/BloggingApp/post-manager/internal/repository"
	"github.com/BloggingApp/post-manager/internal/state"
	"go.uber.org/zap"
)

type postManager struct {
	logger   *zap.Logger
	repo     *repository.Repository
	notifier *notifier
	fetched  atomic.Bool

	mu          sync.Mutex
	posts       []model.Post
	loaded      bool
	form        state.Form
	addOpen     bool
	editOpen    bool
	editTarget  *model.Post
	searchTerm  string
	currentPage int
}

func newPostManager(logger *zap.Logger, repo *repository.Repository) PostManager {
	return &postManager{
		logger:      logger,
		repo:        repo,
		notifier:    &notifier{},
		currentPage: 1,
	}
}

// Gateway calls outlive the request that issued them.
func detach(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}

func (m *postManager) Load(ctx context.Context) error {
	if !m.fetched.CompareAndSwap(false, true) {
		return nil
	}

	posts, err := m.repo.Remote.Post.List(detach(ctx))
	if err != nil {
		m.logger.Sugar().Errorf("failed to fetch posts: %s", err.Error())
		m.notifier.Error(MSG_FETCH_FAILED)
		return err
	}

	m.mu.Lock()
	m.posts = posts
	m.loaded = true
	m.mu.Unlock()

	m.notifier.Success(MSG_FETCHED)
	return nil
}

func (m *postManager) OpenAdd() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.addOpen = true
}

func (m *postManager) OpenEdit(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	post, ok := state.Find(m.posts, id)
	if !ok {
		return ErrPostNotFound
	}

	m.form.Seed(post)
	m.editTarget = &post
	m.editOpen = true
	return nil
}

func (m *postManager) Cancel(dialog model.Dialog) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch dialog {
	case model.DialogAdd:
		m.addOpen = false
	case model.DialogEdit:
		m.editOpen = false
		m.editTarget = nil
	}
	m.form.Reset()
}

func (m *postManager) SetField(field model.Field, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.form.SetField(field, value)
}

func (m *postManager) SubmitAdd(ctx context.Context) error {
	m.mu.Lock()
	if !m.form.Validate() {
		m.mu.Unlock()
		m.notifier.Error(MSG_FIX_ERRORS)
		return state.ErrValidation
	}
	fields := m.form.Fields
	m.mu.Unlock()

	created, err := m.repo.Remote.Post.Create(detach(ctx), fields)
	if err != nil {
		m.logger.Sugar().Errorf("failed to create post: %s", err.Error())
		m.notifier.Error(MSG_ADD_FAILED)
		return err
	}

	m.mu.Lock()
	m.posts = state.Prepend(m.posts, *created)
	m.form.Reset()
	m.addOpen = false
	m.mu.Unlock()

	m.notifier.Success(MSG_ADDED)
	return nil
}

func (m *postManager) SubmitEdit(ctx context.Context) error {
	m.mu.Lock()
	target := m.editTarget
	if target == nil || !m.form.Validate() {
		m.mu.Unlock()
		m.notifier.Error(MSG_FIX_ERRORS)
		return state.ErrValidation
	}
	id := target.ID
	fields := m.form.Fields
	m.mu.Unlock()

	updated, err := m.repo.Remote.Post.Update(detach(ctx), id, fields)
	if err != nil {
		m.logger.Sugar().Errorf("failed to update post(%d): %s", id, err.Error())
		m.notifier.Error(MSG_UPDATE_FAILED)
		return err
	}

	m.mu.Lock()
	m.posts = state.Replace(m.posts, id, *updated)
	m.form.Reset()
	m.editOpen = false
	m.editTarget = nil
	m.mu.Unlock()

	m.notifier.Success(MSG_UPDATED)
	return nil
}

func (m *postManager) Delete(ctx context.Context, id int64) error {
	if err := m.repo.Remote.Post.Delete(detach(ctx), id); err != nil {
		m.logger.Sugar().Errorf("failed to delete post(%d): %s", id, err.Error())
		m.notifier.Error(MSG_DELETE_FAILED)
		return err
	}

	m.mu.Lock()
	m.posts = state.Remove(m.posts, id)
	m.mu.Unlock()

	m.notifier.Success(MSG_DELETED)
	return nil
}

// Search does not move the current page back into range.
func (m *postManager) Search(term string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.searchTerm = term
}

func (m *postManager) SetPage(page int) {
	if page < 1 {
		page = 1
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.currentPage = page
}

func (m *postManager) View() model.View {
	view := m.snapshot()
	view.Notifications = m.notifier.Drain()
	return view
}

func (m *postManager) snapshot() model.View {
	m.mu.Lock()
	defer m.mu.Unlock()

	filtered := state.Filter(m.posts, m.searchTerm)
	items, totalPages := state.Paginate(filtered, m.currentPage, state.PAGE_SIZE)

	view := model.View{
		Posts:         items,
		FilteredTotal: len(filtered),
		TotalPages:    totalPages,
		CurrentPage:   m.currentPage,
		PageSize:      state.PAGE_SIZE,
		SearchTerm:    m.searchTerm,
		Form:          m.form.Fields,
		Errors:        m.form.Errors,
		AddOpen:       m.addOpen,
		EditOpen:      m.editOpen,
		Loaded:        m.loaded,
	}
	if m.editTarget != nil {
		target := *m.editTarget
		view.EditTarget = &target
	}
	return view
}
