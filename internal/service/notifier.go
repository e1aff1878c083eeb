package service

import (
	"sync"
	"time"

	"github.com/BloggingApp/post-manager/internal/model"
)

type notifier struct {
	mu      sync.Mutex
	pending []model.Notification
}

func (n *notifier) Success(message string) {
	n.push(model.NotificationSuccess, message)
}

func (n *notifier) Error(message string) {
	n.push(model.NotificationError, message)
}

func (n *notifier) push(kind model.NotificationKind, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.pending = append(n.pending, model.Notification{
		Kind:    kind,
		Message: message,
		At:      time.Now(),
	})
}

// Drain hands out everything pushed since the last call.
func (n *notifier) Drain() []model.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := n.pending
	n.pending = nil
	return out
}
