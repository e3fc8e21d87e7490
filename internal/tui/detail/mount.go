package detail

import (
	"context"
	"sync"

	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/logging"
)

// Mount is one lifetime of a detail view for one item. The zero value is
// not usable; create mounts with NewMount.
type Mount struct {
	id     string
	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.Mutex
	dismissed bool
}

// NewMount starts a mount whose context derives from parent.
func NewMount(parent context.Context) *Mount {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	return &Mount{id: logging.NewID(), ctx: ctx, cancel: cancel}
}

// ID returns the mount token.
func (m *Mount) ID() string {
	if m == nil {
		return ""
	}
	return m.id
}

// Context is cancelled when the mount is dismissed.
func (m *Mount) Context() context.Context {
	return m.ctx
}

// Dismiss invalidates the mount and cancels its context. It is idempotent.
func (m *Mount) Dismiss() {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.dismissed = true
	m.mu.Unlock()
	m.cancel()
}

// Active reports whether the mount has not been dismissed.
func (m *Mount) Active() bool {
	if m == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.dismissed
}

// Owns reports whether a result tagged with id belongs to this live mount.
func (m *Mount) Owns(id string) bool {
	return m.Active() && m.id == id
}
