// Package tierstate projects externally-owned premium status into a derived
// tier view for UI consumers. It performs no fetching of its own; the host
// owns the status source and pushes changes in.
package tierstate

import (
	"context"
	"sync"

	"tiergate/internal/domain"
)

// Status is the host-observed premium state for the current user.
type Status struct {
	IsPremium bool
	IsLoading bool
	Err       error
}

// NewStatus returns a fresh default status: not premium, not loading, no error.
func NewStatus() Status {
	return Status{}
}

// View is the derived view-model: the tier classification plus the loading
// and error fields passed through verbatim from the host's status source.
type View struct {
	domain.TierInfo
	IsLoading bool
	Err       error
}

// Loader is the host's refresh operation for its premium-status source.
type Loader func(ctx context.Context, userID string) error

// Binding recomputes a View whenever its identity or status inputs change.
type Binding struct {
	mu       sync.Mutex
	isGuest  bool
	userID   *string
	status   Status
	loader   Loader
	onChange func(View)
	view     View
}

// Option configures a Binding.
type Option func(*Binding)

// WithLoader attaches the host's refresh operation.
func WithLoader(l Loader) Option {
	return func(b *Binding) { b.loader = l }
}

// WithOnChange registers a callback fired after every recompute.
func WithOnChange(fn func(View)) Option {
	return func(b *Binding) { b.onChange = fn }
}

// NewBinding builds a binding for the given identity. The initial status is
// the NewStatus default.
func NewBinding(isGuest bool, userID *string, opts ...Option) (*Binding, error) {
	b := &Binding{isGuest: isGuest, userID: copyID(userID), status: NewStatus()}
	for _, opt := range opts {
		opt(b)
	}
	if err := b.recompute(); err != nil {
		return nil, err
	}
	return b, nil
}

// SetIdentity swaps the identity inputs and recomputes. Invalid identity
// inputs are rejected with the resolver's validation error and leave the
// current view untouched.
func (b *Binding) SetIdentity(isGuest bool, userID *string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, err := domain.ResolveTier(isGuest, userID, false); err != nil {
		return err
	}
	b.isGuest = isGuest
	b.userID = copyID(userID)
	return b.recompute()
}

// SetStatus swaps the observed premium status and recomputes.
func (b *Binding) SetStatus(s Status) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.status = s
	_ = b.recompute() // identity already validated
}

// Snapshot returns the current derived view.
func (b *Binding) Snapshot() View {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.view
}

// Refresh invokes the host's loader for the current user. It is a no-op for
// guests and when no loader is attached; loader failures are returned as-is
// for the caller to handle.
func (b *Binding) Refresh(ctx context.Context) error {
	b.mu.Lock()
	loader := b.loader
	authenticated := domain.IsAuthenticated(b.isGuest, b.userID)
	var userID string
	if b.userID != nil {
		userID = *b.userID
	}
	b.mu.Unlock()

	if !authenticated || loader == nil {
		return nil
	}
	return loader(ctx, userID)
}

// recompute re-derives the view under b.mu.
func (b *Binding) recompute() error {
	info, err := domain.ResolveTier(b.isGuest, b.userID, b.status.IsPremium)
	if err != nil {
		return err
	}
	b.view = View{TierInfo: info, IsLoading: b.status.IsLoading, Err: b.status.Err}
	if b.onChange != nil {
		b.onChange(b.view)
	}
	return nil
}

func copyID(userID *string) *string {
	if userID == nil {
		return nil
	}
	id := *userID
	return &id
}
