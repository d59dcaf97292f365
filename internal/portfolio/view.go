package portfolio

import (
	"context"
	"sync"
)

type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// Snapshot is a consistent copy of the view.
type Snapshot struct {
	State State
	Page  *Page // last successfully loaded page, nil before the first
	Err   error
}

// View holds the page state across refreshes.
type View struct {
	mu     sync.RWMutex
	loader *Loader
	state  State
	page   *Page
	err    error
}

func NewView(loader *Loader) *View {
	return &View{loader: loader, state: StateLoading}
}

// Refresh loads the page. On error the previous page is kept and the
// state becomes StateError.
func (v *View) Refresh(ctx context.Context) error {
	v.mu.Lock()
	v.state = StateLoading
	v.mu.Unlock()

	page, err := v.loader.Load(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.state, v.err = StateError, err
		return err
	}
	v.state, v.page, v.err = StateReady, page, nil
	return nil
}

// Retry re-runs the whole fetch set.
func (v *View) Retry(ctx context.Context) error {
	return v.Refresh(ctx)
}

func (v *View) Snapshot() Snapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return Snapshot{State: v.state, Page: v.page, Err: v.err}
}
