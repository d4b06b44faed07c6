package controller

import (
	"context"
	"sync"
)

type FetchFunc[K comparable, T any] func(ctx context.Context, key K) (T, error)

// Fetcher drives one page's read: Idle, then Loading for a key, then Success
// or Failure. Every Load bumps a generation counter and a result is applied
// only if its generation is still the latest, so a slow answer for an old
// key cannot overwrite a newer one.
type Fetcher[K comparable, T any] struct {
	fetch    FetchFunc[K, T]
	fallback string

	mu    sync.Mutex
	state State
	gen   uint64
	subs  []func(State)
}

func NewFetcher[K comparable, T any](fetch FetchFunc[K, T], fallback string) *Fetcher[K, T] {
	return &Fetcher[K, T]{
		fetch:    fetch,
		fallback: fallback,
		state:    Idle{},
	}
}

func (f *Fetcher[K, T]) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Subscribe registers a render callback run after every transition. It is
// called with the fetcher locked and must not call back into it.
func (f *Fetcher[K, T]) Subscribe(fn func(State)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subs = append(f.subs, fn)
}

// Load issues exactly one request for key and blocks until it resolves.
// The returned state is the fetcher's state afterwards, which is not this
// request's result if a newer Load started meanwhile.
func (f *Fetcher[K, T]) Load(ctx context.Context, key K) State {
	f.mu.Lock()
	f.gen++
	gen := f.gen
	f.setLocked(Loading[K]{Key: key})
	f.mu.Unlock()

	data, err := f.fetch(ctx, key)

	var next State
	if err != nil {
		next = Failure[K]{Key: key, Message: ErrorMessage(err, f.fallback)}
	} else {
		next = Success[K, T]{Key: key, Data: data}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if gen != f.gen {
		return f.state
	}
	f.setLocked(next)
	return next
}

func (f *Fetcher[K, T]) setLocked(s State) {
	f.state = s
	for _, fn := range f.subs {
		fn(s)
	}
}
