package contact

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrBadFormID = errors.New("contact: malformed form id")
	// ErrUnknownForm is returned for ids that were never minted or have been
	// swept. A swept form never comes back, so a sent message is not resent.
	ErrUnknownForm = errors.New("contact: unknown or expired form")
)

const minSweepInterval = time.Millisecond

// Registry keeps one Controller per rendered form so the in-flight guard
// holds across requests. Controllers are registered when the form is
// rendered and dropped once idle for longer than the TTL.
type Registry struct {
	submitter Submitter
	ttl       time.Duration
	now       func() time.Time

	mu    sync.Mutex
	forms map[string]*entry
}

type entry struct {
	ctrl    *Controller
	touched time.Time
}

func NewRegistry(s Submitter, ttl time.Duration) *Registry {
	return &Registry{
		submitter: s,
		ttl:       ttl,
		now:       time.Now,
		forms:     make(map[string]*entry),
	}
}

// Mint registers an idle controller for a freshly rendered form and returns
// the id embedded in it.
func (r *Registry) Mint() string {
	id := uuid.Must(uuid.NewV7()).String()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.forms[id] = &entry{ctrl: NewController(r.submitter), touched: r.now()}
	return id
}

// Get returns the controller minted for id.
func (r *Registry) Get(id string) (*Controller, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrBadFormID
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.forms[parsed.String()]
	if !ok {
		return nil, ErrUnknownForm
	}
	e.touched = r.now()
	return e.ctrl, nil
}

// Sweep drops controllers untouched for longer than the TTL and returns how
// many were removed. A submission still in flight is never dropped.
func (r *Registry) Sweep() int {
	cutoff := r.now().Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, e := range r.forms {
		if e.touched.After(cutoff) {
			continue
		}
		if e.ctrl.Snapshot().State == Submitting {
			continue
		}
		delete(r.forms, id)
		n++
	}
	return n
}

// Run sweeps every interval until ctx is cancelled. Intervals below
// minSweepInterval are raised to it.
func (r *Registry) Run(ctx context.Context, interval time.Duration) error {
	t := time.NewTicker(max(interval, minSweepInterval))
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			r.Sweep()
		}
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.forms)
}
