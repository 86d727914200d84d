package shell

import "sync"

// ScrollSource delivers vertical scroll offsets to subscribers. The returned
// cancel func detaches the subscription and may be called more than once.
type ScrollSource interface {
	Subscribe(fn func(offset int)) (cancel func())
}

// Viewport is an in-process ScrollSource. Whatever drives the page (an HTMX
// request replaying the browser's offset, or a terminal key press) reports
// scroll positions through Scroll.
type Viewport struct {
	mu   sync.Mutex
	next int
	subs map[int]func(int)
}

func NewViewport() *Viewport {
	return &Viewport{subs: make(map[int]func(int))}
}

func (v *Viewport) Subscribe(fn func(offset int)) func() {
	v.mu.Lock()
	id := v.next
	v.next++
	v.subs[id] = fn
	v.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			delete(v.subs, id)
			v.mu.Unlock()
		})
	}
}

// Scroll publishes offset to every live subscriber. Negative offsets
// (overscroll) are reported as 0.
func (v *Viewport) Scroll(offset int) {
	if offset < 0 {
		offset = 0
	}

	v.mu.Lock()
	fns := make([]func(int), 0, len(v.subs))
	for _, fn := range v.subs {
		fns = append(fns, fn)
	}
	v.mu.Unlock()

	for _, fn := range fns {
		fn(offset)
	}
}

// Subscribers is the number of attached listeners.
func (v *Viewport) Subscribers() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.subs)
}
