// Package shell owns the page layout state: the scroll-reactive navigation bar
// and the collapsible menu. Both live only as long as a mounted Shell.
package shell

import (
	"errors"
	"fmt"
	"sync"

	"github.com/VANSHIKA-2727/portfolio/internal/content"
)

// ScrollThreshold is the offset past which the navigation bar switches to its
// scrolled treatment.
const ScrollThreshold = 50

var (
	ErrAlreadyMounted = errors.New("shell: already mounted")
	ErrUnknownAnchor  = errors.New("shell: unknown anchor")
)

// NavigationState is the ephemeral navigation UI state.
type NavigationState struct {
	MenuOpen     bool
	ScrollOffset int
}

// Scrolled is true strictly above ScrollThreshold.
func (s NavigationState) Scrolled() bool {
	return s.ScrollOffset > ScrollThreshold
}

// Shell is one mounted instance of the page.
type Shell struct {
	content *content.Content

	mu          sync.Mutex
	state       NavigationState
	unsubscribe func()
}

func New(c *content.Content) *Shell {
	return &Shell{content: c}
}

// Mount attaches the shell to src so scroll offsets are recorded. src must
// not invoke the listener from inside Subscribe.
func (s *Shell) Mount(src ScrollSource) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unsubscribe != nil {
		return ErrAlreadyMounted
	}
	s.state = NavigationState{}
	s.unsubscribe = src.Subscribe(s.onScroll)
	return nil
}

// Unmount detaches the scroll listener. Safe to call on an unmounted shell.
func (s *Shell) Unmount() {
	s.mu.Lock()
	cancel := s.unsubscribe
	s.unsubscribe = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Mounted runs fn with s mounted on src and unmounts on every exit path,
// including a panic inside fn.
func Mounted(s *Shell, src ScrollSource, fn func(*Shell) error) error {
	if err := s.Mount(src); err != nil {
		return err
	}
	defer s.Unmount()
	return fn(s)
}

func (s *Shell) onScroll(offset int) {
	s.mu.Lock()
	s.state.ScrollOffset = offset
	s.mu.Unlock()
}

func (s *Shell) ToggleMenu() {
	s.mu.Lock()
	s.state.MenuOpen = !s.state.MenuOpen
	s.mu.Unlock()
}

// SelectAnchor handles a click on a menu link. The menu is closed whatever
// the anchor; an anchor that is not a page section is still reported.
func (s *Shell) SelectAnchor(id string) error {
	s.mu.Lock()
	s.state.MenuOpen = false
	s.mu.Unlock()

	if !s.content.HasSection(id) {
		return fmt.Errorf("%w: %q", ErrUnknownAnchor, id)
	}
	return nil
}

func (s *Shell) State() NavigationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
