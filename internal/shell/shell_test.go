package shell

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VANSHIKA-2727/portfolio/internal/content"
)

func newShell(t *testing.T) *Shell {
	t.Helper()
	c, err := content.Default()
	require.NoError(t, err)
	return New(c)
}

func TestScrolledThreshold(t *testing.T) {
	tests := []struct {
		offset int
		want   bool
	}{
		{0, false},
		{49, false},
		{50, false},
		{51, true},
		{5000, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NavigationState{ScrollOffset: tt.offset}.Scrolled(), "offset %d", tt.offset)
	}
}

func TestScrollTracksLatestOffset(t *testing.T) {
	s := newShell(t)
	vp := NewViewport()
	require.NoError(t, s.Mount(vp))
	defer s.Unmount()

	assert.Equal(t, NavigationState{}, s.State())

	vp.Scroll(120)
	assert.True(t, s.State().Scrolled())

	// no hysteresis: dropping back under the threshold clears it at once
	vp.Scroll(50)
	assert.False(t, s.State().Scrolled())
	assert.Equal(t, 50, s.State().ScrollOffset)

	vp.Scroll(-30)
	assert.Equal(t, 0, s.State().ScrollOffset)
}

func TestToggleMenuTwiceIsIdentity(t *testing.T) {
	s := newShell(t)
	for _, start := range []bool{false, true} {
		if s.State().MenuOpen != start {
			s.ToggleMenu()
		}
		s.ToggleMenu()
		s.ToggleMenu()
		assert.Equal(t, start, s.State().MenuOpen)
	}
}

func TestSelectAnchorClosesMenu(t *testing.T) {
	s := newShell(t)
	for _, id := range []string{"home", "about", "projects", "skills", "contact"} {
		s.ToggleMenu()
		require.True(t, s.State().MenuOpen)
		require.NoError(t, s.SelectAnchor(id))
		assert.False(t, s.State().MenuOpen, "after selecting %q", id)
	}

	s.ToggleMenu()
	err := s.SelectAnchor("blog")
	assert.ErrorIs(t, err, ErrUnknownAnchor)
	assert.False(t, s.State().MenuOpen)
}

func TestUnmountDetachesListener(t *testing.T) {
	s := newShell(t)
	vp := NewViewport()

	calls := 0
	spy := scrollSourceFunc(func(fn func(int)) func() {
		return vp.Subscribe(func(offset int) {
			calls++
			fn(offset)
		})
	})

	require.NoError(t, s.Mount(spy))
	vp.Scroll(80)
	require.Equal(t, 1, calls)

	s.Unmount()
	assert.Zero(t, vp.Subscribers())

	vp.Scroll(10)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 80, s.State().ScrollOffset)

	s.Unmount()
}

func TestMountTwice(t *testing.T) {
	s := newShell(t)
	vp := NewViewport()
	require.NoError(t, s.Mount(vp))
	defer s.Unmount()

	assert.ErrorIs(t, s.Mount(vp), ErrAlreadyMounted)
	assert.Equal(t, 1, vp.Subscribers())
}

func TestMountedReleasesOnEveryExit(t *testing.T) {
	vp := NewViewport()

	err := Mounted(newShell(t), vp, func(s *Shell) error {
		assert.Equal(t, 1, vp.Subscribers())
		return nil
	})
	require.NoError(t, err)
	assert.Zero(t, vp.Subscribers())

	boom := errors.New("boom")
	err = Mounted(newShell(t), vp, func(*Shell) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, vp.Subscribers())

	assert.Panics(t, func() {
		_ = Mounted(newShell(t), vp, func(*Shell) error { panic("render failed") })
	})
	assert.Zero(t, vp.Subscribers())
}

func TestViewReflectsState(t *testing.T) {
	s := newShell(t)
	vp := NewViewport()
	require.NoError(t, s.Mount(vp))
	defer s.Unmount()

	p := s.View()
	assert.Equal(t, "site-nav", p.Nav.Class())
	assert.Equal(t, "Vanshika's Portfolio", p.Nav.Brand)
	assert.Len(t, p.Nav.Sections, 5)
	assert.Equal(t, "/static/img/hero.svg", p.HeroImage)

	vp.Scroll(51)
	s.ToggleMenu()
	p = s.View()
	assert.Equal(t, "site-nav scrolled open", p.Nav.Class())
	assert.Equal(t, 51, p.Nav.ScrollOffset)
}

type scrollSourceFunc func(fn func(int)) func()

func (f scrollSourceFunc) Subscribe(fn func(int)) func() { return f(fn) }
