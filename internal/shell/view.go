package shell

import (
	"strings"

	"github.com/VANSHIKA-2727/portfolio/internal/assets"
	"github.com/VANSHIKA-2727/portfolio/internal/content"
)

// Nav is the render model of the navigation bar.
type Nav struct {
	Brand        string
	Sections     []content.Section
	MenuOpen     bool
	Scrolled     bool
	ScrollOffset int
}

// Class is the CSS class list of the <nav> element.
func (n Nav) Class() string {
	classes := []string{"site-nav"}
	if n.Scrolled {
		classes = append(classes, "scrolled")
	}
	if n.MenuOpen {
		classes = append(classes, "open")
	}
	return strings.Join(classes, " ")
}

// Page is everything the templates need to draw the portfolio.
type Page struct {
	Nav        Nav
	Content    *content.Content
	HeroImage  string
	AboutImage string
	Favicon    string
	Stylesheet string
}

// View derives the render model from the content and the current state.
func (s *Shell) View() Page {
	st := s.State()
	return Page{
		Nav: Nav{
			Brand:        s.content.Owner.Brand,
			Sections:     s.content.Sections,
			MenuOpen:     st.MenuOpen,
			Scrolled:     st.Scrolled(),
			ScrollOffset: st.ScrollOffset,
		},
		Content:    s.content,
		HeroImage:  assets.Path(s.content.Hero.Image),
		AboutImage: assets.Path(s.content.About.Image),
		Favicon:    assets.Path(assets.Favicon),
		Stylesheet: assets.Stylesheet,
	}
}
