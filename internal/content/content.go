// Package content holds the fixed copy rendered by the portfolio: owner details,
// section anchors, projects, skills and links. It is parsed once from YAML and
// never mutated afterwards.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"html"
	"html/template"
	"net/url"
	"os"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"

	"github.com/VANSHIKA-2727/portfolio/internal/assets"
)

//go:embed content.yaml
var embedded []byte

// Content is the full set of page copy.
type Content struct {
	Owner         Owner          `yaml:"owner"`
	Hero          Hero           `yaml:"hero"`
	About         About          `yaml:"about"`
	Sections      []Section      `yaml:"sections"`
	ProjectsIntro string         `yaml:"projects_intro"`
	Projects      []ProjectEntry `yaml:"projects"`
	Skills        []SkillEntry   `yaml:"skills"`
	Socials       []Link         `yaml:"socials"`
	Resume        Resume         `yaml:"resume"`
	Contact       ContactCopy    `yaml:"contact"`
	Footer        Footer         `yaml:"footer"`
}

type Owner struct {
	Name      string `yaml:"name"`
	ShortName string `yaml:"short_name"`
	Brand     string `yaml:"brand"`
	Role      string `yaml:"role"`
	Email     string `yaml:"email"`
}

type Hero struct {
	Greeting string        `yaml:"greeting"`
	Intro    string        `yaml:"intro"`
	Image    assets.Handle `yaml:"image"`
	CTA      string        `yaml:"cta"`
}

type About struct {
	Heading    string        `yaml:"heading"`
	Subheading string        `yaml:"subheading"`
	Image      assets.Handle `yaml:"image"`
	Paragraphs []string      `yaml:"paragraphs"`
}

// Rendered returns the paragraphs as HTML. Paragraphs may carry inline
// markup such as <strong> or links; see HTML.
func (a About) Rendered() []template.HTML {
	out := make([]template.HTML, len(a.Paragraphs))
	for i, p := range a.Paragraphs {
		out[i] = HTML(p)
	}
	return out
}

var (
	richPolicy  = bluemonday.UGCPolicy()
	plainPolicy = bluemonday.StrictPolicy()
)

// HTML sanitizes copy that may contain markup. Content can come from an
// override file, so only the user-generated-content allowlist survives.
func HTML(s string) template.HTML {
	return template.HTML(richPolicy.Sanitize(s))
}

// PlainText strips all markup from copy for the terminal preview.
func PlainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(plainPolicy.Sanitize(s)))
}

// Section is an in-page anchor target listed in the navigation.
type Section struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// Href is the fragment link for the section.
func (s Section) Href() string { return "#" + s.ID }

// ProjectEntry is one showcased project.
type ProjectEntry struct {
	Title       string        `yaml:"title"`
	Description string        `yaml:"description"`
	Tech        []string      `yaml:"tech"`
	Image       assets.Handle `yaml:"image"`
}

// ImageURL resolves the project's image handle.
func (p ProjectEntry) ImageURL() string { return assets.Path(p.Image) }

// SkillEntry is a named skill with a proficiency level in [0, 100].
type SkillEntry struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
}

// WidthFraction is the share of the bar the skill fills.
func (s SkillEntry) WidthFraction() float64 {
	return float64(s.Level) / 100
}

// WidthPercent is the CSS width of the skill bar.
func (s SkillEntry) WidthPercent() string {
	return fmt.Sprintf("%d%%", s.Level)
}

type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Resume points at the externally hosted CV document.
type Resume struct {
	URL      string `yaml:"url"`
	Filename string `yaml:"filename"`
}

type ContactCopy struct {
	Heading string `yaml:"heading"`
	Intro   string `yaml:"intro"`
}

type Footer struct {
	Tagline   string `yaml:"tagline"`
	Copyright string `yaml:"copyright"`
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid content")

// Parse decodes and validates YAML content.
func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load reads content from a YAML file on disk.
func Load(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}
	return Parse(data)
}

var loadDefault = sync.OnceValues(func() (*Content, error) {
	return Parse(embedded)
})

// Default returns the compiled-in content. It is parsed on first use.
func Default() (*Content, error) {
	return loadDefault()
}

// Validate checks the invariants the renderers rely on.
func (c *Content) Validate() error {
	if c.Owner.Name == "" {
		return fmt.Errorf("%w: owner.name is required", ErrInvalid)
	}
	if len(c.Sections) == 0 {
		return fmt.Errorf("%w: at least one section is required", ErrInvalid)
	}
	seen := make(map[string]bool, len(c.Sections))
	for i, s := range c.Sections {
		if s.ID == "" || strings.ContainsAny(s.ID, " #") {
			return fmt.Errorf("%w: sections[%d]: bad id %q", ErrInvalid, i, s.ID)
		}
		if seen[s.ID] {
			return fmt.Errorf("%w: sections[%d]: duplicate id %q", ErrInvalid, i, s.ID)
		}
		seen[s.ID] = true
	}
	for _, h := range []assets.Handle{c.Hero.Image, c.About.Image} {
		if !assets.Valid(h) {
			return fmt.Errorf("%w: unknown image %q", ErrInvalid, h)
		}
	}
	for i, p := range c.Projects {
		if p.Title == "" {
			return fmt.Errorf("%w: projects[%d]: title is required", ErrInvalid, i)
		}
		if !assets.Valid(p.Image) {
			return fmt.Errorf("%w: projects[%d]: unknown image %q", ErrInvalid, i, p.Image)
		}
	}
	for i, s := range c.Skills {
		if s.Name == "" {
			return fmt.Errorf("%w: skills[%d]: name is required", ErrInvalid, i)
		}
		if s.Level < 0 || s.Level > 100 {
			return fmt.Errorf("%w: skills[%d] %q: level %d outside [0,100]", ErrInvalid, i, s.Name, s.Level)
		}
	}
	u, err := url.Parse(c.Resume.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: resume.url must be an absolute http(s) URL", ErrInvalid)
	}
	return nil
}

// HasSection reports whether id is one of the navigation anchors.
func (c *Content) HasSection(id string) bool {
	for _, s := range c.Sections {
		if s.ID == id {
			return true
		}
	}
	return false
}
