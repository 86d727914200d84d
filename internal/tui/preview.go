// Package tui previews the portfolio page in a terminal. It drives the same
// shell as the web server: key presses scroll a shell.Viewport and toggle the
// menu, and the header is styled from the shell's state.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/VANSHIKA-2727/portfolio/internal/content"
	"github.com/VANSHIKA-2727/portfolio/internal/shell"
)

// pixelsPerLine converts terminal rows into the page offsets the shell
// thresholds are expressed in.
const pixelsPerLine = 20

const barWidth = 30

type model struct {
	content *content.Content
	shell   *shell.Shell
	vp      *shell.Viewport

	lines   []string
	anchors map[string]int
	top     int
	width   int
	height  int
}

func newModel(c *content.Content, sh *shell.Shell, vp *shell.Viewport) model {
	m := model{content: c, shell: sh, vp: vp, width: 80, height: 24}
	m.lines, m.anchors = renderBody(c, m.width)
	return m
}

// Run mounts a shell for the lifetime of the preview and blocks until the
// user quits.
func Run(c *content.Content, opts ...tea.ProgramOption) error {
	sh := shell.New(c)
	vp := shell.NewViewport()
	return shell.Mounted(sh, vp, func(sh *shell.Shell) error {
		opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
		_, err := tea.NewProgram(newModel(c, sh, vp), opts...).Run()
		return err
	})
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.lines, m.anchors = renderBody(m.content, m.width)
		m.scrollTo(m.top)
	case tea.KeyMsg:
		switch k := msg.String(); k {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "down", "j":
			m.scrollTo(m.top + 1)
		case "up", "k":
			m.scrollTo(m.top - 1)
		case "pgdown", " ":
			m.scrollTo(m.top + m.bodyHeight())
		case "pgup":
			m.scrollTo(m.top - m.bodyHeight())
		case "home", "g":
			m.scrollTo(0)
		case "end", "G":
			m.scrollTo(len(m.lines))
		case "m":
			m.shell.ToggleMenu()
		default:
			if len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
				m.selectSection(int(k[0] - '1'))
			}
		}
	}
	return m, nil
}

func (m *model) selectSection(i int) {
	if i >= len(m.content.Sections) {
		return
	}
	id := m.content.Sections[i].ID
	if err := m.shell.SelectAnchor(id); err != nil {
		return
	}
	m.scrollTo(m.anchors[id])
}

func (m *model) scrollTo(line int) {
	maxTop := len(m.lines) - m.bodyHeight()
	if line > maxTop {
		line = maxTop
	}
	if line < 0 {
		line = 0
	}
	m.top = line
	m.vp.Scroll(line * pixelsPerLine)
}

func (m model) bodyHeight() int {
	h := m.height - 2 // header and help line
	if m.shell.State().MenuOpen {
		h -= len(m.content.Sections) + 2
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (m model) header() string {
	st := m.shell.State()
	style := navTopStyle
	if st.Scrolled() {
		style = navScrolledStyle
	}
	icon := "☰"
	if st.MenuOpen {
		icon = "✕"
	}
	brand := m.content.Owner.Brand
	gap := m.width - lipgloss.Width(brand) - lipgloss.Width(icon) - 2
	if gap < 1 {
		gap = 1
	}
	return style.Width(m.width).Render(brand + strings.Repeat(" ", gap) + icon)
}

func (m model) menu() string {
	var b strings.Builder
	for i, s := range m.content.Sections {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d  %s", i+1, s.Label)
	}
	return menuStyle.Render(b.String())
}

func (m model) View() string {
	var parts []string
	parts = append(parts, m.header())
	if m.shell.State().MenuOpen {
		parts = append(parts, m.menu())
	}

	end := m.top + m.bodyHeight()
	if end > len(m.lines) {
		end = len(m.lines)
	}
	parts = append(parts, strings.Join(m.lines[m.top:end], "\n"))
	parts = append(parts, helpStyle.Render(fmt.Sprintf("↑/↓ scroll · m menu · 1-%d jump · q quit", min(len(m.content.Sections), 9))))
	return strings.Join(parts, "\n")
}

// skillBar draws level as a proportional bar of the given width.
func skillBar(level, width int) string {
	filled := (level*width + 50) / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func renderBody(c *content.Content, width int) ([]string, map[string]int) {
	var lines []string
	anchors := make(map[string]int, len(c.Sections))
	wrap := lipgloss.NewStyle().Width(max(width-2, 20))

	add := func(s string) {
		lines = append(lines, strings.Split(s, "\n")...)
	}
	heading := func(s string) {
		add("")
		add(headingStyle.Render(s))
		add("")
	}

	for _, sec := range c.Sections {
		anchors[sec.ID] = len(lines)
		switch sec.ID {
		case "home":
			heading(c.Hero.Greeting + " " + c.Owner.ShortName)
			add(wrap.Render(c.Hero.Intro))
			add(mutedStyle.Render(c.Hero.CTA + ": " + c.Resume.URL))
		case "about":
			heading(c.About.Heading)
			add(titleStyle.Render(c.About.Subheading))
			for _, p := range c.About.Paragraphs {
				add(wrap.Render(content.PlainText(p)))
				add("")
			}
		case "projects":
			heading("Featured Projects")
			add(mutedStyle.Render(c.ProjectsIntro))
			for _, p := range c.Projects {
				add("")
				add(titleStyle.Render(p.Title))
				add(wrap.Render(p.Description))
				add(techStyle.Render(strings.Join(p.Tech, " · ")))
			}
		case "skills":
			heading("Skills & Expertise")
			for _, s := range c.Skills {
				add(fmt.Sprintf("%-14s %s %3d%%", s.Name, barStyle.Render(skillBar(s.Level, barWidth)), s.Level))
			}
		case "contact":
			heading(c.Contact.Heading)
			add(wrap.Render(c.Contact.Intro))
			add(mutedStyle.Render("Write to " + c.Owner.Email))
		default:
			heading(sec.Label)
		}
	}

	add("")
	add(mutedStyle.Render(c.Footer.Tagline))
	for _, l := range c.Socials {
		add(mutedStyle.Render(l.Label + ": " + l.URL))
	}
	add(mutedStyle.Render(c.Footer.Copyright))

	return lines, anchors
}
