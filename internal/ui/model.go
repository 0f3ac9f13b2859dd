package ui

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/choonghwanlee/folio/internal/portfolio"
	"github.com/choonghwanlee/folio/internal/tracker"
)

const (
	// DefaultThreshold is the detection line, in rows below the viewport top.
	DefaultThreshold = 3

	frameRate = 60
)

// Model owns Bubble Tea state for the portfolio view.
type Model struct {
	content portfolio.Content
	styles  Styles
	keys    keyMap
	help    help.Model

	viewport viewport.Model
	doc      *document
	scroll   *tracker.Emitter
	tracker  *tracker.Tracker

	tab   int
	typer typewriter

	spring    harmonica.Spring
	animating bool
	pos       float64
	vel       float64
	target    float64

	width  int
	height int
	ready  bool
}

// document is the rendered page plus the scroll offset, shared by every copy
// of the model so the tracker measures what is currently on screen.
type document struct {
	layout Layout
	offset int
}

// Measure implements tracker.Measurer against the current layout.
func (d *document) Measure(section portfolio.Section) (tracker.Rect, bool) {
	extent, ok := d.layout.Extent(section)
	if !ok {
		return tracker.Rect{}, false
	}
	shift := float64(d.offset)
	return tracker.Rect{Top: extent.Top - shift, Bottom: extent.Bottom - shift}, true
}

type scrollFrameMsg struct{}

// Option configures a Model.
type Option func(*options)

type options struct {
	threshold int
	styles    Styles
}

// WithThreshold sets the detection line in rows.
func WithThreshold(rows int) Option {
	return func(o *options) {
		o.threshold = rows
	}
}

// WithStyles overrides DefaultStyles.
func WithStyles(styles Styles) Option {
	return func(o *options) {
		o.styles = styles
	}
}

// NewModel builds the view. The tracker starts on the hero, as the page does
// before the first scroll event.
func NewModel(content portfolio.Content, opts ...Option) Model {
	o := options{threshold: DefaultThreshold, styles: DefaultStyles()}
	for _, opt := range opts {
		opt(&o)
	}

	doc := &document{}
	return Model{
		content: content,
		styles:  o.styles,
		keys:    defaultKeyMap(),
		help:    help.New(),
		doc:     doc,
		scroll:  &tracker.Emitter{},
		tracker: tracker.New(doc,
			tracker.WithThreshold(float64(o.threshold)),
			tracker.WithInitial(portfolio.SectionHome),
		),
		typer:  newTypewriter(1, content.Profile.Roles),
		spring: harmonica.NewSpring(harmonica.FPS(frameRate), 6.0, 1.0),
	}
}

// Init mounts the view: the tracker subscribes to scroll events here and is
// released by Close.
func (m Model) Init() tea.Cmd {
	if !m.tracker.Attached() {
		// Attach only fails when already attached.
		_, _ = m.tracker.Attach(m.scroll)
	}
	return m.typer.tick()
}

// Close unmounts the view. Safe to call more than once.
func (m Model) Close() {
	m.tracker.Detach()
}

// Active returns the highlighted section.
func (m Model) Active() portfolio.Section {
	section, _ := m.tracker.Active()
	return section
}

// Offset returns the current scroll offset in rows.
func (m Model) Offset() int {
	return m.viewport.YOffset
}

// Layout returns the rendered document.
func (m Model) Layout() Layout {
	return m.doc.layout
}

// Update wires TUI state transitions from input, resizes and timers.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if !m.ready {
			return m, nil
		}
		m.animating = false
		return m.delegate(msg)
	case scrollFrameMsg:
		return m.stepScroll()
	case typewriterTickMsg:
		if msg.id != m.typer.id {
			return m, nil
		}
		m.typer = m.typer.step()
		m.rerender()
		return m, m.typer.tick()
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit
	case !m.ready:
		return m, nil
	case key.Matches(msg, m.keys.Nav):
		links := portfolio.NavLinks()
		idx := int(msg.String()[0] - '1')
		if idx < 0 || idx >= len(links) {
			return m, nil
		}
		return m.ScrollTo(links[idx].Target)
	case key.Matches(msg, m.keys.Home):
		return m.ScrollTo(portfolio.SectionHome)
	case key.Matches(msg, m.keys.NextTab):
		m.tab = clampTab(m.tab+1, len(m.content.Experiences))
		m.rerender()
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.tab = clampTab(m.tab-1, len(m.content.Experiences))
		m.rerender()
		return m, nil
	}

	m.animating = false
	return m.delegate(msg)
}

// delegate hands input to the viewport and publishes a scroll event when the
// offset moved.
func (m Model) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.viewport.YOffset
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	if m.viewport.YOffset != before {
		m.publishScroll()
	}
	return m, cmd
}

// ScrollTo starts a spring-animated scroll bringing section to the top of
// the viewport. Every animation frame is a scroll event.
func (m Model) ScrollTo(section portfolio.Section) (Model, tea.Cmd) {
	top, ok := m.doc.layout.Top(section)
	if !ok || !m.ready {
		return m, nil
	}
	target := float64(min(top, m.maxOffset()))
	if m.animating {
		// Retarget the running spring; its frame loop is already scheduled.
		m.target = target
		return m, nil
	}
	if target == float64(m.viewport.YOffset) {
		return m, nil
	}

	m.target = target
	m.pos = float64(m.viewport.YOffset)
	m.vel = 0
	m.animating = true
	return m, frame()
}

func (m Model) stepScroll() (tea.Model, tea.Cmd) {
	if !m.animating {
		return m, nil
	}
	m.pos, m.vel = m.spring.Update(m.pos, m.vel, m.target)
	if math.Abs(m.pos-m.target) < 0.5 && math.Abs(m.vel) < 0.5 {
		m.pos = m.target
		m.vel = 0
		m.animating = false
	}
	m.setOffset(int(math.Round(m.pos)))
	if !m.animating {
		return m, nil
	}
	return m, frame()
}

func frame() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(time.Time) tea.Msg {
		return scrollFrameMsg{}
	})
}

func (m *Model) setOffset(offset int) {
	before := m.viewport.YOffset
	m.viewport.SetYOffset(offset)
	if m.viewport.YOffset != before {
		m.publishScroll()
	}
}

func (m *Model) publishScroll() {
	m.doc.offset = m.viewport.YOffset
	m.scroll.Emit()
}

func (m Model) maxOffset() int {
	return max(0, m.viewport.TotalLineCount()-m.viewport.Height)
}

func (m Model) resize(width, height int) Model {
	m.width = width
	m.height = height
	m.help.Width = width

	// The nav wraps on narrow terminals, so chrome is measured, not assumed.
	chrome := lipgloss.Height(m.navView()) + lipgloss.Height(m.help.View(m.keys))
	bodyHeight := max(1, height-chrome)
	if !m.ready {
		m.viewport = viewport.New(width, bodyHeight)
		m.viewport.KeyMap.Up = m.keys.Up
		m.viewport.KeyMap.Down = m.keys.Down
		m.viewport.KeyMap.PageUp = m.keys.PageUp
		m.viewport.KeyMap.PageDown = m.keys.PageDn
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = bodyHeight
	}
	m.rerender()
	return m
}

// rerender rebuilds the document at the current width. Extents change but no
// scroll event is published; the highlight follows on the next scroll.
func (m *Model) rerender() {
	if !m.ready {
		return
	}
	m.doc.layout = Render(m.content, RenderOptions{
		Width:     m.viewport.Width,
		MinHeight: m.viewport.Height,
		Tab:       m.tab,
		Role:      m.typer.Text(),
		Styles:    m.styles,
	})
	m.viewport.SetContent(m.doc.layout.String())
	m.doc.offset = m.viewport.YOffset
}

// View renders the frame.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.navView())
	b.WriteByte('\n')
	b.WriteString(m.viewport.View())
	b.WriteByte('\n')
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) navView() string {
	active := m.Active()
	parts := []string{m.styles.Accent.Render(m.content.Profile.Initials)}
	for _, link := range portfolio.NavLinks() {
		style := m.styles.NavIdle
		if link.IsActive(active) {
			style = m.styles.NavActive
		}
		parts = append(parts, m.styles.Accent.Render(link.Number())+" "+style.Render(link.Label))
	}
	if m.content.Profile.ResumeURL != "" {
		parts = append(parts, m.styles.Accent.Render("[Resume]"))
	}
	return m.styles.Header.Width(m.width).Render(strings.Join(parts, "   "))
}
