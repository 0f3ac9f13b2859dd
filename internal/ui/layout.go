package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/choonghwanlee/folio/internal/portfolio"
	"github.com/choonghwanlee/folio/internal/tracker"
)

const minRenderWidth = 24

// RenderOptions control how content is laid out into rows.
type RenderOptions struct {
	Width int
	// MinHeight pads the hero and contact blocks, matching full-screen sections
	// on the web page so the last section can reach the top of the viewport.
	MinHeight int
	// Tab selects the experience entry shown.
	Tab int
	// Role is the partially typed hero role.
	Role   string
	Styles Styles
}

type block struct {
	section portfolio.Section
	start   int
	lines   []string
}

// Layout is the rendered document together with the row extent of every
// section block.
type Layout struct {
	blocks []block
	total  int
}

// Render lays out every section in document order.
func Render(content portfolio.Content, opts RenderOptions) Layout {
	if opts.Width < minRenderWidth {
		opts.Width = minRenderWidth
	}

	r := renderer{content: content, opts: opts, st: opts.Styles}
	var layout Layout
	for _, section := range portfolio.Sections {
		lines := r.section(section)
		layout.blocks = append(layout.blocks, block{section: section, start: layout.total, lines: lines})
		layout.total += len(lines)
	}
	return layout
}

// String joins every block into the viewport document.
func (l Layout) String() string {
	var parts []string
	for _, b := range l.blocks {
		parts = append(parts, b.lines...)
	}
	return strings.Join(parts, "\n")
}

// Lines returns the total number of rows.
func (l Layout) Lines() int {
	return l.total
}

// Top returns the first row of section.
func (l Layout) Top(section portfolio.Section) (int, bool) {
	for _, b := range l.blocks {
		if b.section == section {
			return b.start, true
		}
	}
	return 0, false
}

// Extent returns the document rows covered by section, bottom edge exclusive.
func (l Layout) Extent(section portfolio.Section) (tracker.Rect, bool) {
	for _, b := range l.blocks {
		if b.section == section {
			return tracker.Rect{Top: float64(b.start), Bottom: float64(b.start + len(b.lines))}, true
		}
	}
	return tracker.Rect{}, false
}

// Extents returns every section's extent keyed by section.
func (l Layout) Extents() map[portfolio.Section]tracker.Rect {
	out := make(map[portfolio.Section]tracker.Rect, len(l.blocks))
	for _, b := range l.blocks {
		out[b.section] = tracker.Rect{Top: float64(b.start), Bottom: float64(b.start + len(b.lines))}
	}
	return out
}

// Block returns the rendered rows of one section.
func (l Layout) Block(section portfolio.Section) string {
	for _, b := range l.blocks {
		if b.section == section {
			return strings.Join(b.lines, "\n")
		}
	}
	return ""
}

type renderer struct {
	content portfolio.Content
	opts    RenderOptions
	st      Styles
}

func (r renderer) section(section portfolio.Section) []string {
	switch section {
	case portfolio.SectionHome:
		return r.pad(r.hero())
	case portfolio.SectionAbout:
		return r.about()
	case portfolio.SectionExperience:
		return r.experience()
	case portfolio.SectionProjects:
		return r.projects()
	case portfolio.SectionContact:
		return r.pad(r.contact())
	default:
		return nil
	}
}

func (r renderer) pad(lines []string) []string {
	for len(lines) < r.opts.MinHeight {
		lines = append(lines, "")
	}
	return lines
}

func (r renderer) wrap(style lipgloss.Style, indent int, text string) []string {
	width := r.opts.Width - indent
	rendered := style.Width(width).Render(text)
	lines := strings.Split(rendered, "\n")
	if indent == 0 {
		return lines
	}
	prefix := strings.Repeat(" ", indent)
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return lines
}

func (r renderer) bullet(text string) []string {
	lines := r.wrap(r.st.Text, 2, text)
	marker := r.st.Accent.Render("▹")
	lines[0] = marker + " " + strings.TrimPrefix(lines[0], "  ")
	return lines
}

func (r renderer) heading(section portfolio.Section) []string {
	title := portfolio.Heading(section)
	number, label, _ := strings.Cut(title, " ")
	text := r.st.Accent.Render(number) + " " + r.st.Heading.Render(label)

	fill := r.opts.Width - runewidth.StringWidth(title) - 1
	if fill > 0 {
		text += " " + r.st.Rule.Render(strings.Repeat("─", fill))
	}
	return []string{"", text, ""}
}

func (r renderer) hero() []string {
	p := r.content.Profile
	lines := []string{
		"",
		r.st.Accent.Render(p.Greeting),
		r.st.Title.Render(p.Name),
		r.st.Title.Render("I am a ") + r.st.Accent.Render(r.opts.Role+"▌"),
		"",
	}
	if p.Tagline != "" {
		lines = append(lines, r.wrap(r.st.Text, 0, p.Tagline)...)
	}
	return lines
}

func (r renderer) about() []string {
	p := r.content.Profile
	lines := r.heading(portfolio.SectionAbout)
	for i, paragraph := range p.Bio {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, r.wrap(r.st.Text, 0, paragraph)...)
	}
	if len(p.Technologies) > 0 {
		lines = append(lines, "", r.st.Text.Render("Technologies I have been working with:"))
		lines = append(lines, r.columns(p.Technologies)...)
	}
	if p.Image != "" {
		lines = append(lines, "", r.st.Muted.Render("photo: "+p.Image))
	}
	return lines
}

// columns lays items out two per row, as the web page does.
func (r renderer) columns(items []string) []string {
	colWidth := r.opts.Width / 2
	var lines []string
	for i := 0; i < len(items); i += 2 {
		left := "▹ " + items[i]
		row := r.st.Accent.Render("▹") + " " + r.st.Text.Render(items[i])
		if i+1 < len(items) {
			gap := colWidth - runewidth.StringWidth(left)
			if gap < 2 {
				gap = 2
			}
			row += strings.Repeat(" ", gap) + r.st.Accent.Render("▹") + " " + r.st.Text.Render(items[i+1])
		}
		lines = append(lines, row)
	}
	return lines
}

func (r renderer) experience() []string {
	lines := r.heading(portfolio.SectionExperience)
	exps := r.content.Experiences
	if len(exps) == 0 {
		return append(lines, r.st.Muted.Render("(no experience listed)"))
	}

	tab := clampTab(r.opts.Tab, len(exps))
	tabs := make([]string, len(exps))
	for i, exp := range exps {
		if i == tab {
			tabs[i] = r.st.TabActive.Render("▌" + exp.Company)
			continue
		}
		tabs[i] = r.st.TabIdle.Render(" " + exp.Company)
	}
	lines = append(lines, strings.Join(tabs, "  "), "")

	exp := exps[tab]
	lines = append(lines,
		r.st.Title.Render(exp.Role+" ")+r.st.Accent.Render("@ "+exp.Company),
		r.st.Muted.Render(fmt.Sprintf("%s, %s", exp.Period, exp.Location)),
		"",
	)
	for _, item := range exp.Description {
		lines = append(lines, r.bullet(item)...)
	}
	return lines
}

func (r renderer) projects() []string {
	lines := r.heading(portfolio.SectionProjects)
	for i, project := range r.content.Projects {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, r.st.Title.Render(project.Title))
		lines = append(lines, r.wrap(r.st.Card.Inherit(r.st.Text), 0, project.Description)...)
		if len(project.Tags) > 0 {
			lines = append(lines, r.st.Muted.Render(strings.Join(project.Tags, "  ")))
		}
		if project.Links.GitHub != "" {
			lines = append(lines, r.st.Accent.Render("github ")+r.st.Text.Render(project.Links.GitHub))
		}
		if project.Links.Live != "" {
			lines = append(lines, r.st.Accent.Render("live   ")+r.st.Text.Render(project.Links.Live))
		}
	}
	return lines
}

func (r renderer) contact() []string {
	p := r.content.Profile
	lines := r.heading(portfolio.SectionContact)
	lines = append(lines, r.st.Title.Render("Get In Touch"), "")
	if p.ContactNote != "" {
		lines = append(lines, r.wrap(r.st.Text, 0, p.ContactNote)...)
		lines = append(lines, "")
	}
	if p.Email != "" {
		lines = append(lines, r.st.Accent.Render("Say Hello ")+r.st.Text.Render("mailto:"+p.Email))
	}
	if p.ResumeURL != "" {
		lines = append(lines, r.st.Accent.Render("Resume    ")+r.st.Text.Render(p.ResumeURL))
	}
	return lines
}

func clampTab(tab, n int) int {
	if n == 0 {
		return 0
	}
	tab %= n
	if tab < 0 {
		tab += n
	}
	return tab
}
