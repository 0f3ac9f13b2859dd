package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/choonghwanlee/folio/internal/portfolio"
)

func newSizedModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(portfolio.Default(), WithStyles(PlainStyles()))
	m.Init()
	t.Cleanup(m.Close)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func sendRune(t *testing.T, m Model, r rune) Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return updated.(Model)
}

func settle(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for i := 0; cmd != nil; i++ {
		if i > 2000 {
			t.Fatalf("scroll animation did not settle")
		}
		var updated tea.Model
		updated, cmd = m.Update(scrollFrameMsg{})
		m = updated.(Model)
	}
	return m
}

func TestModelStartsOnHome(t *testing.T) {
	m := newSizedModel(t)
	if got := m.Active(); got != portfolio.SectionHome {
		t.Fatalf("Active() = %q, want home", got)
	}
	if m.Offset() != 0 {
		t.Fatalf("Offset() = %d, want 0", m.Offset())
	}
}

func TestScrollingDownActivatesAboutAfterThreshold(t *testing.T) {
	m := newSizedModel(t)
	hero, ok := m.Layout().Extent(portfolio.SectionHome)
	if !ok {
		t.Fatalf("layout missing hero")
	}
	// Home stays active while its bottom edge is at or below the line.
	switchAt := int(hero.Bottom) - DefaultThreshold + 1

	for m.Offset() < switchAt-1 {
		m = sendRune(t, m, 'j')
		if m.Active() != portfolio.SectionHome {
			t.Fatalf("Active() = %q at offset %d, want home", m.Active(), m.Offset())
		}
	}
	m = sendRune(t, m, 'j')
	if m.Offset() != switchAt {
		t.Fatalf("Offset() = %d, want %d", m.Offset(), switchAt)
	}
	if got := m.Active(); got != portfolio.SectionAbout {
		t.Fatalf("Active() = %q at offset %d, want about", got, m.Offset())
	}
}

func TestNavKeysSmoothScrollToSection(t *testing.T) {
	tests := []struct {
		key  rune
		want portfolio.Section
	}{
		{key: '1', want: portfolio.SectionAbout},
		{key: '2', want: portfolio.SectionExperience},
		{key: '3', want: portfolio.SectionProjects},
		{key: '4', want: portfolio.SectionContact},
	}

	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			m := newSizedModel(t)
			updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{tt.key}})
			if cmd == nil {
				t.Fatalf("nav key returned no animation command")
			}
			m = settle(t, updated.(Model), cmd)

			top, _ := m.Layout().Top(tt.want)
			if m.Offset() != top {
				t.Fatalf("Offset() = %d, want section top %d", m.Offset(), top)
			}
			if got := m.Active(); got != tt.want {
				t.Fatalf("Active() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHomeKeyReturnsToTop(t *testing.T) {
	m := newSizedModel(t)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	m = settle(t, updated.(Model), cmd)

	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	m = settle(t, updated.(Model), cmd)
	if m.Offset() != 0 || m.Active() != portfolio.SectionHome {
		t.Fatalf("after g: offset %d active %q, want 0 home", m.Offset(), m.Active())
	}
}

func TestScrollAfterCloseDoesNotChangeActive(t *testing.T) {
	m := newSizedModel(t)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(Model)
	if cmd == nil {
		t.Fatalf("q returned no quit command")
	}
	if m.tracker.Attached() {
		t.Fatalf("tracker still attached after quit")
	}

	for i := 0; i < 40; i++ {
		m = sendRune(t, m, 'j')
	}
	if m.Offset() == 0 {
		t.Fatalf("viewport did not scroll")
	}
	if got := m.Active(); got != portfolio.SectionHome {
		t.Fatalf("Active() = %q after unmount, want home", got)
	}
}

func TestTabSwitchesExperience(t *testing.T) {
	m := newSizedModel(t)
	if !strings.Contains(m.Layout().Block(portfolio.SectionExperience), "@ Hotplate") {
		t.Fatalf("first tab not shown:\n%s", m.Layout().Block(portfolio.SectionExperience))
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	if !strings.Contains(m.Layout().Block(portfolio.SectionExperience), "@ Uizard") {
		t.Fatalf("tab did not advance:\n%s", m.Layout().Block(portfolio.SectionExperience))
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	updated, _ = updated.(Model).Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(Model)
	if !strings.Contains(m.Layout().Block(portfolio.SectionExperience), "@ Lane Crawford") {
		t.Fatalf("shift+tab did not wrap:\n%s", m.Layout().Block(portfolio.SectionExperience))
	}
}

func TestViewHighlightsActiveNavLink(t *testing.T) {
	m := NewModel(portfolio.Default())
	m.Init()
	t.Cleanup(m.Close)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)

	view := m.View()
	for _, link := range portfolio.NavLinks() {
		if !strings.Contains(view, link.Label) {
			t.Fatalf("view missing nav label %q", link.Label)
		}
	}
	if !strings.Contains(view, "Jason Lee.") {
		t.Fatalf("view missing hero name")
	}
}

func TestViewBeforeSize(t *testing.T) {
	m := NewModel(portfolio.Default())
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View() = %q before WindowSizeMsg", got)
	}
}

func TestFrameFitsNarrowTerminals(t *testing.T) {
	for _, width := range []int{40, 60, 80, 120} {
		m := NewModel(portfolio.Default())
		m.Init()
		t.Cleanup(m.Close)
		updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: 24})
		m = updated.(Model)

		view := m.View()
		if rows := strings.Count(view, "\n") + 1; rows > 24 {
			t.Fatalf("width %d: frame has %d rows, terminal has 24", width, rows)
		}
		if !strings.Contains(view, "01.") {
			t.Fatalf("width %d: nav row missing from frame:\n%s", width, view)
		}
	}
}

func TestScrollToRetargetsRunningAnimation(t *testing.T) {
	m := newSizedModel(t)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	if cmd == nil {
		t.Fatalf("nav key returned no animation command")
	}
	m = updated.(Model)

	// No frame has run yet, so the new target equals the current offset.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	m = settle(t, updated.(Model), cmd)

	if m.Offset() != 0 {
		t.Fatalf("Offset() = %d, want 0 after retarget", m.Offset())
	}
	if m.Active() != portfolio.SectionHome {
		t.Fatalf("Active() = %q, want home", m.Active())
	}
}

func TestViewportUsesHelpKeyBindings(t *testing.T) {
	m := newSizedModel(t)
	pairs := []struct {
		name          string
		viewport, own []string
	}{
		{"up", m.viewport.KeyMap.Up.Keys(), m.keys.Up.Keys()},
		{"down", m.viewport.KeyMap.Down.Keys(), m.keys.Down.Keys()},
		{"page up", m.viewport.KeyMap.PageUp.Keys(), m.keys.PageUp.Keys()},
		{"page down", m.viewport.KeyMap.PageDown.Keys(), m.keys.PageDn.Keys()},
	}
	for _, p := range pairs {
		if diff := cmp.Diff(p.own, p.viewport); diff != "" {
			t.Fatalf("%s bindings differ (-help +viewport):\n%s", p.name, diff)
		}
	}

	before := m.Offset()
	m = sendRune(t, m, 'f')
	if m.Offset() <= before {
		t.Fatalf("page down via f did not scroll: %d -> %d", before, m.Offset())
	}
}
