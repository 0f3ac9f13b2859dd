package ui

import (
	"strings"
	"testing"

	"github.com/choonghwanlee/folio/internal/portfolio"
)

func plainLayout(width, minHeight int) Layout {
	return Render(portfolio.Default(), RenderOptions{
		Width:     width,
		MinHeight: minHeight,
		Styles:    PlainStyles(),
	})
}

func TestRenderStacksSectionsInOrder(t *testing.T) {
	layout := plainLayout(80, 10)

	next := 0.0
	for _, section := range portfolio.Sections {
		extent, ok := layout.Extent(section)
		if !ok {
			t.Fatalf("Extent(%q) missing", section)
		}
		if extent.Top != next {
			t.Fatalf("Extent(%q).Top = %v, want %v", section, extent.Top, next)
		}
		if extent.Bottom <= extent.Top {
			t.Fatalf("Extent(%q) empty: %+v", section, extent)
		}
		next = extent.Bottom
	}
	if int(next) != layout.Lines() {
		t.Fatalf("Lines() = %d, want %v", layout.Lines(), next)
	}
	if got := strings.Count(layout.String(), "\n") + 1; got != layout.Lines() {
		t.Fatalf("String() has %d rows, want %d", got, layout.Lines())
	}
}

func TestRenderPadsHeroAndContact(t *testing.T) {
	layout := plainLayout(80, 40)
	for _, section := range []portfolio.Section{portfolio.SectionHome, portfolio.SectionContact} {
		extent, _ := layout.Extent(section)
		if extent.Bottom-extent.Top < 40 {
			t.Fatalf("%q height = %v, want >= 40", section, extent.Bottom-extent.Top)
		}
	}
}

func TestRenderSectionCopy(t *testing.T) {
	layout := plainLayout(80, 0)

	checks := map[portfolio.Section][]string{
		portfolio.SectionHome:       {"Hello World, my name is", "Jason Lee.", "I am a"},
		portfolio.SectionAbout:      {"01. About Me", "Technologies I have been working with:", "▹ PyTorch"},
		portfolio.SectionExperience: {"02. Where I Worked", "Software Engineer Intern", "@ Hotplate", "May - August 2023, San Francisco, CA"},
		portfolio.SectionProjects:   {"03. Some Things I Built", "Ganglion Medical", "https://github.com/choonghwanlee/llm_qa"},
		portfolio.SectionContact:    {"04. What is Next?", "Get In Touch", "mailto:cl491@duke.edu"},
	}
	for section, wants := range checks {
		block := layout.Block(section)
		for _, want := range wants {
			if !strings.Contains(block, want) {
				t.Fatalf("Block(%q) missing %q:\n%s", section, want, block)
			}
		}
	}
}

func TestRenderWrapsToWidth(t *testing.T) {
	narrow := plainLayout(30, 0)
	wide := plainLayout(80, 0)
	if narrow.Lines() <= wide.Lines() {
		t.Fatalf("narrow layout has %d rows, wide has %d; want more rows when narrow", narrow.Lines(), wide.Lines())
	}
}

func TestClampTab(t *testing.T) {
	tests := []struct{ tab, n, want int }{
		{0, 3, 0},
		{3, 3, 0},
		{-1, 3, 2},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := clampTab(tt.tab, tt.n); got != tt.want {
			t.Fatalf("clampTab(%d, %d) = %d, want %d", tt.tab, tt.n, got, tt.want)
		}
	}
}
