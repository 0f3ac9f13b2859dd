package portfolio

import (
	"fmt"
	"strings"
)

// Section identifies one of the fixed named regions of the page.
type Section string

const (
	SectionHome       Section = "home"
	SectionAbout      Section = "about"
	SectionExperience Section = "experience"
	SectionProjects   Section = "projects"
	SectionContact    Section = "contact"
)

// Sections is the fixed document order, which is also the tracker's scan priority.
var Sections = []Section{
	SectionHome,
	SectionAbout,
	SectionExperience,
	SectionProjects,
	SectionContact,
}

// String implements fmt.Stringer.
func (s Section) String() string {
	return string(s)
}

// Valid reports whether s is one of the fixed identifiers.
func (s Section) Valid() bool {
	for _, known := range Sections {
		if s == known {
			return true
		}
	}
	return false
}

// ParseSection resolves user input to a Section. Matching is case-insensitive
// and accepts the navigation label "work" for the projects section.
func ParseSection(input string) (Section, error) {
	value := strings.ToLower(strings.TrimSpace(input))
	if value == "work" {
		return SectionProjects, nil
	}
	section := Section(value)
	if !section.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSection, input)
	}
	return section, nil
}

// NavLink is one entry of the navigation bar.
type NavLink struct {
	Index  int
	Label  string
	Target Section
}

// Number renders the "01." style prefix shown before the label.
func (l NavLink) Number() string {
	return fmt.Sprintf("%02d.", l.Index)
}

// IsActive reports whether the link should be highlighted for active.
func (l NavLink) IsActive(active Section) bool {
	return l.Target == active
}

// NavLinks returns the navigation bar entries in display order. The hero has
// no link of its own.
func NavLinks() []NavLink {
	return []NavLink{
		{Index: 1, Label: "About", Target: SectionAbout},
		{Index: 2, Label: "Experience", Target: SectionExperience},
		{Index: 3, Label: "Work", Target: SectionProjects},
		{Index: 4, Label: "Contact", Target: SectionContact},
	}
}
