package portfolio

// Profile carries the hero, about and contact copy.
type Profile struct {
	Initials     string   `yaml:"initials" json:"initials"`
	Name         string   `yaml:"name" json:"name"`
	Greeting     string   `yaml:"greeting" json:"greeting"`
	Roles        []string `yaml:"roles" json:"roles"`
	Tagline      string   `yaml:"tagline" json:"tagline"`
	Bio          []string `yaml:"bio" json:"bio"`
	Technologies []string `yaml:"technologies" json:"technologies"`
	Image        string   `yaml:"image" json:"image"`
	ResumeURL    string   `yaml:"resume_url" json:"resume_url"`
	Email        string   `yaml:"email" json:"email"`
	ContactNote  string   `yaml:"contact_note" json:"contact_note"`
}

// Experience is one tab of the work history.
type Experience struct {
	Company     string   `yaml:"company" json:"company"`
	Role        string   `yaml:"role" json:"role"`
	Period      string   `yaml:"period" json:"period"`
	Location    string   `yaml:"location" json:"location"`
	Description []string `yaml:"description" json:"description"`
}

// Links holds the optional outbound URLs of a project.
type Links struct {
	GitHub string `yaml:"github,omitempty" json:"github,omitempty"`
	Live   string `yaml:"live,omitempty" json:"live,omitempty"`
}

// Project is one showcase entry.
type Project struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Image       string   `yaml:"image" json:"image"`
	Tags        []string `yaml:"tags" json:"tags"`
	Links       Links    `yaml:"links" json:"links"`
}

// Content is everything rendered on the page.
type Content struct {
	Profile     Profile      `yaml:"profile" json:"profile"`
	Experiences []Experience `yaml:"experiences" json:"experiences"`
	Projects    []Project    `yaml:"projects" json:"projects"`
}

// Heading returns the numbered title shown above a section. The hero has none.
func Heading(section Section) string {
	switch section {
	case SectionAbout:
		return "01. About Me"
	case SectionExperience:
		return "02. Where I Worked"
	case SectionProjects:
		return "03. Some Things I Built"
	case SectionContact:
		return "04. What is Next?"
	default:
		return ""
	}
}
