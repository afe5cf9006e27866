package content

// Icon identifies a glyph from the page's icon set.
type Icon string

const (
	IconCode         Icon = "code"
	IconServer       Icon = "server"
	IconPalette      Icon = "palette"
	IconMail         Icon = "mail"
	IconLinkedin     Icon = "linkedin"
	IconGithub       Icon = "github"
	IconArrowRight   Icon = "arrow-right"
	IconExternalLink Icon = "external-link"
	IconMenu         Icon = "menu"
	IconClose        Icon = "x"
)

// Section anchors, in page order after the hero.
const (
	SectionAbout      = "about"
	SectionSkills     = "skills"
	SectionExperience = "experience"
	SectionProjects   = "projects"
	SectionContact    = "contact"
)

// Sections lists the anchored sections in render order.
var Sections = []string{SectionAbout, SectionSkills, SectionExperience, SectionProjects, SectionContact}

// SkillCategory groups skills under a heading.
type SkillCategory struct {
	Title  string   `json:"title" yaml:"title"`
	Skills []string `json:"skills" yaml:"skills"`
	Icon   Icon     `json:"icon" yaml:"icon"`
}

// ExperienceEntry is one position held. Period is free text.
type ExperienceEntry struct {
	Company     string `json:"company" yaml:"company"`
	Role        string `json:"role" yaml:"role"`
	Period      string `json:"period" yaml:"period"`
	Description string `json:"description" yaml:"description"`
	Logo        string `json:"logo" yaml:"logo"`
}

// ProjectEntry is a showcased project.
type ProjectEntry struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Tags        []string `json:"tags" yaml:"tags"`
	Link        string   `json:"link" yaml:"link"`
}

// ContactChannel is a way to reach the owner.
type ContactChannel struct {
	Icon  Icon   `json:"icon" yaml:"icon"`
	Title string `json:"title" yaml:"title"`
	Value string `json:"value" yaml:"value"`
	Href  string `json:"href" yaml:"href"`
}

// NavItem is a navigation link to an in-page section.
type NavItem struct {
	Label  string `json:"label" yaml:"label"`
	Anchor string `json:"anchor" yaml:"anchor"`
}

// Href is the in-page link target.
func (n NavItem) Href() string {
	return "#" + n.Anchor
}

// Action is a call-to-action button.
type Action struct {
	Label   string `json:"label" yaml:"label"`
	Href    string `json:"href" yaml:"href"`
	Primary bool   `json:"primary,omitempty" yaml:"primary,omitempty"`
	Icon    Icon   `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// Image is a remotely hosted picture.
type Image struct {
	URL string `json:"url" yaml:"url"`
	Alt string `json:"alt" yaml:"alt"`
}

// Hero is the landing block.
type Hero struct {
	Name    string   `json:"name" yaml:"name"`
	Tagline string   `json:"tagline" yaml:"tagline"`
	Actions []Action `json:"actions" yaml:"actions"`
}

// About is the biography block. Paragraphs are markdown.
type About struct {
	Heading    string   `json:"heading" yaml:"heading"`
	Paragraphs []string `json:"paragraphs" yaml:"paragraphs"`
	Photo      Image    `json:"photo" yaml:"photo"`
}

// Contact is the closing block.
type Contact struct {
	Heading  string           `json:"heading" yaml:"heading"`
	Blurb    string           `json:"blurb" yaml:"blurb"`
	Channels []ContactChannel `json:"channels" yaml:"channels"`
	Actions  []Action         `json:"actions" yaml:"actions"`
}

// Headings titles the list sections.
type Headings struct {
	Skills     string `json:"skills" yaml:"skills"`
	Experience string `json:"experience" yaml:"experience"`
	Projects   string `json:"projects" yaml:"projects"`
}

// Portfolio is the complete static content of the page.
type Portfolio struct {
	Title      string            `json:"title" yaml:"title"`
	Brand      string            `json:"brand" yaml:"brand"`
	Nav        []NavItem         `json:"nav" yaml:"nav"`
	Hero       Hero              `json:"hero" yaml:"hero"`
	About      About             `json:"about" yaml:"about"`
	Headings   Headings          `json:"headings" yaml:"headings"`
	Skills     []SkillCategory   `json:"skills" yaml:"skills"`
	Experience []ExperienceEntry `json:"experience" yaml:"experience"`
	Projects   []ProjectEntry    `json:"projects" yaml:"projects"`
	Contact    Contact           `json:"contact" yaml:"contact"`
	Footer     string            `json:"footer" yaml:"footer"`
}
