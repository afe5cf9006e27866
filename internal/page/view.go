// Package page builds the rendered portfolio document from content, the
// transition catalog and a UI state.
package page

import (
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/RED1EYE/portfolio/internal/content"
	"github.com/RED1EYE/portfolio/internal/motion"
	"github.com/RED1EYE/portfolio/internal/ui"
)

// Options control how the document references its assets.
type Options struct {
	// AssetBase prefixes the stylesheet and script URLs. Defaults to
	// "/static/".
	AssetBase string
	// PlaceholderURL replaces empty experience logos. Defaults to the
	// placeholder under AssetBase.
	PlaceholderURL string
}

// PlaceholderAsset is the embedded logo placeholder.
const PlaceholderAsset = "placeholder.svg"

// View is everything the page template needs.
type View struct {
	Title     string
	AssetBase string
	Config    template.JS

	Cursor     Cursor
	Backdrop   []template.CSS
	Nav        Nav
	Hero       Hero
	About      About
	Skills     Skills
	Experience Experience
	Projects   Projects
	Contact    Contact
	Footer     Footer
}

// Cursor is the pointer follower.
type Cursor struct {
	Visible bool
	Style   template.CSS
}

// Link is a navigation anchor.
type Link struct {
	Label  string
	Href   string
	Motion Motion
}

// Button is a call to action.
type Button struct {
	Label    string
	Href     string
	Primary  bool
	External bool
	Icon     content.Icon
	Hover    template.CSS
}

type Nav struct {
	Brand      string
	BrandHover template.CSS
	Scrolled   bool
	Mode       ui.NavMode
	Bar        Motion
	Links      []Link
	Drawer     Drawer
}

// ShowLinks reports whether the desktop links are rendered.
func (n Nav) ShowLinks() bool { return n.Mode != ui.NavMobile }

// ShowDrawer reports whether the drawer and its toggle are rendered.
func (n Nav) ShowDrawer() bool { return n.Mode != ui.NavDesktop }

type Drawer struct {
	Open  bool
	Panel Motion
	Items []Link
}

type Hero struct {
	Name    string
	Tagline string
	Buttons []Button
	// Frame is the scroll-linked parallax offset of the hero content.
	Frame  template.CSS
	Pulses []template.CSS

	Title         Motion
	NameMotion    Motion
	TaglineMotion Motion
	Actions       Motion
}

type Paragraph struct {
	HTML   template.HTML
	Motion Motion
}

type About struct {
	Heading    string
	Paragraphs []Paragraph
	PhotoURL   string
	PhotoAlt   string
	PhotoHover template.CSS

	HeadingMotion Motion
	Card          Motion
	Text          Motion
	Photo         Motion
}

// Item is a short animated label: a skill or a tag.
type Item struct {
	Label  string
	Motion Motion
}

type SkillCard struct {
	Title  string
	Icon   content.Icon
	Items  []Item
	Motion Motion
}

type Skills struct {
	Heading       string
	HeadingMotion Motion
	Grid          Motion
	Cards         []SkillCard
}

type ExperienceCard struct {
	Company     string
	Role        string
	Period      string
	Description string
	Logo        string

	Motion            Motion
	CompanyMotion     Motion
	DescriptionMotion Motion
}

type Experience struct {
	Heading       string
	HeadingMotion Motion
	List          Motion
	Cards         []ExperienceCard
}

type ProjectCard struct {
	Title       string
	Description string
	Link        string
	External    bool
	Tags        []Item
	LinkHover   template.CSS

	Motion            Motion
	TitleMotion       Motion
	DescriptionMotion Motion
	TagsMotion        Motion
}

type Projects struct {
	Heading       string
	HeadingMotion Motion
	Grid          Motion
	Cards         []ProjectCard
}

type Channel struct {
	Icon     content.Icon
	Title    string
	Value    string
	Href     string
	External bool
	Motion   Motion
}

type Contact struct {
	Heading  string
	Blurb    string
	Channels []Channel
	Buttons  []Button

	Card          Motion
	HeadingMotion Motion
	BlurbMotion   Motion
	Grid          Motion
	Actions       Motion
}

type Footer struct {
	Text   string
	Motion Motion
}

// ClientConfig is handed to the client script as JSON.
type ClientConfig struct {
	ScrollThreshold  float64         `json:"scrollThreshold"`
	MobileBreakpoint float64         `json:"mobileBreakpoint"`
	Parallax         ui.ParallaxSpec `json:"parallax"`
	Cursor           CursorConfig    `json:"cursor"`
}

type CursorConfig struct {
	Offset      float64 `json:"offset"`
	HoverOffset float64 `json:"hoverOffset"`
	HoverScale  float64 `json:"hoverScale"`
	Breakpoint  float64 `json:"breakpoint"`
	Transition  string  `json:"transition"`
}

// NewClientConfig describes the live effects for the client script.
func NewClientConfig() ClientConfig {
	c := ui.CursorFollower
	return ClientConfig{
		ScrollThreshold:  ui.ScrollThreshold,
		MobileBreakpoint: ui.MobileBreakpoint,
		Parallax:         ui.HeroParallax,
		Cursor: CursorConfig{
			Offset:      c.Offset,
			HoverOffset: c.HoverOffset,
			HoverScale:  c.HoverScale,
			Breakpoint:  c.Breakpoint,
			Transition:  c.CSS(),
		},
	}
}

// Build maps content and state to a View. Sections keep their fixed order
// and every list keeps its literal order.
func Build(state *ui.State, p *content.Portfolio, catalog motion.Catalog, opts Options) (*View, error) {
	if state == nil {
		state = ui.NewState(ui.Viewport{})
	}
	if opts.AssetBase == "" {
		opts.AssetBase = "/static/"
	}
	if opts.PlaceholderURL == "" {
		opts.PlaceholderURL = opts.AssetBase + PlaceholderAsset
	}

	cfg, err := json.Marshal(NewClientConfig())
	if err != nil {
		return nil, fmt.Errorf("encode client config: %w", err)
	}

	b := &builder{state: state, catalog: catalog, placeholder: opts.PlaceholderURL}
	v := &View{
		Title:     p.Title,
		AssetBase: opts.AssetBase,
		Config:    template.JS(cfg),
		Cursor:    b.cursor(),
		Nav:       b.nav(p),
		Hero:      b.hero(p),
	}
	for _, pulse := range motion.BackdropPulses {
		v.Backdrop = append(v.Backdrop, template.CSS(pulse.Style()))
	}

	about, err := b.about(p)
	if err != nil {
		return nil, err
	}
	v.About = about
	v.Skills = b.skills(p)
	v.Experience = b.experience(p)
	v.Projects = b.projects(p)
	v.Contact = b.contact(p)
	v.Footer = Footer{
		Text:   p.Footer,
		Motion: b.reveal(block{id: "footer", variant: motion.FadeInSlow}),
	}

	if b.err != nil {
		return nil, fmt.Errorf("build page: %w", b.err)
	}
	return v, nil
}

func (b *builder) cursor() Cursor {
	c := ui.CursorFollower.At(b.state)
	return Cursor{
		Visible: c.Visible,
		Style:   template.CSS(c.Style() + ";transition:" + ui.CursorFollower.CSS()),
	}
}

// stagger is the orchestration of a container variant.
func (b *builder) stagger(variant string) motion.Transition {
	return b.variants(variant).Transition(motion.Visible, 0)
}

func (b *builder) nav(p *content.Portfolio) Nav {
	open := b.state.Menu.IsOpen()
	n := Nav{
		Brand:      p.Brand,
		BrandHover: template.CSS(motion.ButtonHover.Style()),
		Scrolled:   b.state.Scrolled,
		Mode:       ui.NavModeFor(b.state.Viewport.Width),
		Bar:        b.reveal(block{id: "nav", variant: motion.NavBar, trigger: ui.LoadBlock}),
		Drawer: Drawer{
			Open:  open,
			Panel: b.toggle("drawer", motion.MobileMenu, 0, open),
		},
	}
	for i, item := range p.Nav {
		n.Links = append(n.Links, Link{
			Label: item.Label,
			Href:  item.Href(),
			Motion: b.reveal(block{
				id:      fmt.Sprintf("nav-link-%d", i),
				variant: motion.NavItem,
				trigger: ui.LoadBlock,
				index:   i,
			}),
		})
		n.Drawer.Items = append(n.Drawer.Items, Link{
			Label:  item.Label,
			Href:   item.Href(),
			Motion: b.toggle(fmt.Sprintf("drawer-item-%d", i), motion.MenuItem, i, open),
		})
	}
	return n
}

func (b *builder) hero(p *content.Portfolio) Hero {
	frame := ui.HeroParallax.At(b.state.Progress, b.state.Viewport.Width)
	h := Hero{
		Name:    p.Hero.Name,
		Tagline: p.Hero.Tagline,
		Buttons: buttons(p.Hero.Actions),
		Frame:   template.CSS(frame.Style()),

		Title:         b.reveal(block{id: "hero-title", variant: motion.HeroTitle, trigger: ui.LoadBlock}),
		NameMotion:    b.reveal(block{id: "hero-name", variant: motion.HeroName, trigger: ui.LoadBlock}),
		TaglineMotion: b.reveal(block{id: "hero-tagline", variant: motion.HeroLine, trigger: ui.LoadBlock, delay: 0.4}),
		Actions:       b.reveal(block{id: "hero-actions", variant: motion.HeroLine, trigger: ui.LoadBlock, delay: 0.6}),
	}
	for _, pulse := range motion.HeroPulses {
		h.Pulses = append(h.Pulses, template.CSS(pulse.Style()))
	}
	return h
}

func (b *builder) heading(section string) Motion {
	return b.reveal(block{id: section + "-heading", variant: motion.FadeInUp, amount: 0.3})
}

func (b *builder) about(p *content.Portfolio) (About, error) {
	paras, err := p.AboutHTML()
	if err != nil {
		return About{}, err
	}

	a := About{
		Heading:    p.About.Heading,
		PhotoURL:   p.About.Photo.URL,
		PhotoAlt:   p.About.Photo.Alt,
		PhotoHover: template.CSS(motion.PhotoHover.Style()),

		HeadingMotion: b.heading(content.SectionAbout),
		Card:          b.reveal(block{id: "about-card", variant: motion.ScaleIn, amount: 0.3}),
		Text:          b.reveal(block{id: "about-text", variant: motion.StaggerContainer}),
		Photo:         b.reveal(block{id: "about-photo", variant: motion.SlideInRight, extra: motion.PhotoHover.Style()}),
	}
	st := b.stagger(motion.StaggerContainer)
	for i, h := range paras {
		a.Paragraphs = append(a.Paragraphs, Paragraph{
			HTML: h,
			Motion: b.reveal(block{
				id:      fmt.Sprintf("about-paragraph-%d", i),
				variant: motion.FadeInUp,
				trigger: "about-text",
				delay:   st.ChildDelay(i),
			}),
		})
	}
	return a, nil
}

func (b *builder) skills(p *content.Portfolio) Skills {
	s := Skills{
		Heading:       p.Headings.Skills,
		HeadingMotion: b.heading(content.SectionSkills),
		Grid:          b.reveal(block{id: "skills-grid", variant: motion.StaggerContainer, amount: 0.2}),
	}
	st := b.stagger(motion.StaggerContainer)
	for i, cat := range p.Skills {
		card := SkillCard{
			Title: cat.Title,
			Icon:  cat.Icon,
			Motion: b.reveal(block{
				id:      fmt.Sprintf("skill-%d", i),
				variant: motion.FadeInUp,
				trigger: "skills-grid",
				delay:   st.ChildDelay(i),
				extra:   motion.SkillHover.Style(),
			}),
		}
		for j, skill := range cat.Skills {
			card.Items = append(card.Items, Item{
				Label: skill,
				Motion: b.reveal(block{
					id:      fmt.Sprintf("skill-%d-item-%d", i, j),
					variant: motion.SkillItem,
					index:   j,
				}),
			})
		}
		s.Cards = append(s.Cards, card)
	}
	return s
}

func (b *builder) experience(p *content.Portfolio) Experience {
	e := Experience{
		Heading:       p.Headings.Experience,
		HeadingMotion: b.heading(content.SectionExperience),
		List:          b.reveal(block{id: "experience-list", variant: motion.StaggerContainer, amount: 0.2}),
	}
	st := b.stagger(motion.StaggerContainer)
	for i, entry := range p.Experience {
		id := fmt.Sprintf("experience-%d", i)
		e.Cards = append(e.Cards, ExperienceCard{
			Company:     entry.Company,
			Role:        entry.Role,
			Period:      entry.Period,
			Description: entry.Description,
			Logo:        content.LogoOrPlaceholder(entry.Logo, b.placeholder),

			Motion: b.reveal(block{
				id:      id,
				variant: motion.FadeInUp,
				trigger: "experience-list",
				delay:   st.ChildDelay(i),
				extra:   motion.ExperienceHover.Style(),
			}),
			CompanyMotion:     b.reveal(block{id: id + "-company", variant: motion.SlideInShort, delay: 0.2}),
			DescriptionMotion: b.reveal(block{id: id + "-description", variant: motion.FadeIn, delay: 0.4}),
		})
	}
	return e
}

func (b *builder) projects(p *content.Portfolio) Projects {
	out := Projects{
		Heading:       p.Headings.Projects,
		HeadingMotion: b.heading(content.SectionProjects),
		Grid:          b.reveal(block{id: "projects-grid", variant: motion.StaggerContainer, amount: 0.1}),
	}
	st := b.stagger(motion.StaggerContainer)
	for i, pr := range p.Projects {
		id := fmt.Sprintf("project-%d", i)
		card := ProjectCard{
			Title:       pr.Title,
			Description: pr.Description,
			Link:        pr.Link,
			External:    content.IsExternal(pr.Link),
			LinkHover:   template.CSS(motion.LinkHover.Style()),

			Motion: b.reveal(block{
				id:      id,
				variant: motion.FadeInUp,
				trigger: "projects-grid",
				delay:   st.ChildDelay(i),
				extra:   motion.ProjectHover.Style(),
			}),
			TitleMotion:       b.reveal(block{id: id + "-title", variant: motion.RiseIn, delay: 0.1}),
			DescriptionMotion: b.reveal(block{id: id + "-description", variant: motion.FadeIn, delay: 0.2}),
			TagsMotion:        b.reveal(block{id: id + "-tags", variant: motion.StaggerContainer}),
		}
		for k, tag := range pr.Tags {
			card.Tags = append(card.Tags, Item{
				Label: tag,
				Motion: b.reveal(block{
					id:      fmt.Sprintf("%s-tag-%d", id, k),
					variant: motion.TagPop,
					trigger: id + "-tags",
					delay:   st.ChildDelay(k),
				}),
			})
		}
		out.Cards = append(out.Cards, card)
	}
	return out
}

func (b *builder) contact(p *content.Portfolio) Contact {
	const card = "contact-card"
	c := Contact{
		Heading: p.Contact.Heading,
		Blurb:   p.Contact.Blurb,
		Buttons: buttons(p.Contact.Actions),

		Card:          b.reveal(block{id: card, variant: motion.ScaleIn, amount: 0.3}),
		HeadingMotion: b.reveal(block{id: "contact-heading", variant: motion.FadeInUp, trigger: card}),
		BlurbMotion:   b.reveal(block{id: "contact-blurb", variant: motion.FadeInUp, trigger: card}),
		Grid:          b.reveal(block{id: "contact-grid", variant: motion.StaggerContainer, trigger: card}),
		Actions:       b.reveal(block{id: "contact-actions", variant: motion.HeroLine, delay: 0.4}),
	}
	st := b.stagger(motion.StaggerContainer)
	for i, ch := range p.Contact.Channels {
		c.Channels = append(c.Channels, Channel{
			Icon:     ch.Icon,
			Title:    ch.Title,
			Value:    ch.Value,
			Href:     ch.Href,
			External: content.IsExternal(ch.Href),
			Motion: b.reveal(block{
				id:      fmt.Sprintf("contact-%d", i),
				variant: motion.FadeInUp,
				trigger: card,
				delay:   st.ChildDelay(i),
				extra:   motion.ContactHover.Style(),
			}),
		})
	}
	return c
}

func buttons(actions []content.Action) []Button {
	out := make([]Button, 0, len(actions))
	for _, a := range actions {
		out = append(out, Button{
			Label:    a.Label,
			Href:     a.Href,
			Primary:  a.Primary,
			External: content.IsExternal(a.Href),
			Icon:     a.Icon,
			Hover:    template.CSS(motion.ButtonHover.Style()),
		})
	}
	return out
}
