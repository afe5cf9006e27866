package page

import (
	"bytes"
	"encoding/json"
	"html"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RED1EYE/portfolio/internal/content"
	"github.com/RED1EYE/portfolio/internal/motion"
	"github.com/RED1EYE/portfolio/internal/ui"
)

const easeOut = "cubic-bezier(0, 0, 0.58, 1)"

func build(t *testing.T, state *ui.State) *View {
	t.Helper()
	v, err := Build(state, content.Default(), motion.DefaultCatalog(), Options{})
	require.NoError(t, err)
	return v
}

func render(t *testing.T, state *ui.State) string {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, build(t, state)))
	return html.UnescapeString(buf.String())
}

func TestBuildFreshPageIsHidden(t *testing.T) {
	v := build(t, nil)

	assert.False(t, v.Nav.Scrolled)
	assert.Equal(t, ui.NavResponsive, v.Nav.Mode)
	assert.True(t, v.Nav.ShowLinks())
	assert.True(t, v.Nav.ShowDrawer())
	assert.False(t, v.Nav.Drawer.Open)
	assert.False(t, v.Nav.Bar.Active)
	assert.False(t, v.About.Card.Active)
	assert.Equal(t, "opacity:0;transform:translate3d(0px,60px,0)", v.About.HeadingMotion.Style())
	assert.Equal(t, "/static/", v.AssetBase)
}

func TestBuildLiteralOrder(t *testing.T) {
	v := build(t, nil)
	p := content.Default()

	require.Len(t, v.Experience.Cards, len(p.Experience))
	for i, e := range p.Experience {
		assert.Equal(t, e.Company, v.Experience.Cards[i].Company)
	}
	require.Len(t, v.Projects.Cards, 4)
	assert.Equal(t, p.Projects[3].Title, v.Projects.Cards[3].Title)
	assert.Len(t, v.Projects.Cards[0].Tags, 7)
	assert.Len(t, v.Skills.Cards[2].Items, 4)
	assert.Len(t, v.About.Paragraphs, 3)
}

func TestBuildStaggerDelays(t *testing.T) {
	v := build(t, nil)

	for i, want := range []string{"0.2s", "0.3s", "0.4s"} {
		m := v.Skills.Cards[i].Motion
		assert.Equal(t, "skills-grid", m.Trigger)
		assert.Equal(t, "opacity 0.6s "+easeOut+" "+want+", transform 0.6s "+easeOut+" "+want, m.Enter)
	}
	assert.Equal(t, 900, v.Skills.Cards[1].Motion.Settle)

	items := v.Skills.Cards[0].Items
	assert.Equal(t, "opacity 0.3s "+easeOut+" 0s, transform 0.3s "+easeOut+" 0s", items[0].Motion.Enter)
	assert.Equal(t, "opacity 0.3s "+easeOut+" 0.3s, transform 0.3s "+easeOut+" 0.3s", items[3].Motion.Enter)
	assert.Empty(t, items[3].Motion.Trigger)

	assert.Equal(t, "opacity 0.3s "+easeOut+" 0.4s, transform 0.3s "+easeOut+" 0.4s", v.Nav.Links[4].Motion.Enter)
	assert.Equal(t, ui.LoadBlock, v.Nav.Links[4].Motion.Trigger)
	assert.Contains(t, v.Hero.NameMotion.Enter, "0.6s "+easeOut+" 0.2s")
	assert.Contains(t, v.Hero.Actions.Enter, easeOut+" 0.6s")
}

func TestBuildAmounts(t *testing.T) {
	v := build(t, nil)
	assert.Equal(t, 0.3, v.About.HeadingMotion.Amount)
	assert.Equal(t, 0.3, v.About.Card.Amount)
	assert.Equal(t, 0.2, v.Skills.Grid.Amount)
	assert.Equal(t, 0.2, v.Experience.List.Amount)
	assert.Equal(t, 0.1, v.Projects.Grid.Amount)
	assert.Equal(t, 0.3, v.Contact.Card.Amount)
	assert.Zero(t, v.Footer.Motion.Amount)
}

func TestBuildRevealFollowsState(t *testing.T) {
	state := ui.NewState(ui.Viewport{})
	state.Loaded()
	state.Reveals.Register("skills-grid", 0.2)
	state.Reveals.Observe("skills-grid", 0.5)

	v := build(t, state)
	assert.True(t, v.Nav.Bar.Active)
	assert.True(t, v.Hero.Title.Active)
	assert.True(t, v.Skills.Grid.Active)
	assert.True(t, v.Skills.Cards[0].Motion.Active, "children follow their trigger")
	assert.False(t, v.Projects.Grid.Active)
	assert.Equal(t, "opacity:1;transform:translate3d(0px,0px,0);"+motion.SkillHover.Style(), v.Skills.Cards[0].Motion.Style())

	state.Reveals.RevealAll()
	v = build(t, state)
	assert.True(t, v.Footer.Motion.Active)
	assert.True(t, v.Contact.Channels[2].Motion.Active)
}

func TestBuildDrawer(t *testing.T) {
	state := ui.NewState(ui.Viewport{Width: 500})
	v := build(t, state)
	assert.Equal(t, ui.NavMobile, v.Nav.Mode)
	assert.False(t, v.Nav.ShowLinks())
	assert.Equal(t, "transform:translate3d(100%,0px,0)", v.Nav.Drawer.Panel.Style())

	state.Menu.Toggle()
	v = build(t, state)
	assert.True(t, v.Nav.Drawer.Open)
	assert.Equal(t, motion.Open, v.Nav.Drawer.Panel.State())
	assert.Equal(t, "transform:translate3d(0%,0px,0)", v.Nav.Drawer.Panel.Style())
	assert.Contains(t, v.Nav.Drawer.Panel.Enter, "linear(")

	item := v.Nav.Drawer.Items[2].Motion
	assert.Equal(t, "opacity:0;transform:translate3d(50px,0px,0)", item.From)
	assert.Equal(t, "opacity 0.3s "+easeOut+" 0.2s, transform 0.3s "+easeOut+" 0.2s", item.Enter)
	assert.Equal(t, "opacity 0.3s "+easeOut+" 0s, transform 0.3s "+easeOut+" 0s", item.Leave)

	state.Viewport.Width = 1280
	v = build(t, state)
	assert.False(t, v.Nav.ShowDrawer())
}

func TestBuildParallaxAndCursor(t *testing.T) {
	state := ui.NewState(ui.Viewport{Width: 1280})
	state.HandleScroll(ui.ScrollEvent{Offset: 400, Progress: 0.15})
	state.HandlePointerMove(ui.PointerEvent{X: 300, Y: 200, Target: ui.ParsePath("a")})

	v := build(t, state)
	assert.True(t, v.Nav.Scrolled)
	assert.Equal(t, "opacity:0.5;transform:translate3d(0px,50px,0)", string(v.Hero.Frame))
	assert.True(t, v.Cursor.Visible)
	assert.True(t, strings.HasPrefix(string(v.Cursor.Style), "translate:280px 180px;scale:2;transition:translate "))

	state.Viewport.Width = 700
	v = build(t, state)
	assert.Equal(t, "opacity:1;transform:translate3d(0px,0px,0)", string(v.Hero.Frame))
	assert.False(t, v.Cursor.Visible)
}

func TestBuildLogoPlaceholder(t *testing.T) {
	p := content.Default()
	p.Experience[1].Logo = ""
	v, err := Build(nil, p, motion.DefaultCatalog(), Options{AssetBase: "static/"})
	require.NoError(t, err)
	assert.Equal(t, "static/placeholder.svg", v.Experience.Cards[1].Logo)
	assert.Equal(t, p.Experience[0].Logo, v.Experience.Cards[0].Logo)
	assert.Equal(t, "static/", v.AssetBase)

	v, err = Build(nil, p, motion.DefaultCatalog(), Options{})
	require.NoError(t, err)
	assert.Equal(t, "/static/placeholder.svg", v.Experience.Cards[1].Logo)

	v, err = Build(nil, p, motion.DefaultCatalog(), Options{PlaceholderURL: "https://cdn.example.com/logo.svg"})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/logo.svg", v.Experience.Cards[1].Logo)
}

func TestBuildUnknownVariant(t *testing.T) {
	catalog := motion.DefaultCatalog()
	delete(catalog, motion.TagPop)
	_, err := Build(nil, content.Default(), catalog, Options{})
	assert.ErrorContains(t, err, "tagPop")
}

func TestClientConfig(t *testing.T) {
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(build(t, nil).Config), &got))
	assert.Equal(t, 50.0, got["scrollThreshold"])
	assert.Equal(t, 768.0, got["mobileBreakpoint"])

	cursor := got["cursor"].(map[string]any)
	assert.Equal(t, 10.0, cursor["offset"])
	assert.Equal(t, 20.0, cursor["hoverOffset"])
	assert.Equal(t, 1024.0, cursor["breakpoint"])
}

func TestMotionAttrs(t *testing.T) {
	m := Motion{ID: "about-card", Amount: 0.3, From: "opacity:0", To: "opacity:1", Enter: "opacity 0.5s linear 0s", Settle: 500}
	assert.Equal(t,
		`data-reveal="about-card" data-amount="0.3" data-state="hidden" data-from="opacity:0" data-to="opacity:1" data-enter="opacity 0.5s linear 0s" data-settle="500" style="opacity:0"`,
		string(m.Attrs()))

	m = Motion{ID: "skill-0", Trigger: "skills-grid", Active: true, To: "opacity:1", Extra: "--hover-y:-5px"}
	attrs := string(m.Attrs())
	assert.Contains(t, attrs, `data-trigger="skills-grid"`)
	assert.NotContains(t, attrs, "data-amount")
	assert.Contains(t, attrs, `data-state="visible"`)
	assert.Contains(t, attrs, `style="opacity:1;--hover-y:-5px"`)

	m = Motion{ID: "drawer", Toggle: true, From: `a"b`, Leave: "x"}
	attrs = string(m.Attrs())
	assert.Contains(t, attrs, `data-toggle="drawer" data-leave="x" data-state="closed"`)
	assert.Contains(t, attrs, `data-from="a&#34;b"`)
}

func TestIcon(t *testing.T) {
	svg := string(Icon(content.IconMail, 28))
	assert.True(t, strings.HasPrefix(svg, "<svg "))
	assert.Contains(t, svg, `width="28"`)
	assert.Contains(t, svg, "icon-mail")
	assert.Empty(t, Icon("unknown", 24))
	for _, name := range []content.Icon{
		content.IconCode, content.IconServer, content.IconPalette, content.IconMail, content.IconLinkedin,
		content.IconGithub, content.IconArrowRight, content.IconExternalLink, content.IconMenu, content.IconClose,
	} {
		assert.NotEmpty(t, Icon(name, 24), name)
	}
}

func TestRenderSectionOrder(t *testing.T) {
	doc := render(t, nil)

	last := -1
	for _, marker := range []string{`<nav class="nav"`, `class="hero"`, `id="about"`, `id="skills"`, `id="experience"`, `id="projects"`, `id="contact"`, `<footer`} {
		i := strings.Index(doc, marker)
		require.NotEqual(t, -1, i, marker)
		assert.Greater(t, i, last, marker)
		last = i
	}
}

func TestRenderLiterals(t *testing.T) {
	doc := render(t, nil)

	assert.Contains(t, doc, "<title>Faizan Ali Sayed | Portfolio</title>")
	assert.Contains(t, doc, `href="mailto:faizanalifas@gmail.com"`)
	assert.Contains(t, doc, "<p>faizanalifas@gmail.com</p>")
	assert.Contains(t, doc, "Skills & Technologies")
	assert.Contains(t, doc, "© 2024 Faizan. All rights reserved.")
	assert.Contains(t, doc, `Developed "Sahas," an AI-powered emergency chatbot`)

	for _, a := range []string{`href="#about"`, `href="#skills"`, `href="#experience"`, `href="#projects"`, `href="#contact"`} {
		assert.Contains(t, doc, a)
	}
}

func TestRenderExternalLinks(t *testing.T) {
	doc := render(t, nil)

	assert.Contains(t, doc, `href="https://github.com/RED1EYE" target="_blank" rel="noopener noreferrer"`)
	assert.Contains(t, doc, `href="https://redeye-fribble.onrender.com/" target="_blank" rel="noopener noreferrer"`)
	assert.NotContains(t, doc, `href="mailto:faizanalifas@gmail.com" target`)
	assert.NotContains(t, doc, `href="#contact" target`)
}

func TestRenderStates(t *testing.T) {
	doc := render(t, nil)
	assert.Contains(t, doc, `data-reveal="footer" data-amount="0" data-state="hidden"`)
	assert.Contains(t, doc, `aria-expanded="false"`)
	assert.Regexp(t, `id="drawer" data-toggle="drawer"[^>]* hidden>`, doc)
	assert.Contains(t, doc, `class="cursor-follower"`)

	state := ui.NewState(ui.Viewport{Width: 500})
	state.Loaded()
	state.Menu.Toggle()
	state.HandleScroll(ui.ScrollEvent{Offset: 51})
	doc = render(t, state)
	assert.Contains(t, doc, `<nav class="nav nav--scrolled"`)
	assert.Contains(t, doc, `aria-expanded="true"`)
	assert.NotRegexp(t, `id="drawer"[^>]* hidden>`, doc)
	assert.NotContains(t, doc, `class="nav-links"`)
	assert.NotContains(t, doc, `class="cursor-follower"`)
	assert.Contains(t, doc, `data-reveal="hero-title" data-trigger="load" data-state="visible"`)
}

func TestRenderConfigScript(t *testing.T) {
	doc := render(t, nil)
	start := strings.Index(doc, `<script id="page-config" type="application/json">`)
	require.NotEqual(t, -1, start)
	assert.Contains(t, doc[start:], `{"scrollThreshold":50,`)
}

func TestStaticAssets(t *testing.T) {
	for _, name := range []string{"style.css", "app.js", "placeholder.svg"} {
		data, err := fs.ReadFile(Static(), name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, data, name)
	}
}
