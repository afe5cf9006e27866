package content

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCounts(t *testing.T) {
	p := Default()
	assert.Len(t, p.Skills, 3)
	assert.Len(t, p.Experience, 2)
	assert.Len(t, p.Projects, 4)
	assert.Len(t, p.Contact.Channels, 3)
	assert.NoError(t, p.Validate())
}

func TestDefaultLiterals(t *testing.T) {
	p := Default()

	email := p.Contact.Channels[0]
	assert.Equal(t, ContactChannel{
		Icon:  IconMail,
		Title: "Email",
		Value: "faizanalifas@gmail.com",
		Href:  "mailto:faizanalifas@gmail.com",
	}, email)

	assert.Equal(t, "Languages", p.Skills[0].Title)
	assert.Equal(t, []string{"C", "C++", "Java", "Javascript", "Python"}, p.Skills[0].Skills)
	assert.Equal(t, IconPalette, p.Skills[2].Icon)

	// Literal order, not sorted by date.
	assert.Equal(t, "Institute of Judicial Administration Lushoto", p.Experience[0].Company)
	assert.Equal(t, "Jul 2025 - Aug 2025", p.Experience[0].Period)
	assert.Equal(t, "IAESTE INDIA", p.Experience[1].Company)

	assert.Equal(t, "Collaborative Canvas", p.Projects[1].Title)
	assert.Equal(t, "https://redeye-fribble.onrender.com/", p.Projects[1].Link)
	assert.Len(t, p.Projects[0].Tags, 7)

	assert.Equal(t, "© 2024 Faizan. All rights reserved.", p.Footer)
}

func TestDefaultIsFresh(t *testing.T) {
	a := Default()
	a.Skills[0].Skills[0] = "Go"
	a.About.Paragraphs[0] = "changed"
	b := Default()
	assert.Equal(t, "C", b.Skills[0].Skills[0])
	assert.Equal(t, AboutMe[0], b.About.Paragraphs[0])
}

func TestNavMatchesSections(t *testing.T) {
	p := Default()
	require.Len(t, p.Nav, len(Sections))
	for i, item := range p.Nav {
		assert.Equal(t, Sections[i], item.Anchor)
		assert.Equal(t, "#"+Sections[i], item.Href())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Portfolio)
		errs   int
	}{
		{"default", func(p *Portfolio) {}, 0},
		{"unknown anchor", func(p *Portfolio) { p.Nav[0].Anchor = "blog" }, 1},
		{"repeated anchor", func(p *Portfolio) { p.Nav[1].Anchor = SectionAbout }, 1},
		{"empty category", func(p *Portfolio) { p.Skills[1].Skills = nil }, 1},
		{"relative project link", func(p *Portfolio) { p.Projects[2].Link = "/x" }, 1},
		{"bad contact href", func(p *Portfolio) { p.Contact.Channels[0].Href = "tel:123" }, 1},
		{"bad action anchor", func(p *Portfolio) { p.Hero.Actions[0].Href = "#nowhere" }, 1},
		{"several", func(p *Portfolio) {
			p.Hero.Name = " "
			p.Experience[0].Role = ""
		}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default()
			tt.mutate(p)
			err := p.Validate()
			if tt.errs == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Equal(t, tt.errs, strings.Count(err.Error(), ErrInvalid.Error()))
		})
	}
}

func TestLoadFileOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	data := `
hero:
  tagline: Shipping small things often
projects:
  - title: Only Project
    description: Just one.
    tags: [Go]
    link: https://example.com/only
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	p, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Shipping small things often", p.Hero.Tagline)
	assert.Equal(t, "Faizan Ali Sayed", p.Hero.Name, "unset keys keep defaults")
	require.Len(t, p.Projects, 1)
	assert.Equal(t, "Only Project", p.Projects[0].Title)
	assert.Len(t, p.Skills, 3)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nav:\n  - label: Blog\n    anchor: blog\n"), 0o644))
	_, err = LoadFile(path)
	assert.ErrorIs(t, err, ErrInvalid)

	require.NoError(t, os.WriteFile(path, []byte("nav: [:"), 0o644))
	_, err = LoadFile(path)
	assert.Error(t, err)
}

func TestLoadEmptyPath(t *testing.T) {
	p, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Default().WriteYAML(&buf))
	assert.Contains(t, buf.String(), "faizanalifas@gmail.com")

	path := filepath.Join(t.TempDir(), "dump.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	p, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestIsExternal(t *testing.T) {
	assert.True(t, IsExternal("https://github.com/RED1EYE"))
	assert.True(t, IsExternal("http://example.com"))
	assert.False(t, IsExternal("mailto:faizanalifas@gmail.com"))
	assert.False(t, IsExternal("#contact"))
}

func TestLogoOrPlaceholder(t *testing.T) {
	assert.Equal(t, "static/placeholder.svg", LogoOrPlaceholder("", "static/placeholder.svg"))
	assert.Equal(t, "/p.svg", LogoOrPlaceholder("  ", "/p.svg"))
	assert.Equal(t, "https://x/logo.png", LogoOrPlaceholder("https://x/logo.png", "/p.svg"))
}

func TestMarkdown(t *testing.T) {
	h, err := Markdown("Building **intelligent** systems")
	require.NoError(t, err)
	assert.Contains(t, string(h), "<p>")
	assert.Contains(t, string(h), "<strong>intelligent</strong>")

	h, err = Markdown("<script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, string(h), "<script>")

	paras, err := Default().AboutHTML()
	require.NoError(t, err)
	assert.Len(t, paras, 3)
}
