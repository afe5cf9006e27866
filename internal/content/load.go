package content

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid marks content that breaks a page invariant.
var ErrInvalid = errors.New("invalid content")

// LoadFile reads a YAML content file over the defaults. Keys missing from
// the file keep their default values; lists present in the file replace
// the default list entirely.
func LoadFile(path string) (*Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}

	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parse content %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return p, nil
}

// Load returns the defaults when path is empty, the file otherwise.
func Load(path string) (*Portfolio, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// WriteYAML encodes the portfolio as YAML.
func (p *Portfolio) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode content: %w", err)
	}
	return enc.Close()
}

// Validate checks the invariants the page relies on. All problems are
// reported together.
func (p *Portfolio) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if strings.TrimSpace(p.Hero.Name) == "" {
		invalid("hero name is empty")
	}

	seen := make(map[string]bool)
	for _, item := range p.Nav {
		if !slices.Contains(Sections, item.Anchor) {
			invalid("nav %q points at unknown section %q", item.Label, item.Anchor)
		}
		if seen[item.Anchor] {
			invalid("nav anchor %q repeated", item.Anchor)
		}
		seen[item.Anchor] = true
	}

	for i, c := range p.Skills {
		if c.Title == "" {
			invalid("skill category %d has no title", i)
		}
		if len(c.Skills) == 0 {
			invalid("skill category %q is empty", c.Title)
		}
	}
	for i, e := range p.Experience {
		if e.Company == "" || e.Role == "" {
			invalid("experience %d needs company and role", i)
		}
	}
	for _, pr := range p.Projects {
		if !IsExternal(pr.Link) {
			invalid("project %q link %q is not an http(s) URL", pr.Title, pr.Link)
		}
	}
	for _, c := range p.Contact.Channels {
		if !IsExternal(c.Href) && !strings.HasPrefix(c.Href, "mailto:") {
			invalid("contact %q href %q must be mailto or http(s)", c.Title, c.Href)
		}
	}
	for _, a := range append(append([]Action(nil), p.Hero.Actions...), p.Contact.Actions...) {
		if strings.HasPrefix(a.Href, "#") && !slices.Contains(Sections, strings.TrimPrefix(a.Href, "#")) {
			invalid("action %q points at unknown section %q", a.Label, a.Href)
		}
	}

	return errors.Join(errs...)
}

// IsExternal reports whether href leaves the site and should open in a new
// browsing context.
func IsExternal(href string) bool {
	return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")
}

// LogoOrPlaceholder substitutes placeholder for an empty logo URL.
func LogoOrPlaceholder(logo, placeholder string) string {
	if strings.TrimSpace(logo) == "" {
		return placeholder
	}
	return logo
}
