package content

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// md renders prose fields. Raw HTML in the source is dropped.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.Linkify,
		extension.Strikethrough,
	),
)

// Markdown renders a markdown fragment to HTML safe for templates.
func Markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// AboutHTML renders every About paragraph.
func (p *Portfolio) AboutHTML() ([]template.HTML, error) {
	out := make([]template.HTML, 0, len(p.About.Paragraphs))
	for i, para := range p.About.Paragraphs {
		h, err := Markdown(para)
		if err != nil {
			return nil, fmt.Errorf("about paragraph %d: %w", i, err)
		}
		out = append(out, h)
	}
	return out, nil
}
