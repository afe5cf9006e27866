package page

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
)

// TemplateName is the document template.
const TemplateName = "index.html"

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Static returns the embedded client assets: style.css, app.js and
// placeholder.svg.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Funcs are the helpers available to the page templates.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"icon": Icon,
		"external": func(external bool) template.HTMLAttr {
			if !external {
				return ""
			}
			return `target="_blank" rel="noopener noreferrer"`
		},
	}
}

// Renderer executes the page template.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(Funcs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Template exposes the parsed set, for gin's HTML renderer.
func (r *Renderer) Template() *template.Template {
	return r.tmpl
}

// Render writes the document for v.
func (r *Renderer) Render(w io.Writer, v *View) error {
	if err := r.tmpl.ExecuteTemplate(w, TemplateName, v); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}
