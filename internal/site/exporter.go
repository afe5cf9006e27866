// Package site exports the portfolio as a static site for hosting without
// the server.
package site

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/RED1EYE/portfolio/internal/content"
	"github.com/RED1EYE/portfolio/internal/motion"
	"github.com/RED1EYE/portfolio/internal/page"
	"github.com/RED1EYE/portfolio/internal/ui"
)

// Exporter writes the page and its assets into OutputDir.
type Exporter struct {
	OutputDir string
	BaseURL   string
	Content   *content.Portfolio
	Catalog   motion.Catalog
}

// NewExporter creates an Exporter for the given content.
func NewExporter(outputDir, baseURL string, p *content.Portfolio, catalog motion.Catalog) *Exporter {
	return &Exporter{
		OutputDir: outputDir,
		BaseURL:   strings.TrimSuffix(baseURL, "/"),
		Content:   p,
		Catalog:   catalog,
	}
}

// Export renders the page in its freshly loaded state and copies the
// client assets. It returns the written paths relative to OutputDir.
func (e *Exporter) Export() ([]string, error) {
	if err := e.Catalog.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(e.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	renderer, err := page.NewRenderer()
	if err != nil {
		return nil, err
	}
	view, err := page.Build(ui.NewState(ui.Viewport{}), e.Content, e.Catalog, page.Options{AssetBase: "static/"})
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := renderer.Render(&buf, view); err != nil {
		return nil, err
	}

	var written []string
	write := func(rel string, data []byte) error {
		path := filepath.Join(e.OutputDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", rel, err)
		}
		written = append(written, rel)
		return nil
	}

	if err := write("index.html", buf.Bytes()); err != nil {
		return nil, err
	}

	static := page.Static()
	err = fs.WalkDir(static, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(static, path)
		if err != nil {
			return err
		}
		return write("static/"+path, data)
	})
	if err != nil {
		return nil, fmt.Errorf("copy assets: %w", err)
	}

	if err := write("robots.txt", e.robots()); err != nil {
		return nil, err
	}
	if e.BaseURL != "" {
		sitemap, err := e.sitemap()
		if err != nil {
			return nil, err
		}
		if err := write("sitemap.xml", sitemap); err != nil {
			return nil, err
		}
	}

	log.Info().Str("dir", e.OutputDir).Int("files", len(written)).Msg("site exported")
	return written, nil
}

func (e *Exporter) robots() []byte {
	var b strings.Builder
	b.WriteString("User-agent: *\nAllow: /\n")
	if e.BaseURL != "" {
		fmt.Fprintf(&b, "Sitemap: %s/sitemap.xml\n", e.BaseURL)
	}
	return []byte(b.String())
}

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []sitemapURL
}

type sitemapURL struct {
	XMLName xml.Name `xml:"url"`
	Loc     string   `xml:"loc"`
}

// sitemap lists the single page. Section anchors are fragments and do not
// belong in a sitemap.
func (e *Exporter) sitemap() ([]byte, error) {
	out, err := xml.MarshalIndent(urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  []sitemapURL{{Loc: e.BaseURL + "/"}},
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode sitemap: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}
