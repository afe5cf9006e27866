package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RED1EYE/portfolio/internal/content"
	"github.com/RED1EYE/portfolio/internal/motion"
)

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dist")
	e := NewExporter(dir, "https://faizan.dev/", content.Default(), motion.DefaultCatalog())

	files, err := e.Export()
	require.NoError(t, err)
	for _, want := range []string{"index.html", "static/app.js", "static/style.css", "static/placeholder.svg", "robots.txt", "sitemap.xml"} {
		assert.Contains(t, files, want)
		assert.FileExists(t, filepath.Join(dir, filepath.FromSlash(want)))
	}

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), `href="static/style.css"`)
	assert.Contains(t, string(index), `src="static/app.js"`)
	assert.Contains(t, string(index), `data-trigger="load" data-state="hidden"`)

	robots, err := os.ReadFile(filepath.Join(dir, "robots.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(robots), "Sitemap: https://faizan.dev/sitemap.xml")

	sitemap, err := os.ReadFile(filepath.Join(dir, "sitemap.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(sitemap), "<loc>https://faizan.dev/</loc>")
}

func TestExportPlaceholderIsRelative(t *testing.T) {
	dir := t.TempDir()
	p := content.Default()
	p.Experience[0].Logo = ""

	_, err := NewExporter(dir, "https://user.github.io/portfolio", p, motion.DefaultCatalog()).Export()
	require.NoError(t, err)

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), `src="static/placeholder.svg"`)
	assert.NotContains(t, string(index), `src="/`)
	assert.FileExists(t, filepath.Join(dir, "static", "placeholder.svg"))
}

func TestExportWithoutBaseURL(t *testing.T) {
	dir := t.TempDir()
	files, err := NewExporter(dir, "", content.Default(), motion.DefaultCatalog()).Export()
	require.NoError(t, err)

	assert.NotContains(t, files, "sitemap.xml")
	robots, err := os.ReadFile(filepath.Join(dir, "robots.txt"))
	require.NoError(t, err)
	assert.Equal(t, "User-agent: *\nAllow: /\n", string(robots))
}

func TestExportUnknownVariant(t *testing.T) {
	catalog := motion.DefaultCatalog()
	delete(catalog, motion.FadeInUp)

	_, err := NewExporter(t.TempDir(), "", content.Default(), catalog).Export()
	assert.Error(t, err)
}
