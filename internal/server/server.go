// Package server serves the portfolio page and its assets over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	healthcheck "github.com/tavsec/gin-healthcheck"
	"github.com/tavsec/gin-healthcheck/checks"
	hcconfig "github.com/tavsec/gin-healthcheck/config"

	"github.com/RED1EYE/portfolio/internal/config"
	"github.com/RED1EYE/portfolio/internal/content"
	"github.com/RED1EYE/portfolio/internal/motion"
	"github.com/RED1EYE/portfolio/internal/page"
	"github.com/RED1EYE/portfolio/internal/ui"
)

// Server owns the router and the content it renders.
type Server struct {
	cfg      *config.Config
	content  *content.Portfolio
	catalog  motion.Catalog
	renderer *page.Renderer
	router   *gin.Engine
}

// New builds the router. An empty privacy salt is replaced by a random one,
// so visitor hashes only correlate within one process.
func New(cfg *config.Config, p *content.Portfolio, catalog motion.Catalog) (*Server, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	renderer, err := page.NewRenderer()
	if err != nil {
		return nil, err
	}
	salt := cfg.Privacy.Salt
	if salt == "" {
		if salt, err = NewSalt(); err != nil {
			return nil, fmt.Errorf("generate salt: %w", err)
		}
	}

	gin.SetMode(cfg.Server.Mode)
	s := &Server{
		cfg:      cfg,
		content:  p,
		catalog:  catalog,
		renderer: renderer,
	}
	if s.router, err = s.buildRouter(salt); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) buildRouter(salt string) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(AccessLog(salt))
	r.SetHTMLTemplate(s.renderer.Template())

	healthcheck.New(r, hcconfig.DefaultConfig(), []checks.Check{contentCheck{p: s.content}})

	r.GET("/", s.index)
	if err := serveAssets(r.Group("/static")); err != nil {
		return nil, err
	}

	api := r.Group("/api")
	api.GET("/content", s.getContent)
	api.GET("/motion", s.getMotion)
	api.GET("/state", s.getState)

	return r, nil
}

// serveAssets registers one route per embedded asset, so directories are
// never listed.
func serveAssets(g *gin.RouterGroup) error {
	static := page.Static()
	entries, err := fs.ReadDir(static, ".")
	if err != nil {
		return fmt.Errorf("list assets: %w", err)
	}
	files := http.FS(static)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		g.GET("/"+name, func(c *gin.Context) {
			c.FileFromFS(name, files)
		})
	}
	return nil
}

// Handler exposes the router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on the configured address until ctx is cancelled, then
// drains in-flight requests within the shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("portfolio listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) index(c *gin.Context) {
	logger := GetLogger(c)
	state, err := ParseSnapshot(c.Request.URL.Query())
	if err != nil {
		logger.Warn().Err(err).Msg("rejected snapshot")
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	view, err := page.Build(state, s.content, s.catalog, page.Options{})
	if err != nil {
		logger.Error().Err(err).Msg("build page")
		c.String(http.StatusInternalServerError, "page unavailable")
		return
	}
	c.HTML(http.StatusOK, page.TemplateName, view)
}

func (s *Server) getContent(c *gin.Context) {
	c.JSON(http.StatusOK, s.content)
}

// motionResponse is everything the client needs to reproduce the page's
// animation without a render.
type motionResponse struct {
	Variants motion.Catalog          `json:"variants"`
	Backdrop []motion.Pulse          `json:"backdrop"`
	Hero     []motion.Pulse          `json:"hero"`
	Hovers   map[string]motion.Hover `json:"hovers"`
	Client   page.ClientConfig       `json:"client"`
}

func (s *Server) getMotion(c *gin.Context) {
	c.JSON(http.StatusOK, motionResponse{
		Variants: s.catalog,
		Backdrop: motion.BackdropPulses,
		Hero:     motion.HeroPulses,
		Hovers: map[string]motion.Hover{
			"skill":      motion.SkillHover,
			"experience": motion.ExperienceHover,
			"project":    motion.ProjectHover,
			"contact":    motion.ContactHover,
			"photo":      motion.PhotoHover,
			"link":       motion.LinkHover,
			"button":     motion.ButtonHover,
		},
		Client: page.NewClientConfig(),
	})
}

type stateResponse struct {
	*ui.State
	Mode     string   `json:"mode"`
	Loaded   bool     `json:"loaded"`
	Revealed []string `json:"revealed"`
}

// getState echoes the UI state a snapshot query resolves to.
func (s *Server) getState(c *gin.Context) {
	state, err := ParseSnapshot(c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	revealed := []string{}
	for _, id := range state.Reveals.IDs() {
		if state.Reveals.IsRevealed(id) {
			revealed = append(revealed, id)
		}
	}
	c.JSON(http.StatusOK, stateResponse{
		State:    state,
		Mode:     ui.NavModeFor(state.Viewport.Width).String(),
		Loaded:   state.IsLoaded(),
		Revealed: revealed,
	})
}

// contentCheck fails the health check when the served content no longer
// satisfies the page invariants.
type contentCheck struct {
	p *content.Portfolio
}

func (c contentCheck) Pass() bool {
	return c.p != nil && c.p.Validate() == nil
}

func (c contentCheck) Name() string {
	return "content"
}
