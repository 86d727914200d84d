// Package web serves the portfolio page and its HTMX fragments over gin.
package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/VANSHIKA-2727/portfolio/internal/assets"
	"github.com/VANSHIKA-2727/portfolio/internal/contact"
	"github.com/VANSHIKA-2727/portfolio/internal/content"
)

//go:embed templates/*.html
var templateFS embed.FS

// Options wires the server's collaborators.
type Options struct {
	Content *content.Content
	Forms   *contact.Registry
	Logger  *zap.Logger
}

type Server struct {
	engine  *gin.Engine
	content *content.Content
	forms   *contact.Registry
	log     *zap.Logger
	privacy *privacy
}

func New(opts Options) (*Server, error) {
	if opts.Content == nil || opts.Forms == nil {
		return nil, errors.New("web: content and forms are required")
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	p, err := newPrivacy()
	if err != nil {
		return nil, err
	}

	s := &Server{
		engine:  gin.New(),
		content: opts.Content,
		forms:   opts.Forms,
		log:     log,
		privacy: p,
	}
	s.engine.SetHTMLTemplate(tmpl)
	s.engine.Use(requestLogger(log, p), recovery(log))
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	r := s.engine

	r.StaticFS(assets.Prefix, http.FS(assets.FS()))

	r.GET("/", s.index)
	r.GET("/nav", s.nav)
	r.POST("/contact", s.submitContact)
	r.GET("/resume", s.resume)
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	r.NoRoute(s.notFound)
}

// Handler exposes the router for an http.Server or httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}
