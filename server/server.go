package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/vcaggregate/pkg/config"
	"github.com/umputun/vcaggregate/pkg/domain"
	"github.com/umputun/vcaggregate/pkg/submission"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/directory.go -pkg mocks -skip-ensure -fmt goimports . Directory
//go:generate moq -out mocks/bookmarks.go -pkg mocks -skip-ensure -fmt goimports . Bookmarks
//go:generate moq -out mocks/submitter.go -pkg mocks -skip-ensure -fmt goimports . Submitter

//go:embed templates
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// pages rendered with the base layout
var pages = []string{"index.html"}

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	directory Directory
	bookmarks Bookmarks
	submitter Submitter
	version   string
	debug     bool

	templates     *template.Template            // components, executed by file name
	pageTemplates map[string]*template.Template // full pages, base layout + components

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetDirectoryConfig() config.DirectoryConfig
}

// Directory is the read-only firm catalog
type Directory interface {
	Len() int
	Get(id string) (domain.Firm, bool)
	Visible(query string, sel domain.Selection) []domain.Firm
	Bookmarked(ids domain.StringSet) []domain.Firm
}

// Bookmarks is the user's shortlist
type Bookmarks interface {
	Toggle(ctx context.Context, id string) bool
	IsBookmarked(id string) bool
	IDs() []string
	Set() domain.StringSet
}

// Submitter collects "submit a VC" forms
type Submitter interface {
	Collect(form domain.SubmissionForm) (*submission.Result, error)
}

// New initializes a new server instance
func New(cfg ConfigProvider, dir Directory, bm Bookmarks, sub Submitter, version string, debug bool) (*Server, error) {
	s := &Server{
		config:    cfg,
		directory: dir,
		bookmarks: bm,
		submitter: sub,
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	if err := s.loadTemplates(); err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	httpServer := s.httpServer
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// loadTemplates parses components once and builds every page on top of a clone of them
func (s *Server) loadTemplates() error {
	components, err := template.ParseFS(templatesFS, "templates/components/*.html")
	if err != nil {
		return fmt.Errorf("parse components: %w", err)
	}
	s.templates = components

	s.pageTemplates = make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := components.Clone()
		if err != nil {
			return fmt.Errorf("clone components for %s: %w", page, err)
		}
		if tmpl, err = tmpl.ParseFS(templatesFS, "templates/base.html", "templates/"+page); err != nil {
			return fmt.Errorf("parse page %s: %w", page, err)
		}
		s.pageTemplates[page] = tmpl
	}
	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("vcaggregate", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	// API routes
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /firms", s.listFirmsHandler)
		r.HandleFunc("GET /bookmarks", s.listBookmarksHandler)
		r.HandleFunc("POST /bookmarks/{id}", s.toggleBookmarkAPIHandler)
		r.HandleFunc("POST /submissions", s.createSubmissionHandler)
	})

	// web UI routes
	s.router.HandleFunc("GET /{$}", s.indexHandler)
	s.router.HandleFunc("POST /bookmarks/{id}", s.toggleBookmarkHandler)
	s.router.HandleFunc("GET /shortlist", s.shortlistHandler)
	s.router.HandleFunc("POST /submit", s.submitHandler)

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		log.Printf("[ERROR] can't mount static files: %v", err)
		return
	}
	s.router.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static)))
}
