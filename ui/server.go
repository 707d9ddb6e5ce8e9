package ui

import (
	"context"
	"embed"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	"github.com/dminhvu/GSD-222/internal/config"
	"github.com/dminhvu/GSD-222/internal/errors"
)

//go:embed templates static notes.md
var embeddedFiles embed.FS

// Server hosts the upload, preview and download routes.
type Server struct {
	router    *gin.Engine
	config    *config.Config
	store     *ResultStore
	uploads   *semaphore.Weighted
	templates *template.Template
	notes     template.HTML
}

// NewServer creates a new web server instance.
func NewServer(cfg *config.Config) *Server {
	gin.SetMode(cfg.Server.GinMode)

	return &Server{
		router:  gin.Default(),
		config:  cfg,
		store:   NewResultStore(cfg.Results.TTL),
		uploads: semaphore.NewWeighted(cfg.Upload.MaxConcurrent),
	}
}

// Initialize parses the embedded templates, renders the processing notes
// and wires up middleware and routes.
func (s *Server) Initialize() error {
	funcMap := template.FuncMap{
		"add": func(a, b int) int { return a + b },
	}

	templatesFS, err := fs.Sub(embeddedFiles, "templates")
	if err != nil {
		return errors.Wrap(err, "failed to create templates sub-filesystem")
	}

	files, err := fs.Glob(templatesFS, "*.html")
	if err != nil {
		return errors.Wrap(err, "failed to list templates")
	}
	log.Printf("[TemplateInit] Found %d template files: %v", len(files), files)

	s.templates = template.New("").Funcs(funcMap)
	for _, file := range files {
		content, err := fs.ReadFile(templatesFS, file)
		if err != nil {
			return errors.Wrapf(err, "failed to read template %s", file)
		}
		if _, err := s.templates.New(file).Parse(string(content)); err != nil {
			return errors.Wrapf(err, "failed to parse template %s", file)
		}
	}

	notes, err := renderNotes()
	if err != nil {
		return errors.Wrap(err, "failed to render processing notes")
	}
	s.notes = notes

	s.setupMiddleware()
	s.setupRoutes()

	return nil
}

func (s *Server) setupMiddleware() {
	staticFS, err := fs.Sub(embeddedFiles, "static")
	if err != nil {
		log.Printf("[Static] Error creating static sub-filesystem: %v", err)
		return
	}
	s.router.StaticFS("/static", http.FS(staticFS))
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.POST("/upload", s.handleUpload)
	s.router.GET("/result/:id", s.handleResult)
	s.router.GET("/download/:id", s.handleDownload)
	s.router.GET("/healthz", s.handleHealthz)
}

// Run serves HTTP until the context is canceled, then drains in-flight
// requests before returning.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.config.Server.Addr,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[Server] Listening on %s", s.config.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.store.Close()
		return errors.Wrap(err, "server failed")
	case <-ctx.Done():
	}

	log.Printf("[Server] Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	s.store.Close()
	if err != nil {
		return errors.Wrap(err, "server shutdown failed")
	}

	return nil
}

// renderTemplate executes a parsed template into the response.
func (s *Server) renderTemplate(c *gin.Context, status int, templateName string, data interface{}) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := s.templates.ExecuteTemplate(c.Writer, templateName, data); err != nil {
		log.Printf("Template error for %s: %v", templateName, err)
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}
