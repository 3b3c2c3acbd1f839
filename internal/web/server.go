// Package web serves the portfolio page and the server-driven effects:
// the typewriter stream, the theme preference and the starfield.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/theme"
	"github.com/Zachkp/portfolio/internal/typewriter"
)

//go:embed templates/*.html
var templateFS embed.FS

// Deps are the collaborators a Server owns for its lifetime.
type Deps struct {
	Page       content.Page
	Typewriter content.Typewriter
	// Preferences persists themes server side. Nil keeps them in the cookie
	// only.
	Preferences *theme.Preferences
	Mailer      Mailer
	Salt        string
	Logger      *log.Logger
}

// Server hosts the portfolio HTTP routes.
type Server struct {
	page       content.Page
	typewriter content.Typewriter
	prefs      *theme.Preferences
	mailer     Mailer
	visitors   visitorHasher
	logger     *log.Logger
	engine     *gin.Engine
}

// New validates the typewriter content and wires the routes.
func New(deps Deps) (*Server, error) {
	if err := deps.Typewriter.Timing.Validate(); err != nil {
		return nil, fmt.Errorf("typewriter timing: %w", err)
	}
	if _, err := typewriter.NewMachine(deps.Typewriter.Phrases); err != nil {
		return nil, fmt.Errorf("typewriter phrases: %w", err)
	}
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}
	if deps.Mailer == nil {
		deps.Mailer = unconfiguredMailer{}
	}
	salt := deps.Salt
	if salt == "" {
		var err error
		if salt, err = randomToken(); err != nil {
			return nil, fmt.Errorf("generate hash salt: %w", err)
		}
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		page:       deps.Page,
		typewriter: deps.Typewriter,
		prefs:      deps.Preferences,
		mailer:     deps.Mailer,
		visitors:   visitorHasher{salt: salt},
		logger:     deps.Logger,
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.SetHTMLTemplate(tmpl)
	s.routes(r)
	s.engine = r
	return s, nil
}

func (s *Server) routes(r *gin.Engine) {
	r.GET("/", s.home)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"title": "Contact Me",
		})
	})
	r.POST("/contact", s.contact)

	r.GET("/theme", s.getTheme)
	r.PUT("/theme", s.putTheme)
	r.POST("/theme/toggle", s.toggleTheme)

	r.GET("/typewriter/stream", s.streamTypewriter)
	r.GET("/starfield", s.stars)
}

// Handler exposes the routes, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves on addr until ctx is done. Open streams are cut when
// ctx ends.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	serveErr := make(chan error, 1)
	s.logger.Printf("Portfolio listening on %s", addr)
	go func() {
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

func (s *Server) home(c *gin.Context) {
	current := s.currentTheme(c)
	c.HTML(http.StatusOK, "index.html", gin.H{
		"name":           s.page.Name,
		"aboutMeContent": s.page.AboutMe,
		"projects":       s.page.Projects,
		"theme":          current.String(),
		"themeIcon":      current.Icon(),
		"phrases":        s.typewriter.Phrases,
	})
}
