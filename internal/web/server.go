// Package web serves the portfolio as a single HTML page plus a small JSON API.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/choonghwanlee/folio/internal/portfolio"
	"github.com/choonghwanlee/folio/internal/version"
)

//go:embed templates/*.html
var templateFS embed.FS

const shutdownTimeout = 5 * time.Second

type pageData struct {
	portfolio.Content
	Nav    []portfolio.NavLink
	Active portfolio.Section
}

type sectionResponse struct {
	Section portfolio.Section `json:"section"`
	Heading string            `json:"heading,omitempty"`
	Data    any               `json:"data"`
}

// NewRouter builds the gin engine serving content.
func NewRouter(content portfolio.Content) (*gin.Engine, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"join": strings.Join,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)
	r.Use(func(c *gin.Context) {
		c.Header("Server", version.Product())
		c.Next()
	})

	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", pageData{
			Content: content,
			Nav:     portfolio.NavLinks(),
			Active:  portfolio.SectionHome,
		})
	})

	api := r.Group("/api")
	api.GET("/portfolio", func(c *gin.Context) {
		c.JSON(http.StatusOK, content)
	})
	api.GET("/sections", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"sections": portfolio.Sections,
			"nav":      portfolio.NavLinks(),
		})
	})
	api.GET("/sections/:id", func(c *gin.Context) {
		section, err := portfolio.ParseSection(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, sectionResponse{
			Section: section,
			Heading: portfolio.Heading(section),
			Data:    sectionData(content, section),
		})
	})

	return r, nil
}

func sectionData(content portfolio.Content, section portfolio.Section) any {
	p := content.Profile
	switch section {
	case portfolio.SectionHome:
		return gin.H{"name": p.Name, "greeting": p.Greeting, "roles": p.Roles, "tagline": p.Tagline}
	case portfolio.SectionAbout:
		return gin.H{"bio": p.Bio, "technologies": p.Technologies, "image": p.Image}
	case portfolio.SectionExperience:
		return content.Experiences
	case portfolio.SectionProjects:
		return content.Projects
	default:
		return gin.H{"note": p.ContactNote, "email": p.Email, "resume_url": p.ResumeURL}
	}
}

// Serve runs the HTTP server on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, content portfolio.Content) error {
	router, err := NewRouter(content)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("serving portfolio on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}
