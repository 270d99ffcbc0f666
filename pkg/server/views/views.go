// Package views renders the application's HTML pages. Templates are
// embedded in the binary; every page is parsed together with the shared
// layout at startup so template errors surface immediately.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"contactbook/pkg/identity"
	"contactbook/pkg/server/flash"
)

//go:embed templates/*.html
var templateFiles embed.FS

// Data is the bag handed to a page template.
type Data struct {
	// Title is the page title
	Title string
	// Identity is the authenticated caller, nil for anonymous requests
	Identity *identity.Identity
	// Flash carries one-shot status values from the preceding redirect
	Flash flash.Values
	// Errors holds form-level validation errors
	Errors []string
	// Model is the page's primary model
	Model interface{}
	// Bag holds any extra values a page needs
	Bag map[string]interface{}
}

// IsAdmin reports whether the caller holds the Admin role. Used by the
// layout to decide which navigation links to show.
func (d *Data) IsAdmin() bool {
	return d.Identity != nil && d.Identity.HasRole(identity.AdminRole)
}

// Renderer executes page templates into HTTP responses.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every embedded page template against the shared
// layout.
func NewRenderer() (*Renderer, error) {
	entries, err := fs.ReadDir(templateFiles, "templates")
	if err != nil {
		return nil, fmt.Errorf("failed to read templates: %w", err)
	}

	pages := make(map[string]*template.Template)
	for _, entry := range entries {
		name := entry.Name()
		if name == "layout.html" || !strings.HasSuffix(name, ".html") {
			continue
		}
		tmpl, err := template.ParseFS(templateFiles, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &Renderer{pages: pages}, nil
}

// Render writes the page with the given HTTP status. The template
// executes into a buffer first so a template failure produces a clean
// 500 instead of a half-written page.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data *Data) {
	tmpl, ok := r.pages[page]
	if !ok {
		log.WithField("page", page).Error("unknown view")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if data == nil {
		data = &Data{}
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.WithField("page", page).WithError(err).Error("failed to render view")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
