package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"eventadmin/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageNames lists the renderable pages. Each shares the layout template.
var pageNames = []string{"events", "event", "users", "login", "register", "error", "notfound"}

// Page is the view model every template renders from. Only the fields a
// given page uses are set.
type Page struct {
	Title     string
	Username  string
	Admin     bool
	Errors    []string
	Form      map[string]string
	Events    []*domain.Event
	Event     *domain.Event
	Users     []*domain.User
	Message   string
	CSRFField template.HTML
}

// Renderer renders server-side HTML pages from the embedded templates.
type Renderer struct {
	logger *slog.Logger
	pages  map[string]*template.Template
}

func NewRenderer(logger *slog.Logger) (*Renderer, error) {
	funcs := template.FuncMap{
		// Event descriptions are sanitized on the way into storage, so the
		// stored markup is safe to emit as-is.
		"safe": func(s string) template.HTML { return template.HTML(s) },
	}
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(
			templateFS,
			"templates/layout.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &Renderer{logger: logger, pages: pages}, nil
}

// Render writes the named page with the given status. The template is
// executed into a buffer first so a mid-render failure does not leave a
// half-written response.
func (rn *Renderer) Render(w http.ResponseWriter, status int, name string, page Page) {
	tmpl, ok := rn.pages[name]
	if !ok {
		rn.logger.Error("unknown page template", "name", name)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", page); err != nil {
		rn.logger.Error("failed to render page", "name", name, "err", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// Error renders the generic error page. The underlying error is logged, not shown.
func (rn *Renderer) Error(w http.ResponseWriter, page Page) {
	if page.Title == "" {
		page.Title = "Something went wrong"
	}
	rn.Render(w, http.StatusInternalServerError, "error", page)
}

// NotFound renders the 404 page.
func (rn *Renderer) NotFound(w http.ResponseWriter, page Page) {
	if page.Title == "" {
		page.Title = "Not found"
	}
	rn.Render(w, http.StatusNotFound, "notfound", page)
}
