package web

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"harmonyminds/internal/analysis"
	"harmonyminds/internal/chart"
	"harmonyminds/internal/logging"
	"harmonyminds/internal/shell"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// pageFiles lists the template file for each page; layout.html is shared.
var pageFiles = map[shell.Page]string{
	shell.PageHome:     "templates/home.html",
	shell.PageAnalyze:  "templates/analyze.html",
	shell.PageResults:  "templates/results.html",
	shell.PageTakeCare: "templates/take-care.html",
	shell.PageBlog:     "templates/blog.html",
}

type navItem struct {
	Label  string
	Icon   Icon
	Page   shell.Page
	Active bool
}

var navigation = []navItem{
	{Label: "Analyze", Icon: IconSparkles, Page: shell.PageAnalyze},
	{Label: "Take Care", Icon: IconHeart, Page: shell.PageTakeCare},
	{Label: "Blog", Icon: IconBookOpen, Page: shell.PageBlog},
}

type headerData struct {
	Brand         string
	Current       shell.Page
	Authenticated bool
	Nav           []navItem
}

type layoutData struct {
	Title   string
	Header  headerData
	Content any
}

func newHeader(current shell.Page, authenticated bool) headerData {
	nav := make([]navItem, len(navigation))
	for i, item := range navigation {
		item.Active = item.Page == current
		nav[i] = item
	}
	return headerData{
		Brand:         "Hormony Minds",
		Current:       current,
		Authenticated: authenticated,
		Nav:           nav,
	}
}

func funcMap() template.FuncMap {
	funcs := template.FuncMap{
		"icon":     renderIcon,
		"glyph":    renderGlyph,
		"gradient": gradientStyle,
		"path":     func(p shell.Page) string { return p.Path() },
	}
	for name, fn := range chart.FuncMap {
		funcs[name] = fn
	}
	return funcs
}

func parseTemplates() (map[shell.Page]*template.Template, error) {
	pages := make(map[shell.Page]*template.Template, len(pageFiles))
	for page, file := range pageFiles {
		t, err := template.New("layout.html").Funcs(funcMap()).ParseFS(templateFS, "templates/layout.html", file)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		pages[page] = t
	}
	return pages, nil
}

func staticFiles() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// gradientStyle builds a background declaration from two palette tokens.
// Unknown tokens fall back to the default mood colors.
func gradientStyle(g Gradient) template.CSS {
	from, to := analysis.Mood{ColorFrom: g.From, ColorTo: g.To}.Gradient()
	return cssGradient(from, to)
}

// cssGradient only receives colors already vetted by analysis.Mood.Gradient.
func cssGradient(from, to string) template.CSS {
	return template.CSS("background: linear-gradient(90deg, " + from + ", " + to + ")")
}

// render executes the page into a buffer first so a template error becomes a
// clean 500 instead of a half-written page.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page shell.Page, data layoutData) {
	t, ok := s.pages[page]
	if !ok {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		logging.WithContext(r.Context()).Error().Err(err).Str("page", string(page)).Msg("Failed to render page")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// redirect sends a 303 with no body.
func redirect(w http.ResponseWriter, location string) {
	w.Header().Set("Location", location)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusSeeOther)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func title(parts ...string) string {
	return strings.Join(append(parts, "Hormony Minds"), " · ")
}
