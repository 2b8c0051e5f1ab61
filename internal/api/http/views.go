package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/mind-engage/mindengage-quiz/internal/quiz"
)

//go:embed templates/*.html
var templateFS embed.FS

// Views renders the three HTML pages.
type Views struct {
	t *template.Template
}

type indexData struct {
	Error string
	Text  string
}

func NewViews() (*Views, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"minutes": func(s int) int { return s / 60 },
		"seconds": func(s int) int { return s % 60 },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Views{t: t}, nil
}

func (v *Views) Index(w http.ResponseWriter, status int, errMsg, text string) {
	v.render(w, status, "index", indexData{Error: errMsg, Text: text})
}

func (v *Views) Quiz(w http.ResponseWriter, p quiz.Progress) {
	v.render(w, http.StatusOK, "quiz", p)
}

func (v *Views) Final(w http.ResponseWriter, rep quiz.Report) {
	v.render(w, http.StatusOK, "final", rep)
}

// render executes into a buffer first so a template error never leaves a
// half-written page behind.
func (v *Views) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := v.t.ExecuteTemplate(&buf, name, data); err != nil {
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
