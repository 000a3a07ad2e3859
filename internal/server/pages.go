package server

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/claude/sprintlab/internal/sprint"
)

//go:embed templates/*.html
var templateFS embed.FS

func parsePages() *template.Template {
	funcs := template.FuncMap{
		"num": func(v float64) string { return fmt.Sprintf("%.2f", v) },
		"opt": func(v *float64) string {
			if v == nil {
				return "n/a"
			}
			return fmt.Sprintf("%.2f", *v)
		},
		"sub": func(a, b float64) float64 { return a - b },
		"add": func(a, b float64) float64 { return a + b },
		"mul": func(a float64, i int) float64 { return a * float64(i) },
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}

// formField is one time input of the sprint form.
type formField struct {
	Set   int
	Value string
}

type pageData struct {
	Title    string
	Version  string
	Sets     int
	MinSets  int
	MaxSets  int
	MinTime  float64
	MaxTime  float64
	Fields   []formField
	Error    string
	Analysis *sprint.Analysis
	Chart    *svgChart
}

func (s *Server) newPage(values []string) pageData {
	fields := make([]formField, len(values))
	for i, v := range values {
		fields[i] = formField{Set: i + 1, Value: v}
	}
	return pageData{
		Title:   "Sprint Performance Analyzer",
		Version: s.version,
		Sets:    len(values),
		MinSets: s.limits.MinSets,
		MaxSets: s.limits.MaxSets,
		MinTime: s.limits.MinTime,
		MaxTime: s.limits.MaxTime,
		Fields:  fields,
	}
}

// handleForm renders the input form. ?sets=N picks the number of time
// fields, clamped to the configured limits.
func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	n := s.limits.DefaultSets
	if v := r.URL.Query().Get("sets"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			n = min(max(parsed, s.limits.MinSets), s.limits.MaxSets)
		}
	}
	s.render(w, http.StatusOK, s.newPage(make([]string, n)))
}

// handleAnalyzeForm collects every time field into one slice before a
// single computation pass, then renders the report below the form.
func (s *Server) handleAnalyzeForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		page := s.newPage(make([]string, s.limits.DefaultSets))
		page.Error = "invalid form: " + err.Error()
		s.render(w, http.StatusBadRequest, page)
		return
	}

	raw := r.PostForm["times"]
	page := s.newPage(raw)

	times, err := parseFormTimes(raw)
	if err != nil {
		page.Error = err.Error()
		s.render(w, http.StatusUnprocessableEntity, page)
		return
	}

	analysis, err := s.analyze(r, times)
	if err != nil {
		page.Error = err.Error()
		status := http.StatusUnprocessableEntity
		if statusFor(err) == http.StatusInternalServerError {
			status = http.StatusInternalServerError
		}
		s.render(w, status, page)
		return
	}

	page.Analysis = analysis
	page.Chart = newSVGChart(analysis.Chart)
	s.render(w, http.StatusOK, page)
}

func parseFormTimes(raw []string) ([]float64, error) {
	times := make([]float64, len(raw))
	for i, v := range raw {
		t, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, fmt.Errorf("set %d: %q is not a number", i+1, v)
		}
		times[i] = t
	}
	return times, nil
}

func (s *Server) render(w http.ResponseWriter, status int, data pageData) {
	var buf strings.Builder
	if err := s.pages.ExecuteTemplate(&buf, "page.html", data); err != nil {
		s.log.Error("template error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	fmt.Fprint(w, buf.String())
}
