// Package common holds the shared page layout, template helpers, and the
// embedded stylesheet used by every dashboard feature.
package common

import (
	"embed"
	"fmt"
	"html/template"
	"math"
	"net/http"
	"time"

	"github.com/datagaze-labs/datagaze/internal/report"
)

//go:embed templates/layout.html
var layoutFS embed.FS

//go:embed static/styles.css
var stylesCSS []byte

// Base returns a fresh template set containing the layout and helper
// functions. Each feature parses its own page templates into a clone.
func Base() *template.Template {
	return template.Must(template.New("layout").Funcs(Funcs()).ParseFS(layoutFS, "templates/layout.html"))
}

// Funcs is the helper set available to all page templates.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"metric":     report.Metric,
		"metricUnit": report.MetricUnit,
		"corrCell":   corrCell,
		"heatStyle":  heatStyle,
		"dateValue":  dateValue,
	}
}

// corrCell formats one correlation entry to two decimals, with a
// placeholder for undefined (zero variance) entries.
func corrCell(v float64) string {
	if math.IsNaN(v) {
		return "–"
	}
	return fmt.Sprintf("%.2f", v)
}

// heatStyle colors a correlation cell: warm for positive, cool for
// negative, stronger with magnitude. Mirrors a heatmap with vmin=-1,
// vmax=1.
func heatStyle(v float64) template.CSS {
	if math.IsNaN(v) {
		return "background-color: transparent"
	}
	alpha := math.Abs(v) * 0.85
	if v >= 0 {
		return template.CSS(fmt.Sprintf("background-color: rgba(220, 38, 38, %.2f)", alpha))
	}
	return template.CSS(fmt.Sprintf("background-color: rgba(37, 99, 235, %.2f)", alpha))
}

// dateValue renders an optional date for an <input type="date"> value.
func dateValue(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// StylesHandler serves the embedded stylesheet.
func StylesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		_, _ = w.Write(stylesCSS)
	}
}

// Page is the data every full-page render receives.
type Page struct {
	Title       string
	CurrentPath string
	Signals     string // JSON for the page's data-signals attribute
	View        any
}
