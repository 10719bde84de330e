// Package web renders the dashboard page. Charts are drawn in the browser
// by vega-embed from the chart descriptions the API returns.
package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/jengzang/life-rhythms-go/internal/mapper"
	"github.com/jengzang/life-rhythms-go/internal/models"
)

//go:embed templates/index.html
var templates embed.FS

var page = template.Must(template.New("index.html").ParseFS(templates, "templates/index.html"))

// Page is the data behind the dashboard template
type Page struct {
	Title     string
	Options   models.FilterOptions
	Dashboard mapper.Dashboard
	Notice    string // shown above the charts, e.g. a rejected selection
}

// Render writes the dashboard page for one selection
func Render(w io.Writer, p Page) error {
	initial, err := json.Marshal(p.Dashboard)
	if err != nil {
		return fmt.Errorf("encode dashboard: %w", err)
	}

	return page.Execute(w, struct {
		Page
		Initial template.JS
	}{p, template.JS(initial)})
}
