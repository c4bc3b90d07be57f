package jobcard

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
)

type Layout string

const (
	LayoutCompact    Layout = "compact"
	LayoutResponsive Layout = "responsive"
	LayoutCard       Layout = "card"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var layouts = template.Must(template.New("jobcard").ParseFS(templateFS, "templates/*.tmpl"))

// ParseLayout falls back to the compact list for unknown names.
func ParseLayout(s string) Layout {
	switch Layout(strings.ToLower(strings.TrimSpace(s))) {
	case LayoutResponsive:
		return LayoutResponsive
	case LayoutCard:
		return LayoutCard
	default:
		return LayoutCompact
	}
}

type page struct {
	Layout Layout
	Cards  []View
}

// Render writes the card list with the chosen layout. Layouts differ only in
// markup; every one of them is fed the same View values.
func Render(w io.Writer, layout Layout, views []View) error {
	name := "list_" + string(ParseLayout(string(layout)))
	if err := layouts.ExecuteTemplate(w, name, page{Layout: ParseLayout(string(layout)), Cards: views}); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}
