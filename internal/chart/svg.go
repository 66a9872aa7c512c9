package chart

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var svgTemplates = template.Must(template.New("chart").Funcs(FuncMap).ParseFS(templateFS, "templates/*.tmpl"))

// FuncMap holds the helpers the chart templates use. Page templates that
// embed a chart add it to their own FuncMap.
var FuncMap = template.FuncMap{
	"fixed": fixed,
}

// RenderRadarSVG writes r as a standalone SVG document with text labels.
func RenderRadarSVG(w io.Writer, r Radar) error {
	if err := svgTemplates.ExecuteTemplate(w, "radar-document", r); err != nil {
		return fmt.Errorf("render radar svg: %w", err)
	}
	return nil
}

// RadarGraphic renders just the chart graphic for inline use in a page,
// where labels are positioned by the page itself.
func RadarGraphic(r Radar) (template.HTML, error) {
	var buf bytes.Buffer
	if err := svgTemplates.ExecuteTemplate(&buf, "radar-graphic", r); err != nil {
		return "", fmt.Errorf("render radar graphic: %w", err)
	}
	return template.HTML(buf.String()), nil
}
