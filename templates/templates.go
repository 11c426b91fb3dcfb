// Package templates embeds the dashboard's HTML templates.
package templates

import (
	"embed"
	"encoding/json"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Funcs are available to every template.
var Funcs = template.FuncMap{
	"json": func(v any) (template.JS, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return template.JS(b), nil //nolint:gosec // marshalled JSON, safe in a script context
	},
}

// Parse loads all embedded templates, each named after its file.
func Parse() (*template.Template, error) {
	return template.New("").Funcs(Funcs).ParseFS(files, "*.html")
}
