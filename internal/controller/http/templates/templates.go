// Package templates holds the HTML pages of the site.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed *.tmpl
var FS embed.FS

// Load parses every page and partial.
func Load() (*template.Template, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"amount": FormatAmount,
	}).ParseFS(FS, "*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}

// FormatAmount renders an amount in minor units, e.g. 50000 INR as "500.00 INR".
func FormatAmount(minor int64, currency string) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s%d.%02d %s", sign, minor/100, minor%100, strings.ToUpper(currency))
}
