// templates.go
package main

import (
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"add": func(a, b int) int { return a + b },
	"formatNumber": func(f float64) string {
		return fmt.Sprintf("%.2f", f)
	},
	"alpha": func(f float64) string {
		return fmt.Sprintf("%.2f", f)
	},
	"numeric": func(cols map[int]bool, i int) bool {
		return cols[i]
	},
}

var pages = template.Must(template.New("pages").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html"))
