package templates

import (
	"bytes"
	"embed"
	"html/template"
	"strings"
)

//go:embed *.html
var files embed.FS

var funcs = template.FuncMap{
	"lines": func(items []string) string {
		return strings.Join(items, "\n")
	},
}

var pages = template.Must(template.New("").Funcs(funcs).ParseFS(files, "*.html"))

// Execute renders a page template completely and returns the markup.
// Nothing is returned on error, so callers never send a partial page.
func Execute(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
