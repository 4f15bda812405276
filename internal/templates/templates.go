// Package templates holds the embedded text templates used to render
// generated files.
package templates

import (
	"embed"
	"fmt"
	"text/template"
)

//go:embed *.tmpl
var templatesFS embed.FS

// Template names.
const (
	HexHeader = "header.h.tmpl"
	HexFooter = "footer.h.tmpl"
	Manifest  = "amltohex.yaml.tmpl"
)

// Get returns the content of the specified template file.
func Get(name string) (string, error) {
	content, err := templatesFS.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("template %s not found: %w", name, err)
	}
	return string(content), nil
}

// Parse loads the named template and parses it with funcMap.
// A nil funcMap is allowed.
func Parse(name string, funcMap template.FuncMap) (*template.Template, error) {
	content, err := Get(name)
	if err != nil {
		return nil, err
	}
	if funcMap == nil {
		funcMap = template.FuncMap{}
	}
	t, err := template.New(name).Funcs(funcMap).Parse(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	return t, nil
}
