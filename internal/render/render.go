// Package render turns query results (ask/materialize/shape-validation
// output) into text via Go templates, with Masterminds/sprig/v3's
// helper functions (humanize-style list/string helpers) available to
// template authors the same way arx-os's reporting templates do.
package render

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// AskResult is the shape fed to an ask template.
type AskResult struct {
	Subject, Predicate, Object uint32
	Matched                    bool
}

// MaterializeResult is the shape fed to a materialize template.
type MaterializeResult struct {
	Predicate, Object uint32
	Subjects          []uint32
}

// ShapeResult is the shape fed to a shape-validation template.
type ShapeResult struct {
	Subject uint32
	Valid   bool
}

// Renderer compiles a named template once and renders it against any
// number of results.
type Renderer struct {
	tmpl *template.Template
}

// New parses body as a text/template with the full sprig function map
// registered, under the given name (used in error messages).
func New(name, body string) (*Renderer, error) {
	t, err := template.New(name).Funcs(sprig.TxtFuncMap()).Parse(body)
	if err != nil {
		return nil, fmt.Errorf("render: parse %s: %w", name, err)
	}
	return &Renderer{tmpl: t}, nil
}

// Render executes the compiled template against data and returns the
// resulting text.
func (r *Renderer) Render(data any) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render: execute: %w", err)
	}
	return buf.String(), nil
}

// DefaultAskTemplate renders a single Ask outcome as one human-readable
// line.
const DefaultAskTemplate = `{{if .Matched}}YES{{else}}NO{{end}} ({{.Subject}}, {{.Predicate}}, {{.Object}})`

// DefaultMaterializeTemplate renders the subjects matching a
// (predicate, object) pattern, comma-joined via sprig's "join".
const DefaultMaterializeTemplate = `[{{.Predicate}}, *, {{.Object}}] -> {{len .Subjects}} subject(s): {{join ", " .Subjects}}`

// DefaultShapeTemplate renders a single shape-validation outcome.
const DefaultShapeTemplate = `subject {{.Subject}}: {{if .Valid}}conforms{{else}}violates{{end}}`
