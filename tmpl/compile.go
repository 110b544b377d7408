// Package tmpl implements the Handlebars-like template compilation step
// of the process() pass: an author's markup string becomes a ready-to-
// render text/template.Template, parsed with text/template's default "{{"
// "}}" delimiters, which already match the authoring syntax, so no
// translation step is needed, wrapped in a small envelope carrying the
// owning variant's HTML tag/class conventions.
package tmpl

import (
	"bytes"
	"fmt"
	"text/template"
)

// Envelope wraps a compiled template with the HTML conventions of the
// variant it belongs to (a scene's layout renders inside a <section>, a
// card's content inside an <article>, and so on).
type Envelope struct {
	Tag       string
	Class     string
	Template  *template.Template
	SourceErr error
}

// Compile parses src as a template named name and wraps it in an envelope
// for the given tag/class. Compilation errors are returned rather than
// panicking, per the "no exceptions as control flow" rule that governs
// every phase of this pipeline; callers surface SourceErr as a validation
// error on the owning node instead of failing the whole process() pass.
func Compile(name, tag, class, src string) *Envelope {
	t, err := template.New(name).Parse(src)
	if err != nil {
		return &Envelope{Tag: tag, Class: class, SourceErr: fmt.Errorf("template %q: %w", name, err)}
	}

	return &Envelope{Tag: tag, Class: class, Template: t}
}

// Render executes the envelope's template against data and wraps the
// result in its HTML tag.
func (e *Envelope) Render(data interface{}) (string, error) {
	if e.SourceErr != nil {
		return "", e.SourceErr
	}

	var buf bytes.Buffer
	if err := e.Template.Execute(&buf, data); err != nil {
		return "", err
	}

	class := ""
	if e.Class != "" {
		class = fmt.Sprintf(" class=%q", e.Class)
	}

	return fmt.Sprintf("<%s%s>%s</%s>", e.Tag, class, buf.String(), e.Tag), nil
}
