package templates

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"
	"text/template"

	oerrors "github.com/submitkit/cli/internal/errors"
)

// RecognizedFields are the placeholder names a document template may
// reference through {{ .Fields.<name> }}.
var RecognizedFields = []string{
	"name",
	"university",
	"department",
	"repo_url",
	"contact_email",
}

// RenderContext maps recognized field names to their values. Absent keys
// are handled according to the renderer's missing-field policy.
type RenderContext map[string]string

// MissingPolicy selects how absent context fields render.
type MissingPolicy string

const (
	// MissingKeep leaves the placeholder literal in the output, so an
	// unfilled field stays visible in the generated document.
	MissingKeep MissingPolicy = "keep"

	// MissingEmpty renders absent fields as the empty string.
	MissingEmpty MissingPolicy = "empty"
)

// ParseMissingPolicy parses a policy string, defaulting to MissingKeep.
func ParseMissingPolicy(s string) MissingPolicy {
	if MissingPolicy(strings.ToLower(s)) == MissingEmpty {
		return MissingEmpty
	}
	return MissingKeep
}

// Renderer substitutes a RenderContext into document templates.
type Renderer struct {
	ctx          RenderContext
	policy       MissingPolicy
	deliverables []string
	recipients   []string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithDeliverables sets the deliverables list rendered into documents.
func WithDeliverables(deliverables []string) Option {
	return func(r *Renderer) {
		r.deliverables = deliverables
	}
}

// WithRecipients sets the email recipient list.
func WithRecipients(recipients []string) Option {
	return func(r *Renderer) {
		r.recipients = recipients
	}
}

// WithMissingPolicy sets the missing-field policy.
func WithMissingPolicy(policy MissingPolicy) Option {
	return func(r *Renderer) {
		r.policy = policy
	}
}

// NewRenderer creates a renderer for the given context.
func NewRenderer(ctx RenderContext, opts ...Option) *Renderer {
	r := &Renderer{
		ctx:    ctx,
		policy: MissingKeep,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// templateData is the value document templates execute against.
type templateData struct {
	Fields       map[string]string
	Deliverables []string
	Recipients   []string
}

// fieldTag matches a {{ .Fields.<name> }} placeholder and captures the
// field name. The whole match is the literal tag text.
var fieldTag = regexp.MustCompile(`\{\{\s*\.Fields\.([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

// recognized reports whether name is one of the RecognizedFields.
func recognized(name string) bool {
	for _, f := range RecognizedFields {
		if f == name {
			return true
		}
	}
	return false
}

// fields builds the effective field map for a template: context values
// first, then every placeholder the template references that the context
// does not cover. Recognized fields follow the missing-field policy;
// unrecognized placeholders always keep their literal tag text, so they
// pass through the output unchanged.
func (r *Renderer) fields(content string) map[string]string {
	out := make(map[string]string, len(r.ctx))
	for name, v := range r.ctx {
		out[name] = v
	}
	for _, m := range fieldTag.FindAllStringSubmatch(content, -1) {
		tag, name := m[0], m[1]
		if _, ok := out[name]; ok {
			continue
		}
		if recognized(name) && r.policy == MissingEmpty {
			out[name] = ""
		} else {
			out[name] = tag
		}
	}
	return out
}

var templateFuncs = template.FuncMap{
	"join": strings.Join,
}

// RenderString renders a template string against the context. Every
// recognized placeholder is substituted; all other text is unchanged.
func (r *Renderer) RenderString(content string) (string, error) {
	tmpl, err := template.New("document").Funcs(templateFuncs).Parse(content)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	data := templateData{
		Fields:       r.fields(content),
		Deliverables: r.deliverables,
		Recipients:   r.recipients,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}

// RenderDocument renders an embedded document template.
func (r *Renderer) RenderDocument(name DocumentName) (string, error) {
	source, err := Source(name)
	if err != nil {
		return "", err
	}
	return r.RenderString(source)
}

// RenderToFile renders an embedded document and writes it to targetPath,
// overwriting any existing file. The always-regenerate policy is
// deliberate: generated documents are never hand-edited in place.
func (r *Renderer) RenderToFile(name DocumentName, targetPath string) error {
	content, err := r.RenderDocument(name)
	if err != nil {
		return err
	}

	if err := os.WriteFile(targetPath, []byte(content), 0o644); err != nil {
		return oerrors.NewFilesystemError(
			fmt.Sprintf("could not write %s", name), targetPath, err)
	}

	return nil
}
