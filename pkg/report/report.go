// Package report assembles the final analysis document and serializes it.
//
// A [Result] always carries all three sections, in this order: tech_stack,
// languages, dependencies. Empty sections are written as empty arrays and
// objects, never null. Language keys are emitted in sorted order so that
// repeated runs over an unchanged tree produce byte-identical output.
package report

import (
	"encoding/json"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/techstack/pkg/deps"
	"github.com/matzehuels/techstack/pkg/errors"
	"github.com/matzehuels/techstack/pkg/profile"
)

// Format selects the serialization of a [Result].
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DefaultIndent is the indentation width used when none is configured.
const DefaultIndent = 2

// Formats lists the supported output formats.
var Formats = []Format{FormatJSON, FormatYAML}

// ParseFormat resolves a case-insensitive format name. "yml" is accepted
// as an alias for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported output format %q (want json or yaml)", s)
}

// Result is the analysis document.
type Result struct {
	TechStack    []string             `json:"tech_stack" yaml:"tech_stack"`
	Languages    profile.Distribution `json:"languages" yaml:"languages"`
	Dependencies []deps.Dependency    `json:"dependencies" yaml:"dependencies"`
}

// Assemble builds a Result, replacing nil inputs with empty values.
func Assemble(stack []string, languages profile.Distribution, dependencies []deps.Dependency) *Result {
	if stack == nil {
		stack = []string{}
	}
	if languages == nil {
		languages = profile.Distribution{}
	}
	if dependencies == nil {
		dependencies = []deps.Dependency{}
	}
	return &Result{TechStack: stack, Languages: languages, Dependencies: dependencies}
}

// Write serializes r to w. indent values below 1 fall back to
// [DefaultIndent].
func (r *Result) Write(w io.Writer, format Format, indent int) error {
	if indent < 1 {
		indent = DefaultIndent
	}

	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", strings.Repeat(" ", indent))
		if err := enc.Encode(r); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode json report")
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(indent)
		if err := enc.Encode(r); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode yaml report")
		}
		if err := enc.Close(); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode yaml report")
		}
		return nil
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unsupported output format %q", string(format))
}
