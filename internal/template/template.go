// Package template holds the vendor profiles and the dispatcher that picks
// one for a document. A template is a keyword gate plus the extraction rules
// for that vendor's layout; profiles are independent, testable units
// evaluated in a fixed priority order.
package template

import (
	"fmt"
	"strings"

	"github.com/luis-carvajal/invoice-extractor/internal/assemble"
	"github.com/luis-carvajal/invoice-extractor/internal/common"
)

// Template is one vendor profile.
type Template interface {
	// Name identifies the profile in logs, job rows and config overrides.
	Name() string
	// CanHandle reports whether every required keyword occurs in the text.
	CanHandle(text string) bool
	// Extract runs the profile's field-extraction rules. Optional fields
	// that cannot be located are omitted from the fragments, never errors.
	Extract(text string) (assemble.Fragments, error)
}

// keywordGate implements the shared applicability rule: all keywords must
// occur as case-insensitive substrings anywhere in the text.
type keywordGate []string

func (g keywordGate) match(text string) bool {
	lower := strings.ToLower(text)
	for _, k := range g {
		if !strings.Contains(lower, strings.ToLower(k)) {
			return false
		}
	}
	return len(g) > 0
}

// Registry is an ordered list of templates. Order is priority: the first
// match wins.
type Registry struct {
	templates []Template
}

// NewRegistry returns a registry with the built-in profiles in their default
// priority order (most specific first).
func NewRegistry(defaultCurrency string) *Registry {
	return &Registry{templates: []Template{
		NewLearTemplate(),
		NewGenericTemplate(defaultCurrency),
	}}
}

// Register appends a template at the lowest priority.
func (r *Registry) Register(t Template) {
	r.templates = append(r.templates, t)
}

// Templates returns the evaluation order.
func (r *Registry) Templates() []Template {
	return r.templates
}

// Select returns the first template whose keyword gate matches. The engine
// never guesses a default vendor format: no match is an error.
func (r *Registry) Select(text string) (Template, error) {
	for _, t := range r.templates {
		if t.CanHandle(text) {
			return t, nil
		}
	}
	return nil, fmt.Errorf("select template: %w", common.ErrTemplateNotFound)
}
