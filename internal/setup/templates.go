package setup

import (
	"strings"

	"github.com/AMGSoya/lmu-setup-generator-sub000/pkg/embedded"
)

// Canonical vehicle categories. The set is closed: every category the
// form can offer resolves to exactly one template below.
const (
	CategoryHypercar = "Hypercar"
	CategoryLMP2     = "LMP2"
	CategoryGT3      = "GT3"
	CategoryGTE      = "GTE"
)

// categorySynonyms maps alternate spellings onto canonical categories.
// Aliases are additive data; adding one must never require new code.
var categorySynonyms = map[string]string{
	"LMGT3": CategoryGT3,
	"LMH":   CategoryHypercar,
}

// TemplateSet is the immutable category-to-template catalog, built once
// at process start and safe for unsynchronized concurrent reads.
type TemplateSet struct {
	templates map[string]string
}

// NewTemplateSet loads the embedded category templates.
func NewTemplateSet() *TemplateSet {
	return &TemplateSet{
		templates: map[string]string{
			CategoryHypercar: strings.TrimSpace(string(embedded.HypercarTemplateSvm)),
			CategoryLMP2:     strings.TrimSpace(string(embedded.LMP2TemplateSvm)),
			CategoryGT3:      strings.TrimSpace(string(embedded.GT3TemplateSvm)),
			CategoryGTE:      strings.TrimSpace(string(embedded.GTETemplateSvm)),
		},
	}
}

// Categories returns the canonical category names.
func (s *TemplateSet) Categories() []string {
	return []string{CategoryHypercar, CategoryLMP2, CategoryGT3, CategoryGTE}
}

// Canonical resolves a requested category (exact or synonym) to its
// canonical name. The lookup is case-insensitive on the synonym table
// key as well as the canonical names.
func (s *TemplateSet) Canonical(category string) (string, bool) {
	trimmed := strings.TrimSpace(category)
	if _, ok := s.templates[trimmed]; ok {
		return trimmed, true
	}
	for name := range s.templates {
		if strings.EqualFold(name, trimmed) {
			return name, true
		}
	}
	for alias, canonical := range categorySynonyms {
		if strings.EqualFold(alias, trimmed) {
			return canonical, true
		}
	}
	return "", false
}

// Resolve returns the example setup text for a requested category,
// applying synonym resolution. A category outside the fixed set yields
// a CategoryError naming the unresolved category.
func (s *TemplateSet) Resolve(category string) (string, error) {
	canonical, ok := s.Canonical(category)
	if !ok {
		return "", &CategoryError{Category: category}
	}
	return s.templates[canonical], nil
}
