package setup

import (
	"errors"
	"strings"
	"testing"
)

func TestTemplateSetCategories(t *testing.T) {
	set := NewTemplateSet()
	categories := set.Categories()
	if len(categories) != 4 {
		t.Fatalf("Categories() returned %d entries, want 4", len(categories))
	}
}

// Every canonical category and every declared synonym must resolve to a
// non-empty template.
func TestTemplateSetResolveTotal(t *testing.T) {
	set := NewTemplateSet()

	var names []string
	names = append(names, set.Categories()...)
	for alias := range categorySynonyms {
		names = append(names, alias)
	}

	for _, name := range names {
		template, err := set.Resolve(name)
		if err != nil {
			t.Errorf("Resolve(%q) returned error: %v", name, err)
			continue
		}
		if !strings.HasPrefix(template, "[GENERAL]") {
			t.Errorf("Resolve(%q) template does not start with [GENERAL]", name)
		}
	}
}

func TestTemplateSetResolveCaseInsensitive(t *testing.T) {
	set := NewTemplateSet()

	for _, name := range []string{"hypercar", "LMP2", "gt3", "lmgt3", "lmh"} {
		if _, err := set.Resolve(name); err != nil {
			t.Errorf("Resolve(%q) returned error: %v", name, err)
		}
	}
}

func TestTemplateSetSynonyms(t *testing.T) {
	set := NewTemplateSet()

	gt3, err := set.Resolve(CategoryGT3)
	if err != nil {
		t.Fatalf("Resolve(GT3) returned error: %v", err)
	}
	aliased, err := set.Resolve("LMGT3")
	if err != nil {
		t.Fatalf("Resolve(LMGT3) returned error: %v", err)
	}
	if gt3 != aliased {
		t.Error("LMGT3 does not resolve to the GT3 template")
	}

	hypercar, err := set.Resolve(CategoryHypercar)
	if err != nil {
		t.Fatalf("Resolve(Hypercar) returned error: %v", err)
	}
	aliased, err = set.Resolve("LMH")
	if err != nil {
		t.Fatalf("Resolve(LMH) returned error: %v", err)
	}
	if hypercar != aliased {
		t.Error("LMH does not resolve to the Hypercar template")
	}
}

func TestTemplateSetResolveUnknown(t *testing.T) {
	set := NewTemplateSet()

	_, err := set.Resolve("Group C")
	var categoryErr *CategoryError
	if !errors.As(err, &categoryErr) {
		t.Fatalf("Resolve(unknown) error = %v, want *CategoryError", err)
	}
	if !strings.Contains(categoryErr.Error(), "Group C") {
		t.Errorf("CategoryError.Error() = %q, want the requested category named", categoryErr.Error())
	}
}
