package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hearthkeep/hearthkeep/internal/model"
)

var validate = validator.New()

// rulesByKind lists the required attribute keys per kind. Optional keys
// are not enumerated; unknown keys pass through untouched.
var rulesByKind = map[model.Kind]map[string]any{
	model.KindMemory:       {"title": "required", "content": "required", "author": "required", "date": "required"},
	model.KindEvent:        {"title": "required", "date": "required"},
	model.KindFamilyMember: {"name": "required"},
	model.KindStory:        {"title": "required", "content": "required", "author": "required", "date": "required"},
	model.KindProfile:      {"name": "required"},
	model.KindTheme:        {"theme": "required"},
}

// validateAttributes enforces the per-kind required keys before any
// network call. A failure is model.ErrValidation and nothing has been
// partially applied.
func validateAttributes(kind model.Kind, attrs model.Attributes) error {
	rules, ok := rulesByKind[kind]
	if !ok {
		return nil
	}
	errs := validate.ValidateMap(map[string]any(attrs), rules)
	if len(errs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Errorf("%w: %s requires %s", model.ErrValidation, kind, strings.Join(keys, ", "))
}
