package search

import (
	"sort"

	"gitlabsearch/internal/domain"
	models "gitlabsearch/internal/domain/models/search"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// optionRule describes how one search option is checked and rendered
type optionRule struct {
	kind      models.Kind
	allowed   []string // empty = any value of the right kind
	normalize func(models.Value) string
}

var scopes = []string{
	models.ScopeProjects,
	models.ScopeIssues,
	models.ScopeMergeRequests,
	models.ScopeMilestones,
	models.ScopeSnippetTitles,
	models.ScopeUsers,
}

// optionSchema is the complete set of options accepted by the search endpoint.
// Never mutated after init.
var optionSchema = map[string]optionRule{
	"confidential": {kind: models.KindBool, normalize: normalizeBool},
	"scope":        {kind: models.KindString, allowed: scopes, normalize: identity},
	"search":       {kind: models.KindString, normalize: identity},
	"order_by":     {kind: models.KindString, allowed: []string{models.OrderByCreatedAt}, normalize: identity},
	"sort":         {kind: models.KindString, allowed: []string{models.SortAsc, models.SortDesc}, normalize: identity},
}

// definedOptions is the sorted list of schema keys, used in error messages
var definedOptions = func() []string {
	names := make([]string, 0, len(optionSchema))
	for name := range optionSchema {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}()

func normalizeBool(v models.Value) string {
	b, _ := v.AsBool()
	if b {
		return "true"
	}
	return "false"
}

func identity(v models.Value) string {
	return v.String()
}

// DefinedOptions returns the names of all accepted options in sorted order
func DefinedOptions() []string {
	out := make([]string, len(definedOptions))
	copy(out, definedOptions)
	return out
}

// Validate checks params against the option schema and returns the
// normalized query. Checks run in three passes (unknown names, then kinds,
// then allowed values) over sorted keys, so the reported error is the same
// for the same input. Keys absent from params are absent from the result.
func Validate(params models.Params) (models.Query, error) {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, ok := optionSchema[name]; !ok {
			return nil, &domain.UnknownOptionError{Name: name, Defined: DefinedOptions()}
		}
	}

	for _, name := range names {
		rule := optionSchema[name]
		if kind := params[name].Kind(); kind != rule.kind {
			return nil, &domain.TypeMismatchError{
				Name:     name,
				Expected: rule.kind.String(),
				Actual:   kind.String(),
			}
		}
	}

	for _, name := range names {
		rule := optionSchema[name]
		if len(rule.allowed) == 0 {
			continue
		}
		if err := validateAllowed(params[name], rule.allowed); err != nil {
			return nil, &domain.InvalidValueError{
				Name:    name,
				Value:   params[name].String(),
				Allowed: append([]string(nil), rule.allowed...),
			}
		}
	}

	query := make(models.Query, len(names))
	for _, name := range names {
		query[name] = optionSchema[name].normalize(params[name])
	}
	return query, nil
}

// validateAllowed rejects values outside allowed. Required is needed since
// In treats the empty string as valid.
func validateAllowed(v models.Value, allowed []string) error {
	elements := make([]interface{}, len(allowed))
	for i, a := range allowed {
		elements[i] = a
	}
	return validation.Validate(v.String(),
		validation.Required,
		validation.In(elements...),
	)
}
