// Package classify maps column descriptors to UI field specs.
// This is part of the Functional Core - no I/O, only pure functions.
package classify

import (
	"slices"
	"strings"

	"github.com/example/crudgen/internal/core/naming"
	"github.com/example/crudgen/internal/models"
)

// Classify derives the FieldSpec for a column of the given resource.
func Classify(resource string, col models.ColumnDescriptor) models.FieldSpec {
	rule := matchNativeRule(col.NativeType)

	kind := rule.Kind
	if rule.ByName {
		kind = KindForName(col.Name, kind)
	}

	return models.FieldSpec{
		Column:         col.Name,
		Kind:           kind,
		DefaultLiteral: rule.Default(col),
		LabelKey:       LabelKey(resource, col.Name),
	}
}

// ClassifyAll classifies columns in descriptor order.
func ClassifyAll(resource string, cols []models.ColumnDescriptor) []models.FieldSpec {
	specs := make([]models.FieldSpec, 0, len(cols))
	for _, col := range cols {
		specs = append(specs, Classify(resource, col))
	}
	return specs
}

// KindForName applies the name rules to a string column.
// A rule matches the whole column name or its final word, so both
// "email" and "user_email" are emails while "emailed" is not.
func KindForName(name string, fallback models.FieldKind) models.FieldKind {
	candidates := []string{name}
	snake := naming.ToSnakeCase(name)
	if i := strings.LastIndexByte(snake, '_'); i >= 0 {
		candidates = append(candidates, snake[i+1:])
	}

	for _, rule := range nameRules {
		for _, c := range candidates {
			if rule.Matches(c) {
				return rule.Kind
			}
		}
	}
	return fallback
}

// LabelKey returns the translation key for a column.
func LabelKey(resource, column string) string {
	return resource + "." + naming.ToSnakeCase(column)
}

func matchNativeRule(t models.NativeType) NativeRule {
	for _, rule := range nativeRules {
		if slices.Contains(rule.Types, t) {
			return rule
		}
	}
	return fallbackRule
}
