// Package naming derives every generated name from a model identifier.
// This is part of the Functional Core - no I/O, only pure functions.
package naming

import (
	"path"
	"strings"
	"unicode"

	"github.com/jinzhu/inflection"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/example/crudgen/internal/models"
)

// ResourceOptions are the caller overrides applied on top of derived names.
type ResourceOptions struct {
	Title          string
	ControllerName string
	Namespace      string
}

// ResolveResource builds the ResourceDescriptor for a registered model.
func ResolveResource(model models.ModelDescriptor, opts ResourceOptions) models.ResourceDescriptor {
	short := model.ShortName
	if short == "" {
		short = ShortName(model.Identifier)
	}
	resource := strings.ToLower(short)

	title := opts.Title
	if title == "" {
		title = short
	}
	controller := opts.ControllerName
	if controller == "" {
		controller = short + "Controller"
	}

	translationTitle := Headline(resource)

	return models.ResourceDescriptor{
		ModelIdentifier:  model.Identifier,
		ShortName:        short,
		ResourceName:     resource,
		Title:            title,
		SnakeTitle:       ToSnakeCase(title),
		TranslationTitle: translationTitle,
		PluralTitleLower: strings.ToLower(Pluralize(translationTitle)),
		ControllerName:   controller,
		Namespace:        opts.Namespace,
		ResourcePath:     Pluralize(ToKebabCase(short)),
	}
}

// NormalizeIdentifier cleans a class-like identifier typed on a shell:
// doubled backslashes collapse and a leading backslash is dropped.
// e.g., `\\App\\Models\\User` -> `App\Models\User`
func NormalizeIdentifier(identifier string) string {
	id := strings.TrimSpace(identifier)
	for strings.Contains(id, `\\`) {
		id = strings.ReplaceAll(id, `\\`, `\`)
	}
	return strings.TrimPrefix(id, `\`)
}

// ShortName returns the last segment of a qualified identifier.
// e.g., `App\Models\BlogPost` -> "BlogPost"
func ShortName(identifier string) string {
	id := NormalizeIdentifier(identifier)
	if i := strings.LastIndexAny(id, `\/`); i >= 0 {
		return id[i+1:]
	}
	return id
}

// SplitTableIdentifier splits "schema.table" on the first separator.
// An unqualified name returns an empty schema.
func SplitTableIdentifier(identifier string) (schema, table string) {
	if before, after, ok := strings.Cut(identifier, "."); ok {
		return before, after
	}
	return "", identifier
}

// DefaultTableName returns the conventional table for a model short name.
// e.g., "BlogPost" -> "blog_posts"
func DefaultTableName(shortName string) string {
	return Pluralize(ToSnakeCase(shortName))
}

// NamespacePath maps a namespace onto a directory using a PSR-4 style root.
// e.g., (`App\Admin\Controllers`, "App", "app") -> "app/Admin/Controllers"
func NamespacePath(namespace, rootNamespace, rootPath string) string {
	ns := strings.Trim(NormalizeIdentifier(namespace), `\`)
	root := strings.Trim(NormalizeIdentifier(rootNamespace), `\`)

	if root != "" && (ns == root || strings.HasPrefix(ns, root+`\`)) {
		ns = strings.TrimPrefix(strings.TrimPrefix(ns, root), `\`)
	}
	return path.Join(rootPath, strings.ReplaceAll(ns, `\`, "/"))
}

// Name transformation helpers

// ToSnakeCase converts a string to snake_case.
func ToSnakeCase(s string) string {
	return joinLower(s, "_")
}

// ToKebabCase converts a string to kebab-case.
func ToKebabCase(s string) string {
	return joinLower(s, "-")
}

func joinLower(s, sep string) string {
	words := splitWords(s)
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return strings.Join(words, sep)
}

// Headline converts a string to space separated title case words.
// e.g., "user_email" -> "User Email", "createdAt" -> "Created At"
func Headline(s string) string {
	caser := cases.Title(language.English)
	words := splitWords(s)
	for i, word := range words {
		words[i] = caser.String(word)
	}
	return strings.Join(words, " ")
}

// Pluralize returns the English plural of the last word in s.
func Pluralize(s string) string {
	if s == "" {
		return s
	}
	return inflection.Plural(s)
}

// splitWords splits a string into words (handles camelCase, PascalCase, snake_case, kebab-case).
func splitWords(s string) []string {
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")

	// Insert space before uppercase letters in camelCase/PascalCase
	var result strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			if !unicode.IsSpace(prev) && !unicode.IsUpper(prev) {
				result.WriteRune(' ')
			}
		}
		result.WriteRune(r)
	}

	return strings.Fields(result.String())
}
