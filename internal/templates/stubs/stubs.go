// Package stubs provides the embedded templates rendered by the generator.
package stubs

import (
	"embed"
	"fmt"

	"github.com/example/crudgen/internal/core/render"
)

//go:embed *.stub client_pages/*.stub
var stubFiles embed.FS

// Stub names.
const (
	NameController   = "controller"
	NameBlank        = "blank"
	NameTranslations = "translations"
)

// required lists the placeholders every stub must carry.
var required = map[string][]string{
	NameController: {
		render.TokenNamespace, render.TokenClass, render.TokenName, render.TokenModelNamespace,
		render.TokenTitle, render.TokenModel, render.TokenGrid, render.TokenShow, render.TokenForm,
	},
	NameBlank:        {render.TokenNamespace, render.TokenClass, render.TokenTitle},
	NameTranslations: {render.TokenTitle, render.TokenLowerTitles, render.TokenLabels},
}

// pageRequired lists the placeholders of every client page stub.
var pageRequired = []string{render.TokenResourceName, render.TokenPrefix}

// Get returns the content of a top-level stub.
func Get(name string) (string, error) {
	content, err := stubFiles.ReadFile(name + ".stub")
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// GetController returns the controller stub.
func GetController() (string, error) {
	return Get(NameController)
}

// GetBlank returns the model-less controller stub.
func GetBlank() (string, error) {
	return Get(NameBlank)
}

// GetTranslations returns the label file stub.
func GetTranslations() (string, error) {
	return Get(NameTranslations)
}

// GetPage returns the client page stub for role.
func GetPage(role render.PageRole) (string, error) {
	content, err := stubFiles.ReadFile("client_pages/" + string(role) + ".stub")
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// GetPages returns every client page stub keyed by role.
func GetPages() (map[render.PageRole]string, error) {
	pages := make(map[render.PageRole]string, len(render.PageRoles))
	for _, role := range render.PageRoles {
		content, err := GetPage(role)
		if err != nil {
			return nil, err
		}
		pages[role] = content
	}
	return pages, nil
}

// Required returns the placeholders a top-level stub must contain.
func Required(name string) []string {
	return append([]string(nil), required[name]...)
}

// Validate checks that every embedded stub carries its placeholders.
func Validate() error {
	for name, tokens := range required {
		content, err := Get(name)
		if err != nil {
			return fmt.Errorf("stub %s: %w", name, err)
		}
		if missing := render.Missing(content, tokens); len(missing) > 0 {
			return fmt.Errorf("stub %s lacks placeholders %v", name, missing)
		}
	}

	for _, role := range render.PageRoles {
		content, err := GetPage(role)
		if err != nil {
			return fmt.Errorf("page stub %s: %w", role, err)
		}
		if missing := render.Missing(content, pageRequired); len(missing) > 0 {
			return fmt.Errorf("page stub %s lacks placeholders %v", role, missing)
		}
	}
	return nil
}
