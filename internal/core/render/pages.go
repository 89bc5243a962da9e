package render

import "strings"

// PageRole identifies one of the generated client pages.
type PageRole string

const (
	PageIndex  PageRole = "index"
	PageShow   PageRole = "show"
	PageCreate PageRole = "create"
	PageEdit   PageRole = "edit"
)

// Client page stub tokens.
const (
	TokenResourceName = "DummyResourceName"
	TokenPrefix       = "DummyPrefix"
)

// IDSegment is the dynamic route directory holding the record pages.
const IDSegment = "[id]"

// PageRoles lists the client pages in generation order.
var PageRoles = []PageRole{PageIndex, PageShow, PageCreate, PageEdit}

// Page is a rendered client page with its path relative to the resource directory.
type Page struct {
	Role    PageRole
	RelPath string // slash separated
	Content string
}

// PagePath returns the slash separated path of a page inside the resource directory.
func PagePath(role PageRole) string {
	switch role {
	case PageShow:
		return IDSegment + "/index.vue"
	case PageEdit:
		return IDSegment + "/edit.vue"
	default:
		return string(role) + ".vue"
	}
}

// StripAPISegment removes the "api/" segment from a route prefix.
// e.g., "api/admin" -> "admin"
func StripAPISegment(prefix string) string {
	return strings.ReplaceAll(prefix, "api/", "")
}

// ClientPages renders the four client pages from their stubs.
// routePrefix is expected without its "api/" segment.
func ClientPages(stubs map[PageRole]string, resourcePath, routePrefix string) []Page {
	ctx := Context{
		TokenResourceName: resourcePath,
		TokenPrefix:       routePrefix,
	}

	pages := make([]Page, 0, len(PageRoles))
	for _, role := range PageRoles {
		pages = append(pages, Page{
			Role:    role,
			RelPath: PagePath(role),
			Content: Render(stubs[role], ctx),
		})
	}
	return pages
}
