package models

// Default column names used when a registry entry leaves them blank.
const (
	DefaultPrimaryKey       = "id"
	DefaultCreatedAtColumn  = "created_at"
	DefaultUpdatedAtColumn  = "updated_at"
	DefaultSoftDeleteColumn = "deleted_at"
)

// ModelDescriptor is a registry entry for a data model.
type ModelDescriptor struct {
	Identifier       string // Fully qualified, e.g. `App\Models\User`
	ShortName        string // "User"
	Table            string // May be schema-qualified: "crm.users"
	PrimaryKey       string
	CreatedAtColumn  string // Empty when the model has no timestamps
	UpdatedAtColumn  string
	SoftDeleteColumn string
	Connection       string // Named connection, empty for the default one
}

// ReservedColumns returns the columns excluded from generated field blocks.
func (m ModelDescriptor) ReservedColumns() map[string]bool {
	reserved := make(map[string]bool, 4)
	for _, col := range []string{m.PrimaryKey, m.CreatedAtColumn, m.UpdatedAtColumn, m.SoftDeleteColumn} {
		if col != "" {
			reserved[col] = true
		}
	}
	return reserved
}

// ResourceDescriptor carries every name derived from the target model.
type ResourceDescriptor struct {
	ModelIdentifier  string
	ShortName        string // "BlogPost"
	ResourceName     string // "blogpost"
	Title            string // "BlogPost" or --title
	SnakeTitle       string // "blog_post"
	TranslationTitle string // "Blogpost"
	PluralTitleLower string // "blogposts"
	ControllerName   string // "BlogPostController"
	Namespace        string // `App\Admin\Controllers`
	ResourcePath     string // "blog-posts"
}
