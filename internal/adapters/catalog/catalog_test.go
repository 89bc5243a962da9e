package catalog_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/crudgen/internal/adapters/catalog"
	"github.com/example/crudgen/internal/config"
	"github.com/example/crudgen/internal/models"
)

func boolPtr(b bool) *bool { return &b }

func TestDescribe(t *testing.T) {
	tests := []struct {
		name  string
		entry config.ModelConfig
		want  models.ModelDescriptor
	}{
		{
			name:  "conventional defaults",
			entry: config.ModelConfig{Identifier: `App\Models\BlogPost`},
			want: models.ModelDescriptor{
				Identifier:       `App\Models\BlogPost`,
				ShortName:        "BlogPost",
				Table:            "blog_posts",
				PrimaryKey:       "id",
				CreatedAtColumn:  "created_at",
				UpdatedAtColumn:  "updated_at",
				SoftDeleteColumn: "deleted_at",
			},
		},
		{
			name: "explicit columns and connection",
			entry: config.ModelConfig{
				Identifier: `\App\Models\Report`,
				Table:      "crm.monthly_reports",
				PrimaryKey: "report_id",
				CreatedAt:  "inserted_at",
				SoftDelete: "archived_at",
				Connection: "Reporting",
			},
			want: models.ModelDescriptor{
				Identifier:       `App\Models\Report`,
				ShortName:        "Report",
				Table:            "crm.monthly_reports",
				PrimaryKey:       "report_id",
				CreatedAtColumn:  "inserted_at",
				UpdatedAtColumn:  "updated_at",
				SoftDeleteColumn: "archived_at",
				Connection:       "reporting",
			},
		},
		{
			name:  "timestamps disabled",
			entry: config.ModelConfig{Identifier: `App\Models\Setting`, Timestamps: boolPtr(false)},
			want: models.ModelDescriptor{
				Identifier:       `App\Models\Setting`,
				ShortName:        "Setting",
				Table:            "settings",
				PrimaryKey:       "id",
				SoftDeleteColumn: "deleted_at",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.Describe(tt.entry))
		})
	}
}

func TestCatalog_Lookup(t *testing.T) {
	c, err := catalog.New([]config.ModelConfig{
		{Identifier: `App\Models\User`},
		{Identifier: `App\Models\Category`},
	})
	require.NoError(t, err)

	for _, id := range []string{`App\Models\User`, `\App\Models\User`, `App\\Models\\User`, `app\models\user`} {
		t.Run(id, func(t *testing.T) {
			d, err := c.Lookup(id)
			require.NoError(t, err)
			assert.Equal(t, "users", d.Table)
		})
	}

	_, err = c.Lookup(`App\Models\Ghost`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrInvalidModel))
	assert.Contains(t, err.Error(), `App\Models\Ghost`)
}

func TestCatalog_List(t *testing.T) {
	c, err := catalog.New([]config.ModelConfig{
		{Identifier: `App\Models\User`},
		{Identifier: `App\Models\Category`},
	})
	require.NoError(t, err)

	list := c.List()
	require.Len(t, list, 2)
	assert.Equal(t, `App\Models\Category`, list[0].Identifier)
	assert.Equal(t, "categories", list[0].Table)
}

func TestCatalog_DuplicateRejected(t *testing.T) {
	_, err := catalog.New([]config.ModelConfig{
		{Identifier: `App\Models\User`},
		{Identifier: `\App\Models\User`},
	})
	require.Error(t, err)
}
