package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Equal(t, []string{
		"applications", "banners", "blogs", "courses", "faqs",
		"galleries", "resources", "services", "updates", "videos",
	}, c.Names())

	_, ok := c.Lookup("nope")
	assert.False(t, ok)
}

func TestSchemaColumns(t *testing.T) {
	s, ok := Default().Lookup("faqs")
	require.True(t, ok)

	assert.Equal(t, []string{"id", "question", "answer", "is_active", "sort_order", "created_at", "updated_at"}, s.SelectColumns())
	assert.Equal(t, []string{"question", "answer"}, s.SearchColumns())
	assert.Empty(t, s.FileColumns())
	assert.True(t, s.HasActive())

	col, desc := s.DefaultSort()
	assert.Equal(t, ColumnSortOrder, col)
	assert.False(t, desc)
}

func TestFileColumnsRejectActiveContent(t *testing.T) {
	c := Default()
	for _, name := range c.Names() {
		s, _ := c.Lookup(name)
		for _, file := range s.FileColumns() {
			col, _ := s.Column(file)
			assert.NotEmpty(t, col.Accept, "%s.%s", name, file)
			assert.NotContains(t, col.Accept, "image/svg+xml", "%s.%s", name, file)
			assert.NotContains(t, col.Accept, "text/html", "%s.%s", name, file)
		}
	}
}

func TestSchemaSortable(t *testing.T) {
	s := Banners()
	require.NoError(t, s.build())

	assert.True(t, s.Sortable("id"))
	assert.True(t, s.Sortable("created_at"))
	assert.True(t, s.Sortable("title"))
	assert.False(t, s.Sortable("image"))
	assert.False(t, s.Sortable("title; DROP TABLE banners"))
}

func TestSchemaToggle(t *testing.T) {
	s, ok := Default().Lookup("banners")
	require.True(t, ok)

	col, ok := s.Toggle("mobile")
	assert.True(t, ok)
	assert.Equal(t, "show_on_mobile", col)

	s, ok = Default().Lookup("videos")
	require.True(t, ok)
	_, ok = s.Toggle("mobile")
	assert.False(t, ok)
}

func TestNewRejectsBrokenSchemas(t *testing.T) {
	cases := []struct {
		name   string
		schema *Schema
	}{
		{
			name:   "managed column",
			schema: &Schema{Name: "x", Table: "x", Columns: []Column{{Name: "id", Kind: Int}}},
		},
		{
			name:   "duplicate column",
			schema: &Schema{Name: "x", Table: "x", Columns: []Column{{Name: "a"}, {Name: "a"}}},
		},
		{
			name:   "file without accept list",
			schema: &Schema{Name: "x", Table: "x", Columns: []Column{{Name: "f", Kind: File}}},
		},
		{
			name: "toggle on text column",
			schema: &Schema{
				Name: "x", Table: "x",
				Columns: []Column{{Name: "a", Kind: Text}},
				Toggles: map[string]string{"a": "a"},
			},
		},
		{
			name:   "orderable without sort_order",
			schema: &Schema{Name: "x", Table: "x", Orderable: true},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.schema)
			assert.Error(t, err)
		})
	}

	_, err := New(Videos(), Videos())
	assert.ErrorContains(t, err, "duplicate resource")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "file", File.String())
	assert.Equal(t, "kind(42)", Kind(42).String())
}
