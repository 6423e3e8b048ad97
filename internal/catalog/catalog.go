// Package catalog describes the content resources served by the admin API.
//
// A Schema is the single source of column names used to build SQL, so
// nothing coming from a request is ever interpolated into a query.
package catalog

import (
	"fmt"
	"sort"
)

type Kind int

const (
	Text Kind = iota
	Bool
	Int
	Date
	File
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Date:
		return "date"
	case File:
		return "file"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

const (
	ColumnID        = "id"
	ColumnCreatedAt = "created_at"
	ColumnUpdatedAt = "updated_at"
	ColumnSortOrder = "sort_order"
	ColumnIsActive  = "is_active"
)

type Column struct {
	Name string
	Kind Kind
	// Rules are go-playground/validator tags applied to the decoded value.
	Rules      string
	Required   bool
	Searchable bool
	Sortable   bool
	// Accept lists the MIME types allowed for File columns.
	Accept []string
}

type Schema struct {
	Name      string
	Table     string
	Columns   []Column
	Orderable bool
	// Toggles maps the URL toggle name to a Bool column.
	Toggles map[string]string

	index map[string]int
}

func (s *Schema) Column(name string) (Column, bool) {
	i, ok := s.index[name]
	if !ok {
		return Column{}, false
	}
	return s.Columns[i], true
}

// SelectColumns returns every column of the table in a stable order.
func (s *Schema) SelectColumns() []string {
	cols := make([]string, 0, len(s.Columns)+3)
	cols = append(cols, ColumnID)
	for _, c := range s.Columns {
		cols = append(cols, c.Name)
	}
	return append(cols, ColumnCreatedAt, ColumnUpdatedAt)
}

func (s *Schema) SearchColumns() []string {
	var cols []string
	for _, c := range s.Columns {
		if c.Searchable {
			cols = append(cols, c.Name)
		}
	}
	return cols
}

func (s *Schema) FileColumns() []string {
	var cols []string
	for _, c := range s.Columns {
		if c.Kind == File {
			cols = append(cols, c.Name)
		}
	}
	return cols
}

// Sortable reports whether records can be ordered by the column.
// id, created_at and updated_at are always sortable.
func (s *Schema) Sortable(name string) bool {
	switch name {
	case ColumnID, ColumnCreatedAt, ColumnUpdatedAt:
		return true
	}
	c, ok := s.Column(name)
	return ok && c.Sortable
}

func (s *Schema) HasActive() bool {
	c, ok := s.Column(ColumnIsActive)
	return ok && c.Kind == Bool
}

func (s *Schema) Toggle(name string) (string, bool) {
	col, ok := s.Toggles[name]
	return col, ok
}

// DefaultSort is sort_order ascending for orderable resources and newest
// first for everything else.
func (s *Schema) DefaultSort() (column string, desc bool) {
	if s.Orderable {
		return ColumnSortOrder, false
	}
	return ColumnCreatedAt, true
}

type Catalog struct {
	schemas map[string]*Schema
}

func New(schemas ...*Schema) (*Catalog, error) {
	const op = "catalog.New"

	c := &Catalog{schemas: make(map[string]*Schema, len(schemas))}
	for _, s := range schemas {
		if err := s.build(); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if _, ok := c.schemas[s.Name]; ok {
			return nil, fmt.Errorf("%s: duplicate resource %q", op, s.Name)
		}
		c.schemas[s.Name] = s
	}

	return c, nil
}

func MustNew(schemas ...*Schema) *Catalog {
	c, err := New(schemas...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Lookup(name string) (*Schema, bool) {
	s, ok := c.schemas[name]
	return s, ok
}

func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.schemas))
	for name := range c.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Schema) build() error {
	if s.Name == "" || s.Table == "" {
		return fmt.Errorf("resource without name or table")
	}

	s.index = make(map[string]int, len(s.Columns))
	for i, c := range s.Columns {
		switch c.Name {
		case ColumnID, ColumnCreatedAt, ColumnUpdatedAt:
			return fmt.Errorf("%s: column %q is managed automatically", s.Name, c.Name)
		}
		if _, ok := s.index[c.Name]; ok {
			return fmt.Errorf("%s: duplicate column %q", s.Name, c.Name)
		}
		if c.Kind == File && len(c.Accept) == 0 {
			return fmt.Errorf("%s: file column %q accepts nothing", s.Name, c.Name)
		}
		s.index[c.Name] = i
	}

	for name, col := range s.Toggles {
		c, ok := s.Column(col)
		if !ok || c.Kind != Bool {
			return fmt.Errorf("%s: toggle %q needs a bool column, got %q", s.Name, name, col)
		}
	}

	if s.Orderable {
		c, ok := s.Column(ColumnSortOrder)
		if !ok || c.Kind != Int {
			return fmt.Errorf("%s: orderable resource without int %s column", s.Name, ColumnSortOrder)
		}
	}

	return nil
}
