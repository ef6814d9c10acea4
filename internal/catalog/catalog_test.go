package catalog

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/Iron-Ham/facetdrawer/internal/errors"
)

const shopYAML = `
categories:
  - id: color
    label: Color
    options: [Red, Blue]
  - id: size
    label: Size
    options: [S, M, L]
  - id: brand
    options: [Acme]
items:
  - name: Trail shoe
    attributes:
      color: Red
      size: [M, L]
  - name: Rain jacket
    attributes:
      color: Blue
      size: S
      brand: Acme
  - name: Plain tee
    attributes:
      size: [S, M, L]
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(shopYAML))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if got := c.IDs(); !slices.Equal(got, []string{"color", "size", "brand"}) {
		t.Errorf("IDs() = %v", got)
	}

	size, ok := c.Category("size")
	if !ok {
		t.Fatal("size category missing")
	}
	if !slices.Equal(size.Options, []string{"S", "M", "L"}) {
		t.Errorf("size options = %v, want declared order", size.Options)
	}

	brand, _ := c.Category("brand")
	if brand.Label != "brand" {
		t.Errorf("missing label should default to id, got %q", brand.Label)
	}

	if len(c.Items) != 3 {
		t.Fatalf("len(Items) = %d, want 3", len(c.Items))
	}
	if got := c.Items[0].Attributes["color"]; !slices.Equal(got, []string{"Red"}) {
		t.Errorf("scalar attribute = %v, want [Red]", got)
	}
	if got := c.Items[0].Attributes["size"]; !slices.Equal(got, []string{"M", "L"}) {
		t.Errorf("list attribute = %v, want [M L]", got)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		sentinel error
		contains string
	}{
		{
			name:     "malformed yaml",
			yaml:     "categories: [",
			contains: "invalid YAML",
		},
		{
			name:     "no categories",
			yaml:     "categories: []",
			sentinel: errors.ErrCatalogEmpty,
		},
		{
			name: "duplicate id",
			yaml: `categories:
  - {id: color, options: [Red]}
  - {id: color, options: [Blue]}`,
			sentinel: errors.ErrCatalogInvalid,
			contains: "duplicate category id",
		},
		{
			name:     "empty id",
			yaml:     `categories: [{id: "", options: [Red]}]`,
			sentinel: errors.ErrCatalogInvalid,
			contains: "category id is empty",
		},
		{
			name:     "duplicate option",
			yaml:     `categories: [{id: color, options: [Red, Red]}]`,
			sentinel: errors.ErrCatalogInvalid,
			contains: "duplicate option",
		},
		{
			name:     "option with a comma",
			yaml:     `categories: [{id: size, options: ["S", "M,L"]}]`,
			sentinel: errors.ErrCatalogInvalid,
			contains: "option cannot be written as a selector",
		},
		{
			name:     "option with surrounding space",
			yaml:     `categories: [{id: size, options: ["S", " M"]}]`,
			sentinel: errors.ErrCatalogInvalid,
			contains: "option cannot be written as a selector",
		},
		{
			name:     "options differing only in case",
			yaml:     `categories: [{id: color, options: [Red, red]}]`,
			sentinel: errors.ErrCatalogInvalid,
			contains: "duplicate option",
		},
		{
			name:     "id with an equals sign",
			yaml:     `categories: [{id: "a=b", options: [Red]}]`,
			sentinel: errors.ErrCatalogInvalid,
			contains: "category id cannot be written as a selector",
		},
		{
			name: "item with unknown category",
			yaml: `categories: [{id: color, options: [Red]}]
items: [{name: x, attributes: {shape: round}}]`,
			sentinel: errors.ErrCatalogInvalid,
			contains: "unknown category",
		},
		{
			name: "item with unknown option",
			yaml: `categories: [{id: color, options: [Red]}]
items: [{name: x, attributes: {color: Green}}]`,
			sentinel: errors.ErrCatalogInvalid,
			contains: "not an option",
		},
		{
			name: "attribute is a mapping",
			yaml: `categories: [{id: color, options: [Red]}]
items: [{name: x, attributes: {color: {a: b}}}]`,
			contains: "expected a value or list",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			var ce *errors.CatalogError
			if !errors.As(err, &ce) {
				t.Errorf("expected CatalogError, got %T", err)
			}
			if tt.sentinel != nil && !errors.Is(err, tt.sentinel) {
				t.Errorf("error %v does not match %v", err, tt.sentinel)
			}
			if tt.contains != "" && !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.contains)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(path, []byte(shopYAML), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if c.Path != path {
		t.Errorf("Path = %q, want %q", c.Path, path)
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.yaml"))
		if !errors.Is(err, errors.ErrCatalogNotFound) {
			t.Errorf("expected ErrCatalogNotFound, got %v", err)
		}
	})

	t.Run("invalid file carries path", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(bad, []byte("categories: []"), 0644); err != nil {
			t.Fatal(err)
		}
		_, err := Load(bad)
		var ce *errors.CatalogError
		if !errors.As(err, &ce) || ce.Path != bad {
			t.Errorf("expected CatalogError with path %q, got %v", bad, err)
		}
	})
}
