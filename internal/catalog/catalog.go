// Package catalog loads the filter catalog and the dataset it filters.
//
// A catalog file is YAML:
//
//	categories:
//	  - id: color
//	    label: Color
//	    options: [Red, Blue]
//	  - id: size
//	    label: Size
//	    options: [S, M, L]
//	items:
//	  - name: Trail shoe
//	    attributes:
//	      color: Red
//	      size: [M, L]
//
// Categories become [facet.Category] values for the drawer. Items are the
// dataset the selection owner filters with [Match].
package catalog

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/facetdrawer/internal/errors"
	"github.com/Iron-Ham/facetdrawer/internal/facet"
)

// Catalog is a loaded catalog file.
type Catalog struct {
	Path       string
	Categories []facet.Category
	Items      []Item
}

// Item is one record of the filtered dataset.
type Item struct {
	Name       string            `yaml:"name"`
	Attributes map[string]Values `yaml:"attributes"`
}

// Values is a list of option values. In YAML it may be written as a single
// scalar or as a sequence.
type Values []string

// UnmarshalYAML accepts either a scalar or a sequence of scalars.
func (v *Values) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*v = Values{node.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*v = list
		return nil
	default:
		return fmt.Errorf("line %d: expected a value or list of values", node.Line)
	}
}

type fileCategory struct {
	ID      string   `yaml:"id"`
	Label   string   `yaml:"label"`
	Options []string `yaml:"options"`
}

type file struct {
	Categories []fileCategory `yaml:"categories"`
	Items      []Item         `yaml:"items"`
}

// Load reads, parses and validates the catalog at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewCatalogError("cannot read catalog", errors.ErrCatalogNotFound).WithPath(path)
		}
		return nil, errors.NewCatalogError("cannot read catalog", err).WithPath(path)
	}

	c, err := Parse(data)
	if err != nil {
		var ce *errors.CatalogError
		if errors.As(err, &ce) {
			return nil, ce.WithPath(path)
		}
		return nil, err
	}
	c.Path = path
	return c, nil
}

// Parse decodes and validates catalog YAML. Labels default to the category ID.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.NewCatalogError("invalid YAML", err)
	}

	c := &Catalog{
		Categories: make([]facet.Category, 0, len(f.Categories)),
		Items:      f.Items,
	}
	for _, fc := range f.Categories {
		label := strings.TrimSpace(fc.Label)
		if label == "" {
			label = fc.ID
		}
		c.Categories = append(c.Categories, facet.Category{
			ID:      strings.TrimSpace(fc.ID),
			Label:   label,
			Options: fc.Options,
		})
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks category identity and item references. All problems are
// reported together, wrapped in a CatalogError matching ErrCatalogInvalid.
func (c *Catalog) Validate() error {
	if len(c.Categories) == 0 {
		return errors.NewCatalogError("no categories defined", errors.ErrCatalogEmpty).WithPath(c.Path)
	}

	var problems []error
	seen := make(map[string]bool, len(c.Categories))
	for i, cat := range c.Categories {
		field := fmt.Sprintf("categories[%d]", i)
		if cat.ID == "" {
			problems = append(problems, errors.NewValidationError("category id is empty").WithField(field+".id"))
			continue
		}
		if strings.Contains(cat.ID, "=") || strings.TrimSpace(cat.ID) != cat.ID {
			problems = append(problems, errors.NewValidationError("category id cannot be written as a selector").
				WithField(field+".id").WithValue(cat.ID))
		}
		if seen[cat.ID] {
			problems = append(problems, errors.NewValidationError("duplicate category id").WithField(field+".id").WithValue(cat.ID))
		}
		seen[cat.ID] = true

		// Selectors split values on commas and match them case-insensitively.
		opts := make(map[string]bool, len(cat.Options))
		for _, opt := range cat.Options {
			if opt == "" || strings.Contains(opt, ",") || strings.TrimSpace(opt) != opt {
				problems = append(problems, errors.NewValidationError("option cannot be written as a selector").
					WithField(field+".options").WithValue(opt))
			}
			key := strings.ToLower(opt)
			if opts[key] {
				problems = append(problems, errors.NewValidationError("duplicate option").WithField(field+".options").WithValue(opt))
			}
			opts[key] = true
		}
	}

	for i, item := range c.Items {
		for id, values := range item.Attributes {
			cat, ok := c.Category(id)
			if !ok {
				problems = append(problems, errors.NewValidationError("item references unknown category").
					WithField(fmt.Sprintf("items[%d].attributes", i)).WithValue(id))
				continue
			}
			for _, v := range values {
				if !slices.Contains(cat.Options, v) {
					problems = append(problems, errors.NewValidationError("item value is not an option of its category").
						WithField(fmt.Sprintf("items[%d].attributes.%s", i, id)).WithValue(v))
				}
			}
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return errors.NewCatalogError(fmt.Sprintf("%d problem(s)", len(problems)),
		errors.Join(append([]error{errors.ErrCatalogInvalid}, problems...)...)).WithPath(c.Path)
}

// Category looks up a category by ID.
func (c *Catalog) Category(id string) (facet.Category, bool) {
	return facet.FindCategory(c.Categories, id)
}

// IDs returns the category IDs in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.Categories))
	for _, cat := range c.Categories {
		ids = append(ids, cat.ID)
	}
	return ids
}
