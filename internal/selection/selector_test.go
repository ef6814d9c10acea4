package selection

import (
	"slices"
	"testing"

	"github.com/Iron-Ham/facetdrawer/internal/catalog"
	"github.com/Iron-Ham/facetdrawer/internal/errors"
	"github.com/Iron-Ham/facetdrawer/internal/facet"
)

var testCatalog = []facet.Category{
	{ID: "color", Label: "Color", Options: []string{"Red", "Blue"}},
	{ID: "size", Label: "Size", Options: []string{"S", "M", "L"}},
}

func TestParseSelector(t *testing.T) {
	tests := []struct {
		name       string
		expr       string
		wantID     string
		wantValues []string
	}{
		{"single", "color=Red", "color", []string{"Red"}},
		{"several", "size=M,L", "size", []string{"M", "L"}},
		{"case insensitive values", "color=red,BLUE", "color", []string{"Red", "Blue"}},
		{"spaces and empties", " size = S , ,M ", "size", []string{"S", "M"}},
		{"repeated value deduped", "size=M,m", "size", []string{"M"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, values, err := ParseSelector(tt.expr, testCatalog)
			if err != nil {
				t.Fatalf("ParseSelector(%q) error: %v", tt.expr, err)
			}
			if id != tt.wantID || !slices.Equal(values, tt.wantValues) {
				t.Errorf("ParseSelector(%q) = %q %v, want %q %v", tt.expr, id, values, tt.wantID, tt.wantValues)
			}
		})
	}
}

func TestParseSelector_Errors(t *testing.T) {
	tests := []struct {
		name           string
		expr           string
		sentinel       error
		wantSuggestion string
	}{
		{"missing equals", "color", errors.ErrInvalidSelector, ""},
		{"empty id", "=Red", errors.ErrInvalidSelector, ""},
		{"no values", "color=", errors.ErrInvalidSelector, ""},
		{"typo in category", "colr=Red", errors.ErrUnknownCategory, "color"},
		{"unrelated category", "material=Wool", errors.ErrUnknownCategory, ""},
		{"typo in option", "color=Rde", errors.ErrUnknownOption, "Red"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseSelector(tt.expr, testCatalog)
			if !errors.Is(err, tt.sentinel) {
				t.Fatalf("error = %v, want %v", err, tt.sentinel)
			}
			var se *errors.SelectorError
			if !errors.As(err, &se) {
				t.Fatalf("expected SelectorError, got %T", err)
			}
			if se.Suggestion != tt.wantSuggestion {
				t.Errorf("Suggestion = %q, want %q", se.Suggestion, tt.wantSuggestion)
			}
			if se.Input != tt.expr {
				t.Errorf("Input = %q, want %q", se.Input, tt.expr)
			}
		})
	}
}

func TestParseSelectors(t *testing.T) {
	sel, err := ParseSelectors([]string{"color=Red", "size=M", "color=Blue,Red"}, testCatalog)
	if err != nil {
		t.Fatalf("ParseSelectors() error: %v", err)
	}
	if !slices.Equal(sel["color"], []string{"Red", "Blue"}) {
		t.Errorf("color = %v, want [Red Blue]", sel["color"])
	}
	if sel.ActiveCount() != 3 {
		t.Errorf("ActiveCount() = %d, want 3", sel.ActiveCount())
	}

	if _, err := ParseSelectors([]string{"color=Red", "bad"}, testCatalog); err == nil {
		t.Error("expected error for bad selector")
	}

	empty, err := ParseSelectors(nil, testCatalog)
	if err != nil || len(empty) != 0 {
		t.Errorf("ParseSelectors(nil) = %v, %v", empty, err)
	}
}

func TestFormatSelectors(t *testing.T) {
	tests := []struct {
		name string
		sel  facet.Selection
		want []string
	}{
		{"empty", facet.Selection{}, nil},
		{"catalog order", facet.Selection{"size": {"L", "S"}, "color": {"Blue"}}, []string{"color=Blue", "size=L,S"}},
		{"empty values skipped", facet.Selection{"color": {}, "size": {"M"}}, []string{"size=M"}},
		{"unknown keys last and sorted", facet.Selection{"zeta": {"x"}, "alpha": {"y"}, "color": {"Red"}}, []string{"color=Red", "alpha=y", "zeta=x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatSelectors(tt.sel, testCatalog)
			if !slices.Equal(got, tt.want) {
				t.Errorf("FormatSelectors() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatSelectors_RoundTrip(t *testing.T) {
	sel := facet.Selection{"color": {"Blue", "Red"}, "size": {"M"}}
	parsed, err := ParseSelectors(FormatSelectors(sel, testCatalog), testCatalog)
	if err != nil {
		t.Fatalf("ParseSelectors() error: %v", err)
	}
	for id, values := range sel {
		if !slices.Equal(parsed[id], values) {
			t.Errorf("parsed[%q] = %v, want %v", id, parsed[id], values)
		}
	}
}

// Every option of a catalog that passes validation must survive being
// printed as a --select flag and parsed back.
func TestFormatSelectors_RoundTripValidCatalog(t *testing.T) {
	cat, err := catalog.Parse([]byte(`categories:
  - id: size
    options: [Extra small, "5-10", "R&D", "a=b"]
  - id: shop.region
    options: [North East, "Zürich"]`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	sel := facet.Selection{}
	for _, c := range cat.Categories {
		sel[c.ID] = slices.Clone(c.Options)
	}

	parsed, err := ParseSelectors(FormatSelectors(sel, cat.Categories), cat.Categories)
	if err != nil {
		t.Fatalf("ParseSelectors() error: %v", err)
	}
	for id, values := range sel {
		if !slices.Equal(parsed[id], values) {
			t.Errorf("parsed[%q] = %v, want %v", id, parsed[id], values)
		}
	}
}
