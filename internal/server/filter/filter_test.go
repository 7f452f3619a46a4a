package filter

import (
	"net/http/httptest"
	"testing"

	"github.com/agentstation/pokedex/pkg/catalogs"
	"github.com/agentstation/pokedex/pkg/errors"
	"github.com/agentstation/pokedex/pkg/query"
)

func intPtr(i int) *int { return &i }

// TestParseRequest tests query parameter parsing into a query spec.
func TestParseRequest(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected query.Spec
	}{
		{
			name:     "empty query uses defaults",
			query:    "",
			expected: query.Spec{Page: 1, PageSize: 25, Direction: query.Asc},
		},
		{
			name:  "paging and sort",
			query: "page=3&pageSize=10&sort=name&sortDirection=DESC",
			expected: query.Spec{
				Page: 3, PageSize: 10, Sort: "name", Direction: query.Desc,
			},
		},
		{
			name:  "all filters",
			query: "id=6&name=char&type1=Fire&type2=Flying&generation=Generation%20I&movesCount=4",
			expected: query.Spec{
				Page: 1, PageSize: 25, Direction: query.Asc,
				Filters: query.Filters{
					ID: intPtr(6), Name: "char", Type1: "Fire", Type2: "Flying",
					Generation: "Generation I", MovesCount: intPtr(4),
				},
			},
		},
		{
			name:  "number alias",
			query: "number=25",
			expected: query.Spec{
				Page: 1, PageSize: 25, Direction: query.Asc,
				Filters: query.Filters{ID: intPtr(25)},
			},
		},
		{
			name:  "matching id and number",
			query: "id=25&number=25",
			expected: query.Spec{
				Page: 1, PageSize: 25, Direction: query.Asc,
				Filters: query.Filters{ID: intPtr(25)},
			},
		},
		{
			name:     "whitespace filters are absent",
			query:    "name=%20%20&type1=&generation=%09&page=%20",
			expected: query.Spec{Page: 1, PageSize: 25, Direction: query.Asc},
		},
		{
			name:     "unknown sort key is kept",
			query:    "sort=speed",
			expected: query.Spec{Page: 1, PageSize: 25, Sort: "speed", Direction: query.Asc},
		},
		{
			name:  "negative moves count is a filter",
			query: "movesCount=-1",
			expected: query.Spec{
				Page: 1, PageSize: 25, Direction: query.Asc,
				Filters: query.Filters{MovesCount: intPtr(-1)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/v1/pokemon?"+tt.query, nil)
			got, err := ParseRequest(req)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got.Page != tt.expected.Page || got.PageSize != tt.expected.PageSize {
				t.Errorf("paging = %d/%d, want %d/%d", got.Page, got.PageSize, tt.expected.Page, tt.expected.PageSize)
			}
			if got.Sort != tt.expected.Sort || got.Direction != tt.expected.Direction {
				t.Errorf("sort = %q %q, want %q %q", got.Sort, got.Direction, tt.expected.Sort, tt.expected.Direction)
			}

			gf, wf := got.Filters, tt.expected.Filters
			if !equalIntPtr(gf.ID, wf.ID) {
				t.Errorf("ID = %v, want %v", deref(gf.ID), deref(wf.ID))
			}
			if !equalIntPtr(gf.MovesCount, wf.MovesCount) {
				t.Errorf("MovesCount = %v, want %v", deref(gf.MovesCount), deref(wf.MovesCount))
			}
			if gf.Name != wf.Name || gf.Type1 != wf.Type1 || gf.Type2 != wf.Type2 || gf.Generation != wf.Generation {
				t.Errorf("string filters = %+v, want %+v", gf, wf)
			}
		})
	}
}

// TestParseRequest_Errors tests that malformed parameters are rejected.
func TestParseRequest_Errors(t *testing.T) {
	tests := []struct {
		name  string
		query string
		field string
	}{
		{"page zero", "page=0", "page"},
		{"negative page", "page=-2", "page"},
		{"page size zero", "pageSize=0", "pageSize"},
		{"non-numeric page", "page=two", "page"},
		{"non-numeric page size", "pageSize=1.5", "pageSize"},
		{"non-numeric id", "id=pikachu", "id"},
		{"non-numeric number", "number=0x19", "number"},
		{"non-numeric moves count", "movesCount=four", "movesCount"},
		{"conflicting id and number", "id=1&number=2", "number"},
		{"bad direction", "sortDirection=sideways", "sortDirection"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/v1/pokemon?"+tt.query, nil)
			_, err := ParseRequest(req)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.IsValidationError(err) {
				t.Fatalf("expected a validation error, got %T", err)
			}
			ve, ok := err.(*errors.ValidationError)
			if !ok {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if ve.Field != tt.field {
				t.Errorf("field = %q, want %q", ve.Field, tt.field)
			}
		})
	}
}

// TestParseSpec_FromFlags tests parsing values that did not come from a URL.
func TestParseSpec_FromFlags(t *testing.T) {
	spec, err := ParseSpec(Params{Page: "2", PageSize: "5", Type1: " grass ", Sort: " number "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Page != 2 || spec.PageSize != 5 {
		t.Errorf("paging = %d/%d", spec.Page, spec.PageSize)
	}
	if spec.Filters.Type1 != " grass " {
		t.Errorf("Type1 = %q, want the value as given", spec.Filters.Type1)
	}
	if spec.Sort != "number" {
		t.Errorf("Sort = %q, want %q", spec.Sort, "number")
	}
}

// TestParseSpec_NameKeepsSurroundingSpaces tests that a non-blank name is searched as given.
func TestParseSpec_NameKeepsSurroundingSpaces(t *testing.T) {
	cat := catalogs.MustNew(
		catalogs.NewTestRecord(1, "Mr.Zed", "Generation I", 1, "Psychic"),
		catalogs.NewTestRecord(122, "Mr. Mime", "Generation I", 1, "Psychic", "Fairy"),
	)

	spec, err := ParseSpec(Params{Name: "Mr. "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.Filters.Name != "Mr. " {
		t.Fatalf("Name = %q, want %q", spec.Filters.Name, "Mr. ")
	}

	got := query.Filter(cat.All(), query.Predicates(spec.Filters))
	if len(got) != 1 || got[0].Name != "Mr. Mime" {
		names := make([]string, 0, len(got))
		for _, r := range got {
			names = append(names, r.Name)
		}
		t.Errorf("matched %v, want [Mr. Mime]", names)
	}
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func deref(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
