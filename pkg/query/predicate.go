package query

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/agentstation/pokedex/pkg/catalogs"
)

// Predicate is a boolean test over one record field.
type Predicate func(r *catalogs.Record) bool

// predicateRule turns one filter field into a predicate when the field is present.
type predicateRule struct {
	field string
	build func(f Filters) (Predicate, bool)
}

// predicateRules lists every filterable field. Adding a filter means adding a row.
var predicateRules = []predicateRule{
	{"id", func(f Filters) (Predicate, bool) {
		if f.ID == nil {
			return nil, false
		}
		id := *f.ID
		return func(r *catalogs.Record) bool { return r.ID == id }, true
	}},
	{"name", func(f Filters) (Predicate, bool) {
		if f.Name == "" {
			return nil, false
		}
		needle := fold(f.Name)
		return func(r *catalogs.Record) bool { return strings.Contains(fold(r.Name), needle) }, true
	}},
	{"type1", func(f Filters) (Predicate, bool) {
		if f.Type1 == "" {
			return nil, false
		}
		want := fold(f.Type1)
		return func(r *catalogs.Record) bool {
			return len(r.Types) > 0 && fold(r.Types[0]) == want
		}, true
	}},
	{"type2", func(f Filters) (Predicate, bool) {
		if f.Type2 == "" {
			return nil, false
		}
		want := fold(f.Type2)
		return func(r *catalogs.Record) bool {
			return r.HasSecondaryType() && fold(r.Types[1]) == want
		}, true
	}},
	{"generation", func(f Filters) (Predicate, bool) {
		if f.Generation == "" {
			return nil, false
		}
		want := fold(f.Generation)
		return func(r *catalogs.Record) bool { return fold(r.Generation) == want }, true
	}},
	{"movesCount", func(f Filters) (Predicate, bool) {
		if f.MovesCount == nil {
			return nil, false
		}
		n := *f.MovesCount
		return func(r *catalogs.Record) bool { return r.MovesCount() == n }, true
	}},
}

// Predicates returns one predicate per present filter, in a fixed field order.
func Predicates(f Filters) []Predicate {
	preds := make([]Predicate, 0, len(predicateRules))
	for _, rule := range predicateRules {
		if p, ok := rule.build(f); ok {
			preds = append(preds, p)
		}
	}
	return preds
}

// FilterFields returns the names of the filterable fields.
func FilterFields() []string {
	fields := make([]string, len(predicateRules))
	for i, rule := range predicateRules {
		fields[i] = rule.field
	}
	return fields
}

// Match reports whether r satisfies every predicate.
func Match(r *catalogs.Record, preds []Predicate) bool {
	for _, p := range preds {
		if !p(r) {
			return false
		}
	}
	return true
}

// Filter returns the records matching every predicate, in their original order.
// The result is always a new slice, so callers may sort it.
func Filter(records []*catalogs.Record, preds []Predicate) []*catalogs.Record {
	out := make([]*catalogs.Record, 0, len(records))
	for _, r := range records {
		if Match(r, preds) {
			out = append(out, r)
		}
	}
	return out
}

// fold applies full Unicode case folding.
// A Caser holds state, so each call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}
