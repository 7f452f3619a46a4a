package query

import (
	"cmp"
	"slices"
	"strings"

	"github.com/agentstation/pokedex/pkg/catalogs"
)

// Comparator orders two records. It returns a negative number when a sorts
// before b, a positive number when after, and zero when they tie.
type Comparator func(a, b *catalogs.Record) int

// comparators maps a lower-cased sort key to its comparator.
var comparators = map[string]Comparator{
	"number":     byInt(func(r *catalogs.Record) int { return r.ID }),
	"name":       byString(func(r *catalogs.Record) string { return r.Name }),
	"type1":      byString((*catalogs.Record).PrimaryType),
	"type2":      byString((*catalogs.Record).SecondaryType),
	"generation": byString(func(r *catalogs.Record) string { return r.Generation }),
	"movescount": byInt((*catalogs.Record).MovesCount),
	"height":     byFloat(func(r *catalogs.Record) float64 { return r.Height }),
	"weight":     byFloat(func(r *catalogs.Record) float64 { return r.Weight }),
}

func byInt(key func(*catalogs.Record) int) Comparator {
	return func(a, b *catalogs.Record) int { return cmp.Compare(key(a), key(b)) }
}

func byFloat(key func(*catalogs.Record) float64) Comparator {
	return func(a, b *catalogs.Record) int { return cmp.Compare(key(a), key(b)) }
}

// byString compares ordinally, byte by byte.
func byString(key func(*catalogs.Record) string) Comparator {
	return func(a, b *catalogs.Record) int { return strings.Compare(key(a), key(b)) }
}

// ResolveComparator returns the comparator for key, matched case-insensitively.
// It reports false for an empty or unknown key.
func ResolveComparator(key string) (Comparator, bool) {
	c, ok := comparators[strings.ToLower(strings.TrimSpace(key))]
	return c, ok
}

// Reverse returns a comparator with the opposite order. Ties stay ties.
func Reverse(c Comparator) Comparator {
	return func(a, b *catalogs.Record) int { return -c(a, b) }
}

// Sort stably sorts records in place by key and direction.
// An unknown key leaves the order unchanged.
func Sort(records []*catalogs.Record, key string, dir Direction) {
	c, ok := ResolveComparator(key)
	if !ok {
		return
	}
	if dir == Desc {
		c = Reverse(c)
	}
	slices.SortStableFunc(records, c)
}

// SortKeys returns the recognized sort keys in their canonical spelling.
func SortKeys() []string {
	keys := []string{"number", "name", "type1", "type2", "generation", "movesCount", "height", "weight"}
	slices.Sort(keys)
	return keys
}
