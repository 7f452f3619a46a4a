package query

import (
	"github.com/agentstation/pokedex/pkg/catalogs"
)

// Page is one slice of a query result. It carries no total count;
// use Count for the size of the unpaged result.
type Page struct {
	Records []*catalogs.Record
	Number  int
	Size    int
}

// Query validates spec, then filters, sorts and paginates the catalog.
// A page past the end of the result is empty, not an error.
func Query(cat *catalogs.Catalog, spec Spec) (Page, error) {
	if err := spec.Validate(); err != nil {
		return Page{}, err
	}

	records := Filter(cat.All(), Predicates(spec.Filters))
	Sort(records, spec.Sort, spec.Direction)

	return Page{
		Records: Paginate(records, spec.Page, spec.PageSize),
		Number:  spec.Page,
		Size:    spec.PageSize,
	}, nil
}

// Count returns the number of records matching every present filter.
func Count(cat *catalogs.Catalog, f Filters) int {
	preds := Predicates(f)
	if len(preds) == 0 {
		return cat.Len()
	}
	n := 0
	for _, r := range cat.All() {
		if Match(r, preds) {
			n++
		}
	}
	return n
}

// Paginate returns the items of the 1-based page. Out-of-range pages and
// non-positive arguments yield an empty, non-nil slice.
func Paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 {
		return []T{}
	}
	n := len(items)
	// Compare page counts rather than offsets so (page-1)*pageSize cannot overflow.
	if page-1 > n/pageSize {
		return []T{}
	}
	offset := (page - 1) * pageSize
	if offset >= n {
		return []T{}
	}
	end := offset + min(pageSize, n-offset)
	return items[offset:end:end]
}
