// Package query filters, sorts and paginates a catalog.
//
// A query is described by a Spec. Query validates the Spec, keeps the records
// matching every present filter in catalog order, sorts them stably by the
// requested key and returns the requested page. Nothing here mutates the
// catalog, so queries may run concurrently against the same catalog.
package query

import (
	"strings"

	"github.com/agentstation/pokedex/pkg/constants"
	"github.com/agentstation/pokedex/pkg/errors"
)

// Direction is the sort direction.
type Direction string

const (
	// Asc sorts in ascending order.
	Asc Direction = "asc"
	// Desc sorts in descending order.
	Desc Direction = "desc"
)

// ParseDirection parses a direction case-insensitively. An empty value is Asc.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(Asc):
		return Asc, nil
	case string(Desc):
		return Desc, nil
	default:
		return "", errors.NewValidationError("sortDirection", s, "must be asc or desc")
	}
}

// Filters holds the optional filter values of a query.
// A nil pointer or an empty string means the filter is absent.
type Filters struct {
	ID         *int
	Name       string
	Type1      string
	Type2      string
	Generation string
	MovesCount *int
}

// IsEmpty reports whether no filter is present.
func (f Filters) IsEmpty() bool {
	return f.ID == nil && f.Name == "" && f.Type1 == "" && f.Type2 == "" &&
		f.Generation == "" && f.MovesCount == nil
}

// Spec is a complete query: filters, sort and the page to return.
type Spec struct {
	Page      int
	PageSize  int
	Filters   Filters
	Sort      string
	Direction Direction
}

// DefaultSpec returns the first page of the unfiltered catalog in catalog order.
func DefaultSpec() Spec {
	return Spec{
		Page:      constants.DefaultPage,
		PageSize:  constants.DefaultPageSize,
		Direction: Asc,
	}
}

// Validate checks paging and direction. Unknown sort keys are not an error.
func (s Spec) Validate() error {
	if s.Page < 1 {
		return errors.NewValidationError("page", s.Page, "must be at least 1")
	}
	if s.PageSize < 1 {
		return errors.NewValidationError("pageSize", s.PageSize, "must be at least 1")
	}
	switch s.Direction {
	case "", Asc, Desc:
	default:
		return errors.NewValidationError("sortDirection", string(s.Direction), "must be asc or desc")
	}
	return nil
}
