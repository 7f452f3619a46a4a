// Package filter parses request parameters into a validated query spec.
// It is shared by the HTTP handlers and the list command.
package filter

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/agentstation/pokedex/pkg/constants"
	"github.com/agentstation/pokedex/pkg/errors"
	"github.com/agentstation/pokedex/pkg/query"
)

// Params holds raw, unparsed query parameters.
// Blank and whitespace-only values are treated as absent.
type Params struct {
	Page          string
	PageSize      string
	ID            string
	Number        string
	Name          string
	Type1         string
	Type2         string
	Generation    string
	MovesCount    string
	Sort          string
	SortDirection string
}

// ParamsFromValues extracts Params from URL query values.
func ParamsFromValues(q url.Values) Params {
	return Params{
		Page:          q.Get("page"),
		PageSize:      q.Get("pageSize"),
		ID:            q.Get("id"),
		Number:        q.Get("number"),
		Name:          q.Get("name"),
		Type1:         q.Get("type1"),
		Type2:         q.Get("type2"),
		Generation:    q.Get("generation"),
		MovesCount:    q.Get("movesCount"),
		Sort:          q.Get("sort"),
		SortDirection: q.Get("sortDirection"),
	}
}

// ParseRequest parses the query string of r into a validated spec.
func ParseRequest(r *http.Request) (query.Spec, error) {
	return ParseSpec(ParamsFromValues(r.URL.Query()))
}

// ParseSpec converts raw parameters into a validated spec.
// Malformed numbers, page or pageSize below 1, an unknown direction and
// conflicting id/number values are validation errors. Unknown sort keys are not.
func ParseSpec(p Params) (query.Spec, error) {
	spec := query.DefaultSpec()
	var err error

	if spec.Page, err = parseIntOrDefault("page", p.Page, constants.DefaultPage); err != nil {
		return query.Spec{}, err
	}
	if spec.PageSize, err = parseIntOrDefault("pageSize", p.PageSize, constants.DefaultPageSize); err != nil {
		return query.Spec{}, err
	}

	id, err := parseOptionalInt("id", p.ID)
	if err != nil {
		return query.Spec{}, err
	}
	number, err := parseOptionalInt("number", p.Number)
	if err != nil {
		return query.Spec{}, err
	}
	switch {
	case id != nil && number != nil && *id != *number:
		return query.Spec{}, errors.NewValidationError("number", p.Number,
			fmt.Sprintf("conflicts with id %d", *id))
	case id != nil:
		spec.Filters.ID = id
	default:
		spec.Filters.ID = number
	}

	if spec.Filters.MovesCount, err = parseOptionalInt("movesCount", p.MovesCount); err != nil {
		return query.Spec{}, err
	}

	spec.Filters.Name = optionalString(p.Name)
	spec.Filters.Type1 = optionalString(p.Type1)
	spec.Filters.Type2 = optionalString(p.Type2)
	spec.Filters.Generation = optionalString(p.Generation)
	spec.Sort = strings.TrimSpace(p.Sort)

	if spec.Direction, err = query.ParseDirection(p.SortDirection); err != nil {
		return query.Spec{}, err
	}

	if err := spec.Validate(); err != nil {
		return query.Spec{}, err
	}
	return spec, nil
}

// optionalString returns "" for a whitespace-only value and s unchanged otherwise.
func optionalString(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return s
}

// parseIntOrDefault parses an integer or returns def when s is blank.
func parseIntOrDefault(field, s string, def int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.NewValidationError(field, s, "must be an integer")
	}
	return i, nil
}

// parseOptionalInt parses an integer or returns nil when s is blank.
func parseOptionalInt(field, s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return nil, errors.NewValidationError(field, s, "must be an integer")
	}
	return &i, nil
}
