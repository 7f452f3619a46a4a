// Package catalogs holds the immutable record catalog and its one-time loader.
//
// A Catalog is built once at process start, either from a source document
// (LoadFile, LoadFS, Load) or from records in memory (New). After that it is
// never mutated, so it can be shared by any number of goroutines without locks.
package catalogs

import (
	"fmt"
	"math"
	"slices"

	"github.com/agentstation/pokedex/pkg/errors"
)

// Catalog is the ordered, read-only collection of records.
// Insertion order is preserved and defines the tie-break order of every stable sort.
type Catalog struct {
	source  string
	records []*Record
	byID    map[int]*Record
	byName  map[string]*Record
}

// Option configures a Catalog under construction.
type Option func(*Catalog)

// WithSource names the source the records came from. It appears in load errors and logs.
func WithSource(source string) Option {
	return func(c *Catalog) {
		c.source = source
	}
}

// New validates records and builds a catalog from them.
// Any invalid record rejects the whole set.
func New(records []Record, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		source:  "memory",
		records: make([]*Record, 0, len(records)),
		byID:    make(map[int]*Record, len(records)),
		byName:  make(map[string]*Record, len(records)),
	}
	for _, opt := range opts {
		opt(c)
	}

	for i := range records {
		r := records[i]
		if err := validateRecord(c.source, i, &r); err != nil {
			return nil, err
		}
		if _, dup := c.byID[r.ID]; dup {
			return nil, errors.NewRecordError(c.source, i, "number", fmt.Sprintf("duplicate number %d", r.ID))
		}

		r.Types = slices.Clone(r.Types)
		r.Stats = slices.Clone(r.Stats)
		r.Moves = slices.Clone(r.Moves)
		r.Abilities = slices.Clone(r.Abilities)
		r.Evolution.To = slices.Clone(r.Evolution.To)
		if from := r.Evolution.From; from != nil {
			f := *from
			r.Evolution.From = &f
		}

		c.records = append(c.records, &r)
		c.byID[r.ID] = &r
		if _, seen := c.byName[r.Name]; !seen {
			c.byName[r.Name] = &r
		}
	}

	return c, nil
}

// Source returns the name of the source the catalog was loaded from.
func (c *Catalog) Source() string {
	return c.source
}

// All returns every record in catalog order.
// The returned slice is a read-only view; callers must not modify it.
func (c *Catalog) All() []*Record {
	return slices.Clip(c.records)
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// ByID returns the record with the given number.
func (c *Catalog) ByID(id int) (*Record, bool) {
	r, ok := c.byID[id]
	return r, ok
}

// ByName returns the first record, in catalog order, whose name equals name exactly.
func (c *Catalog) ByName(name string) (*Record, bool) {
	r, ok := c.byName[name]
	return r, ok
}

// validateRecord rejects records that lack a required field or break an invariant.
func validateRecord(source string, i int, r *Record) error {
	fail := func(field, msg string) error {
		return errors.NewRecordError(source, i, field, msg)
	}

	switch {
	case r.ID <= 0:
		return fail("number", "must be a positive integer")
	case r.Name == "":
		return fail("name", "is required")
	case r.Generation == "":
		return fail("generation", "is required")
	case r.Height < 0 || math.IsNaN(r.Height):
		return fail("height", "must be non-negative")
	case r.Weight < 0 || math.IsNaN(r.Weight):
		return fail("weight", "must be non-negative")
	case len(r.Types) == 0 || len(r.Types) > 2:
		return fail("types", fmt.Sprintf("must hold 1 or 2 entries, got %d", len(r.Types)))
	case r.Stats == nil:
		return fail("stats", "is required")
	case r.Moves == nil:
		return fail("moves", "is required")
	case r.Abilities == nil:
		return fail("abilities", "is required")
	case r.Image == "":
		return fail("image", "is required")
	}

	for _, t := range r.Types {
		if t == "" {
			return fail("types", "must not contain empty names")
		}
	}
	if len(r.Types) == 2 && r.Types[0] == r.Types[1] {
		return fail("types", fmt.Sprintf("duplicate type %q", r.Types[0]))
	}
	for _, s := range r.Stats {
		if s.Name == "" {
			return fail("stats", "stat name is required")
		}
	}

	return nil
}
