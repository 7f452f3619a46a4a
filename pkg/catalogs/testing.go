package catalogs

import "fmt"

// NewTestRecord returns a valid record for tests with the given identity and types.
// Moves are generated as "move-1".."move-N" for the requested count.
func NewTestRecord(id int, name, generation string, moves int, types ...string) Record {
	r := Record{
		ID:         id,
		Name:       name,
		Generation: generation,
		Types:      types,
		Stats:      []Stat{{Name: "hp", Value: 45}},
		Moves:      make([]string, 0, moves),
		Abilities:  []string{},
		Image:      fmt.Sprintf("https://img.example/%d.png", id),
	}
	for i := 1; i <= moves; i++ {
		r.Moves = append(r.Moves, fmt.Sprintf("move-%d", i))
	}
	return r
}

// MustNew builds a catalog and panics on invalid records. Intended for tests and fixtures.
func MustNew(records ...Record) *Catalog {
	c, err := New(records, WithSource("test"))
	if err != nil {
		panic(err)
	}
	return c
}
