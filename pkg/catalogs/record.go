package catalogs

// Record is one catalog entry. Records are immutable once loaded; the
// slices they carry must be treated as read-only by every caller.
type Record struct {
	ID         int       `json:"number" yaml:"number"`         // Unique, positive
	Name       string    `json:"name" yaml:"name"`             // Not guaranteed unique
	Generation string    `json:"generation" yaml:"generation"` // e.g. "Generation I"
	Height     float64   `json:"height" yaml:"height"`
	Weight     float64   `json:"weight" yaml:"weight"`
	Types      []string  `json:"types" yaml:"types"` // Slot 0 primary, slot 1 secondary
	Stats      []Stat    `json:"stats" yaml:"stats"`
	Moves      []string  `json:"moves" yaml:"moves"`
	Abilities  []string  `json:"abilities" yaml:"abilities"`
	Evolution  Evolution `json:"evolution" yaml:"evolution"`
	Image      string    `json:"image" yaml:"image"`
}

// Stat is a named base stat.
type Stat struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

// Evolution links a record to the names it evolves from and into.
type Evolution struct {
	From *string  `json:"from" yaml:"from"`
	To   []string `json:"to" yaml:"to"`
}

// PrimaryType returns types[0], or "" when the record has no types.
func (r *Record) PrimaryType() string {
	if len(r.Types) == 0 {
		return ""
	}
	return r.Types[0]
}

// SecondaryType returns types[1], or "" when the record has a single type.
func (r *Record) SecondaryType() string {
	if len(r.Types) < 2 {
		return ""
	}
	return r.Types[1]
}

// HasSecondaryType reports whether the second type slot is occupied.
func (r *Record) HasSecondaryType() bool {
	return len(r.Types) > 1
}

// MovesCount returns the number of moves the record can learn.
func (r *Record) MovesCount() int {
	return len(r.Moves)
}
