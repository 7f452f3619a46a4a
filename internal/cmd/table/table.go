// Package table converts catalog data into rows for tabular CLI output.
package table

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/agentstation/pokedex/pkg/aggregate"
	"github.com/agentstation/pokedex/pkg/catalogs"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Title           string
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// RecordsToTableData converts records to table format.
// Wide output adds the physical attributes and move count.
func RecordsToTableData(records []*catalogs.Record, wide bool) Data {
	headers := []string{"#", "Name", "Types", "Generation"}
	align := []Align{AlignRight, AlignLeft, AlignLeft, AlignLeft}
	if wide {
		headers = append(headers, "Height", "Weight", "Moves", "Abilities")
		align = append(align, AlignRight, AlignRight, AlignRight, AlignLeft)
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.ID),
			r.Name,
			strings.Join(r.Types, "/"),
			r.Generation,
		}
		if wide {
			row = append(row,
				FormatMeasure(r.Height),
				FormatMeasure(r.Weight),
				strconv.Itoa(r.MovesCount()),
				JoinOrDash(r.Abilities),
			)
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// RecordToTableData converts a single record to a property/value table.
func RecordToTableData(r *catalogs.Record) Data {
	evolvesFrom := "-"
	if r.Evolution.From != nil && *r.Evolution.From != "" {
		evolvesFrom = *r.Evolution.From
	}

	stats := make([]string, 0, len(r.Stats))
	for _, s := range r.Stats {
		stats = append(stats, fmt.Sprintf("%s %d", s.Name, s.Value))
	}

	return Data{
		Title:   r.Name,
		Headers: []string{"Property", "Value"},
		Rows: [][]string{
			{"Number", strconv.Itoa(r.ID)},
			{"Name", r.Name},
			{"Generation", r.Generation},
			{"Types", strings.Join(r.Types, "/")},
			{"Height", FormatMeasure(r.Height)},
			{"Weight", FormatMeasure(r.Weight)},
			{"Stats", JoinOrDash(stats)},
			{"Abilities", JoinOrDash(r.Abilities)},
			{"Moves", strconv.Itoa(r.MovesCount())},
			{"Evolves From", evolvesFrom},
			{"Evolves To", JoinOrDash(r.Evolution.To)},
			{"Image", r.Image},
		},
	}
}

// SummaryToTableData converts a summary into one table per aggregate.
func SummaryToTableData(s aggregate.Summary) []Data {
	return []Data{
		{
			Title:   "Totals",
			Headers: []string{"Metric", "Value"},
			Rows: [][]string{
				{"Species", strconv.Itoa(s.TotalSpecies)},
				{"Types", strconv.Itoa(len(s.Types))},
				{"Generations", strconv.Itoa(len(s.Generations))},
			},
		},
		CountsToTableData("Counts per Type", "Type", s.CountsPerType),
		CountsToTableData("Counts per Generation", "Generation", s.CountsPerGeneration),
	}
}

// CountsToTableData converts a histogram into rows sorted by key.
func CountsToTableData(title, keyHeader string, counts map[string]int) Data {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{k, strconv.Itoa(counts[k])})
	}

	return Data{
		Title:           title,
		Headers:         []string{keyHeader, "Count"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
}

// FormatMeasure renders a height or weight without trailing zeros.
func FormatMeasure(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// JoinOrDash joins items with ", " or returns "-" when there are none.
func JoinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
