package output

import (
	"io"

	"github.com/agentstation/pokedex/internal/cmd/table"
	"github.com/agentstation/pokedex/pkg/aggregate"
	"github.com/agentstation/pokedex/pkg/catalogs"
)

// Records writes a page of records in the given format.
func Records(w io.Writer, format Format, records []*catalogs.Record) error {
	var data any = records
	if format.IsTabular() {
		data = table.RecordsToTableData(records, format == FormatWide)
	}
	return NewFormatter(format).Format(w, data)
}

// Record writes a single record in the given format.
func Record(w io.Writer, format Format, record *catalogs.Record) error {
	var data any = record
	if format.IsTabular() {
		data = table.RecordToTableData(record)
	}
	return NewFormatter(format).Format(w, data)
}

// Summary writes the catalog summary in the given format.
func Summary(w io.Writer, format Format, s aggregate.Summary) error {
	var data any = s
	if format.IsTabular() {
		data = table.SummaryToTableData(s)
	}
	return NewFormatter(format).Format(w, data)
}
