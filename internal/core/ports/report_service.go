package ports

import (
	"context"
	"iter"
)

// ExportRow is one flattened terminal, already rendered for a spreadsheet.
type ExportRow []any

// ReportService projects the terminal inventory into export rows.
type ReportService interface {
	ExportHeaders() []string
	// ExportRows yields one row per terminal. The sequence is single pass
	// and can be restarted by calling ExportRows again.
	ExportRows(ctx context.Context) iter.Seq2[ExportRow, error]
}
