// Package export renders tabular data as spreadsheet files.
package export

import (
	"fmt"
	"io"
	"iter"

	"github.com/xuri/excelize/v2"

	"github.com/tpemanager/tpe-manager/internal/core/ports"
)

const (
	SheetName   = "TPE List"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	defaultSheet = "Sheet1"
	columnWidth  = 20
)

// XLSXEncoder writes a single-sheet workbook: one bold header row followed by
// one row per record.
type XLSXEncoder struct{}

func NewXLSXEncoder() *XLSXEncoder {
	return &XLSXEncoder{}
}

// Encode drains rows into a workbook and writes it to w. Nothing is written
// to w if rows yields an error.
func (e *XLSXEncoder) Encode(w io.Writer, headers []string, rows iter.Seq2[ports.ExportRow, error]) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("open stream writer: %w", err)
	}
	if len(headers) > 0 {
		if err := sw.SetColWidth(1, len(headers), columnWidth); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = excelize.Cell{StyleID: bold, Value: h}
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	line := 2
	for row, err := range rows {
		if err != nil {
			return err
		}
		cell, err := excelize.CoordinatesToCellName(1, line)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, []any(row)); err != nil {
			return fmt.Errorf("write row %d: %w", line, err)
		}
		line++
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush sheet: %w", err)
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
