package export

import (
	"bytes"
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tpemanager/tpe-manager/internal/core/ports"
)

func seq(rows ...ports.ExportRow) iter.Seq2[ports.ExportRow, error] {
	return func(yield func(ports.ExportRow, error) bool) {
		for _, r := range rows {
			if !yield(r, nil) {
				return
			}
		}
	}
}

func TestEncode_WritesHeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	headers := []string{"ID", "Service Name", "Nombre de TPE", "Backoffice Actif"}

	err := NewXLSXEncoder().Encode(&buf, headers, seq(
		ports.ExportRow{"a1", "Piscine", 2, "Oui"},
		ports.ExportRow{"b2", "Musée", 1, "Non"},
	))
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, headers, rows[0])
	assert.Equal(t, []string{"a1", "Piscine", "2", "Oui"}, rows[1])
	assert.Equal(t, []string{"b2", "Musée", "1", "Non"}, rows[2])
}

func TestEncode_EmptyInventoryHasHeaderOnly(t *testing.T) {
	var buf bytes.Buffer

	err := NewXLSXEncoder().Encode(&buf, []string{"ID", "ShopID"}, seq())
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"ID", "ShopID"}}, rows)
}

func TestEncode_SourceErrorWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	boom := errors.New("cursor died")

	rows := func(yield func(ports.ExportRow, error) bool) {
		if !yield(ports.ExportRow{"a1"}, nil) {
			return
		}
		yield(nil, boom)
	}

	err := NewXLSXEncoder().Encode(&buf, []string{"ID"}, rows)
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, buf.Len())
}
