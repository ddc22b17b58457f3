package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes rows to the first sheet of a new xlsx workbook.
// Extra sheets are filled with a marker row that must never be imported.
func buildWorkbook(t *testing.T, rows [][]any, extraSheets ...string) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &rows[i]))
	}
	for _, name := range extraSheets {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(name, "A1", &[]any{"hidden", "不应导入"}))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

// readFixture loads a file from testdata. The .xls fixtures are BIFF8
// workbooks: words.xls leaves row 2 out entirely, holds a single cell on
// row 3 and a number on row 4; empty.xls has one sheet and no cells.
func readFixture(t *testing.T, name string) []byte {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func TestReadSpreadsheet_XLSX(t *testing.T) {
	t.Parallel()

	data := buildWorkbook(t, [][]any{
		{"apple", "n. 苹果"},
		{"only"},
		{"", "blank headword"},
		{"cat", "猫", "extra"},
		{42, "四十二"},
		{"  dog  ", "  狗  "},
	}, "Sheet2")

	got, err := readSpreadsheet(data)
	require.NoError(t, err)
	assert.Equal(t, []rawPair{
		{"apple", "n. 苹果"},
		{"cat", "猫"},
		{"42", "四十二"},
		{"dog", "狗"},
	}, got)
}

func TestReadSpreadsheet_EmptySheet(t *testing.T) {
	t.Parallel()

	got, err := readSpreadsheet(buildWorkbook(t, nil))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadSpreadsheet_XLS(t *testing.T) {
	t.Parallel()

	got, err := readSpreadsheet(readFixture(t, "words.xls"))
	require.NoError(t, err)
	assert.Equal(t, []rawPair{
		{"apple", "n. 苹果"},
		{"42", "forty-two"},
		{"banana", "香蕉"},
	}, got)
}

func TestReadSpreadsheet_XLSEmptySheet(t *testing.T) {
	t.Parallel()

	var (
		got []rawPair
		err error
	)
	require.NotPanics(t, func() {
		got, err = readSpreadsheet(readFixture(t, "empty.xls"))
	})
	require.NoError(t, err)
	assert.Empty(t, got)
}
