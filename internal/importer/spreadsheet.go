package importer

import (
	"bytes"
	"fmt"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/worklisten-backend/internal/domain"
)

// Office Open XML workbooks are zip containers; legacy BIFF workbooks are not.
var zipMagic = []byte("PK\x03\x04")

// readSpreadsheet extracts pairs from the first sheet of a workbook. The
// container is sniffed from data, so a workbook saved under the wrong
// extension still opens. Rows with fewer than two cells are dropped.
func readSpreadsheet(data []byte) ([]rawPair, error) {
	if bytes.HasPrefix(data, zipMagic) {
		return readXLSX(data)
	}
	return readXLS(data)
}

func readXLSX(data []byte) ([]rawPair, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: open xlsx: %w", domain.ErrMalformedSource, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %w", domain.ErrMalformedSource, sheets[0], err)
	}

	var pairs []rawPair
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		pairs = appendPair(pairs, row[0], row[1])
	}
	return pairs, nil
}

func readXLS(data []byte) ([]rawPair, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("%w: open xls: %w", domain.ErrMalformedSource, err)
	}
	if wb == nil {
		return nil, fmt.Errorf("%w: open xls: no workbook stream", domain.ErrMalformedSource)
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, nil
	}

	// Row bounds from the ROW record are not always written, so cells are
	// read directly and appendPair drops rows missing either one.
	var pairs []rawPair
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row, ok := rowAt(sheet, i)
		if !ok {
			continue
		}
		pairs = appendPair(pairs, row.Col(0), row.Col(1))
	}
	return pairs, nil
}

// rowAt returns row i of sheet. xls.WorkSheet.Row dereferences a nil entry
// for rows that hold no cells, so absent rows are reported as !ok.
func rowAt(sheet *xls.WorkSheet, i int) (row *xls.Row, ok bool) {
	defer func() {
		if recover() != nil {
			row, ok = nil, false
		}
	}()
	row = sheet.Row(i)
	return row, row != nil
}
