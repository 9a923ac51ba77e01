package spectrumreader

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// parseSheet decodes a two-column worksheet.  Rows are numbered from 1 as in the workbook.
func parseSheet(content []byte, cfg config) (s Series, err error) {
	fi, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return Series{}, &DecodeError{Kind: ErrUnrecognizedFormat, Msg: fmt.Sprintf("error while opening workbook: %v", err)}
	}

	defer func() {
		if cerr := fi.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error while closing workbook: %w", cerr)
		}
	}()

	sheet := cfg.sheet
	if sheet == "" {
		sheets := fi.GetSheetList()
		if len(sheets) == 0 {
			return Series{}, decodeErrorf(ErrUnrecognizedFormat, 0, "workbook has no sheets")
		}

		sheet = sheets[0]
	}

	rows, err := fi.Rows(sheet)
	if err != nil {
		return Series{}, fmt.Errorf("error while getting row iterator for sheet %s: %w", sheet, err)
	}

	defer rows.Close()

	p := newRowParser(cfg)
	currentRow := 0

	for rows.Next() {
		currentRow++

		cells, err := rows.Columns()
		if err != nil {
			return Series{}, fmt.Errorf("error while reading row %d of sheet %s: %w", currentRow, sheet, err)
		}

		cells = trimEmptyCells(cells)
		if len(cells) == 0 || isCommentRow(cells[0]) {
			continue
		}

		if err := p.add(currentRow, cells); err != nil {
			return Series{}, err
		}
	}

	if len(p.xs) == 0 {
		return Series{}, decodeErrorf(ErrUnrecognizedFormat, 0, "sheet %s holds no numeric rows", sheet)
	}

	return p.series(FormatSpreadsheet), nil
}

// trimEmptyCells drops blank cells from the end of a row.
func trimEmptyCells(cells []string) []string {
	end := len(cells)
	for end > 0 && strings.TrimSpace(cells[end-1]) == "" {
		end--
	}

	return cells[:end]
}
