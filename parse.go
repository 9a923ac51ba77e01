package spectrumreader

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// rowParser accumulates explicit two-column rows from plain text or spreadsheet sources.
type rowParser struct {
	skip   int
	xs, ys []float64
}

func newRowParser(cfg config) *rowParser {
	return &rowParser{skip: cfg.skipRows}
}

// isCommentRow returns true for rows that carry no data.
func isCommentRow(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.HasPrefix(s, "#") || strings.HasPrefix(s, ";")
}

// splitRow splits a row on whitespace, commas and semicolons.
func splitRow(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		switch r {
		case ' ', '\t', ',', ';', '\r':
			return true
		}
		return false
	})
}

// add parses the fields of the given row.  The row index is only used for error reporting.
func (p *rowParser) add(index int, fields []string) error {
	if p.skip > 0 {
		p.skip--
		return nil
	}

	if len(fields) != 2 {
		return &DecodeError{Kind: ErrMalformedRow, Line: index, Fragment: strings.Join(fields, " "), Msg: fmt.Sprintf("expected 2 columns, found %d", len(fields))}
	}

	var pair [2]float64

	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return &DecodeError{Kind: ErrMalformedRow, Line: index, Fragment: f, Msg: "column is not a number"}
		}

		pair[i] = v
	}

	p.xs = append(p.xs, pair[0])
	p.ys = append(p.ys, pair[1])

	return nil
}

func (p *rowParser) series(f Format) Series {
	return Series{x: p.xs, y: p.ys, format: f}
}

// parsePlain decodes plain delimited XY text.  Rows are numbered from 1 by source line.
func parsePlain(content []byte, cfg config) (Series, error) {
	p := newRowParser(cfg)

	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	row := 0

	for scanner.Scan() {
		row++

		line := strings.TrimPrefix(scanner.Text(), byteOrderMark)
		if isCommentRow(line) {
			continue
		}

		if err := p.add(row, splitRow(line)); err != nil {
			return Series{}, err
		}
	}

	if err := scanner.Err(); err != nil {
		return Series{}, fmt.Errorf("error while scanning row %d: %w", row+1, err)
	}

	return p.series(FormatPlainText), nil
}

// hasNumericRow returns true if any data row of plain text begins with a number.
func hasNumericRow(content []byte) bool {
	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	for scanner.Scan() {
		line := strings.TrimPrefix(scanner.Text(), byteOrderMark)
		if isCommentRow(line) {
			continue
		}

		fields := splitRow(line)
		if len(fields) == 0 {
			continue
		}

		if _, err := strconv.ParseFloat(fields[0], 64); err == nil {
			return true
		}
	}

	return false
}
