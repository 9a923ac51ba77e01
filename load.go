// Package spectrumreader decodes spectroscopy data files into paired x and y sequences.
//
// Plain delimited XY text, two-column spreadsheets and JCAMP-DX files are supported.  JCAMP-DX data blocks may use
// any of the ASDF compressions (PAC, SQZ, DIF and DUP) or explicit (XY..XY) pairs.  Files holding more than one
// spectrum are rejected.
package spectrumreader

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
)

// LoadXYData decodes the file at path and returns its abscissae and ordinates.
func LoadXYData(path string, opts ...Option) (x, y []float64, err error) {
	s, err := LoadSeries(path, opts...)
	if err != nil {
		return nil, nil, err
	}

	return s.X(), s.Y(), nil
}

// LoadDFData decodes the file at path and returns it as a table with columns ColumnX and ColumnY.
func LoadDFData(path string, opts ...Option) (Table, error) {
	s, err := LoadSeries(path, opts...)
	if err != nil {
		return Table{}, err
	}

	return Project(s), nil
}

// LoadSeries decodes the file at path.
func LoadSeries(path string, opts ...Option) (Series, error) {
	return decodeFile(path, newConfig(opts...))
}

// Decode decodes r.  The name is used for extension matching and error messages and may be empty.
func Decode(r io.Reader, name string, opts ...Option) (Series, error) {
	return decode(r, name, newConfig(opts...))
}

func decode(r io.Reader, name string, cfg config) (Series, error) {
	base := ""
	if name != "" {
		base = filepath.Base(name)
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return Series{}, fmt.Errorf("error while reading %s: %w", base, err)
	}

	sf, err := detect(name, content, cfg)
	if err != nil {
		return Series{}, withFile(err, base)
	}

	var s Series

	switch sf.Format {
	case FormatJcampDx:
		var block jcampBlock

		block, err = readJcamp(sf.content)
		if err == nil {
			s, err = assembleJcamp(block, cfg)
		}

	case FormatSpreadsheet:
		s, err = parseSheet(sf.content, cfg)

	default:
		s, err = parsePlain(sf.content, cfg)
	}

	if err != nil {
		return Series{}, withFile(err, base)
	}

	for _, w := range s.warnings {
		cfg.warn(base, w)
	}

	cfg.logger.Debug("decoded spectrum",
		slog.String("file", base),
		slog.String("format", sf.Format.String()),
		slog.Int("points", s.Len()),
	)

	return s, nil
}
