package spectrumreader

import (
	"bufio"
	"bytes"
	"path/filepath"
	"regexp"
	"strings"
)

// Format identifies a decoding path.
type Format int

const (
	FormatUnknown Format = iota
	FormatPlainText
	FormatJcampDx
	FormatSpreadsheet
)

func (f Format) String() string {
	switch f {
	case FormatPlainText:
		return "plain text"
	case FormatJcampDx:
		return "JCAMP-DX"
	case FormatSpreadsheet:
		return "spreadsheet"
	default:
		return "unknown"
	}
}

// jcampTitle matches the first labeled line of a JCAMP-DX file.
var jcampTitle = regexp.MustCompile(`(?i)^\s*##\s*TITLE\s*=`)

// spreadsheetExtensions are read with excelize.
var spreadsheetExtensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
}

// SpectrumFile is a source whose format has been detected.
type SpectrumFile struct {
	Name    string // Name is the file name or stream label used for extension matching and error messages.
	Format  Format
	content []byte
}

// Detect chooses the decoding path for the named content.  JCAMP-DX is chosen by extension or by a leading ##TITLE=
// line, spreadsheets by extension, and plain text otherwise.
func Detect(name string, content []byte, opts ...Option) (SpectrumFile, error) {
	return detect(name, content, newConfig(opts...))
}

func detect(name string, content []byte, cfg config) (SpectrumFile, error) {
	out := SpectrumFile{Name: name, content: content}

	if len(bytes.TrimSpace(content)) == 0 {
		return SpectrumFile{}, decodeErrorf(ErrUnrecognizedFormat, 0, "content is empty")
	}

	ext := strings.ToLower(filepath.Ext(name))

	switch {
	case hasExtension(ext, cfg.jcampExtensions):
		out.Format = FormatJcampDx
	case spreadsheetExtensions[ext]:
		out.Format = FormatSpreadsheet
	case jcampTitle.MatchString(firstNonBlankLine(content)):
		out.Format = FormatJcampDx
	case hasNumericRow(content):
		out.Format = FormatPlainText
	default:
		return SpectrumFile{}, decodeErrorf(ErrUnrecognizedFormat, 0, "no numeric rows and no JCAMP-DX title")
	}

	return out, nil
}

func hasExtension(ext string, haystack []string) bool {
	if ext == "" {
		return false
	}

	for _, e := range haystack {
		if e == ext {
			return true
		}
	}

	return false
}

func firstNonBlankLine(content []byte) string {
	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	for scanner.Scan() {
		if line := strings.TrimSpace(strings.TrimPrefix(scanner.Text(), byteOrderMark)); line != "" {
			return line
		}
	}

	return ""
}
