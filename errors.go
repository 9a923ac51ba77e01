package spectrumreader

import (
	"errors"
	"fmt"
	"strings"
)

// Fatal error kinds.  Every error returned by the decoders wraps exactly one of these, test with errors.Is.
var (
	ErrUnrecognizedFormat    = errors.New("unrecognized format")
	ErrMissingRequiredHeader = errors.New("missing required header")
	ErrMalformedToken        = errors.New("malformed token")
	ErrUnsupportedEncoding   = errors.New("unsupported encoding")
	ErrDegenerateRange       = errors.New("degenerate range")
	ErrPointCountMismatch    = errors.New("point count mismatch")
	ErrMalformedRow          = errors.New("malformed row")
	ErrChecksumMismatch      = errors.New("checksum mismatch") // ErrChecksumMismatch is only returned when StrictChecksums is enabled.
)

// DecodeError locates a fatal decoding failure within its source.
type DecodeError struct {
	Kind     error  // Kind is one of the Err* sentinels.
	File     string // File is the base name of the source, if known.
	Line     int    // Line is the 1-based line or row index, zero if not applicable.
	Field    string // Field names the header label involved, if any.
	Fragment string // Fragment is the offending piece of text, if any.
	Msg      string
}

func (e *DecodeError) Error() string {
	if e == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(e.Kind.Error())

	if e.File != "" {
		b.WriteString(" in ")
		b.WriteString(e.File)
	}

	if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d", e.Line)
	}

	if e.Field != "" {
		fmt.Fprintf(&b, " (field %s)", e.Field)
	}

	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}

	if e.Fragment != "" {
		fmt.Fprintf(&b, " %q", e.Fragment)
	}

	return b.String()
}

func (e *DecodeError) Unwrap() error { return e.Kind }

func decodeErrorf(kind error, line int, format string, args ...any) *DecodeError {
	return &DecodeError{Kind: kind, Line: line, Msg: fmt.Sprintf(format, args...)}
}

func tokenError(line int, fragment, msg string) *DecodeError {
	return &DecodeError{Kind: ErrMalformedToken, Line: line, Fragment: fragment, Msg: msg}
}

func missingHeader(field string) *DecodeError {
	return &DecodeError{Kind: ErrMissingRequiredHeader, Field: field}
}

// withFile stamps the source name onto err if it is a DecodeError without one.
func withFile(err error, file string) error {
	var de *DecodeError
	if errors.As(err, &de) && de.File == "" {
		de.File = file
	}

	return err
}

// WarningKind classifies a non-fatal finding.
type WarningKind string

const (
	WarnHeaderInconsistency WarningKind = "HeaderInconsistency"
	WarnChecksumMismatch    WarningKind = "ChecksumMismatch"
	WarnEmptySeries         WarningKind = "EmptySeries"
)

// Warning is a non-fatal finding surfaced alongside a successful decode.
type Warning struct {
	Kind WarningKind
	Line int // Line is the 1-based source line, zero if the warning is file-scoped.
	Msg  string
}

func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("%s at line %d: %s", w.Kind, w.Line, w.Msg)
	}

	return fmt.Sprintf("%s: %s", w.Kind, w.Msg)
}
