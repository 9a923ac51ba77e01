package spectrumreader

import (
	"log/slog"
	"strings"
)

type optionID int

const (
	idLogger optionID = iota
	idJcampExtensions
	idSkipRows
	idSheet
	idStrictChecksums
	idDeltaXTolerance
)

const (
	defaultDeltaXTolerance = 1e-4
)

// defaultJcampExtensions lists the file extensions that select the JCAMP-DX path without inspecting content.
func defaultJcampExtensions() []string {
	return []string{".jdx", ".dx", ".jcamp"}
}

// Option represents an optional argument that adjusts decoding.
type Option interface {
	id() optionID
}

// optionEnabled returns true if the given option exists within the given option slice.
func optionEnabled(needle Option, haystack []Option) bool {
	_, ok := optionIndex(needle, haystack)
	return ok
}

// optionIndex returns the index of the last option in haystack sharing needle's ID, so later options override earlier ones.
func optionIndex(needle Option, haystack []Option) (index int, ok bool) {
	for i := len(haystack) - 1; i >= 0; i-- {
		if haystack[i] != nil && needle.id() == haystack[i].id() {
			return i, true
		}
	}

	return 0, false
}

// WithLogger routes warnings and decode events to the given logger.  Without it nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return &optionLogger{logger: l}
}

type optionLogger struct {
	logger *slog.Logger
}

func (o optionLogger) id() optionID {
	return idLogger
}

// loggerFrom returns the logger option from the given options.
//
// If the given options do not contain a logger option, then the returned
// boolean will be false.
func loggerFrom(opts ...Option) (optionLogger, bool) {
	var out optionLogger

	i, ok := optionIndex(out, opts)
	if ok {
		out = *opts[i].(*optionLogger)
	}

	return out, ok
}

// JcampExtensions replaces the file extensions that select JCAMP-DX decoding.  Matching is case-insensitive and the
// leading dot is optional.
func JcampExtensions(exts ...string) Option {
	o := &optionJcampExtensions{}

	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}

		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}

		o.exts = append(o.exts, e)
	}

	return o
}

type optionJcampExtensions struct {
	exts []string
}

func (o optionJcampExtensions) id() optionID {
	return idJcampExtensions
}

func jcampExtensionsFrom(opts ...Option) (optionJcampExtensions, bool) {
	var out optionJcampExtensions

	i, ok := optionIndex(out, opts)
	if ok {
		out = *opts[i].(*optionJcampExtensions)
	}

	return out, ok
}

// SkipRows skips the first n non-blank, non-comment rows of plain text and spreadsheet sources.  Use it for files
// that begin with column labels.
func SkipRows(n int) Option {
	if n < 0 {
		n = 0
	}

	return &optionSkipRows{n: n}
}

type optionSkipRows struct {
	n int
}

func (o optionSkipRows) id() optionID {
	return idSkipRows
}

func skipRowsFrom(opts ...Option) (optionSkipRows, bool) {
	var out optionSkipRows

	i, ok := optionIndex(out, opts)
	if ok {
		out = *opts[i].(*optionSkipRows)
	}

	return out, ok
}

// Sheet selects the worksheet read from spreadsheet sources.  The first sheet is read by default.
func Sheet(name string) Option {
	return &optionSheet{name: name}
}

type optionSheet struct {
	name string
}

func (o optionSheet) id() optionID {
	return idSheet
}

func sheetFrom(opts ...Option) (optionSheet, bool) {
	var out optionSheet

	i, ok := optionIndex(out, opts)
	if ok {
		out = *opts[i].(*optionSheet)
	}

	return out, ok
}

// StrictChecksums turns JCAMP-DX Y-check mismatches into fatal ErrChecksumMismatch errors instead of warnings.
func StrictChecksums() Option {
	return optionStrictChecksums{}
}

type optionStrictChecksums struct {
}

func (o optionStrictChecksums) id() optionID {
	return idStrictChecksums
}

// DeltaXTolerance sets the relative error allowed between a declared DELTAX and the step computed from FIRSTX, LASTX
// and NPOINTS.  Non-positive values are ignored.
func DeltaXTolerance(tol float64) Option {
	return &optionDeltaXTolerance{tol: tol}
}

type optionDeltaXTolerance struct {
	tol float64
}

func (o optionDeltaXTolerance) id() optionID {
	return idDeltaXTolerance
}

func deltaXToleranceFrom(opts ...Option) (optionDeltaXTolerance, bool) {
	var out optionDeltaXTolerance

	i, ok := optionIndex(out, opts)
	if ok {
		out = *opts[i].(*optionDeltaXTolerance)
	}

	return out, ok
}

// config is the resolved form of a call's options.
type config struct {
	logger          *slog.Logger
	jcampExtensions []string
	skipRows        int
	sheet           string
	strictChecksums bool
	deltaXTolerance float64
}

func newConfig(opts ...Option) config {
	c := config{
		logger:          slog.New(slog.DiscardHandler),
		jcampExtensions: defaultJcampExtensions(),
		deltaXTolerance: defaultDeltaXTolerance,
	}

	if o, ok := loggerFrom(opts...); ok && o.logger != nil {
		c.logger = o.logger
	}

	if o, ok := jcampExtensionsFrom(opts...); ok {
		c.jcampExtensions = o.exts
	}

	if o, ok := skipRowsFrom(opts...); ok {
		c.skipRows = o.n
	}

	if o, ok := sheetFrom(opts...); ok {
		c.sheet = o.name
	}

	c.strictChecksums = optionEnabled(optionStrictChecksums{}, opts)

	if o, ok := deltaXToleranceFrom(opts...); ok && o.tol > 0 {
		c.deltaXTolerance = o.tol
	}

	return c
}

// warn logs w against the given file.
func (c config) warn(file string, w Warning) {
	c.logger.Warn(w.Msg, slog.String("file", file), slog.String("kind", string(w.Kind)), slog.Int("line", w.Line))
}
