package spectrumreader

import (
	"strconv"
	"strings"
)

// header labels, in normalized form

const (
	labelTitle     = "TITLE"
	labelVersion   = "JCAMPDX"
	labelDataType  = "DATATYPE"
	labelBlocks    = "BLOCKS"
	labelNTuples   = "NTUPLES"
	labelFirstX    = "FIRSTX"
	labelLastX     = "LASTX"
	labelNPoints   = "NPOINTS"
	labelXFactor   = "XFACTOR"
	labelYFactor   = "YFACTOR"
	labelDeltaX    = "DELTAX"
	labelXUnits    = "XUNITS"
	labelYUnits    = "YUNITS"
	labelXYData    = "XYDATA"
	labelXYPoints  = "XYPOINTS"
	labelPeakTable = "PEAKTABLE"
	labelEnd       = "END"
)

const (
	variantXYData = "(X++(Y..Y))"
	variantXYXY   = "(XY..XY)"
)

// numericLabels are the labels whose values must parse as numbers.
var numericLabels = map[string]bool{
	labelFirstX:  true,
	labelLastX:   true,
	labelNPoints: true,
	labelXFactor: true,
	labelYFactor: true,
	labelDeltaX:  true,
	labelBlocks:  true,
}

// dataLabels are the labels that open a data block.
var dataLabels = map[string]bool{
	labelXYData:    true,
	labelXYPoints:  true,
	labelPeakTable: true,
}

// NormalizeLabel returns the canonical form of a JCAMP-DX label: upper case with spaces, underscores, dashes and
// slashes removed.  "First X", "FIRST_X" and "##FIRSTX" all normalize to "FIRSTX".
func NormalizeLabel(label string) string {
	label = strings.TrimPrefix(strings.TrimSpace(label), "##")

	var b strings.Builder

	for _, r := range strings.ToUpper(label) {
		switch r {
		case ' ', '\t', '_', '-', '/':
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

// HeaderFields holds the labeled header values of a JCAMP-DX file.  Lookups use normalized labels.  The zero value is
// an empty header.
type HeaderFields struct {
	raw     map[string]string
	numbers map[string]float64
	order   []string
}

func (h *HeaderFields) set(label, value string) {
	if h.raw == nil {
		h.raw = make(map[string]string)
	}

	if _, exists := h.raw[label]; !exists {
		h.order = append(h.order, label)
	}

	h.raw[label] = value
}

// appendTo continues a multi-line value.
func (h *HeaderFields) appendTo(label, more string) {
	if h.raw == nil {
		return
	}

	if v, ok := h.raw[label]; ok {
		h.raw[label] = strings.TrimSpace(v + "\n" + more)
	}
}

// parseNumbers validates the numeric labels that are present.
func (h *HeaderFields) parseNumbers(lines map[string]int) error {
	for label := range numericLabels {
		v, ok := h.raw[label]
		if !ok {
			continue
		}

		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return &DecodeError{Kind: ErrMalformedToken, Line: lines[label], Field: label, Fragment: v, Msg: "header value is not a number"}
		}

		if h.numbers == nil {
			h.numbers = make(map[string]float64)
		}

		h.numbers[label] = f
	}

	return nil
}

// Value returns the raw value stored for label, which may be given in any spelling NormalizeLabel accepts.
func (h HeaderFields) Value(label string) (string, bool) {
	v, ok := h.raw[NormalizeLabel(label)]
	return v, ok
}

// Labels returns the normalized labels in the order they first appeared.
func (h HeaderFields) Labels() []string {
	return append([]string(nil), h.order...)
}

func (h HeaderFields) number(label string) (float64, bool) {
	v, ok := h.numbers[label]
	return v, ok
}

// FirstX returns the declared abscissa of the first point.
func (h HeaderFields) FirstX() (float64, bool) { return h.number(labelFirstX) }

// LastX returns the declared abscissa of the last point.
func (h HeaderFields) LastX() (float64, bool) { return h.number(labelLastX) }

// DeltaX returns the declared point spacing.
func (h HeaderFields) DeltaX() (float64, bool) { return h.number(labelDeltaX) }

// NPoints returns the declared number of points.  A value that is not a usable count reports false.
func (h HeaderFields) NPoints() (int, bool) {
	n, ok, err := declaredPoints(h)
	return n, ok && err == nil
}

// XFactor returns the declared X scale factor, or 1.
func (h HeaderFields) XFactor() float64 { return h.factor(labelXFactor) }

// YFactor returns the declared Y scale factor, or 1.
func (h HeaderFields) YFactor() float64 { return h.factor(labelYFactor) }

func (h HeaderFields) factor(label string) float64 {
	if v, ok := h.number(label); ok {
		return v
	}

	return 1
}

func (h HeaderFields) XUnits() (string, bool)   { return h.Value(labelXUnits) }
func (h HeaderFields) YUnits() (string, bool)   { return h.Value(labelYUnits) }
func (h HeaderFields) Title() (string, bool)    { return h.Value(labelTitle) }
func (h HeaderFields) Version() (string, bool)  { return h.Value(labelVersion) }
func (h HeaderFields) DataType() (string, bool) { return h.Value(labelDataType) }

// splitLabeled splits a "##LABEL=value" line.  The returned label is normalized and the value has comments and
// padding removed.
func splitLabeled(line string) (label, value string, ok bool) {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, "##") {
		return "", "", false
	}

	eq := strings.IndexByte(s, '=')
	if eq < 0 {
		return "", "", false
	}

	return NormalizeLabel(s[2:eq]), stripComment(s[eq+1:]), true
}

// stripComment removes a trailing "$$" comment and surrounding whitespace.
func stripComment(s string) string {
	if i := strings.Index(s, "$$"); i >= 0 {
		s = s[:i]
	}

	return strings.TrimSpace(s)
}

// normalizeVariant canonicalizes a variable list such as "(X++(Y..Y))" for comparison.
func normalizeVariant(v string) string {
	return strings.ToUpper(strings.Join(strings.Fields(v), ""))
}
