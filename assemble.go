package spectrumreader

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// assembleJcamp turns a JCAMP-DX block into a series.
func assembleJcamp(block jcampBlock, cfg config) (Series, error) {
	switch block.dataLabel {
	case labelXYData:
		if block.variant != variantXYData {
			return Series{}, &DecodeError{Kind: ErrUnsupportedEncoding, Line: block.startLine, Field: block.dataLabel, Fragment: block.variant, Msg: "unsupported variable list"}
		}

		return assembleXYData(block, cfg)

	case labelXYPoints, labelPeakTable:
		if block.variant != variantXYXY {
			return Series{}, &DecodeError{Kind: ErrUnsupportedEncoding, Line: block.startLine, Field: block.dataLabel, Fragment: block.variant, Msg: "unsupported variable list"}
		}

		return assemblePairs(block)

	default:
		return Series{}, &DecodeError{Kind: ErrUnsupportedEncoding, Line: block.startLine, Field: block.dataLabel}
	}
}

// maxPoints bounds NPOINTS so a hostile header cannot force a huge allocation.
const maxPoints = 1 << 24

// declaredPoints returns NPOINTS as a count.  It must be a whole number between 0 and maxPoints.
func declaredPoints(h HeaderFields) (int, bool, error) {
	v, ok := h.number(labelNPoints)
	if !ok {
		return 0, false, nil
	}

	if v < 0 || v > maxPoints || v != math.Trunc(v) {
		raw, _ := h.Value(labelNPoints)
		return 0, true, &DecodeError{Kind: ErrMalformedToken, Field: labelNPoints, Fragment: raw, Msg: fmt.Sprintf("point count must be a whole number from 0 to %d", maxPoints)}
	}

	return int(v), true, nil
}

// xStep returns the spacing between consecutive abscissae.  Several points need a nonzero range and a single point
// needs an empty one.
func xStep(firstX, lastX float64, npoints int) (float64, error) {
	if npoints <= 1 {
		if lastX != firstX {
			return 0, &DecodeError{Kind: ErrDegenerateRange, Field: labelNPoints, Msg: fmt.Sprintf("%d point(s) cannot span %g to %g", npoints, firstX, lastX)}
		}

		return 0, nil
	}

	if lastX == firstX {
		return 0, &DecodeError{Kind: ErrDegenerateRange, Field: labelNPoints, Msg: fmt.Sprintf("%d points cannot share the abscissa %g", npoints, firstX)}
	}

	return (lastX - firstX) / float64(npoints-1), nil
}

// checkDeltaX compares a declared DELTAX with the computed step.
func checkDeltaX(h HeaderFields, step, tol float64) (Warning, bool) {
	declared, ok := h.DeltaX()
	if !ok {
		return Warning{}, false
	}

	diff := math.Abs(declared - step)
	if step != 0 {
		diff /= math.Abs(step)
	}

	if diff <= tol {
		return Warning{}, false
	}

	return Warning{
		Kind: WarnHeaderInconsistency,
		Msg:  fmt.Sprintf("DELTAX %g disagrees with computed step %g; using computed step", declared, step),
	}, true
}

// assembleXYData decodes a (X++(Y..Y)) block.  Abscissae are derived from FIRSTX, LASTX and NPOINTS, which are in
// real units; ordinates are scaled by YFACTOR.
func assembleXYData(block jcampBlock, cfg config) (Series, error) {
	h := block.header

	firstX, ok := h.FirstX()
	if !ok {
		return Series{}, missingHeader(labelFirstX)
	}

	lastX, ok := h.LastX()
	if !ok {
		return Series{}, missingHeader(labelLastX)
	}

	npoints, ok, err := declaredPoints(h)
	if err != nil {
		return Series{}, err
	}

	if !ok {
		return Series{}, missingHeader(labelNPoints)
	}

	step, err := xStep(firstX, lastX, npoints)
	if err != nil {
		return Series{}, err
	}

	var warnings []Warning

	if w, ok := checkDeltaX(h, step, cfg.deltaXTolerance); ok {
		warnings = append(warnings, w)
	}

	lines := make([][]token, len(block.lines))
	for i, l := range block.lines {
		toks, err := tokenizeLine(l.text, l.num, false)
		if err != nil {
			return Series{}, err
		}

		if len(toks) > 0 && toks[0].kind != tokenValue {
			return Series{}, tokenError(l.num, toks[0].text, "line does not start with an abscissa")
		}

		lines[i] = toks
	}

	dec, err := newDecompressor(selectEncoding(lines), cfg.strictChecksums, npoints)
	if err != nil {
		return Series{}, err
	}

	xFactor := h.XFactor()
	ys := make([]float64, 0, npoints)
	drift := xDrift{}

	for i, toks := range lines {
		if len(toks) == 0 {
			continue
		}

		vals, checked, err := dec.line(block.lines[i].num, toks[1:])
		if err != nil {
			return Series{}, err
		}

		index := len(ys)
		if checked {
			index--
		}

		drift.observe(block.lines[i].num, toks[0].value*xFactor, firstX+float64(index)*step, step)

		ys = append(ys, vals...)
	}

	warnings = append(warnings, dec.warnings...)

	if w, ok := drift.warning(); ok {
		warnings = append(warnings, w)
	}

	if len(ys) != npoints {
		return Series{}, &DecodeError{Kind: ErrPointCountMismatch, Field: labelNPoints, Msg: fmt.Sprintf("decoded %d points, header declares %d", len(ys), npoints)}
	}

	xs := make([]float64, npoints)
	for i := range xs {
		xs[i] = firstX + float64(i)*step
	}

	if npoints > 1 {
		xs[npoints-1] = lastX
	}

	vecmath.ScaleBlockInPlace(ys, h.YFactor())

	return Series{x: xs, y: ys, header: h, format: FormatJcampDx, encoding: dec.enc, warnings: warnings}, nil
}

// xDrift tracks line abscissae that stray more than half a step from their expected value.
type xDrift struct {
	count     int
	firstLine int
	got, want float64
}

func (d *xDrift) observe(lineNo int, got, want, step float64) {
	if step == 0 || math.Abs(got-want) <= math.Abs(step)/2 {
		return
	}

	if d.count == 0 {
		d.firstLine, d.got, d.want = lineNo, got, want
	}

	d.count++
}

func (d xDrift) warning() (Warning, bool) {
	if d.count == 0 {
		return Warning{}, false
	}

	return Warning{
		Kind: WarnHeaderInconsistency,
		Line: d.firstLine,
		Msg:  fmt.Sprintf("abscissa %g on %d line(s) strays from expected %g", d.got, d.count, d.want),
	}, true
}

// assemblePairs decodes an (XY..XY) block of explicit pairs scaled by XFACTOR and YFACTOR.
func assemblePairs(block jcampBlock) (Series, error) {
	h := block.header

	var xs, ys []float64

	for _, l := range block.lines {
		toks, err := tokenizeLine(l.text, l.num, true)
		if err != nil {
			return Series{}, err
		}

		if len(toks)%2 != 0 {
			return Series{}, tokenError(l.num, l.text, "line does not hold whole x,y pairs")
		}

		for i := 0; i < len(toks); i += 2 {
			xs = append(xs, toks[i].value)
			ys = append(ys, toks[i+1].value)
		}
	}

	npoints, ok, err := declaredPoints(h)
	if err != nil {
		return Series{}, err
	}

	if ok && npoints != len(xs) {
		return Series{}, &DecodeError{Kind: ErrPointCountMismatch, Field: labelNPoints, Msg: fmt.Sprintf("decoded %d points, header declares %d", len(xs), npoints)}
	}

	vecmath.ScaleBlockInPlace(xs, h.XFactor())
	vecmath.ScaleBlockInPlace(ys, h.YFactor())

	return Series{x: xs, y: ys, header: h, format: FormatJcampDx, encoding: Encoding{Base: EncodingPairs}}, nil
}
