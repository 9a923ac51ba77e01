package spectrumreader

import (
	"fmt"
	"math"
)

// decompressor expands the Y tokens of successive data lines of one block.  It carries the running value between
// lines, so a block is decoded by exactly one decompressor in line order.
type decompressor struct {
	enc       Encoding
	strict    bool
	limit     int // limit is the declared point count, which no block may exceed.
	count     int
	running   float64
	seeded    bool // seeded is true once an absolute value has been read.
	endsDelta bool // endsDelta is true when the previous line's last value came from a delta.
	warnings  []Warning
}

func newDecompressor(enc Encoding, strict bool, limit int) (*decompressor, error) {
	if !enc.supported() || enc.Base == EncodingPairs {
		return nil, decodeErrorf(ErrUnsupportedEncoding, 0, "%s is not a (X++(Y..Y)) encoding", enc)
	}

	return &decompressor{enc: enc, strict: strict, limit: limit}, nil
}

// reserve fails once n more values on top of the have values of the current line would exceed the limit.
func (d *decompressor) reserve(lineNo, have, n int) error {
	if d.count+have+n <= d.limit {
		return nil
	}

	return &DecodeError{Kind: ErrPointCountMismatch, Line: lineNo, Field: labelNPoints, Msg: fmt.Sprintf("more than the %d declared points", d.limit)}
}

// line decodes the Y tokens of one line.  checked reports whether the first token was consumed as the Y-check value
// repeating the last value of the previous line.  A trailing check digit is verified against the values of the line.
func (d *decompressor) line(lineNo int, toks []token) (ys []float64, checked bool, err error) {
	var prev *token

	checkPending := d.enc.Base == EncodingDIF && d.endsDelta
	endsDelta := false

	for i := range toks {
		t := toks[i]

		switch t.kind {
		case tokenValue:
			if d.enc.Base == EncodingPAC && t.packed {
				return nil, false, tokenError(lineNo, t.text, "squeezed value in PAC block")
			}

			if i == 0 && checkPending {
				if err := d.verifyCheck(lineNo, t.value); err != nil {
					return nil, false, err
				}

				checked = true
			} else {
				if err := d.reserve(lineNo, len(ys), 1); err != nil {
					return nil, false, err
				}

				d.running = t.value
				ys = append(ys, d.running)
			}

			d.seeded = true
			endsDelta = false

		case tokenDelta:
			if d.enc.Base != EncodingDIF {
				return nil, false, tokenError(lineNo, t.text, fmt.Sprintf("difference token in %s block", d.enc.Base))
			}

			if !d.seeded {
				return nil, false, tokenError(lineNo, t.text, "difference without a preceding value")
			}

			if err := d.reserve(lineNo, len(ys), 1); err != nil {
				return nil, false, err
			}

			d.running += t.value
			ys = append(ys, d.running)
			endsDelta = true

		case tokenDup:
			if !d.enc.Dup {
				return nil, false, tokenError(lineNo, t.text, fmt.Sprintf("duplicate count in %s block", d.enc))
			}

			if prev == nil {
				return nil, false, tokenError(lineNo, t.text, "duplicate count without a preceding value")
			}

			if err := d.reserve(lineNo, len(ys), int(t.value)-1); err != nil {
				return nil, false, err
			}

			for n := 1; n < int(t.value); n++ {
				if prev.kind == tokenDelta {
					d.running += prev.value
				} else {
					d.running = prev.value
				}

				ys = append(ys, d.running)
			}

			prev = nil
			continue

		case tokenCheck:
			if i != len(toks)-1 {
				return nil, false, tokenError(lineNo, t.text, "check digit must end the line")
			}

			if err := d.verifyDigit(lineNo, int(t.value), ys); err != nil {
				return nil, false, err
			}

			continue
		}

		checkPending = false
		prev = &toks[i]
	}

	d.endsDelta = endsDelta
	d.count += len(ys)

	return ys, checked, nil
}

// verifyCheck compares a Y-check value to the running value.
func (d *decompressor) verifyCheck(lineNo int, v float64) error {
	if nearlyEqual(v, d.running) {
		return nil
	}

	return d.mismatch(lineNo, fmt.Sprintf("y-check value %g does not match decoded value %g", v, d.running))
}

// verifyDigit compares a line check digit to the sum of the values decoded on that line, modulo 10.
func (d *decompressor) verifyDigit(lineNo, digit int, ys []float64) error {
	if want := lineCheckDigit(ys); digit != want {
		return d.mismatch(lineNo, fmt.Sprintf("check digit %d does not match line sum digit %d", digit, want))
	}

	return nil
}

// mismatch reports a failed check as a warning, or as an error in strict mode.
func (d *decompressor) mismatch(lineNo int, msg string) error {
	if d.strict {
		return decodeErrorf(ErrChecksumMismatch, lineNo, "%s", msg)
	}

	d.warnings = append(d.warnings, Warning{Kind: WarnChecksumMismatch, Line: lineNo, Msg: msg})

	return nil
}

// lineCheckDigit returns the last digit of the integer part of the sign-stripped sum of ys.
func lineCheckDigit(ys []float64) int {
	var sum float64
	for _, y := range ys {
		sum += y
	}

	return int(math.Mod(math.Trunc(math.Abs(sum)), 10))
}

// nearlyEqual compares two decoded values with a relative tolerance of 1e-9.
func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
