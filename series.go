package spectrumreader

// Series is a decoded spectrum: an ordered sequence of (x, y) pairs and the context it was decoded from.  A Series is
// immutable; accessors return copies.
type Series struct {
	x, y     []float64
	header   HeaderFields
	format   Format
	encoding Encoding
	warnings []Warning
}

// Len returns the number of points.
func (s Series) Len() int {
	return len(s.x)
}

// X returns a copy of the abscissae.
func (s Series) X() []float64 {
	return append([]float64(nil), s.x...)
}

// Y returns a copy of the ordinates.
func (s Series) Y() []float64 {
	return append([]float64(nil), s.y...)
}

// Point returns the i-th pair.  It panics if i is out of range.
func (s Series) Point(i int) (x, y float64) {
	return s.x[i], s.y[i]
}

// Header returns the JCAMP-DX header fields.  It is empty for other formats.
func (s Series) Header() HeaderFields {
	return s.header
}

// Format returns the format the series was decoded from.
func (s Series) Format() Format {
	return s.format
}

// Encoding returns the data block encoding of a JCAMP-DX source.  It is the zero Encoding for other formats.
func (s Series) Encoding() Encoding {
	return s.encoding
}

// Warnings returns the non-fatal findings collected while decoding.
func (s Series) Warnings() []Warning {
	return append([]Warning(nil), s.warnings...)
}
