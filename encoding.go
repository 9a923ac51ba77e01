package spectrumreader

// BaseEncoding is the numeric form of the values in a JCAMP-DX data block.
type BaseEncoding int

const (
	encodingUnknown BaseEncoding = iota
	EncodingPAC                  // EncodingPAC is packed or plain ASCII; values are separated by spaces or signs.
	EncodingSQZ                  // EncodingSQZ is squeezed form; the sign and first digit of each value share one character.
	EncodingDIF                  // EncodingDIF is difference form; values after the first are deltas to the running value.
	EncodingPairs                // EncodingPairs is explicit (XY..XY) pairs in plain ASCII.
)

func (b BaseEncoding) String() string {
	switch b {
	case EncodingPAC:
		return "PAC"
	case EncodingSQZ:
		return "SQZ"
	case EncodingDIF:
		return "DIF"
	case EncodingPairs:
		return "PAIRS"
	default:
		return "UNKNOWN"
	}
}

// Encoding is the closed set of data block encodings.  Dup marks duplicate suppression layered over the base form.
type Encoding struct {
	Base BaseEncoding
	Dup  bool
}

func (e Encoding) String() string {
	if e.Dup {
		return e.Base.String() + "DUP"
	}

	return e.Base.String()
}

// supported returns true if the encoding is one this package decodes.
func (e Encoding) supported() bool {
	switch e.Base {
	case EncodingPAC, EncodingSQZ, EncodingDIF:
		return true
	case EncodingPairs:
		return !e.Dup
	default:
		return false
	}
}

// selectEncoding chooses the encoding of a (X++(Y..Y)) block from its tokens.  The strongest form present wins: any
// difference token makes the block DIF, otherwise any packed value makes it SQZ.
func selectEncoding(lines [][]token) Encoding {
	var out Encoding

	out.Base = EncodingPAC

	for _, toks := range lines {
		for _, t := range toks {
			switch {
			case t.kind == tokenDup:
				out.Dup = true
			case t.kind == tokenDelta:
				out.Base = EncodingDIF
			case t.packed && out.Base == EncodingPAC:
				out.Base = EncodingSQZ
			}
		}
	}

	return out
}
