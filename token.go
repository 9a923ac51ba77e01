package spectrumreader

import (
	"strconv"
	"strings"
)

type tokenKind int

const (
	tokenValue tokenKind = iota // tokenValue is an absolute value, plain or squeezed.
	tokenDelta                  // tokenDelta is a difference from the running value.
	tokenDup                    // tokenDup is a duplicate count for the preceding token.
	tokenCheck                  // tokenCheck is a line check digit written as "*d".
)

// token is one numeric item of a data line.
type token struct {
	kind   tokenKind
	value  float64
	packed bool   // packed is true when the token began with a pseudo-digit.
	text   string // text is the source fragment, kept for error reporting.
}

type charClass uint8

const (
	classInvalid charClass = iota
	classSeparator
	classDigit
	classSign
	classPoint
	classSQZ
	classDIF
	classDUP
	classCheck
)

// pseudoDigit describes how one byte reads inside a data line.
type pseudoDigit struct {
	class    charClass
	digit    byte // digit is the ASCII digit the character stands for.
	negative bool
}

// pseudoDigits maps every ASCII byte to its meaning in an ASDF data line.
var pseudoDigits = buildPseudoDigits()

func buildPseudoDigits() [128]pseudoDigit {
	var t [128]pseudoDigit

	for _, c := range " \t\r\n,;" {
		t[c] = pseudoDigit{class: classSeparator}
	}

	for c := byte('0'); c <= '9'; c++ {
		t[c] = pseudoDigit{class: classDigit, digit: c}
	}

	t['+'] = pseudoDigit{class: classSign}
	t['-'] = pseudoDigit{class: classSign, negative: true}
	t['.'] = pseudoDigit{class: classPoint}

	t['@'] = pseudoDigit{class: classSQZ, digit: '0'}
	t['%'] = pseudoDigit{class: classDIF, digit: '0'}

	for i := byte(0); i < 9; i++ {
		t['A'+i] = pseudoDigit{class: classSQZ, digit: '1' + i}
		t['a'+i] = pseudoDigit{class: classSQZ, digit: '1' + i, negative: true}
		t['J'+i] = pseudoDigit{class: classDIF, digit: '1' + i}
		t['j'+i] = pseudoDigit{class: classDIF, digit: '1' + i, negative: true}
	}

	for i := byte(0); i < 8; i++ {
		t['S'+i] = pseudoDigit{class: classDUP, digit: '1' + i}
	}

	t['s'] = pseudoDigit{class: classDUP, digit: '9'}
	t['*'] = pseudoDigit{class: classCheck}

	return t
}

func classOf(c byte) pseudoDigit {
	if c >= 128 {
		return pseudoDigit{}
	}

	return pseudoDigits[c]
}

// tokenizeLine splits one data line into tokens.  When plain is true only signed decimal numbers are accepted, and an
// exponent may follow a mantissa directly; otherwise squeezed, difference and duplicate pseudo-digits are recognized
// and an exponent needs an explicit sign, because E and e are also pseudo-digits.
func tokenizeLine(line string, lineNo int, plain bool) ([]token, error) {
	var out []token

	i := 0
	for i < len(line) {
		c := line[i]
		pd := classOf(c)

		switch pd.class {
		case classSeparator:
			i++

		case classDigit, classSign, classPoint:
			end := scanNumber(line, i, plain)
			v, err := strconv.ParseFloat(line[i:end], 64)
			if err != nil {
				return nil, tokenError(lineNo, line[i:end], "invalid number")
			}

			out = append(out, token{kind: tokenValue, value: v, text: line[i:end]})
			i = end

		case classSQZ, classDIF, classDUP:
			if plain {
				return nil, tokenError(lineNo, fragmentAt(line, i), "compressed character in plain data")
			}

			tok, end, err := scanPacked(line, i, pd, lineNo)
			if err != nil {
				return nil, err
			}

			out = append(out, tok)
			i = end

		case classCheck:
			if plain {
				return nil, tokenError(lineNo, fragmentAt(line, i), "check digit in plain data")
			}

			end := scanDigits(line, i+1)
			if end != i+2 || line[i+1] == '.' {
				return nil, tokenError(lineNo, fragmentAt(line, i), "check digit must be one digit")
			}

			out = append(out, token{kind: tokenCheck, value: float64(line[i+1] - '0'), text: line[i:end]})
			i = end

		default:
			return nil, tokenError(lineNo, fragmentAt(line, i), "unexpected character")
		}
	}

	return out, nil
}

// scanNumber returns the end of the signed decimal number starting at i.
func scanNumber(line string, i int, plain bool) int {
	j := i
	if classOf(line[j]).class == classSign {
		j++
	}

	j = scanDigits(line, j)

	if j < len(line) && (line[j] == 'E' || line[j] == 'e') {
		k := j + 1
		signed := k < len(line) && classOf(line[k]).class == classSign
		if signed {
			k++
		}

		if k < len(line) && classOf(line[k]).class == classDigit && (signed || plain) {
			j = k
			for j < len(line) && classOf(line[j]).class == classDigit {
				j++
			}
		}
	}

	return j
}

// scanDigits returns the end of the run of digits and decimal points starting at i.
func scanDigits(line string, i int) int {
	for i < len(line) {
		cl := classOf(line[i]).class
		if cl != classDigit && cl != classPoint {
			break
		}
		i++
	}

	return i
}

// scanPacked reads a token that begins with a pseudo-digit at i.
func scanPacked(line string, i int, pd pseudoDigit, lineNo int) (token, int, error) {
	end := scanDigits(line, i+1)
	rest := line[i+1 : end]

	var b strings.Builder
	if pd.negative {
		b.WriteByte('-')
	}
	b.WriteByte(pd.digit)
	b.WriteString(rest)

	text := line[i:end]

	if pd.class == classDUP {
		n, err := strconv.Atoi(b.String())
		if err != nil || n < 1 {
			return token{}, 0, tokenError(lineNo, text, "invalid duplicate count")
		}

		return token{kind: tokenDup, value: float64(n), packed: true, text: text}, end, nil
	}

	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return token{}, 0, tokenError(lineNo, text, "invalid packed number")
	}

	kind := tokenValue
	if pd.class == classDIF {
		kind = tokenDelta
	}

	return token{kind: kind, value: v, packed: true, text: text}, end, nil
}

// fragmentAt returns the text from i up to the next separator, for error messages.
func fragmentAt(line string, i int) string {
	end := i + 1
	for end < len(line) && classOf(line[end]).class != classSeparator {
		end++
	}

	return line[i:end]
}
