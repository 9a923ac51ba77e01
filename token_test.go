package spectrumreader

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_tokenizeLine(t *testing.T) {
	type args struct {
		line  string
		plain bool
	}
	tests := []struct {
		name      string
		args      args
		wantKinds []tokenKind
		wantVals  []float64
		wantErr   bool
	}{
		{name: "AFFN", args: args{line: "100 10 11 12 10"}, wantKinds: []tokenKind{tokenValue, tokenValue, tokenValue, tokenValue, tokenValue}, wantVals: []float64{100, 10, 11, 12, 10}},
		{name: "PAC signs as separators", args: args{line: "100+10-11+12"}, wantKinds: []tokenKind{tokenValue, tokenValue, tokenValue, tokenValue}, wantVals: []float64{100, 10, -11, 12}},
		{name: "SQZ", args: args{line: "100A0a1@G"}, wantKinds: []tokenKind{tokenValue, tokenValue, tokenValue, tokenValue, tokenValue}, wantVals: []float64{100, 10, -11, 0, 7}},
		{name: "DIF", args: args{line: "100A0JJk%j0"}, wantKinds: []tokenKind{tokenValue, tokenValue, tokenDelta, tokenDelta, tokenDelta, tokenDelta, tokenDelta}, wantVals: []float64{100, 10, 1, 1, -2, 0, -10}},
		{name: "DUP", args: args{line: "100A0T%s0"}, wantKinds: []tokenKind{tokenValue, tokenValue, tokenDup, tokenDelta, tokenDup}, wantVals: []float64{100, 10, 2, 0, 90}},
		{name: "Decimal squeezed", args: args{line: "1.5A.25"}, wantKinds: []tokenKind{tokenValue, tokenValue}, wantVals: []float64{1.5, 1.25}},
		{name: "Signed exponent", args: args{line: "1.5E+03 2e-1"}, wantKinds: []tokenKind{tokenValue, tokenValue}, wantVals: []float64{1500, 0.2}},
		{name: "Plain exponent", args: args{line: "2E3, 4", plain: true}, wantKinds: []tokenKind{tokenValue, tokenValue}, wantVals: []float64{2000, 4}},
		{name: "Unsigned E is squeezed", args: args{line: "2E3"}, wantKinds: []tokenKind{tokenValue, tokenValue}, wantVals: []float64{2, 53}},
		{name: "Check digit", args: args{line: "100A0JJ*3"}, wantKinds: []tokenKind{tokenValue, tokenValue, tokenDelta, tokenDelta, tokenCheck}, wantVals: []float64{100, 10, 1, 1, 3}},
		{name: "Empty", args: args{line: "   "}},
		{name: "Check digit too long", args: args{line: "100 5 *12"}, wantErr: true},
		{name: "Check digit missing", args: args{line: "100 5 *"}, wantErr: true},
		{name: "Check digit in plain", args: args{line: "100 5 *5", plain: true}, wantErr: true},
		{name: "Unknown character", args: args{line: "100 A0 ?"}, wantErr: true},
		{name: "Compressed in plain", args: args{line: "100 A0", plain: true}, wantErr: true},
		{name: "Double point", args: args{line: "1.2.3"}, wantErr: true},
		{name: "Lone sign", args: args{line: "100 - 5"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tokenizeLine(tt.args.line, 7, tt.args.plain)
			if (err != nil) != tt.wantErr {
				t.Errorf("tokenizeLine() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrMalformedToken))
				return
			}

			require.Len(t, got, len(tt.wantVals))
			for i, tok := range got {
				assert.Equal(t, tt.wantKinds[i], tok.kind, "kind of token %d", i)
				assert.InDelta(t, tt.wantVals[i], tok.value, 1e-12, "value of token %d", i)
			}
		})
	}
}

func Test_tokenizeLineErrorLocation(t *testing.T) {
	_, err := tokenizeLine("100A0 J!K", 42, false)
	require.Error(t, err)

	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 42, de.Line)
	assert.Equal(t, "!K", de.Fragment)
}

func Test_pseudoDigits(t *testing.T) {
	tests := []struct {
		c        byte
		class    charClass
		digit    byte
		negative bool
	}{
		{c: '@', class: classSQZ, digit: '0'},
		{c: 'I', class: classSQZ, digit: '9'},
		{c: 'i', class: classSQZ, digit: '9', negative: true},
		{c: '%', class: classDIF, digit: '0'},
		{c: 'R', class: classDIF, digit: '9'},
		{c: 'r', class: classDIF, digit: '9', negative: true},
		{c: 'S', class: classDUP, digit: '1'},
		{c: 'Z', class: classDUP, digit: '8'},
		{c: 's', class: classDUP, digit: '9'},
		{c: 't', class: classInvalid},
	}
	for _, tt := range tests {
		t.Run(string(tt.c), func(t *testing.T) {
			got := classOf(tt.c)
			assert.Equal(t, tt.class, got.class)
			if tt.class != classInvalid {
				assert.Equal(t, tt.digit, got.digit)
				assert.Equal(t, tt.negative, got.negative)
			}
		})
	}
}
