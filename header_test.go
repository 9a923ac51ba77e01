package spectrumreader

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLabel(t *testing.T) {
	type args struct {
		label string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{name: "Plain", args: args{label: "FIRSTX"}, want: "FIRSTX"},
		{name: "Spaced", args: args{label: " First X "}, want: "FIRSTX"},
		{name: "Underscored", args: args{label: "first_x"}, want: "FIRSTX"},
		{name: "Prefixed", args: args{label: "##DATA TYPE"}, want: "DATATYPE"},
		{name: "Dashed", args: args{label: "JCAMP-DX"}, want: "JCAMPDX"},
		{name: "Private", args: args{label: "$OWNER"}, want: "$OWNER"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeLabel(tt.args.label); got != tt.want {
				t.Errorf("NormalizeLabel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_splitLabeled(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantLabel string
		wantValue string
		wantOK    bool
	}{
		{name: "Basic", line: "##NPOINTS=8", wantLabel: "NPOINTS", wantValue: "8", wantOK: true},
		{name: "Padded", line: "  ## X UNITS =  1/CM  ", wantLabel: "XUNITS", wantValue: "1/CM", wantOK: true},
		{name: "Comment", line: "##YFACTOR=0.5 $$ scaled", wantLabel: "YFACTOR", wantValue: "0.5", wantOK: true},
		{name: "Empty value", line: "##END=", wantLabel: "END", wantValue: "", wantOK: true},
		{name: "Data", line: "100A0JJk", wantOK: false},
		{name: "No equals", line: "##BROKEN", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, value, ok := splitLabeled(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantLabel, label)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func TestHeaderFields(t *testing.T) {
	block, err := readJcamp([]byte(`##TITLE=header test
##First_X=4000
##LAST X=400
##NPOINTS=5
##X_UNITS=1/CM
##$VENDOR=acme
##XYDATA=(X++(Y..Y))
4000 1 2 3 4 5
##END=
`))
	require.NoError(t, err)

	h := block.header

	firstX, ok := h.FirstX()
	assert.True(t, ok)
	assert.Equal(t, 4000.0, firstX)

	lastX, ok := h.LastX()
	assert.True(t, ok)
	assert.Equal(t, 400.0, lastX)

	n, ok := h.NPoints()
	assert.True(t, ok)
	assert.Equal(t, 5, n)

	assert.Equal(t, 1.0, h.XFactor())
	assert.Equal(t, 1.0, h.YFactor())

	_, ok = h.DeltaX()
	assert.False(t, ok)

	units, ok := h.XUnits()
	assert.True(t, ok)
	assert.Equal(t, "1/CM", units)

	_, ok = h.YUnits()
	assert.False(t, ok)

	vendor, ok := h.Value("$vendor")
	assert.True(t, ok)
	assert.Equal(t, "acme", vendor)

	assert.Equal(t, []string{"TITLE", "FIRSTX", "LASTX", "NPOINTS", "XUNITS", "$VENDOR"}, h.Labels())
}

func TestHeaderFieldsNotANumber(t *testing.T) {
	_, err := readJcamp([]byte("##TITLE=bad\n##NPOINTS=eight\n##XYDATA=(X++(Y..Y))\n1 2\n##END=\n"))
	require.Error(t, err)

	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, ErrMalformedToken, de.Kind)
	assert.Equal(t, "NPOINTS", de.Field)
	assert.Equal(t, 2, de.Line)
}

func TestHeaderFieldsMultiLineValue(t *testing.T) {
	block, err := readJcamp([]byte("##TITLE=first part\nsecond part\n##XYPOINTS=(XY..XY)\n1 2\n##END=\n"))
	require.NoError(t, err)

	title, ok := block.header.Title()
	assert.True(t, ok)
	assert.Equal(t, "first part\nsecond part", title)
}
