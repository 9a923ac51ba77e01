package spectrumreader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_decodeFile(t *testing.T) {
	type args struct {
		path string
	}
	tests := []struct {
		name       string
		args       args
		wantFormat Format
		wantLen    int
		wantErr    bool
	}{
		{name: "Plain", args: args{path: spectrumTestFiles[0]}, wantFormat: FormatPlainText, wantLen: 6},
		{name: "JCAMP-DX", args: args{path: spectrumTestFiles[1]}, wantFormat: FormatJcampDx, wantLen: 8},
		{name: "Bogus path", args: args{path: "foo.jdx"}, wantErr: true},
		{name: "Decode failure", args: args{path: "testdata/mismatch.jdx"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeFile(tt.args.path, newConfig())
			if (err != nil) != tt.wantErr {
				t.Errorf("decodeFile() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				assert.Zero(t, got.Len())
				return
			}
			assert.Equal(t, tt.wantFormat, got.Format())
			assert.Equal(t, tt.wantLen, got.Len())
		})
	}
}

func TestLoadAll(t *testing.T) {
	got, err := LoadAll(context.Background(), spectrumTestFiles)
	require.NoError(t, err)
	require.Len(t, got, len(spectrumTestFiles))

	assert.Equal(t, FormatPlainText, got[0].Format())
	assert.Equal(t, Encoding{Base: EncodingDIF, Dup: true}, got[1].Encoding())
	assert.Equal(t, Encoding{Base: EncodingPAC}, got[2].Encoding())
	assert.Equal(t, Encoding{Base: EncodingPairs}, got[3].Encoding())
	assert.Equal(t, got[1].Y(), got[2].Y())
}

func TestLoadAllSpreadsheet(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]interface{}{{1, 2}, {3, 4}})

	got, err := LoadAll(context.Background(), []string{path, "testdata/two.txt"})
	require.NoError(t, err)

	assert.Equal(t, FormatSpreadsheet, got[0].Format())
	assert.Equal(t, []float64{1, 3}, got[0].X())
	assert.Equal(t, []float64{400, 410}, got[1].X())
}

func TestLoadAllErrors(t *testing.T) {
	_, err := LoadAll(context.Background(), nil)
	assert.Error(t, err)

	paths := append([]string{"testdata/mismatch.jdx"}, spectrumTestFiles...)
	_, err = LoadAll(context.Background(), paths)
	assert.True(t, errors.Is(err, ErrPointCountMismatch))
	assert.Contains(t, err.Error(), "mismatch.jdx")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = LoadAll(ctx, spectrumTestFiles)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestLoadAllUnreadable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.jdx")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	_, err := LoadAll(context.Background(), []string{path})
	assert.True(t, errors.Is(err, ErrUnrecognizedFormat))
}
