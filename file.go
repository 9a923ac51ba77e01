package spectrumreader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// decodeFile opens, decodes and closes the file at path.  The handle is released on every return path.
func decodeFile(path string, cfg config) (s Series, err error) {
	fi, err := os.Open(path)
	if err != nil {
		return Series{}, fmt.Errorf("error while opening %s: %w", filepath.Base(path), err)
	}

	defer func() {
		if cerr := fi.Close(); cerr != nil && err == nil {
			s = Series{}
			err = fmt.Errorf("error while closing %s: %w", filepath.Base(path), cerr)
		}
	}()

	return decode(fi, path, cfg)
}

// LoadAll decodes the given files concurrently and returns their series in the order of paths.  The first failure
// cancels files that have not started yet and is returned.
func LoadAll(ctx context.Context, paths []string, opts ...Option) ([]Series, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no paths were given")
	}

	cfg := newConfig(opts...)
	out := make([]Series, len(paths))

	eg, egCtx := errgroup.WithContext(ctx)

	for i, path := range paths {
		i, p := i, path
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			s, err := decodeFile(p, cfg)
			if err != nil {
				return fmt.Errorf("error while loading %s: %w", filepath.Base(p), err)
			}

			out[i] = s

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
