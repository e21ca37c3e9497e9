package ingest

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/datatable/internal/table"
)

// LoadAll loads every path concurrently and concatenates the rows in argument
// order. The first failure cancels the remaining loads and is returned.
func LoadAll(ctx context.Context, paths []string, opts Options) ([]table.Row, error) {
	results := make([][]table.Row, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		g.Go(func() error {
			rows, err := LoadRows(gCtx, path, opts)
			if err != nil {
				return err
			}
			results[i] = rows
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	all := make([]table.Row, 0, total)
	for _, r := range results {
		all = append(all, r...)
	}
	return all, nil
}
