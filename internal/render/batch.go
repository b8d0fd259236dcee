package render

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Job renders one figure and returns the path it was written to.
type Job func() (string, error)

// RenderAll runs the jobs concurrently and returns the written paths in job
// order. The first failure cancels the remaining jobs and is returned.
func RenderAll(ctx context.Context, jobs []Job) ([]string, error) {
	g, ctx := errgroup.WithContext(ctx)
	paths := make([]string, len(jobs))

	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path, err := job()
			if err != nil {
				return err
			}
			paths[i] = path
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
