package main

import (
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/tourfame/tourpipe"
)

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)

	var mu sync.Mutex
	var failed int

	for _, url := range c.URLs {
		g.Go(func() error {
			job, err := deps.Runner.Run(ctx, url)
			if err != nil {
				mu.Lock()
				failed++
				fmt.Fprintf(deps.Stderr, "error: %s: %s\n", url, tourpipe.ErrorMessage(err))
				mu.Unlock()
				if job == nil {
					return nil
				}
			}

			mu.Lock()
			fmt.Fprintf(deps.Stdout, "%s  %s  %d documents, %d records\n",
				job.ID, job.Status, job.Documents, job.Records)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d jobs failed", failed, len(c.URLs))
	}
	return nil
}
