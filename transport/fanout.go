package transport

import (
	"context"
	"net/http"

	"golang.org/x/sync/errgroup"
)

// FetchAll concurrently fetches every request, returning one result slice
// positionally aligned with reqs. If any fetch fails, FetchAll cancels
// the remaining in-flight fetches and returns the first error.
func (p *Pool) FetchAll(ctx context.Context, reqs []*http.Request) ([][]byte, error) {
	results := make([][]byte, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			body, err := p.Fetch(gctx, req)
			if err != nil {
				return err
			}
			results[i] = body
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
