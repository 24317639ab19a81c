package notion

import (
	"context"

	"application-sync/core/ratelimit"
)

type throttledClient struct {
	next    Client
	limiter ratelimit.Limiter
}

// WithLimiter wraps a client so that every call waits on the limiter first
// and reports its completion afterwards, whether it succeeded or not.
func WithLimiter(next Client, limiter ratelimit.Limiter) Client {
	return &throttledClient{next: next, limiter: limiter}
}

func (c *throttledClient) QueryDatabase(ctx context.Context, databaseID string, req QueryRequest) ([]Page, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	defer c.limiter.Done()
	return c.next.QueryDatabase(ctx, databaseID, req)
}

func (c *throttledClient) CreatePage(ctx context.Context, databaseID string, props Properties) (*Page, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	defer c.limiter.Done()
	return c.next.CreatePage(ctx, databaseID, props)
}

func (c *throttledClient) UpdatePage(ctx context.Context, pageID string, props Properties) (*Page, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	defer c.limiter.Done()
	return c.next.UpdatePage(ctx, pageID, props)
}
