// Package notion is a small client for the Notion REST API, limited to the database
// operations the sync engine uses: query with a compound filter, create a page and
// update page properties.
//
// # Client Interface
//
// Client is implemented by the HTTP client returned by NewClient, by the throttling
// decorator returned by WithLimiter, by the testify mock in core/notion/mocks and by the
// in-memory store in core/notion/notiontest.
//
// # Errors
//
// Every failed call wraps ErrRemoteCall. API error objects are returned as *APIError.
//
// # Usage
//
//	client, err := notion.NewClient(cfg.Notion)
//	client = notion.WithLimiter(client, ratelimit.NewMinInterval(400*time.Millisecond))
//	pages, err := client.QueryDatabase(ctx, cfg.Notion.DatabaseID, notion.QueryRequest{Filter: &filter})
package notion
