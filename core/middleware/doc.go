// Package middleware contains HTTP middleware for the history API.
//
// # Components
//
//   - auth: API key validation (X-API-Key or Bearer) for every route except the
//     health check.
//   - requestid: assigns a request id to every request, stores it in the context
//     locals and echoes it in the X-Request-ID response header.
//
// Register requestid first so that every log line of a request carries its id.
package middleware
