// Package ratelimit provides the limiters used to space out calls to the Notion API.
//
// MinInterval is the default: it pauses a fixed interval after every completed call.
// Token wraps golang.org/x/time/rate for a token-bucket policy. Both satisfy Limiter,
// which the notion package accepts through notion.WithLimiter.
package ratelimit
