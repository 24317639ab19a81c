// Package history persists sync runs and serves them over HTTP.
//
// Every run is stored in sync_runs with its counters, and every processed row in
// sync_records with its action, target page and failure, if any. The tables live
// in the database configured under "database" (sqlite by default).
//
// # Endpoints
//
//	GET /runs        recent runs, newest first (?limit=N)
//	GET /runs/:id    one run with its records in line order
package history
