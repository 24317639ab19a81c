// Package archive keeps a copy of every sync run in object storage.
//
// After a run, the source CSV and the JSON report are uploaded to the configured
// bucket under runs/<run-id>/. The bucket is created on first use. Archiving is
// off unless storage.enabled is set.
//
// The history API exposes the archived files at GET /runs/:id/artifacts.
package archive
