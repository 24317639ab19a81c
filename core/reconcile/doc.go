// Package reconcile provides the generic engine that syncs local records into a
// remote store one record at a time.
//
// # Architecture
//
// 1. Engine: Run walks the ingested entries in source order. For each entry it asks
//    the adapter for a decision (Plan), executes create and update decisions (Apply),
//    and records a tagged Outcome.
//
// 2. Adapter: Model-specific implementation that knows how to match a record against
//    the remote store and how to write it. See feature/applications for the job
//    application adapter.
//
// 3. Reporter: Counts created, updated, skipped and failed records.
//
// # Failure isolation
//
// A failing record (malformed date, unknown status, failed remote call) becomes a
// failed Outcome and the run continues. Only cancellation of the context stops the
// run early. Report.Failed tells the caller whether to exit with a non-zero status.
//
// # Ordering
//
// Records are never processed concurrently. Plan for record N runs only after Apply
// for record N-1 returned, so a match query always observes earlier writes.
//
// # Usage Example
//
//	spec := &reconcile.Spec{
//	    Adapter: applications.NewAdapter(client, databaseID, applications.PolicyRecent),
//	    Options: reconcile.Options{DryRun: false},
//	}
//	report, err := reconcile.Run(ctx, spec, entries)
package reconcile
