// Package applications syncs job application exports into a Notion database.
//
// # Pipeline
//
// Every CSV row goes through the same steps, strictly one row at a time:
//
//  1. Normalize: locations are split on "|" and cleaned, dates are rewritten from
//     M/D/YYYY to YYYY-MM-DD (Parse, NormalizeLocations, NormalizeDate).
//  2. Map status: the export's status is mapped to the database vocabulary
//     (MapStatus). "Not started" rows are skipped without any remote call.
//  3. Match: one query with company, role, first location and applied date
//     (BuildQuery, Matcher). Several candidates are resolved by a MatchPolicy.
//  4. Decide: create when nothing matched, skip when the status is unchanged,
//     update otherwise (Decide).
//  5. Apply: create a full page or rewrite status and last action date
//     (CreateProperties, UpdateProperties).
//
// The Adapter plugs steps 2 to 5 into core/reconcile, which runs the rows and
// counts outcomes. Rate limiting is done by the notion client passed in.
//
// # Work environment
//
// New pages get a Work Environment derived from the locations: the first location
// mentioning "hybrid" or "remote" decides, checking "hybrid" first; otherwise Office.
package applications
