// Package dataset reads the CSV export of the job tracker.
//
// Headers are renamed to canonical field names (see Columns); unknown columns are
// dropped. Values are returned raw and normalized by the applications package.
package dataset
