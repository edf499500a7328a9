// Package sheets persists discovered accounts into a Google spreadsheet.
//
// The spreadsheet is the run's only durable store: column A holds the
// account id, column B the nickname, row 1 a fixed header, rows appended in
// discovery order.
//
// Sheets have a hard per-sheet cell ceiling. When an append fails with a
// capacity-classified error, the Writer creates the next numbered overflow
// sheet (<base>_2, <base>_3, ...), writes the header there, and retries the
// same rows exactly once. Anything else that fails an append aborts the run.
//
// The API interface keeps the Google client at the boundary; capacity
// classification happens in the Service so the Writer never matches on
// error message wording.
package sheets
