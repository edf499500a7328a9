// Package sweep orchestrates the bot-account enumeration run.
//
// A run walks the generated (pattern, range) queries strictly in sequence:
// each query is paged through the search client until a short page, every
// candidate nickname is checked against the pattern's naming scheme, and
// validated accounts that have not been seen before are forwarded to the
// row writer, either immediately per account (the default, resilient to
// mid-run crashes) or buffered and flushed once at run end.
//
// Everything is single-threaded. A fixed-interval pacer runs before each
// page fetch, which spaces both successive pages and successive queries.
// A failed page fetch is absorbed as an empty last page; failures from the
// writer abort the run.
package sweep
