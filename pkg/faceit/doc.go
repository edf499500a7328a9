// Package faceit wraps the matchmaking platform's player-search API.
//
// The only operation consumed is "search players by nickname substring",
// paginated by offset and limit and authenticated with a static bearer
// token. The server performs fuzzy matching on the nickname filter, so
// results are candidates only; callers are expected to validate nicknames
// before treating a result as a bot account.
//
// Transient failures (network errors, 429s, 5xx) are retried a bounded
// number of times with exponential backoff before an error is returned.
// Pagination ends when a page comes back with fewer items than the
// requested limit.
package faceit
