// Package dedupe tracks which account ids have already been recorded
// during a sweep so no account is written to the sheet twice.
package dedupe

// SeenSet is a process-scoped set of account ids. Ids are opaque strings
// and are never normalized. The sweep is single-threaded, so no locking.
type SeenSet struct {
	seen map[string]struct{}
}

// NewSeenSet creates an empty seen set
func NewSeenSet() *SeenSet {
	return &SeenSet{seen: make(map[string]struct{})}
}

// Seen reports whether the account id has been marked
func (s *SeenSet) Seen(accountID string) bool {
	_, ok := s.seen[accountID]
	return ok
}

// Mark records the account id as seen
func (s *SeenSet) Mark(accountID string) {
	s.seen[accountID] = struct{}{}
}

// Len returns the number of distinct ids marked
func (s *SeenSet) Len() int {
	return len(s.seen)
}
