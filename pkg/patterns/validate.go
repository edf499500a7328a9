package patterns

import "strings"

// IsBotNickname reports whether nickname is an exact match for the bot
// naming scheme identified by pattern: the pattern itself, an underscore,
// then one or more ASCII digits with nothing trailing. The search service
// returns fuzzy substring matches; this predicate rejects them.
func IsBotNickname(nickname, pattern string) bool {
	if pattern == "" || !strings.HasPrefix(nickname, pattern) {
		return false
	}

	rest := nickname[len(pattern):]
	if len(rest) < 2 || rest[0] != '_' {
		return false
	}

	for _, char := range rest[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}

	return true
}
