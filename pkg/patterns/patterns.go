package patterns

import "fmt"

// Wildcard is the range token that broadens a query instead of narrowing it
const Wildcard = "*"

const (
	// DefaultMaxSuffix is the highest numeric suffix covered by range shards
	DefaultMaxSuffix = 400

	// DefaultRangeWidth is the span of each numeric range shard
	DefaultRangeWidth = 20
)

// Query is one search term to submit to the platform: a base pattern plus a
// range hint used to vary the query. The hint does not constrain results;
// validation does.
type Query struct {
	Pattern string
	Range   string
}

// Term renders the search string sent to the platform's nickname filter
func (q Query) Term() string {
	switch q.Range {
	case "":
		return q.Pattern
	case Wildcard:
		return q.Pattern + Wildcard
	default:
		return q.Pattern + "_" + q.Range
	}
}

// Generator produces the full sequence of queries for a sweep
type Generator struct {
	patterns   []string
	maxSuffix  int
	rangeWidth int
}

// NewGenerator creates a generator over the given base patterns
func NewGenerator(basePatterns []string, maxSuffix, rangeWidth int) *Generator {
	if maxSuffix <= 0 {
		maxSuffix = DefaultMaxSuffix
	}
	if rangeWidth <= 0 {
		rangeWidth = DefaultRangeWidth
	}
	return &Generator{
		patterns:   basePatterns,
		maxSuffix:  maxSuffix,
		rangeWidth: rangeWidth,
	}
}

// Queries returns every (pattern, range) pair for the sweep. The sequence is
// finite and a pure function of the generator's configuration: per pattern,
// one bare query, one wildcard query, then contiguous numeric range shards
// covering [1, maxSuffix] with the final shard clamped.
func (g *Generator) Queries() []Query {
	var queries []Query
	for _, pattern := range g.patterns {
		queries = append(queries, Query{Pattern: pattern})
		queries = append(queries, Query{Pattern: pattern, Range: Wildcard})

		for start := 1; start <= g.maxSuffix; start += g.rangeWidth {
			end := start + g.rangeWidth - 1
			if end > g.maxSuffix {
				end = g.maxSuffix
			}
			queries = append(queries, Query{
				Pattern: pattern,
				Range:   fmt.Sprintf("%d-%d", start, end),
			})
		}
	}
	return queries
}
