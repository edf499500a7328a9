// Package ratelimit paces requests against the matchmaking platform.
//
// The sweep is fully sequential, so pacing reduces to a fixed gap between
// successive calls: one page fetch or query per configured interval. The
// FixedInterval pacer implements that gap on top of golang.org/x/time/rate
// with a burst of one, which gives exact spacing without any adaptive
// behavior.
//
// Usage:
//
//	pacer := ratelimit.NewFixedInterval(500 * time.Millisecond)
//
//	for _, query := range queries {
//	    if err := pacer.Wait(ctx); err != nil {
//	        return err // context cancelled
//	    }
//	    // issue request
//	}
package ratelimit
