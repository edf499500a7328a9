package sweep

import (
	"context"
	"errors"
	"fmt"

	"botsweep/pkg/config"
	"botsweep/pkg/dedupe"
	"botsweep/pkg/faceit"
	"botsweep/pkg/logger"
	"botsweep/pkg/patterns"
	"botsweep/pkg/ratelimit"
	"botsweep/pkg/sheets"
)

// Totals summarizes a completed run
type Totals struct {
	Queries    int
	Pages      int
	Scanned    int
	Discovered int
}

// Sweeper drives the end-to-end enumeration: generated queries are paged
// through the search client, candidates are validated and deduplicated, and
// surviving accounts are forwarded to the row writer.
type Sweeper struct {
	client    SearchClient
	writer    RowWriter
	generator *patterns.Generator
	seen      *dedupe.SeenSet
	pacer     ratelimit.Pacer
	pageLimit int
	strategy  config.WriteStrategy
	buffer    []sheets.Row
	totals    Totals
	logger    logger.Logger
}

// New creates a Sweeper from the sweep configuration
func New(cfg *config.Config, client SearchClient, writer RowWriter, log logger.Logger) *Sweeper {
	if log == nil {
		log = logger.GetLogger()
	}

	// A non-positive page limit would keep the offset from ever advancing
	pageLimit := cfg.Faceit.PageLimit
	if pageLimit <= 0 {
		pageLimit = faceit.DefaultPageLimit
	}

	return &Sweeper{
		client:    client,
		writer:    writer,
		generator: patterns.NewGenerator(cfg.Sweep.Patterns, cfg.Sweep.MaxSuffix, cfg.Sweep.RangeWidth),
		seen:      dedupe.NewSeenSet(),
		pacer:     ratelimit.NewFixedInterval(cfg.Sweep.RequestDelay),
		pageLimit: pageLimit,
		strategy:  cfg.Sweep.WriteStrategy,
		logger:    log,
	}
}

// Run executes the full sweep. It returns on the first fatal error: sheet
// initialization failure, a non-capacity append failure, a failed rollover
// retry, or context cancellation. Single page-fetch failures never abort
// the run.
func (s *Sweeper) Run(ctx context.Context) error {
	if err := s.writer.Initialize(ctx); err != nil {
		return fmt.Errorf("sheet initialization failed: %w", err)
	}

	queries := s.generator.Queries()
	s.logger.InfoWithFields("sweep started", map[string]interface{}{
		"queries":    len(queries),
		"page_limit": s.pageLimit,
		"strategy":   string(s.strategy),
	})

	for _, query := range queries {
		if err := s.sweepQuery(ctx, query); err != nil {
			return err
		}
		s.totals.Queries++
	}

	if s.strategy == config.WriteBuffered {
		if err := s.flush(ctx); err != nil {
			return err
		}
	}

	s.logger.InfoWithFields("sweep completed", map[string]interface{}{
		"queries":    s.totals.Queries,
		"pages":      s.totals.Pages,
		"scanned":    s.totals.Scanned,
		"discovered": s.totals.Discovered,
	})
	return nil
}

// Totals returns the run counters accumulated so far
func (s *Sweeper) Totals() Totals {
	return s.totals
}

// sweepQuery pages through one query until the last page, forwarding every
// validated, unseen account
func (s *Sweeper) sweepQuery(ctx context.Context, query patterns.Query) error {
	term := query.Term()
	scannedBefore := s.totals.Scanned
	discoveredBefore := s.totals.Discovered

	for offset := 0; ; offset += s.pageLimit {
		if err := s.pacer.Wait(ctx); err != nil {
			return fmt.Errorf("sweep cancelled: %w", err)
		}

		page, err := s.fetchPage(ctx, term, offset)
		if err != nil {
			return err
		}
		s.totals.Pages++

		for _, player := range page.Players {
			s.totals.Scanned++

			if !patterns.IsBotNickname(player.Nickname, query.Pattern) {
				continue
			}
			if s.seen.Seen(player.PlayerID) {
				s.logger.DebugWithFields("skipping already recorded account", map[string]interface{}{
					"player_id": player.PlayerID,
					"nickname":  player.Nickname,
				})
				continue
			}
			s.seen.Mark(player.PlayerID)

			row := sheets.Row{AccountID: player.PlayerID, Nickname: player.Nickname}
			if s.strategy == config.WriteBuffered {
				s.buffer = append(s.buffer, row)
			} else {
				if err := s.writer.Append(ctx, []sheets.Row{row}); err != nil {
					return fmt.Errorf("failed to record account %s: %w", player.PlayerID, err)
				}
			}

			s.totals.Discovered++
			logger.LogDiscovery(query.Pattern, player.PlayerID, player.Nickname)
		}

		if page.LastPage {
			break
		}
	}

	logger.LogSweepProgress(term, s.totals.Scanned-scannedBefore, s.totals.Discovered-discoveredBefore)
	return nil
}

// fetchPage fetches one search page, absorbing service failures: a failed
// fetch logs a warning and is treated as an empty last page so the sweep
// always proceeds to the next query. Context cancellation stays fatal.
func (s *Sweeper) fetchPage(ctx context.Context, term string, offset int) (*faceit.SearchPage, error) {
	page, err := s.client.Search(ctx, term, offset, s.pageLimit)
	if err == nil {
		return page, nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil, fmt.Errorf("sweep cancelled: %w", err)
	}

	s.logger.WarnWithFields("page fetch failed, treating as empty last page", map[string]interface{}{
		"term":   term,
		"offset": offset,
		"error":  err.Error(),
	})
	return &faceit.SearchPage{LastPage: true}, nil
}

// flush writes the buffered rows in one append at run end
func (s *Sweeper) flush(ctx context.Context) error {
	if len(s.buffer) == 0 {
		return nil
	}

	if err := s.writer.Append(ctx, s.buffer); err != nil {
		return fmt.Errorf("failed to flush %d buffered rows: %w", len(s.buffer), err)
	}

	s.logger.InfoWithFields("buffered rows flushed", map[string]interface{}{
		"rows": len(s.buffer),
	})
	s.buffer = nil
	return nil
}
