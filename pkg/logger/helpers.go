package logger

import (
	"context"

	"github.com/rs/zerolog"
)

// LogDiscovery logs a validated bot account being recorded
func LogDiscovery(pattern, playerID, nickname string) {
	GetLogger().WithFields(map[string]interface{}{
		"pattern":   pattern,
		"player_id": playerID,
		"nickname":  nickname,
	}).Info("Bot account discovered")
}

// LogSheetRollover logs the writer moving to a fresh overflow sheet
func LogSheetRollover(fromSheet, toSheet string) {
	GetLogger().WithFields(map[string]interface{}{
		"from_sheet": fromSheet,
		"to_sheet":   toSheet,
		"action":     "rollover",
	}).Warn("Sheet capacity reached, rolling over")
}

// LogSweepProgress logs per-query enumeration progress
func LogSweepProgress(query string, scanned, written int) {
	GetLogger().WithFields(map[string]interface{}{
		"query":   query,
		"scanned": scanned,
		"written": written,
	}).Info("Sweep progress")
}

// NewNopLogger creates a no-operation logger for testing
func NewNopLogger() Logger {
	return &nopLogger{}
}

// nopLogger is a logger that does nothing (useful for testing)
type nopLogger struct{}

func (n *nopLogger) Debug(msg string)                                          {}
func (n *nopLogger) Info(msg string)                                           {}
func (n *nopLogger) Warn(msg string)                                           {}
func (n *nopLogger) Error(msg string)                                          {}
func (n *nopLogger) Fatal(msg string)                                          {}
func (n *nopLogger) WithField(key string, value interface{}) Logger            { return n }
func (n *nopLogger) WithFields(fields map[string]interface{}) Logger           { return n }
func (n *nopLogger) WithError(err error) Logger                                { return n }
func (n *nopLogger) WithContext(ctx context.Context) Logger                    { return n }
func (n *nopLogger) DebugWithFields(msg string, fields map[string]interface{}) {}
func (n *nopLogger) InfoWithFields(msg string, fields map[string]interface{})  {}
func (n *nopLogger) WarnWithFields(msg string, fields map[string]interface{})  {}
func (n *nopLogger) ErrorWithFields(msg string, fields map[string]interface{}) {}
func (n *nopLogger) FatalWithFields(msg string, fields map[string]interface{}) {}
func (n *nopLogger) GetZerolog() *zerolog.Logger                               { return nil }
