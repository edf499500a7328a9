package sweep

import (
	"context"

	"botsweep/pkg/logger"
	"botsweep/pkg/sheets"
)

// DiscardWriter is a RowWriter that logs rows instead of persisting them.
// Used by dry runs to preview what a sweep would record.
type DiscardWriter struct {
	Logger logger.Logger
	Rows   int
}

// Initialize is a no-op for dry runs
func (d *DiscardWriter) Initialize(ctx context.Context) error {
	d.log().Info("dry run: skipping sheet initialization")
	return nil
}

// Append logs each row and counts it
func (d *DiscardWriter) Append(ctx context.Context, rows []sheets.Row) error {
	for _, row := range rows {
		d.log().InfoWithFields("dry run: would record account", map[string]interface{}{
			"player_id": row.AccountID,
			"nickname":  row.Nickname,
		})
	}
	d.Rows += len(rows)
	return nil
}

func (d *DiscardWriter) log() logger.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return logger.GetLogger()
}
