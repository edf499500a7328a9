package sheets

import (
	"context"
	"fmt"

	errs "botsweep/pkg/errors"
	"botsweep/pkg/logger"
)

// Header columns written to row 1 of every physical sheet
var headerRow = []interface{}{"User ID", "Nickname"}

// Row is one discovered account destined for the sheet
type Row struct {
	AccountID string
	Nickname  string
}

// Writer persists discovered accounts into a spreadsheet, rolling over to a
// numbered overflow sheet when the active one reports a capacity violation.
// Readers of the dataset must scan <base>, <base>_2, <base>_3, ... to see
// every row.
type Writer struct {
	api        API
	baseName   string
	sheetIndex int
	active     string
	written    int
	logger     logger.Logger
}

// NewWriter creates a writer targeting the sheet named baseName
func NewWriter(api API, baseName string, log logger.Logger) *Writer {
	if log == nil {
		log = logger.GetLogger()
	}
	return &Writer{
		api:        api,
		baseName:   baseName,
		sheetIndex: 1,
		active:     baseName,
		logger:     log,
	}
}

// Initialize ensures the base sheet exists and contains nothing but the
// header row. Calling it twice leaves exactly one header row.
func (w *Writer) Initialize(ctx context.Context) error {
	exists, err := w.api.SheetExists(ctx, w.baseName)
	if err != nil {
		return fmt.Errorf("failed to check sheet %q: %w", w.baseName, err)
	}

	if !exists {
		if err := w.api.CreateSheet(ctx, w.baseName); err != nil {
			return fmt.Errorf("failed to create sheet %q: %w", w.baseName, err)
		}
	} else {
		if err := w.api.ClearSheet(ctx, w.baseName); err != nil {
			return fmt.Errorf("failed to clear sheet %q: %w", w.baseName, err)
		}
	}

	if err := w.writeHeader(ctx, w.baseName); err != nil {
		return err
	}

	w.sheetIndex = 1
	w.active = w.baseName
	w.written = 0

	w.logger.InfoWithFields("destination sheet initialized", map[string]interface{}{
		"sheet": w.baseName,
	})
	return nil
}

// Append appends rows to the active sheet. On a capacity failure it rolls
// over once: creates the next overflow sheet, writes the header, and retries
// the same rows there. A second failure, or any non-capacity failure, is
// returned to the caller as fatal.
func (w *Writer) Append(ctx context.Context, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}

	values := toValues(rows)

	err := w.api.AppendRows(ctx, appendRange(w.active), values)
	if err == nil {
		w.written += len(rows)
		return nil
	}

	if !errs.IsCapacity(err) {
		return fmt.Errorf("failed to append to sheet %q: %w", w.active, err)
	}

	next := fmt.Sprintf("%s_%d", w.baseName, w.sheetIndex+1)
	logger.LogSheetRollover(w.active, next)

	if err := w.api.CreateSheet(ctx, next); err != nil {
		return fmt.Errorf("failed to create overflow sheet %q: %w", next, err)
	}
	if err := w.writeHeader(ctx, next); err != nil {
		return err
	}

	w.sheetIndex++
	w.active = next

	if err := w.api.AppendRows(ctx, appendRange(w.active), values); err != nil {
		return fmt.Errorf("append failed after rollover to sheet %q: %w", w.active, err)
	}

	w.written += len(rows)
	return nil
}

// ActiveSheet returns the physical sheet currently receiving appends
func (w *Writer) ActiveSheet() string {
	return w.active
}

// Written returns the number of rows appended so far
func (w *Writer) Written() int {
	return w.written
}

func (w *Writer) writeHeader(ctx context.Context, sheetName string) error {
	header := [][]interface{}{headerRow}
	if err := w.api.UpdateRange(ctx, headerRange(sheetName), header); err != nil {
		return fmt.Errorf("failed to write header to sheet %q: %w", sheetName, err)
	}
	return nil
}

func toValues(rows []Row) [][]interface{} {
	values := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		values = append(values, []interface{}{row.AccountID, row.Nickname})
	}
	return values
}

func appendRange(sheetName string) string {
	return quoteSheet(sheetName) + "!A:B"
}

func headerRange(sheetName string) string {
	return quoteSheet(sheetName) + "!A1:B1"
}
