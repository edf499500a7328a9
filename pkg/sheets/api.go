package sheets

import "context"

// API defines the spreadsheet operations consumed by the Writer.
// This separates infrastructure concerns from the rollover logic.
//
// Note on interface{} usage: the Google Sheets API
// (google.golang.org/api/sheets/v4) uses [][]interface{} for cell values.
// interface{} stays constrained to this boundary layer; the writer and the
// sweep deal in typed rows.
type API interface {
	// SheetExists checks if a sheet with the given name exists
	SheetExists(ctx context.Context, sheetName string) (bool, error)

	// CreateSheet creates a new sheet in the spreadsheet
	CreateSheet(ctx context.Context, sheetName string) error

	// ClearSheet clears all values in a sheet
	ClearSheet(ctx context.Context, sheetName string) error

	// UpdateRange writes values to a sheet range
	UpdateRange(ctx context.Context, rangeA1 string, values [][]interface{}) error

	// AppendRows appends rows after the last populated row of a range.
	// A capacity-exceeded failure must surface as an error classified
	// errors.ErrorTypeCapacity so callers can roll over.
	AppendRows(ctx context.Context, rangeA1 string, rows [][]interface{}) error
}
