package sweep

import (
	"context"

	"botsweep/pkg/faceit"
	"botsweep/pkg/sheets"
)

// SearchClient defines the platform search operation the sweep consumes
type SearchClient interface {
	Search(ctx context.Context, term string, offset, limit int) (*faceit.SearchPage, error)
}

// RowWriter defines the destination for discovered accounts
type RowWriter interface {
	Initialize(ctx context.Context) error
	Append(ctx context.Context, rows []sheets.Row) error
}
