package sheets

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"botsweep/pkg/config"
	errs "botsweep/pkg/errors"
	"botsweep/pkg/logger"
)

// Service implements API against a single Google spreadsheet, authenticated
// as a service account whose key pair is exchanged for a short-lived token
// scoped to spreadsheet edits.
type Service struct {
	srv           *sheetsapi.Service
	spreadsheetID string
	logger        logger.Logger
}

// NewService builds a Sheets service from the configured service-account
// identity and private key
func NewService(ctx context.Context, cfg *config.SheetsConfig, log logger.Logger) (*Service, error) {
	if log == nil {
		log = logger.GetLogger()
	}

	key := cfg.PrivateKey
	if key == "" && cfg.PrivateKeyFile != "" {
		data, err := os.ReadFile(cfg.PrivateKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read service account key file: %w", err)
		}
		key = string(data)
	}
	if key == "" {
		return nil, fmt.Errorf("service account private key is not configured")
	}

	jwtConfig := &jwt.Config{
		Email:      cfg.ServiceAccountEmail,
		PrivateKey: []byte(key),
		Scopes:     []string{sheetsapi.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	srv, err := sheetsapi.NewService(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Service{
		srv:           srv,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        log,
	}, nil
}

// SheetExists checks if a sheet with the given name exists in the spreadsheet
func (s *Service) SheetExists(ctx context.Context, sheetName string) (bool, error) {
	spreadsheet, err := s.srv.Spreadsheets.Get(s.spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).Do()
	if err != nil {
		return false, classifyError(err)
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == sheetName {
			return true, nil
		}
	}
	return false, nil
}

// CreateSheet adds a new sheet to the spreadsheet
func (s *Service) CreateSheet(ctx context.Context, sheetName string) error {
	request := &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{
			{
				AddSheet: &sheetsapi.AddSheetRequest{
					Properties: &sheetsapi.SheetProperties{
						Title: sheetName,
					},
				},
			},
		},
	}

	_, err := s.srv.Spreadsheets.BatchUpdate(s.spreadsheetID, request).Context(ctx).Do()
	if err != nil {
		return classifyError(err)
	}

	s.logger.InfoWithFields("sheet created", map[string]interface{}{
		"sheet": sheetName,
	})
	return nil
}

// ClearSheet clears all values in a sheet
func (s *Service) ClearSheet(ctx context.Context, sheetName string) error {
	_, err := s.srv.Spreadsheets.Values.Clear(s.spreadsheetID, quoteSheet(sheetName), &sheetsapi.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return classifyError(err)
	}
	return nil
}

// UpdateRange writes values to a sheet range
func (s *Service) UpdateRange(ctx context.Context, rangeA1 string, values [][]interface{}) error {
	valueRange := &sheetsapi.ValueRange{Values: values}

	_, err := s.srv.Spreadsheets.Values.Update(s.spreadsheetID, rangeA1, valueRange).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return classifyError(err)
	}
	return nil
}

// AppendRows appends rows after the last populated row of the range
func (s *Service) AppendRows(ctx context.Context, rangeA1 string, rows [][]interface{}) error {
	valueRange := &sheetsapi.ValueRange{Values: rows}

	_, err := s.srv.Spreadsheets.Values.Append(s.spreadsheetID, rangeA1, valueRange).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return classifyError(err)
	}
	return nil
}

// classifyError maps a Google API error onto the shared error taxonomy.
// Capacity detection happens here, at the API boundary, so the writer
// never has to inspect error message wording.
func classifyError(err error) error {
	gerr, ok := err.(*googleapi.Error)
	if !ok {
		return &errs.Error{
			Type:    errs.ErrorTypeNetwork,
			Message: err.Error(),
		}
	}

	switch {
	case gerr.Code == http.StatusBadRequest && isGridLimitMessage(gerr.Message):
		return &errs.Error{
			Type:    errs.ErrorTypeCapacity,
			Message: gerr.Message,
			Code:    gerr.Code,
		}
	case gerr.Code == http.StatusUnauthorized || gerr.Code == http.StatusForbidden:
		return &errs.Error{
			Type:    errs.ErrorTypeAuth,
			Message: gerr.Message,
			Code:    gerr.Code,
		}
	case gerr.Code == http.StatusNotFound:
		return &errs.Error{
			Type:    errs.ErrorTypeNotFound,
			Message: gerr.Message,
			Code:    gerr.Code,
		}
	case gerr.Code == http.StatusTooManyRequests:
		return &errs.Error{
			Type:    errs.ErrorTypeRateLimit,
			Message: gerr.Message,
			Code:    gerr.Code,
		}
	case gerr.Code >= 500:
		return &errs.Error{
			Type:    errs.ErrorTypeServerError,
			Message: gerr.Message,
			Code:    gerr.Code,
		}
	default:
		return &errs.Error{
			Type:    errs.ErrorTypeUnknown,
			Message: gerr.Message,
			Code:    gerr.Code,
		}
	}
}

// isGridLimitMessage recognizes the grid/cell ceiling wordings the Sheets
// API uses for capacity violations on appends
func isGridLimitMessage(message string) bool {
	lower := strings.ToLower(message)
	return strings.Contains(lower, "grid limits") ||
		strings.Contains(lower, "above the limit") ||
		strings.Contains(lower, "cell limit")
}

// quoteSheet wraps a sheet name in single quotes for use in A1 notation.
// Embedded quotes are doubled per the Sheets quoting rules.
func quoteSheet(sheetName string) string {
	return "'" + strings.ReplaceAll(sheetName, "'", "''") + "'"
}
