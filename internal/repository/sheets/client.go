// Package sheets is the Google-Sheets-backed implementation of the
// attendance store and worker registry. Every API call passes through a
// shared rate limiter so a burst of intents cannot blow the Sheets API
// quota.
package sheets

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/oauth2/google"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Config holds the connection settings for the spreadsheet store.
type Config struct {
	SpreadsheetID      string
	ServiceAccountPath string
	ServiceAccountJSON string // inline key JSON, alternative to the path
	RequestsPerMinute  int
}

// Validate checks if the configuration is usable.
func (c Config) Validate() error {
	if c.SpreadsheetID == "" {
		return fmt.Errorf("spreadsheet ID is required")
	}
	if c.ServiceAccountPath == "" && c.ServiceAccountJSON == "" {
		return fmt.Errorf("missing Google Sheets authentication: provide a service account key path or inline JSON")
	}
	if c.RequestsPerMinute <= 0 {
		return fmt.Errorf("requests per minute must be positive")
	}
	return nil
}

// Client wraps the Sheets API service for one spreadsheet.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
	limiter       *rate.Limiter
}

// NewClient authenticates with a service account and opens the
// configured spreadsheet's API surface.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sheets config: %w", err)
	}

	jsonKey := []byte(cfg.ServiceAccountJSON)
	if cfg.ServiceAccountPath != "" {
		var err error
		jsonKey, err = os.ReadFile(cfg.ServiceAccountPath)
		if err != nil {
			return nil, fmt.Errorf("unable to read service account key file: %w", err)
		}
	}

	jwtConfig, err := google.JWTConfigFromJSON(jsonKey, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service account key: %w", err)
	}

	svc, err := sheets.NewService(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		limiter:       rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), 5),
	}, nil
}

// wait blocks until the limiter admits one more API call.
func (c *Client) wait(ctx context.Context) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}
	return nil
}

// readRange fetches cell values for an A1 range.
func (c *Client) readRange(ctx context.Context, a1 string) ([][]any, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, a1).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", a1, err)
	}
	return resp.Values, nil
}

// writeCell sets a single cell to a literal value. RAW keeps the cell
// encoding exactly as written; the Sheets UI must never reinterpret
// "09:00-" as anything else.
func (c *Client) writeCell(ctx context.Context, a1 string, value string) error {
	if err := c.wait(ctx); err != nil {
		return err
	}
	vr := &sheets.ValueRange{Values: [][]any{{value}}}
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, a1, vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", a1, err)
	}
	return nil
}

// sheetExists reports whether a worksheet with the given title exists.
func (c *Client) sheetExists(ctx context.Context, title string) (bool, error) {
	if err := c.wait(ctx); err != nil {
		return false, err
	}
	ss, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return false, fmt.Errorf("failed to list worksheets: %w", err)
	}
	for _, sh := range ss.Sheets {
		if sh.Properties != nil && sh.Properties.Title == title {
			return true, nil
		}
	}
	return false, nil
}

// addSheet creates a worksheet with the given title and grid size.
func (c *Client) addSheet(ctx context.Context, title string, rows, cols int64) error {
	if err := c.wait(ctx); err != nil {
		return err
	}
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{
					Title: title,
					GridProperties: &sheets.GridProperties{
						RowCount:    rows,
						ColumnCount: cols,
					},
				},
			},
		}},
	}
	if _, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to create worksheet %s: %w", title, err)
	}
	return nil
}

// writeRow writes one row of values starting at an A1 anchor.
func (c *Client) writeRow(ctx context.Context, a1 string, values []any) error {
	if err := c.wait(ctx); err != nil {
		return err
	}
	vr := &sheets.ValueRange{Values: [][]any{values}}
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, a1, vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to write row %s: %w", a1, err)
	}
	return nil
}
