// Package export pushes recorded entries to a Google Spreadsheet. The
// spreadsheet is a write-only mirror for sharing and ad-hoc analysis; the
// SQLite store stays the system of record.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"networth/internal/core"
)

type SheetsClient struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheetName     string
}

// NewSheetsClient builds a client using Service Account credentials.
// Credentials come from serviceAccountJSON or serviceAccountFile when set,
// otherwise Application Default Credentials.
func NewSheetsClient(ctx context.Context, spreadsheetID, sheetName, serviceAccountJSON, serviceAccountFile string) (*SheetsClient, error) {
	if strings.TrimSpace(spreadsheetID) == "" {
		return nil, fmt.Errorf("missing spreadsheet ID")
	}
	if strings.TrimSpace(sheetName) == "" {
		sheetName = "Entries"
	}

	var opts []goption.ClientOption
	opts = append(opts, goption.WithScopes(gsheet.SpreadsheetsScope))
	switch {
	case strings.TrimSpace(serviceAccountJSON) != "":
		opts = append(opts, goption.WithCredentialsJSON([]byte(serviceAccountJSON)))
	case strings.TrimSpace(serviceAccountFile) != "":
		opts = append(opts, goption.WithCredentialsFile(serviceAccountFile))
	}

	svc, err := gsheet.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &SheetsClient{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

// AppendEntry appends one entry as a spreadsheet row. The details bag is
// written as a single JSON cell so every subcategory fits one layout.
func (c *SheetsClient) AppendEntry(ctx context.Context, e core.Entry) error {
	detailsJSON, err := json.Marshal(e.Details)
	if err != nil {
		return fmt.Errorf("marshal details: %w", err)
	}

	row := []interface{}{
		e.CreatedAt.Format(time.RFC3339),
		string(e.Kind),
		e.Category,
		e.Subcategory,
		e.Name,
		e.Currency,
		e.Amount.String(),
		e.Owner,
		string(detailsJSON),
	}

	rangeRef := fmt.Sprintf("%s!A:I", c.sheetName)
	_, err = c.svc.Spreadsheets.Values.
		Append(c.spreadsheetID, rangeRef, &gsheet.ValueRange{Values: [][]interface{}{row}}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append row: %w", err)
	}

	slog.InfoContext(ctx, "Entry exported to Google Sheets",
		"id", e.ID,
		"spreadsheet_id", c.spreadsheetID,
		"sheet", c.sheetName)

	return nil
}
