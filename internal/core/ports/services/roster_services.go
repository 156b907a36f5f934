package services

import (
	"context"

	"github.com/SscSPs/hr_payroll_admin/internal/core/domain"
)

// RosterDecoder turns uploaded spreadsheet bytes into rows of the first sheet, keyed by
// exact header text and numbered as the sheet shows them. Zero data rows is an
// apperrors.ParseError.
type RosterDecoder interface {
	Decode(fileName string, data []byte) ([]domain.SheetRow, error)
}

// RosterValidator checks a single row. It returns exactly one of a record or an error entry.
type RosterValidator interface {
	ValidateRow(row domain.RosterRow, rowNumber int) (*domain.RosterRecord, *domain.RowError)
}

// EventTracker records product analytics events.
type EventTracker interface {
	Enqueue(distinctID string, event string, properties map[string]any)
}

// RosterImportSvc drives a bulk roster upload from bytes to an aggregated outcome.
type RosterImportSvc interface {
	// SubmitRoster only returns an error for files that cannot be decoded; every row-level
	// failure is reported in the outcome.
	SubmitRoster(ctx context.Context, fileName string, data []byte, userID string) (domain.ImportOutcome, error)
}
