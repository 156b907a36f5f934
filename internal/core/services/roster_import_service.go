package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/hr_payroll_admin/internal/apperrors"
	"github.com/SscSPs/hr_payroll_admin/internal/core/domain"
	portssvc "github.com/SscSPs/hr_payroll_admin/internal/core/ports/services"
)

type rosterImportService struct {
	BaseService
	decoder   portssvc.RosterDecoder
	validator portssvc.RosterValidator
	quota     portssvc.QuotaGate
	creator   portssvc.EmployeeCreator
	tracker   portssvc.EventTracker
}

// RosterImportOption is a functional option for configuring the roster import service
type RosterImportOption func(*rosterImportService)

// WithEventTracker reports a summary event for every finished or aborted import.
func WithEventTracker(tracker portssvc.EventTracker) RosterImportOption {
	return func(s *rosterImportService) {
		s.tracker = tracker
	}
}

// NewRosterImportService wires the import pipeline from its capabilities.
func NewRosterImportService(
	decoder portssvc.RosterDecoder,
	validator portssvc.RosterValidator,
	quota portssvc.QuotaGate,
	creator portssvc.EmployeeCreator,
	options ...RosterImportOption,
) portssvc.RosterImportSvc {
	svc := &rosterImportService{
		decoder:   decoder,
		validator: validator,
		quota:     quota,
		creator:   creator,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.RosterImportSvc = (*rosterImportService)(nil)

func (s *rosterImportService) SubmitRoster(ctx context.Context, fileName string, data []byte, userID string) (domain.ImportOutcome, error) {
	outcome := domain.ImportOutcome{
		State:            domain.ImportParsing,
		ValidationErrors: []domain.RowError{},
		CreationErrors:   []domain.RowError{},
	}

	rows, err := s.decoder.Decode(fileName, data)
	if err == nil && len(rows) == 0 {
		err = &apperrors.ParseError{Reason: "file is empty"}
	}
	if err != nil {
		if !errors.Is(err, apperrors.ErrParse) {
			err = &apperrors.ParseError{Reason: "could not read spreadsheet", Err: err}
		}
		outcome.State = domain.ImportAborted
		s.LogWarn(ctx, "Roster import aborted",
			slog.String("file_name", fileName),
			slog.String("reason", err.Error()))
		s.track(userID, "roster_import_aborted", fileName, outcome)
		return outcome, err
	}
	outcome.Attempted = len(rows)

	outcome.State = domain.ImportValidating
	records := s.validateAll(rows, &outcome)
	outcome.Validated = len(records)

	outcome.State = domain.ImportQuotaChecking
	accepted := s.applyQuota(ctx, records, &outcome)

	outcome.State = domain.ImportCreating
	acc := s.createAll(ctx, accepted, userID)
	outcome.Created = acc.created
	outcome.StoppedOnQuota = acc.stopped
	outcome.CapacitySkipped += acc.notAttempted
	for _, e := range acc.failed {
		outcome.AddCreationError(e)
	}

	outcome.State = domain.ImportCompleted
	s.LogInfo(ctx, "Roster import completed",
		slog.String("file_name", fileName),
		slog.Int("attempted", outcome.Attempted),
		slog.Int("created", outcome.Created),
		slog.Int("validation_failed", outcome.ValidationFailed),
		slog.Int("creation_failed", outcome.CreationFailed),
		slog.Int("capacity_skipped", outcome.CapacitySkipped),
		slog.Bool("stopped_on_quota", outcome.StoppedOnQuota))
	s.track(userID, "roster_import_completed", fileName, outcome)
	return outcome, nil
}

// validateAll runs every row through the validator and keeps the valid records in order.
func (s *rosterImportService) validateAll(rows []domain.SheetRow, outcome *domain.ImportOutcome) []domain.RosterRecord {
	records := make([]domain.RosterRecord, 0, len(rows))
	for _, row := range rows {
		record, rowErr := s.validator.ValidateRow(row.Cells, row.Number)
		if rowErr != nil {
			outcome.AddValidationError(*rowErr)
			continue
		}
		records = append(records, *record)
	}
	return records
}

// applyQuota truncates records to the plan's remaining capacity. A failed quota query
// is logged and the batch continues; creation enforces the limit regardless.
func (s *rosterImportService) applyQuota(ctx context.Context, records []domain.RosterRecord, outcome *domain.ImportOutcome) []domain.RosterRecord {
	if len(records) == 0 {
		return records
	}
	status, err := s.quota.GetQuotaStatus(ctx)
	if err != nil {
		s.LogError(ctx, err, "Quota check failed, continuing without truncation")
		return records
	}
	if status.IsUnlimited() {
		return records
	}

	remaining := max(status.Remaining, 0)
	if len(records) <= remaining {
		return records
	}

	skipped := len(records) - remaining
	capErr := fmt.Errorf("%w: plan allows %d more employee(s), %d valid row(s) skipped", apperrors.ErrCapacityExceeded, remaining, skipped)
	outcome.CapacitySkipped = skipped
	outcome.TruncationNotice = capErr.Error()
	s.LogWarn(ctx, "Roster truncated to plan capacity",
		slog.Int("limit", status.Limit),
		slog.Int("remaining", remaining),
		slog.Int("skipped", skipped))
	return records[:remaining]
}

// creationAccumulator is the state folded over the accepted records.
type creationAccumulator struct {
	created      int
	failed       []domain.RowError
	stopped      bool
	notAttempted int
}

// step folds one creation result into the accumulator. A quota rejection stops the batch.
func (acc creationAccumulator) step(row int, err error) creationAccumulator {
	if err == nil {
		acc.created++
		return acc
	}
	createErr := &apperrors.CreationError{Row: row, Err: err}
	msg := createErr.Err.Error()
	if errors.Is(err, apperrors.ErrQuotaExceeded) {
		acc.stopped = true
		msg = "Employee limit reached, import stopped: " + msg
	}
	acc.failed = append(acc.failed, domain.RowError{Row: createErr.Row, Message: msg})
	return acc
}

// createAll creates accepted records one at a time, in order, without retries.
func (s *rosterImportService) createAll(ctx context.Context, records []domain.RosterRecord, userID string) creationAccumulator {
	var acc creationAccumulator
	for i, record := range records {
		_, err := s.creator.CreateEmployee(ctx, record.Employee, userID)
		if err != nil {
			s.LogDebug(ctx, "Roster row rejected on creation",
				slog.Int("row", record.RowNumber),
				slog.String("error", err.Error()))
		}
		acc = acc.step(record.RowNumber, err)
		if acc.stopped {
			acc.notAttempted = len(records) - i - 1
			break
		}
	}
	return acc
}

func (s *rosterImportService) track(userID, event, fileName string, o domain.ImportOutcome) {
	if s.tracker == nil {
		return
	}
	s.tracker.Enqueue(userID, event, map[string]any{
		"file_name":         fileName,
		"state":             string(o.State),
		"attempted":         o.Attempted,
		"created":           o.Created,
		"validation_failed": o.ValidationFailed,
		"creation_failed":   o.CreationFailed,
		"capacity_skipped":  o.CapacitySkipped,
		"stopped_on_quota":  o.StoppedOnQuota,
	})
}
