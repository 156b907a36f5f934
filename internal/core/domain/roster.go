package domain

import "fmt"

// RosterRow is one decoded spreadsheet row keyed by exact column header text.
type RosterRow map[string]string

// SheetRow is a decoded data row with its 1-based row number in the sheet.
type SheetRow struct {
	Number int
	Cells  RosterRow
}

// RosterRecord is a validated spreadsheet row, ready to become an Employee. It is never
// persisted directly.
type RosterRecord struct {
	RowNumber int
	Employee  Employee
}

// RowError is the single error entry produced for a rejected row.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

func (e RowError) String() string {
	return fmt.Sprintf("Row %d: %s", e.Row, e.Message)
}

// ImportState names the stages of a roster import batch.
type ImportState string

const (
	ImportParsing       ImportState = "parsing"
	ImportValidating    ImportState = "validating"
	ImportQuotaChecking ImportState = "quota_checking"
	ImportCreating      ImportState = "creating"
	ImportCompleted     ImportState = "completed"
	ImportAborted       ImportState = "aborted"
)

// ImportOutcome summarizes a roster batch. Every row lands in exactly one of
// ValidationFailed, CapacitySkipped, Created or CreationFailed.
type ImportOutcome struct {
	State            ImportState `json:"state"`
	Attempted        int         `json:"attempted"`
	Validated        int         `json:"validated"`
	ValidationFailed int         `json:"validationFailed"`
	CapacitySkipped  int         `json:"capacitySkipped"`
	Created          int         `json:"created"`
	CreationFailed   int         `json:"creationFailed"`
	StoppedOnQuota   bool        `json:"stoppedOnQuota"`
	TruncationNotice string      `json:"truncationNotice,omitempty"`
	ValidationErrors []RowError  `json:"validationErrors"`
	CreationErrors   []RowError  `json:"creationErrors"`
}

// ErrorMessages returns validation errors followed by creation errors as display strings.
func (o ImportOutcome) ErrorMessages() []string {
	msgs := make([]string, 0, len(o.ValidationErrors)+len(o.CreationErrors))
	for _, e := range o.ValidationErrors {
		msgs = append(msgs, e.String())
	}
	for _, e := range o.CreationErrors {
		msgs = append(msgs, e.String())
	}
	return msgs
}

// MaxOutcomeErrors bounds each error list kept on an ImportOutcome. Counts stay exact.
const MaxOutcomeErrors = 100

// ErrorSummary returns at most limit display strings, followed by "...and N more" when
// errors were left out. N counts every failed row, including those beyond the stored lists.
func (o ImportOutcome) ErrorSummary(limit int) []string {
	msgs := o.ErrorMessages()
	total := o.ValidationFailed + o.CreationFailed
	if total < len(msgs) {
		total = len(msgs)
	}
	if limit < 0 {
		limit = 0
	}
	if len(msgs) > limit {
		msgs = msgs[:limit]
	}
	if hidden := total - len(msgs); hidden > 0 {
		msgs = append(msgs, fmt.Sprintf("...and %d more", hidden))
	}
	return msgs
}

// AddValidationError records a rejected row, keeping at most MaxOutcomeErrors entries.
func (o *ImportOutcome) AddValidationError(e RowError) {
	o.ValidationFailed++
	if len(o.ValidationErrors) < MaxOutcomeErrors {
		o.ValidationErrors = append(o.ValidationErrors, e)
	}
}

// AddCreationError records a row the creation capability rejected.
func (o *ImportOutcome) AddCreationError(e RowError) {
	o.CreationFailed++
	if len(o.CreationErrors) < MaxOutcomeErrors {
		o.CreationErrors = append(o.CreationErrors, e)
	}
}
