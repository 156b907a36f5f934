package dto

import "github.com/SscSPs/hr_payroll_admin/internal/core/domain"

// ImportRosterResponse defines the data returned for a roster upload.
type ImportRosterResponse struct {
	FileName         string             `json:"fileName"`
	State            domain.ImportState `json:"state"`
	Attempted        int                `json:"attempted"`
	Validated        int                `json:"validated"`
	ValidationFailed int                `json:"validationFailed"`
	CapacitySkipped  int                `json:"capacitySkipped"`
	Created          int                `json:"created"`
	CreationFailed   int                `json:"creationFailed"`
	StoppedOnQuota   bool               `json:"stoppedOnQuota"`
	TruncationNotice string             `json:"truncationNotice,omitempty"`
	ValidationErrors []domain.RowError  `json:"validationErrors"`
	CreationErrors   []domain.RowError  `json:"creationErrors"`
	// Summary is the bounded, display-ready error list.
	Summary []string `json:"summary"`
}

// ToImportRosterResponse converts an outcome to the response DTO, capping the summary at
// displayLimit entries plus an overflow line.
func ToImportRosterResponse(fileName string, o domain.ImportOutcome, displayLimit int) ImportRosterResponse {
	validationErrors := o.ValidationErrors
	if validationErrors == nil {
		validationErrors = []domain.RowError{}
	}
	creationErrors := o.CreationErrors
	if creationErrors == nil {
		creationErrors = []domain.RowError{}
	}
	return ImportRosterResponse{
		FileName:         fileName,
		State:            o.State,
		Attempted:        o.Attempted,
		Validated:        o.Validated,
		ValidationFailed: o.ValidationFailed,
		CapacitySkipped:  o.CapacitySkipped,
		Created:          o.Created,
		CreationFailed:   o.CreationFailed,
		StoppedOnQuota:   o.StoppedOnQuota,
		TruncationNotice: o.TruncationNotice,
		ValidationErrors: validationErrors,
		CreationErrors:   creationErrors,
		Summary:          o.ErrorSummary(displayLimit),
	}
}
