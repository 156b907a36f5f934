package dto

import (
	"bytes"
	"encoding/json"

	"github.com/SscSPs/hr_payroll_admin/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RawAmount is an amount as typed into a form. It accepts a JSON number, a string or
// null and keeps the text for total coercion by the builder.
type RawAmount string

// UnmarshalJSON keeps numbers and strings verbatim and maps null to empty.
func (a *RawAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = RawAmount(s)
		return nil
	}
	*a = RawAmount(data)
	return nil
}

// BuildCompensationRequest carries a draft plus the catalog selection edits to apply.
// Toggles are applied in order, then Amounts.
type BuildCompensationRequest struct {
	Draft   domain.CompensationDraft `json:"draft"`
	Toggles []string                 `json:"toggles"`
	Amounts map[string]RawAmount     `json:"amounts"`
}

// CompensationTotalsResponse defines the derived totals of a structure.
type CompensationTotalsResponse struct {
	Gross      decimal.Decimal `json:"gross"`
	Deductions decimal.Decimal `json:"deductions"`
	Net        decimal.Decimal `json:"net"`
}

// BuildCompensationResponse returns the finalized structure with its totals and estimate.
type BuildCompensationResponse struct {
	Compensation CompensationPayload        `json:"compensation"`
	Totals       CompensationTotalsResponse `json:"totals"`
	Statutory    domain.StatutoryEstimate   `json:"statutory"`
}

// StatutoryEstimateParams defines query parameters for the PF/ESI estimate.
type StatutoryEstimateParams struct {
	Basic RawAmount `form:"basic"`
}

// ToCompensationTotalsResponse converts domain totals to the response DTO
func ToCompensationTotalsResponse(t domain.CompensationTotals) CompensationTotalsResponse {
	return CompensationTotalsResponse{Gross: t.Gross, Deductions: t.Deductions, Net: t.Net}
}
