package dto

import "github.com/SscSPs/hr_payroll_admin/internal/core/domain"

// QuotaResponse defines the data returned for the plan's employee quota.
type QuotaResponse struct {
	Limit        int    `json:"limit"` // -1 means unlimited
	CurrentCount int    `json:"currentCount"`
	Remaining    int    `json:"remaining"`
	CanAddMore   bool   `json:"canAddMore"`
	Message      string `json:"message"`
}

// ToQuotaResponse converts a domain.QuotaStatus to QuotaResponse DTO
func ToQuotaResponse(q domain.QuotaStatus) QuotaResponse {
	return QuotaResponse{
		Limit:        q.Limit,
		CurrentCount: q.CurrentCount,
		Remaining:    q.Remaining,
		CanAddMore:   q.CanAddMore,
		Message:      q.Message,
	}
}
