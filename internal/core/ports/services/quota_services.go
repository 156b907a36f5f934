package services

import (
	"context"

	"github.com/SscSPs/hr_payroll_admin/internal/core/domain"
)

// QuotaGate answers how many more employees the account may create. Its answer is a
// snapshot; the creation capability enforces the limit authoritatively.
type QuotaGate interface {
	GetQuotaStatus(ctx context.Context) (domain.QuotaStatus, error)
}
