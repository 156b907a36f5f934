package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/hr_payroll_admin/internal/core/domain"
	portsrepo "github.com/SscSPs/hr_payroll_admin/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hr_payroll_admin/internal/core/ports/services"
)

type quotaService struct {
	BaseService
	employeeRepo portsrepo.EmployeeReader
	limit        int
}

// NewQuotaService creates a quota gate for a plan allowing limit employees.
// domain.UnlimitedQuota disables the cap.
func NewQuotaService(employeeRepo portsrepo.EmployeeReader, limit int) portssvc.QuotaGate {
	if limit < 0 {
		limit = domain.UnlimitedQuota
	}
	return &quotaService{employeeRepo: employeeRepo, limit: limit}
}

var _ portssvc.QuotaGate = (*quotaService)(nil)

func (s *quotaService) GetQuotaStatus(ctx context.Context) (domain.QuotaStatus, error) {
	count, err := s.employeeRepo.CountEmployees(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count employees for quota")
		return domain.QuotaStatus{}, fmt.Errorf("failed to read employee quota: %w", err)
	}
	status := quotaStatus(s.limit, count)
	s.LogDebug(ctx, "Quota status",
		slog.Int("limit", status.Limit),
		slog.Int("current_count", status.CurrentCount),
		slog.Int("remaining", status.Remaining))
	return status, nil
}

func quotaStatus(limit, count int) domain.QuotaStatus {
	if limit == domain.UnlimitedQuota {
		return domain.QuotaStatus{
			Limit:        domain.UnlimitedQuota,
			CurrentCount: count,
			Remaining:    domain.UnlimitedQuota,
			CanAddMore:   true,
			Message:      "Your plan allows unlimited employees",
		}
	}
	remaining := max(limit-count, 0)
	status := domain.QuotaStatus{
		Limit:        limit,
		CurrentCount: count,
		Remaining:    remaining,
		CanAddMore:   remaining > 0,
	}
	if status.CanAddMore {
		status.Message = fmt.Sprintf("You can add %d more employee(s) on your plan", remaining)
	} else {
		status.Message = fmt.Sprintf("Employee limit of %d reached. Upgrade your plan to add more employees", limit)
	}
	return status
}
