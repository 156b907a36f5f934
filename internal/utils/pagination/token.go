package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/hr_payroll_admin/internal/core/domain"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// EncodeEmployeeCursor creates an opaque base64 token from the last employee of a page.
func EncodeEmployeeCursor(c domain.EmployeeCursor) string {
	tokenStr := fmt.Sprintf("%s|%s", c.CreatedAt.Format(timeFormat), c.EmployeeID)
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeEmployeeCursor parses a token produced by EncodeEmployeeCursor. An empty token
// means the first page and yields nil.
func DecodeEmployeeCursor(token string) (*domain.EmployeeCursor, error) {
	if token == "" {
		return nil, nil
	}
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return nil, fmt.Errorf("invalid pagination token format (split)")
	}
	createdAt, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}
	return &domain.EmployeeCursor{CreatedAt: createdAt, EmployeeID: parts[1]}, nil
}

// NextEmployeeToken returns the token for the page after employees, or "" when the page
// was not full and nothing follows.
func NextEmployeeToken(employees []domain.Employee, limit int) string {
	if limit <= 0 || len(employees) < limit {
		return ""
	}
	last := employees[len(employees)-1]
	return EncodeEmployeeCursor(domain.EmployeeCursor{CreatedAt: last.CreatedAt, EmployeeID: last.EmployeeID})
}
