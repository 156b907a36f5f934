package domain

// UnlimitedQuota is the plan limit value meaning no employee cap.
const UnlimitedQuota = -1

// QuotaStatus answers how many more employees the account may create.
type QuotaStatus struct {
	Limit        int    `json:"limit"`
	CurrentCount int    `json:"currentCount"`
	Remaining    int    `json:"remaining"`
	CanAddMore   bool   `json:"canAddMore"`
	Message      string `json:"message"`
}

// IsUnlimited reports whether the plan has no cap.
func (q QuotaStatus) IsUnlimited() bool {
	return q.Limit == UnlimitedQuota
}
