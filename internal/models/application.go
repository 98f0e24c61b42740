package models

type ApplicationStatus string

const (
	StatusApplied    ApplicationStatus = "applied"
	StatusInterview  ApplicationStatus = "interview"
	StatusRejected   ApplicationStatus = "rejected"
	StatusNoResponse ApplicationStatus = "no_response"
)

// ValidStatus reports whether s is one of the closed set of application statuses.
func ValidStatus(s ApplicationStatus) bool {
	switch s {
	case StatusApplied, StatusInterview, StatusRejected, StatusNoResponse:
		return true
	}
	return false
}

// Terminal reports whether the status ends the active life of an application.
// Terminal applications never produce reminders.
func (s ApplicationStatus) Terminal() bool {
	return s == StatusRejected
}

// Application represents a single job application being tracked
type Application struct {
	ID               string            `json:"id"`
	Company          string            `json:"company"`
	Role             string            `json:"role"`
	Status           ApplicationStatus `json:"status"`
	AppliedDate      string            `json:"applied_date"`                 // YYYY-MM-DD format
	LastFollowUpDate string            `json:"last_follow_up_date,omitempty"` // YYYY-MM-DD format
	URL              string            `json:"url,omitempty"`
	SalaryRange      string            `json:"salary_range,omitempty"`
	Notes            string            `json:"notes,omitempty"`
	CreatedAt        string            `json:"created_at"`           // RFC3339 timestamp
	UpdatedAt        string            `json:"updated_at"`           // RFC3339 timestamp
	DeletedAt        *string           `json:"deleted_at,omitempty"` // RFC3339 timestamp
}
