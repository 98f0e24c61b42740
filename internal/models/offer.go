package models

type OfferStatus string

const (
	OfferReceived OfferStatus = "received"
	OfferAccepted OfferStatus = "accepted"
	OfferDeclined OfferStatus = "declined"
	OfferExpired  OfferStatus = "expired"
)

// ValidOfferStatus reports whether s is one of the closed set of offer statuses.
func ValidOfferStatus(s OfferStatus) bool {
	switch s {
	case OfferReceived, OfferAccepted, OfferDeclined, OfferExpired:
		return true
	}
	return false
}

// Offer represents a job offer attached to an application
type Offer struct {
	ID            string      `json:"id"`
	ApplicationID string      `json:"application_id"`
	Status        OfferStatus `json:"status"`
	BaseSalary    string      `json:"base_salary,omitempty"`
	Bonus         string      `json:"bonus,omitempty"`
	Equity        string      `json:"equity,omitempty"`
	Deadline      string      `json:"deadline,omitempty"` // YYYY-MM-DD format
	Notes         string      `json:"notes,omitempty"`
	CreatedAt     string      `json:"created_at"`           // RFC3339 timestamp
	DeletedAt     *string     `json:"deleted_at,omitempty"` // RFC3339 timestamp
}
