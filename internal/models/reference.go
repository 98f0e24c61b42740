package models

// Reference represents a professional reference or networking contact
type Reference struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Relationship      string  `json:"relationship,omitempty"`
	Company           string  `json:"company,omitempty"`
	Email             string  `json:"email,omitempty"`
	Phone             string  `json:"phone,omitempty"`
	LastContactedDate string  `json:"last_contacted_date,omitempty"` // YYYY-MM-DD format
	Notes             string  `json:"notes,omitempty"`
	CreatedAt         string  `json:"created_at"`           // RFC3339 timestamp
	DeletedAt         *string `json:"deleted_at,omitempty"` // RFC3339 timestamp
}
