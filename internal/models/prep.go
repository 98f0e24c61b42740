package models

// PrepNote represents a single interview prep question/answer pair
type PrepNote struct {
	ID        string        `json:"id"`
	Category  EventCategory `json:"category"`
	Question  string        `json:"question"`
	Answer    string        `json:"answer,omitempty"`
	Starred   bool          `json:"starred"`
	CreatedAt string        `json:"created_at"`           // RFC3339 timestamp
	UpdatedAt string        `json:"updated_at"`           // RFC3339 timestamp
	DeletedAt *string       `json:"deleted_at,omitempty"` // RFC3339 timestamp
}
