package models

type EventKind string

const (
	EventInterview  EventKind = "interview"
	EventNetworking EventKind = "networking"
	EventDeadline   EventKind = "deadline"
)

type EventCategory string

const (
	CategoryScreening    EventCategory = "screening"
	CategoryBehavioral   EventCategory = "behavioral"
	CategoryTechnical    EventCategory = "technical"
	CategorySystemDesign EventCategory = "system_design"
	CategoryOnsite       EventCategory = "onsite"
	CategoryOther        EventCategory = "other"
)

// ValidEventKind reports whether k is one of the closed set of event kinds.
func ValidEventKind(k EventKind) bool {
	switch k {
	case EventInterview, EventNetworking, EventDeadline:
		return true
	}
	return false
}

// ValidEventCategory reports whether c is one of the closed set of categories.
func ValidEventCategory(c EventCategory) bool {
	switch c {
	case CategoryScreening, CategoryBehavioral, CategoryTechnical,
		CategorySystemDesign, CategoryOnsite, CategoryOther:
		return true
	}
	return false
}

// Event represents a dated event in the job search: an interview, a
// networking meeting, or an external deadline. Interview events linked to an
// application drive its reminder computation.
type Event struct {
	ID            string        `json:"id"`
	ApplicationID string        `json:"application_id,omitempty"`
	Kind          EventKind     `json:"kind"`
	Category      EventCategory `json:"category,omitempty"`
	Date          string        `json:"date"`           // YYYY-MM-DD format
	Time          string        `json:"time,omitempty"` // HH:MM format
	Location      string        `json:"location,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	// ThankYouSentDate records that a post-interview thank-you note went out
	// for this event; set it and the thank-you reminder stops surfacing.
	ThankYouSentDate string  `json:"thank_you_sent_date,omitempty"` // YYYY-MM-DD format
	CreatedAt        string  `json:"created_at"`                    // RFC3339 timestamp
	DeletedAt        *string `json:"deleted_at,omitempty"`          // RFC3339 timestamp
}
