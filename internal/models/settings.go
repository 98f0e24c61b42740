package models

// Settings represents application-wide settings
type Settings struct {
	DayStart   string   `json:"day_start"`   // the time the planned day starts, e.g. "08:00"
	DayEnd     string   `json:"day_end"`     // the time the planned day ends, e.g. "17:00"
	BlockOrder []string `json:"block_order"` // ordered block definition ids for the daily schedule
	Timezone   string   `json:"timezone"`    // IANA timezone name, or "Local" for the system timezone

	DaysAfterApplication       int `json:"days_after_application"`         // days after applying before the first follow-up
	DaysAfterInterview         int `json:"days_after_interview"`           // days after the latest interview before following up
	DaysBetweenFollowUps       int `json:"days_between_follow_ups"`        // days between repeated follow-ups
	DaysAfterInterviewThankYou int `json:"days_after_interview_thank_you"` // days after an interview to send a thank-you note

	HomeReminderCount int `json:"home_reminder_count"` // display cap for the reminders screen
}
