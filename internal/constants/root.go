package constants

const (
	AppName           = "joblit"
	DefaultConfigPath = "~/.config/joblit/joblit.db"
	Version           = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// MinutesPerDay is the number of minutes in a single planner day
	MinutesPerDay = 1440
)

// Default schedule settings
const (
	DefaultDayStart = "08:00"
	// DefaultDayLengthMin is the length of the planned day; the default day
	// end is derived as day start plus this length.
	DefaultDayLengthMin = 9 * 60
	DefaultTimezone     = "Local"
)

// Default reminder settings
const (
	DefaultDaysAfterApplication       = 7
	DefaultDaysAfterInterview         = 2
	DefaultDaysBetweenFollowUps       = 2
	DefaultDaysAfterInterviewThankYou = 1
	DefaultHomeReminderCount          = 5
)
