package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/joblit/internal/constants"
)

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ParseTimeToMinutes parses a time string (HH:MM) and returns the number of minutes from midnight.
func ParseTimeToMinutes(timeStr string) (int, error) {
	t, err := ParseTime(timeStr)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatMinutes renders a minutes-from-midnight value as HH:MM. The value is
// normalized first, so out-of-range input never produces "24:xx" or a
// negative time.
func FormatMinutes(minutes int) string {
	minutes = NormalizeMinutes(minutes)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// NormalizeMinutes maps an arbitrary minutes-from-midnight value into
// [0, 1440). Negative values and values beyond a day wrap around midnight;
// applying it to an already-normalized value is a no-op.
func NormalizeMinutes(minutes int) int {
	m := minutes % constants.MinutesPerDay
	if m < 0 {
		m += constants.MinutesPerDay
	}
	return m
}

// ParseDate parses a date string in the standard format (YYYY-MM-DD).
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(constants.DateFormat, dateStr)
}

// FormatDate renders a time as a YYYY-MM-DD date string.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// AddDays returns the date dateStr shifted by days, in the standard format.
func AddDays(dateStr string, days int) (string, error) {
	t, err := ParseDate(dateStr)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, days)), nil
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == constants.DefaultTimezone {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// GetTodayInTimezone returns today's date string (YYYY-MM-DD) in the specified
// timezone. This ensures that "today" is determined by the user's configured
// timezone, not the system timezone.
func GetTodayInTimezone(timezone string) (string, error) {
	now, err := NowInTimezone(timezone)
	if err != nil {
		return "", err
	}
	return now.Format(constants.DateFormat), nil
}

// ValidateTimeFormat checks if the string matches the standard time format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := ParseTime(timeStr)
	return err == nil
}

// ValidateDateFormat checks if the string matches the standard date format.
func ValidateDateFormat(dateStr string) bool {
	_, err := ParseDate(dateStr)
	return err == nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == constants.DefaultTimezone {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}
