package planner

import "time"

// BlockDefinition is an immutable template for one labeled segment of the
// planned day. Default start/end are minutes from midnight and describe the
// block's position in the canonical 08:00-anchored day; the generator shifts
// them to the user's chosen day start. Untimed definitions (the evening
// catch-all) have no numeric range and pass through the generator as-is.
type BlockDefinition struct {
	ID           string
	Title        string
	Description  string
	DefaultStart int // minutes from midnight; meaningful only when Timed
	DefaultEnd   int // minutes from midnight; meaningful only when Timed
	Timed        bool
	// Fixed blocks keep their position in the block order; the setup screen
	// refuses to reorder or remove them. Their clock times still shift with
	// the day start.
	Fixed bool
}

// Duration returns the block's template duration in minutes, or 0 for
// untimed definitions.
func (d BlockDefinition) Duration() int {
	if !d.Timed {
		return 0
	}
	return d.DefaultEnd - d.DefaultStart
}

// The catalog order is meaningful: the first entry is the morning-routine
// anchor every shift is computed against.
var catalog = []BlockDefinition{
	{
		ID:           BlockMorning,
		Title:        "Morning routine",
		Description:  "Coffee, review today's schedule and reminders",
		DefaultStart: 8 * 60,
		DefaultEnd:   9 * 60,
		Timed:        true,
		Fixed:        true,
	},
	{
		ID:           BlockHighFocus,
		Title:        "High-focus work",
		Description:  "Deep work on the day's theme before anything else",
		DefaultStart: 9 * 60,
		DefaultEnd:   11 * 60,
		Timed:        true,
	},
	{
		ID:           BlockApplications,
		Title:        "Applications & outreach",
		Description:  "Submit applications, send follow-ups and thank-you notes",
		DefaultStart: 11 * 60,
		DefaultEnd:   12 * 60,
		Timed:        true,
	},
	{
		ID:           BlockLunch,
		Title:        "Lunch",
		DefaultStart: 12 * 60,
		DefaultEnd:   13 * 60,
		Timed:        true,
		Fixed:        true,
	},
	{
		ID:           BlockNetworking,
		Title:        "Networking",
		Description:  "Reach out to contacts and references, attend meetups",
		DefaultStart: 13 * 60,
		DefaultEnd:   14*60 + 30,
		Timed:        true,
	},
	{
		ID:           BlockInterviewPrep,
		Title:        "Interview prep",
		Description:  "Practice questions for upcoming interviews",
		DefaultStart: 14*60 + 30,
		DefaultEnd:   16 * 60,
		Timed:        true,
	},
	{
		ID:           BlockSkills,
		Title:        "Skill building",
		Description:  "Courses, reading, portfolio work",
		DefaultStart: 16 * 60,
		DefaultEnd:   17 * 60,
		Timed:        true,
	},
	{
		ID:          BlockEvening,
		Title:       "Evening wind-down",
		Description: "Step away; the search resumes tomorrow",
		Fixed:       true,
	},
}

// Block definition ids
const (
	BlockMorning       = "morning_routine"
	BlockHighFocus     = "high_focus"
	BlockApplications  = "applications"
	BlockLunch         = "lunch"
	BlockNetworking    = "networking"
	BlockInterviewPrep = "interview_prep"
	BlockSkills        = "skill_building"
	BlockEvening       = "evening"
)

var dayThemes = map[time.Weekday]string{
	time.Monday:    "Applications",
	time.Tuesday:   "Networking",
	time.Wednesday: "Skill building",
	time.Thursday:  "Interview practice",
	time.Friday:    "Review & follow-ups",
	time.Saturday:  "Light research",
	time.Sunday:    "Rest & reset",
}

// Definitions returns the static block catalog in canonical order.
func Definitions() []BlockDefinition {
	defs := make([]BlockDefinition, len(catalog))
	copy(defs, catalog)
	return defs
}

// Definition looks up a block definition by id.
func Definition(id string) (BlockDefinition, bool) {
	for _, d := range catalog {
		if d.ID == id {
			return d, true
		}
	}
	return BlockDefinition{}, false
}

// DefaultBlockOrder returns the catalog ids in canonical order.
func DefaultBlockOrder() []string {
	order := make([]string, len(catalog))
	for i, d := range catalog {
		order[i] = d.ID
	}
	return order
}

// DayTheme returns the theme for a weekday.
func DayTheme(weekday time.Weekday) string {
	return dayThemes[weekday]
}
