package planner

import (
	"sort"

	"github.com/julianstephens/joblit/internal/logger"
	"github.com/julianstephens/joblit/internal/models"
	"github.com/julianstephens/joblit/internal/utils"
)

type ReminderKind string

const (
	ReminderFollowUp ReminderKind = "follow_up"
	ReminderThankYou ReminderKind = "thank_you"
)

// Reminder is a derived prompt to act on an application: follow up with the
// employer, or send a post-interview thank-you note. Reminders are recomputed
// on every read and never stored.
type Reminder struct {
	ApplicationID string
	Kind          ReminderKind
	DueDate       string // YYYY-MM-DD format
	// Overdue is strict: a reminder due today is due-today, not overdue.
	Overdue bool
}

// ReminderOffsets is the user-tunable day-offset configuration driving due
// date computation. All values are non-negative.
type ReminderOffsets struct {
	DaysAfterApplication       int
	DaysAfterInterview         int
	DaysBetweenFollowUps       int
	DaysAfterInterviewThankYou int
}

// OffsetsFromSettings extracts the reminder offsets from stored settings.
func OffsetsFromSettings(s models.Settings) ReminderOffsets {
	return ReminderOffsets{
		DaysAfterApplication:       s.DaysAfterApplication,
		DaysAfterInterview:         s.DaysAfterInterview,
		DaysBetweenFollowUps:       s.DaysBetweenFollowUps,
		DaysAfterInterviewThankYou: s.DaysAfterInterviewThankYou,
	}
}

// ComputeReminders derives the outstanding reminders for every non-rejected
// application, sorted ascending by due date. The full list is returned;
// callers apply their own display caps.
//
// today is injected rather than read from the clock so that identical inputs
// always produce identical output. A malformed date on one record drops that
// record's reminders only, never the whole batch.
func (p *Planner) ComputeReminders(apps []models.Application, events []models.Event, offsets ReminderOffsets, today string) []Reminder {
	if !utils.ValidateDateFormat(today) {
		logger.Warn("invalid reference date for reminders", "today", today)
		return []Reminder{}
	}

	interviews := interviewsByApplication(events, today)

	var reminders []Reminder
	for _, app := range apps {
		if app.DeletedAt != nil || app.Status.Terminal() {
			continue
		}

		if due, ok := followUpDue(app, interviews[app.ID], offsets); ok {
			reminders = append(reminders, Reminder{
				ApplicationID: app.ID,
				Kind:          ReminderFollowUp,
				DueDate:       due,
				Overdue:       due < today,
			})
		}

		for _, iv := range interviews[app.ID] {
			if iv.thanked {
				continue
			}
			due, err := utils.AddDays(iv.date, offsets.DaysAfterInterviewThankYou)
			if err != nil {
				logger.Warn("skipping thank-you reminder with bad interview date", "application", app.ID, "date", iv.date)
				continue
			}
			reminders = append(reminders, Reminder{
				ApplicationID: app.ID,
				Kind:          ReminderThankYou,
				DueDate:       due,
				Overdue:       due < today,
			})
		}
	}

	// Deterministic order regardless of input order: due date, then
	// application id, then kind.
	sort.SliceStable(reminders, func(i, j int) bool {
		if reminders[i].DueDate != reminders[j].DueDate {
			return reminders[i].DueDate < reminders[j].DueDate
		}
		if reminders[i].ApplicationID != reminders[j].ApplicationID {
			return reminders[i].ApplicationID < reminders[j].ApplicationID
		}
		return reminders[i].Kind < reminders[j].Kind
	})

	return reminders
}

type interview struct {
	date    string // YYYY-MM-DD format
	thanked bool
}

// interviewsByApplication collects the interviews that have already occurred
// (date <= today), keyed by application id and sorted by date. Events with
// missing or unparseable dates are logged and skipped.
func interviewsByApplication(events []models.Event, today string) map[string][]interview {
	byApp := make(map[string][]interview)
	for _, ev := range events {
		if ev.DeletedAt != nil || ev.Kind != models.EventInterview || ev.ApplicationID == "" {
			continue
		}
		if !utils.ValidateDateFormat(ev.Date) {
			logger.Warn("skipping interview event with bad date", "event", ev.ID, "date", ev.Date)
			continue
		}
		if ev.Date > today {
			continue
		}
		byApp[ev.ApplicationID] = append(byApp[ev.ApplicationID], interview{
			date:    ev.Date,
			thanked: ev.ThankYouSentDate != "",
		})
	}
	for id := range byApp {
		ivs := byApp[id]
		sort.Slice(ivs, func(i, j int) bool { return ivs[i].date < ivs[j].date })
		byApp[id] = ivs
	}
	return byApp
}

// followUpDue computes the next follow-up due date for one application.
// Follow-ups recur: after one is sent the next comes due DaysBetweenFollowUps
// later, until a new interview occurs or the application leaves the active
// state. Only the soonest unmet follow-up is surfaced.
func followUpDue(app models.Application, ivs []interview, offsets ReminderOffsets) (string, bool) {
	latestInterview := ""
	if len(ivs) > 0 {
		latestInterview = ivs[len(ivs)-1].date
	}

	var base string
	var offset int
	switch {
	case app.LastFollowUpDate != "" && app.LastFollowUpDate >= latestInterview:
		// A follow-up already went out and no interview happened since.
		base, offset = app.LastFollowUpDate, offsets.DaysBetweenFollowUps
	case latestInterview != "":
		base, offset = latestInterview, offsets.DaysAfterInterview
	default:
		base, offset = app.AppliedDate, offsets.DaysAfterApplication
	}

	due, err := utils.AddDays(base, offset)
	if err != nil {
		logger.Warn("skipping follow-up reminder with bad date", "application", app.ID, "date", base)
		return "", false
	}
	return due, true
}
