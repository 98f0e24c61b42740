// Package planner implements the planner time model: the pure, deterministic
// computations behind the daily schedule and the follow-up/thank-you
// reminders. Everything here is synchronous and stateless between calls;
// inputs are snapshots and the reference date is always injected by the
// caller.
package planner

import (
	"github.com/julianstephens/joblit/internal/logger"
	"github.com/julianstephens/joblit/internal/models"
	"github.com/julianstephens/joblit/internal/utils"
)

type Planner struct{}

func New() *Planner {
	return &Planner{}
}

// DailyView is the composed view model for a single date, consumed by the
// daily planner screen.
type DailyView struct {
	Date      string // YYYY-MM-DD format
	Theme     string // weekday theme
	Blocks    []Block
	Reminders []Reminder // only reminders due exactly on Date
}

// BuildDailyView composes the generator and the reminder computation for one
// date: the day's time blocks, the weekday theme, and the reminders whose due
// date falls exactly on that date. An unparseable date yields an empty view.
func (p *Planner) BuildDailyView(date string, config ScheduleConfig, apps []models.Application, events []models.Event, offsets ReminderOffsets) DailyView {
	view := DailyView{Date: date, Blocks: []Block{}, Reminders: []Reminder{}}

	day, err := utils.ParseDate(date)
	if err != nil {
		logger.Warn("invalid date for daily view", "date", date)
		return view
	}
	view.Theme = DayTheme(day.Weekday())

	view.Blocks = p.Generate(config)

	for _, r := range p.ComputeReminders(apps, events, offsets, date) {
		if r.DueDate == date {
			view.Reminders = append(view.Reminders, r)
		}
	}

	return view
}
