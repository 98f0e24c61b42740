package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/joblit/internal/models"
	"github.com/julianstephens/joblit/internal/planner"
	"github.com/julianstephens/joblit/internal/storage"
	"github.com/julianstephens/joblit/internal/utils"
)

type Context struct {
	Store   storage.Provider
	Planner *planner.Planner
}

// resolveDate turns a date argument (YYYY-MM-DD or "today") into a concrete
// date string, with "today" evaluated in the configured timezone.
func resolveDate(arg string, settings models.Settings) (string, error) {
	if arg == "" || arg == "today" {
		today, err := utils.GetTodayInTimezone(settings.Timezone)
		if err != nil {
			return "", err
		}
		return today, nil
	}
	if !utils.ValidateDateFormat(arg) {
		return "", fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today'")
	}
	return arg, nil
}

func reminderLabel(kind planner.ReminderKind) string {
	switch kind {
	case planner.ReminderFollowUp:
		return "follow up"
	case planner.ReminderThankYou:
		return "send thank-you note"
	default:
		return string(kind)
	}
}

// applicationLabel renders "Company - Role" for a reminder line, falling back
// to the raw id when the application cannot be loaded.
func applicationLabel(ctx *Context, id string) string {
	app, err := ctx.Store.GetApplication(id)
	if err != nil {
		return id
	}
	return fmt.Sprintf("%s - %s", app.Company, app.Role)
}

func printReminder(ctx *Context, r planner.Reminder, today string) {
	marker := " "
	switch {
	case r.Overdue:
		marker = "!"
	case r.DueDate == today:
		marker = "*"
	}
	fmt.Printf("%s %s  %-24s %s\n", marker, r.DueDate, reminderLabel(r.Kind), applicationLabel(ctx, r.ApplicationID))
}

func nowRFC3339() string {
	return time.Now().Format(time.RFC3339)
}
