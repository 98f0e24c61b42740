package cli

import (
	"fmt"

	"github.com/julianstephens/joblit/internal/planner"
	"github.com/julianstephens/joblit/internal/utils"
)

type RemindersCmd struct {
	All bool `help:"Show every outstanding reminder instead of the home-screen cap."`
}

func (c *RemindersCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	today, err := utils.GetTodayInTimezone(settings.Timezone)
	if err != nil {
		return err
	}

	apps, err := ctx.Store.GetAllApplications()
	if err != nil {
		return fmt.Errorf("failed to get applications: %w", err)
	}
	events, err := ctx.Store.GetAllEvents()
	if err != nil {
		return fmt.Errorf("failed to get events: %w", err)
	}

	reminders := ctx.Planner.ComputeReminders(apps, events, planner.OffsetsFromSettings(settings), today)
	if len(reminders) == 0 {
		fmt.Println("No outstanding reminders.")
		return nil
	}

	overdue := 0
	for _, r := range reminders {
		if r.Overdue {
			overdue++
		}
	}
	if overdue > 0 {
		fmt.Printf("%d overdue\n\n", overdue)
	}

	// The scheduler returns the complete list; the cap is purely a display
	// decision made here.
	shown := reminders
	if !c.All && settings.HomeReminderCount > 0 && len(shown) > settings.HomeReminderCount {
		shown = shown[:settings.HomeReminderCount]
	}

	for _, r := range shown {
		printReminder(ctx, r, today)
	}

	if len(shown) < len(reminders) {
		fmt.Printf("\n…and %d more (use --all)\n", len(reminders)-len(shown))
	}

	return nil
}
