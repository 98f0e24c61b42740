package cli

import (
	"fmt"

	"github.com/julianstephens/joblit/internal/planner"
)

type DayCmd struct {
	Date string `arg:"" help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	date, err := resolveDate(c.Date, settings)
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

	config, cfgErr := planner.ConfigFromSettings(settings)
	var view planner.DailyView
	if cfgErr != nil {
		// Malformed schedule settings still leave the reminders usable.
		view = ctx.Planner.BuildDailyView(date, planner.ScheduleConfig{}, apps, events, planner.OffsetsFromSettings(settings))
		view.Blocks = []planner.Block{}
	} else {
		view = ctx.Planner.BuildDailyView(date, config, apps, events, planner.OffsetsFromSettings(settings))
	}

	fmt.Printf("Plan for %s", view.Date)
	if view.Theme != "" {
		fmt.Printf("  (%s)", view.Theme)
	}
	fmt.Print("\n\n")

	if len(view.Blocks) == 0 {
		fmt.Println("  No schedule preview available")
	}
	for _, block := range view.Blocks {
		if block.Timed {
			fmt.Printf("%s  %-24s %s\n", block.Display, block.Title, block.Description)
		} else {
			fmt.Printf("%-12s %-24s %s\n", "", block.Title, block.Description)
		}
	}

	fmt.Println()
	if len(view.Reminders) == 0 {
		fmt.Println("  Nothing due this day")
		return nil
	}
	fmt.Println("Due this day:")
	for _, r := range view.Reminders {
		printReminder(ctx, r, view.Date)
	}

	return nil
}
