package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/joblit/internal/planner"
	"github.com/julianstephens/joblit/internal/utils"
	"github.com/julianstephens/joblit/internal/validation"
)

type SettingsCmd struct {
	Show SettingsShowCmd `cmd:"" default:"1" help:"Show current settings."`
	Set  SettingsSetCmd  `cmd:"" help:"Set a settings key."`
}

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	fmt.Println("Settings:")
	fmt.Printf("  day_start:                      %s\n", settings.DayStart)
	fmt.Printf("  day_end:                        %s\n", settings.DayEnd)
	fmt.Printf("  block_order:                    %s\n", strings.Join(settings.BlockOrder, ","))
	fmt.Printf("  timezone:                       %s\n", settings.Timezone)
	fmt.Printf("  days_after_application:         %d\n", settings.DaysAfterApplication)
	fmt.Printf("  days_after_interview:           %d\n", settings.DaysAfterInterview)
	fmt.Printf("  days_between_follow_ups:        %d\n", settings.DaysBetweenFollowUps)
	fmt.Printf("  days_after_interview_thank_you: %d\n", settings.DaysAfterInterviewThankYou)
	fmt.Printf("  home_reminder_count:            %d\n", settings.HomeReminderCount)
	return nil
}

type SettingsSetCmd struct {
	Key   string `arg:"" help:"Settings key (as shown by 'joblit settings show')."`
	Value string `arg:"" help:"New value. block_order takes a comma-separated id list."`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	switch c.Key {
	case "day_start":
		if !utils.ValidateTimeFormat(c.Value) {
			return fmt.Errorf("invalid time %q, use HH:MM", c.Value)
		}
		settings.DayStart = c.Value
	case "day_end":
		if !utils.ValidateTimeFormat(c.Value) {
			return fmt.Errorf("invalid time %q, use HH:MM", c.Value)
		}
		settings.DayEnd = c.Value
	case "block_order":
		order := strings.Split(c.Value, ",")
		for i := range order {
			order[i] = strings.TrimSpace(order[i])
			if _, ok := planner.Definition(order[i]); !ok {
				return fmt.Errorf("unknown block id: %s", order[i])
			}
		}
		settings.BlockOrder = order
	case "timezone":
		if !utils.ValidateTimezone(c.Value) {
			return fmt.Errorf("invalid timezone: %s", c.Value)
		}
		settings.Timezone = c.Value
	case "days_after_application", "days_after_interview", "days_between_follow_ups",
		"days_after_interview_thank_you", "home_reminder_count":
		n, err := strconv.Atoi(c.Value)
		if err != nil {
			return fmt.Errorf("invalid number %q for %s", c.Value, c.Key)
		}
		if n < 0 {
			return fmt.Errorf("%s cannot be negative", c.Key)
		}
		switch c.Key {
		case "days_after_application":
			settings.DaysAfterApplication = n
		case "days_after_interview":
			settings.DaysAfterInterview = n
		case "days_between_follow_ups":
			settings.DaysBetweenFollowUps = n
		case "days_after_interview_thank_you":
			settings.DaysAfterInterviewThankYou = n
		case "home_reminder_count":
			settings.HomeReminderCount = n
		}
	default:
		return fmt.Errorf("unknown settings key: %s", c.Key)
	}

	result := validation.New().ValidateSettings(settings)
	if result.HasConflicts() {
		return fmt.Errorf("refusing to save:\n%s", result.FormatReport())
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Printf("Set %s = %s\n", c.Key, c.Value)
	return nil
}
