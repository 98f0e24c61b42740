package cli

import (
	"fmt"

	"github.com/julianstephens/joblit/internal/utils"
)

// PreviewCmd regenerates the block schedule for an arbitrary day start
// without touching stored settings, so the shape of the day can be explored
// before committing to it.
type PreviewCmd struct {
	Start string `short:"s" help:"Day start time (HH:MM)." required:""`
	End   string `short:"e" help:"Day end time (HH:MM); defaults to the stored setting."`
}

func (c *PreviewCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.End != "" {
		settings.DayEnd = c.End
	} else if start, perr := utils.ParseTimeToMinutes(c.Start); perr == nil {
		// Keep the stored day length, re-anchored to the requested start.
		if oldStart, e1 := utils.ParseTimeToMinutes(settings.DayStart); e1 == nil {
			if oldEnd, e2 := utils.ParseTimeToMinutes(settings.DayEnd); e2 == nil {
				settings.DayEnd = utils.FormatMinutes(start + (oldEnd - oldStart))
			}
		}
	}
	settings.DayStart = c.Start

	blocks := ctx.Planner.GenerateFromSettings(settings)
	if len(blocks) == 0 {
		fmt.Println("No preview available.")
		return nil
	}

	fmt.Printf("Schedule preview for a %s–%s day:\n\n", settings.DayStart, settings.DayEnd)
	for _, block := range blocks {
		if block.Timed {
			fmt.Printf("%s  %s\n", block.Display, block.Title)
		} else {
			fmt.Printf("%-12s %s\n", "", block.Title)
		}
	}

	return nil
}
