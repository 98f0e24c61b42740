package cli

import (
	"fmt"

	"github.com/julianstephens/joblit/internal/validation"
)

type ValidateCmd struct{}

func (cmd *ValidateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	apps, err := ctx.Store.GetAllApplications()
	if err != nil {
		return fmt.Errorf("failed to load applications: %w", err)
	}
	events, err := ctx.Store.GetAllEvents()
	if err != nil {
		return fmt.Errorf("failed to load events: %w", err)
	}

	validator := validation.New()

	fmt.Println("Validating settings...")
	settingsResult := validator.ValidateSettings(settings)

	fmt.Println("Validating records...")
	recordsResult := validator.ValidateRecords(apps, events)

	combined := validation.Result{
		Conflicts: append(settingsResult.Conflicts, recordsResult.Conflicts...),
	}

	fmt.Println()
	fmt.Println(combined.FormatReport())

	// Conflicts are reported, not fatal.
	return nil
}
