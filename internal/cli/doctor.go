package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/joblit/internal/storage"
	"github.com/julianstephens/joblit/internal/utils"
	"github.com/julianstephens/joblit/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storeReachable := false

	if err := checkStoreReachable(ctx); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		storeReachable = true
	}

	if storeReachable {
		if err := checkSchemaVersion(ctx); err != nil {
			fmt.Printf("❌ Schema version: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Schema version: OK\n")
		}

		if err := checkSettings(ctx); err != nil {
			fmt.Printf("❌ Settings: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Settings: OK\n")
		}

		if err := checkRecords(ctx); err != nil {
			fmt.Printf("⚠ Record validation: WARNING\n")
			fmt.Printf("   %v\n", err)
		} else {
			fmt.Printf("✓ Record validation: OK\n")
		}
	} else {
		fmt.Printf("⊘ Schema version: SKIPPED (storage not reachable)\n")
		fmt.Printf("⊘ Settings: SKIPPED (storage not reachable)\n")
		fmt.Printf("⊘ Record validation: SKIPPED (storage not reachable)\n")
	}

	if err := checkClockTimezone(ctx, storeReachable); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	if sqliteStore, ok := ctx.Store.(*storage.SQLiteStore); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func checkSchemaVersion(ctx *Context) error {
	sqliteStore, ok := ctx.Store.(*storage.SQLiteStore)
	if !ok {
		// JSON store has no schema version
		return nil
	}

	current, latest, err := sqliteStore.SchemaStatus()
	if err != nil {
		return fmt.Errorf("failed to read schema status: %w", err)
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", current, latest)
	}
	return nil
}

func checkSettings(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	result := validation.New().ValidateSettings(settings)
	if result.HasConflicts() {
		return fmt.Errorf("%s", result.FormatReport())
	}
	return nil
}

func checkRecords(ctx *Context) error {
	apps, err := ctx.Store.GetAllApplications()
	if err != nil {
		return fmt.Errorf("failed to get applications: %w", err)
	}
	events, err := ctx.Store.GetAllEvents()
	if err != nil {
		return fmt.Errorf("failed to get events: %w", err)
	}

	result := validation.New().ValidateRecords(apps, events)
	if result.HasConflicts() {
		return fmt.Errorf("%s", result.FormatReport())
	}
	return nil
}

func checkClockTimezone(ctx *Context, storeReachable bool) error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	if storeReachable {
		settings, err := ctx.Store.GetSettings()
		if err == nil && !utils.ValidateTimezone(settings.Timezone) {
			return fmt.Errorf("configured timezone %q cannot be loaded", settings.Timezone)
		}
	}

	return nil
}
