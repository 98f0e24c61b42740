package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/joblit/internal/cli"
	"github.com/julianstephens/joblit/internal/constants"
	"github.com/julianstephens/joblit/internal/errors"
	"github.com/julianstephens/joblit/internal/logger"
	"github.com/julianstephens/joblit/internal/planner"
	"github.com/julianstephens/joblit/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path. A .json extension selects the JSON backend." type:"path" default:"~/.config/joblit/joblit.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init      cli.InitCmd      `cmd:"" help:"Initialize joblit storage."`
	Tui       cli.TuiCmd       `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Day       cli.DayCmd       `cmd:"" help:"Show the plan for a day."`
	Reminders cli.RemindersCmd `cmd:"" help:"Show outstanding reminders."`
	Preview   cli.PreviewCmd   `cmd:"" help:"Preview the schedule for a different day start."`
	App       cli.AppCmd       `cmd:"" help:"Manage job applications."`
	Event     cli.EventCmd     `cmd:"" help:"Manage interviews, meetings, and deadlines."`
	Offer     cli.OfferCmd     `cmd:"" help:"Manage offers."`
	Ref       cli.RefCmd       `cmd:"" help:"Manage references and contacts."`
	Prep      cli.PrepCmd      `cmd:"" help:"Manage interview prep notes."`
	Settings  cli.SettingsCmd  `cmd:"" help:"Manage settings."`
	Backup    cli.BackupCmd    `cmd:"" help:"Create, list, and restore storage backups."`
	Validate  cli.ValidateCmd  `cmd:"" help:"Validate settings and records for conflicts."`
	Doctor    cli.DoctorCmd    `cmd:"" help:"Run health checks and diagnostics."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Job search organizer with daily time blocking and follow-up reminders"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store:   store,
		Planner: planner.New(),
	}

	err := ctx.Run(appCtx)
	if cerr := store.Close(); cerr != nil {
		logger.Warn("Failed to close storage", "error", cerr)
	}
	errors.Fatal(err)
}
