package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/julianstephens/joblit/internal/models"
	"github.com/julianstephens/joblit/internal/utils"
)

type AppCmd struct {
	Add     AppAddCmd     `cmd:"" help:"Track a new job application."`
	List    AppListCmd    `cmd:"" help:"List tracked applications."`
	Show    AppShowCmd    `cmd:"" help:"Show one application in detail."`
	Edit    AppEditCmd    `cmd:"" help:"Edit an application's fields."`
	Delete  AppDeleteCmd  `cmd:"" help:"Soft-delete an application."`
	Restore AppRestoreCmd `cmd:"" help:"Restore a soft-deleted application."`
	Status  AppStatusCmd  `cmd:"" help:"Change an application's status."`
}

type AppAddCmd struct {
	Company     string `arg:"" help:"Company name."`
	Role        string `arg:"" help:"Role title."`
	AppliedDate string `short:"d" help:"Application date (YYYY-MM-DD), defaults to today."`
	URL         string `short:"u" help:"Job posting URL."`
	Salary      string `short:"s" help:"Salary range."`
	Notes       string `short:"n" help:"Free-form notes."`
}

func (c *AppAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	appliedDate := c.AppliedDate
	if appliedDate == "" {
		if appliedDate, err = utils.GetTodayInTimezone(settings.Timezone); err != nil {
			return err
		}
	} else if !utils.ValidateDateFormat(appliedDate) {
		return fmt.Errorf("invalid applied date %q, use YYYY-MM-DD", appliedDate)
	}

	now := nowRFC3339()
	app := models.Application{
		ID:          uuid.New().String(),
		Company:     c.Company,
		Role:        c.Role,
		Status:      models.StatusApplied,
		AppliedDate: appliedDate,
		URL:         c.URL,
		SalaryRange: c.Salary,
		Notes:       c.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := ctx.Store.AddApplication(app); err != nil {
		return err
	}

	fmt.Printf("Added application: %s - %s (ID: %s)\n", c.Company, c.Role, app.ID)
	return nil
}

type AppListCmd struct {
	Status string `short:"s" help:"Filter by status (applied|interview|rejected|no_response)."`
	All    bool   `help:"Include soft-deleted applications."`
}

func (c *AppListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if c.Status != "" && !models.ValidStatus(models.ApplicationStatus(c.Status)) {
		return fmt.Errorf("invalid status: %s", c.Status)
	}

	var apps []models.Application
	var err error
	if c.All {
		apps, err = ctx.Store.GetAllApplicationsIncludingDeleted()
	} else {
		apps, err = ctx.Store.GetAllApplications()
	}
	if err != nil {
		return fmt.Errorf("failed to get applications: %w", err)
	}

	shown := 0
	for _, app := range apps {
		if c.Status != "" && string(app.Status) != c.Status {
			continue
		}
		if shown == 0 {
			fmt.Println("Applications:")
		}
		shown++

		marker := " "
		if app.DeletedAt != nil {
			marker = "x"
		}
		fmt.Printf("%s [%s] %s - %s (applied %s)\n", marker, app.Status, app.Company, app.Role, app.AppliedDate)
		fmt.Printf("      ID: %s\n", app.ID)
	}

	if shown == 0 {
		fmt.Println("No applications found")
	}
	return nil
}

type AppShowCmd struct {
	ID string `arg:"" help:"Application ID."`
}

func (c *AppShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	app, err := ctx.Store.GetApplication(c.ID)
	if err != nil {
		return err
	}

	fmt.Printf("%s - %s\n", app.Company, app.Role)
	fmt.Printf("  ID:      %s\n", app.ID)
	fmt.Printf("  Status:  %s\n", app.Status)
	fmt.Printf("  Applied: %s\n", app.AppliedDate)
	if app.LastFollowUpDate != "" {
		fmt.Printf("  Last follow-up: %s\n", app.LastFollowUpDate)
	}
	if app.URL != "" {
		fmt.Printf("  URL:     %s\n", app.URL)
	}
	if app.SalaryRange != "" {
		fmt.Printf("  Salary:  %s\n", app.SalaryRange)
	}
	if app.Notes != "" {
		fmt.Printf("  Notes:   %s\n", app.Notes)
	}
	if app.DeletedAt != nil {
		fmt.Printf("  Deleted: %s\n", *app.DeletedAt)
	}

	events, err := ctx.Store.GetEventsForApplication(app.ID)
	if err != nil {
		return fmt.Errorf("failed to get events: %w", err)
	}
	if len(events) > 0 {
		fmt.Println("  Events:")
		for _, ev := range events {
			if ev.DeletedAt != nil {
				continue
			}
			line := fmt.Sprintf("    %s %s", ev.Date, ev.Kind)
			if ev.Category != "" {
				line += fmt.Sprintf(" (%s)", ev.Category)
			}
			if ev.Kind == models.EventInterview && ev.ThankYouSentDate != "" {
				line += " [thanked]"
			}
			fmt.Println(line)
		}
	}

	offers, err := ctx.Store.GetOffersForApplication(app.ID)
	if err != nil {
		return fmt.Errorf("failed to get offers: %w", err)
	}
	if len(offers) > 0 {
		fmt.Println("  Offers:")
		for _, o := range offers {
			if o.DeletedAt != nil {
				continue
			}
			line := fmt.Sprintf("    [%s]", o.Status)
			if o.BaseSalary != "" {
				line += " " + o.BaseSalary
			}
			if o.Deadline != "" {
				line += fmt.Sprintf(" (respond by %s)", o.Deadline)
			}
			fmt.Println(line)
		}
	}

	return nil
}

type AppEditCmd struct {
	ID           string `arg:"" help:"Application ID."`
	Company      string `help:"New company name."`
	Role         string `help:"New role title."`
	URL          string `short:"u" help:"New job posting URL."`
	Salary       string `short:"s" help:"New salary range."`
	Notes        string `short:"n" help:"New notes."`
	LastFollowUp string `help:"Record the most recent follow-up date (YYYY-MM-DD)."`
}

func (c *AppEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	app, err := ctx.Store.GetApplication(c.ID)
	if err != nil {
		return err
	}

	if c.Company != "" {
		app.Company = c.Company
	}
	if c.Role != "" {
		app.Role = c.Role
	}
	if c.URL != "" {
		app.URL = c.URL
	}
	if c.Salary != "" {
		app.SalaryRange = c.Salary
	}
	if c.Notes != "" {
		app.Notes = c.Notes
	}
	if c.LastFollowUp != "" {
		if !utils.ValidateDateFormat(c.LastFollowUp) {
			return fmt.Errorf("invalid follow-up date %q, use YYYY-MM-DD", c.LastFollowUp)
		}
		app.LastFollowUpDate = c.LastFollowUp
	}
	app.UpdatedAt = nowRFC3339()

	if err := ctx.Store.UpdateApplication(app); err != nil {
		return err
	}

	fmt.Printf("Updated application: %s - %s\n", app.Company, app.Role)
	return nil
}

type AppDeleteCmd struct {
	ID string `arg:"" help:"Application ID."`
}

func (c *AppDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := ctx.Store.DeleteApplication(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted application %s (restore with 'joblit app restore %s')\n", c.ID, c.ID)
	return nil
}

type AppRestoreCmd struct {
	ID string `arg:"" help:"Application ID."`
}

func (c *AppRestoreCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := ctx.Store.RestoreApplication(c.ID); err != nil {
		return err
	}
	fmt.Printf("Restored application %s\n", c.ID)
	return nil
}

type AppStatusCmd struct {
	ID     string `arg:"" help:"Application ID."`
	Status string `arg:"" help:"New status (applied|interview|rejected|no_response)."`
}

func (c *AppStatusCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	status := models.ApplicationStatus(c.Status)
	if !models.ValidStatus(status) {
		return fmt.Errorf("invalid status: %s", c.Status)
	}

	app, err := ctx.Store.GetApplication(c.ID)
	if err != nil {
		return err
	}

	app.Status = status
	app.UpdatedAt = nowRFC3339()
	if err := ctx.Store.UpdateApplication(app); err != nil {
		return err
	}

	fmt.Printf("Set %s - %s to %s\n", app.Company, app.Role, status)
	if status.Terminal() {
		fmt.Println("Terminal status: reminders for this application are now suppressed.")
	}
	return nil
}
