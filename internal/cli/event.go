package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/julianstephens/joblit/internal/models"
	"github.com/julianstephens/joblit/internal/utils"
)

type EventCmd struct {
	Add     EventAddCmd     `cmd:"" help:"Record an interview, networking meeting, or deadline."`
	List    EventListCmd    `cmd:"" help:"List events."`
	Delete  EventDeleteCmd  `cmd:"" help:"Soft-delete an event."`
	Thanked EventThankedCmd `cmd:"" help:"Mark an interview's thank-you note as sent."`
}

type EventAddCmd struct {
	Kind     string `arg:"" help:"Event kind (interview|networking|deadline)."`
	Date     string `arg:"" help:"Event date (YYYY-MM-DD)."`
	App      string `short:"a" help:"Application ID this event belongs to."`
	Category string `short:"c" help:"Interview category (screening|behavioral|technical|system_design|onsite|other)."`
	Time     string `short:"t" help:"Event time (HH:MM)."`
	Location string `short:"l" help:"Location or meeting link."`
	Notes    string `short:"n" help:"Free-form notes."`
}

func (c *EventAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	kind := models.EventKind(c.Kind)
	if !models.ValidEventKind(kind) {
		return fmt.Errorf("invalid event kind: %s", c.Kind)
	}
	if !utils.ValidateDateFormat(c.Date) {
		return fmt.Errorf("invalid date %q, use YYYY-MM-DD", c.Date)
	}
	if c.Time != "" && !utils.ValidateTimeFormat(c.Time) {
		return fmt.Errorf("invalid time %q, use HH:MM", c.Time)
	}

	var category models.EventCategory
	if c.Category != "" {
		category = models.EventCategory(c.Category)
		if !models.ValidEventCategory(category) {
			return fmt.Errorf("invalid category: %s", c.Category)
		}
	}

	if c.App != "" {
		if _, err := ctx.Store.GetApplication(c.App); err != nil {
			return fmt.Errorf("application %s: %w", c.App, err)
		}
	} else if kind == models.EventInterview {
		return fmt.Errorf("interview events require an application (use --app)")
	}

	event := models.Event{
		ID:            uuid.New().String(),
		ApplicationID: c.App,
		Kind:          kind,
		Category:      category,
		Date:          c.Date,
		Time:          c.Time,
		Location:      c.Location,
		Notes:         c.Notes,
		CreatedAt:     nowRFC3339(),
	}

	if err := ctx.Store.AddEvent(event); err != nil {
		return err
	}

	fmt.Printf("Added %s on %s (ID: %s)\n", kind, c.Date, event.ID)
	return nil
}

type EventListCmd struct {
	App  string `short:"a" help:"Only events for this application ID."`
	Kind string `short:"k" help:"Filter by kind (interview|networking|deadline)."`
}

func (c *EventListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if c.Kind != "" && !models.ValidEventKind(models.EventKind(c.Kind)) {
		return fmt.Errorf("invalid event kind: %s", c.Kind)
	}

	var events []models.Event
	var err error
	if c.App != "" {
		events, err = ctx.Store.GetEventsForApplication(c.App)
	} else {
		events, err = ctx.Store.GetAllEvents()
	}
	if err != nil {
		return fmt.Errorf("failed to get events: %w", err)
	}

	shown := 0
	for _, ev := range events {
		if ev.DeletedAt != nil {
			continue
		}
		if c.Kind != "" && string(ev.Kind) != c.Kind {
			continue
		}
		if shown == 0 {
			fmt.Println("Events:")
		}
		shown++

		line := fmt.Sprintf("  %s", ev.Date)
		if ev.Time != "" {
			line += " " + ev.Time
		}
		line += fmt.Sprintf("  %-12s", ev.Kind)
		if ev.Category != "" {
			line += fmt.Sprintf(" (%s)", ev.Category)
		}
		if ev.ApplicationID != "" {
			line += "  " + applicationLabel(ctx, ev.ApplicationID)
		}
		if ev.Kind == models.EventInterview && ev.ThankYouSentDate != "" {
			line += " [thanked]"
		}
		fmt.Println(line)
		fmt.Printf("      ID: %s\n", ev.ID)
	}

	if shown == 0 {
		fmt.Println("No events found")
	}
	return nil
}

type EventDeleteCmd struct {
	ID string `arg:"" help:"Event ID."`
}

func (c *EventDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := ctx.Store.DeleteEvent(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted event %s\n", c.ID)
	return nil
}

type EventThankedCmd struct {
	ID   string `arg:"" help:"Interview event ID."`
	Date string `short:"d" help:"Date the note was sent (YYYY-MM-DD), defaults to today."`
}

func (c *EventThankedCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	event, err := ctx.Store.GetEvent(c.ID)
	if err != nil {
		return err
	}
	if event.Kind != models.EventInterview {
		return fmt.Errorf("event %s is a %s, only interviews take thank-you notes", c.ID, event.Kind)
	}

	sent := c.Date
	if sent == "" {
		settings, err := ctx.Store.GetSettings()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		if sent, err = utils.GetTodayInTimezone(settings.Timezone); err != nil {
			return err
		}
	} else if !utils.ValidateDateFormat(sent) {
		return fmt.Errorf("invalid date %q, use YYYY-MM-DD", sent)
	}

	event.ThankYouSentDate = sent
	if err := ctx.Store.UpdateEvent(event); err != nil {
		return err
	}

	fmt.Printf("Marked interview on %s as thanked (%s)\n", event.Date, sent)
	return nil
}
