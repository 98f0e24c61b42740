package e2e

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/joblit/internal/models"
	"github.com/julianstephens/joblit/internal/planner"
	"github.com/julianstephens/joblit/internal/storage"
)

// TestJobSearchWorkflow walks the core loop end to end against a real SQLite
// store: initialize, track an application, record an interview, and read the
// derived reminders and daily plan back out.
func TestJobSearchWorkflow(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "joblit.db")
	store := storage.NewSQLiteStore(dbPath)

	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	defer store.Close()
	if err := store.Load(); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	// 1. Track an application.
	app := models.Application{
		ID:          "app-1",
		Company:     "Initech",
		Role:        "Backend Engineer",
		Status:      models.StatusApplied,
		AppliedDate: "2024-03-01",
		CreatedAt:   "2024-03-01T09:00:00Z",
		UpdatedAt:   "2024-03-01T09:00:00Z",
	}
	if err := store.AddApplication(app); err != nil {
		t.Fatalf("add application failed: %v", err)
	}

	// 2. An interview happens.
	event := models.Event{
		ID:            "ev-1",
		ApplicationID: "app-1",
		Kind:          models.EventInterview,
		Category:      models.CategoryTechnical,
		Date:          "2024-03-10",
		Time:          "14:00",
		CreatedAt:     "2024-03-05T09:00:00Z",
	}
	if err := store.AddEvent(event); err != nil {
		t.Fatalf("add event failed: %v", err)
	}
	app.Status = models.StatusInterview
	app.UpdatedAt = "2024-03-10T17:00:00Z"
	if err := store.UpdateApplication(app); err != nil {
		t.Fatalf("update application failed: %v", err)
	}

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("get settings failed: %v", err)
	}

	p := planner.New()
	apps, _ := store.GetAllApplications()
	events, _ := store.GetAllEvents()
	offsets := planner.OffsetsFromSettings(settings)

	// 3. The day after the interview, both reminders are outstanding:
	// a thank-you note (interview + 1) and a follow-up (interview + 2).
	reminders := p.ComputeReminders(apps, events, offsets, "2024-03-11")
	if len(reminders) != 2 {
		t.Fatalf("expected 2 reminders, got %d: %+v", len(reminders), reminders)
	}
	if reminders[0].Kind != planner.ReminderThankYou || reminders[0].DueDate != "2024-03-11" {
		t.Errorf("expected thank-you due 2024-03-11, got %s due %s", reminders[0].Kind, reminders[0].DueDate)
	}
	if reminders[1].Kind != planner.ReminderFollowUp || reminders[1].DueDate != "2024-03-12" {
		t.Errorf("expected follow-up due 2024-03-12, got %s due %s", reminders[1].Kind, reminders[1].DueDate)
	}

	// 4. The daily view for the follow-up's due date carries the reminder
	// plus the generated schedule.
	config, err := planner.ConfigFromSettings(settings)
	if err != nil {
		t.Fatalf("config from settings failed: %v", err)
	}
	view := p.BuildDailyView("2024-03-12", config, apps, events, offsets)
	if len(view.Blocks) == 0 {
		t.Error("expected schedule blocks in the daily view")
	}
	if len(view.Reminders) != 1 || view.Reminders[0].Kind != planner.ReminderFollowUp {
		t.Errorf("expected only the follow-up due on 2024-03-12, got %+v", view.Reminders)
	}

	// 5. Sending the thank-you note clears its reminder.
	event.ThankYouSentDate = "2024-03-11"
	if err := store.UpdateEvent(event); err != nil {
		t.Fatalf("update event failed: %v", err)
	}
	events, _ = store.GetAllEvents()
	reminders = p.ComputeReminders(apps, events, offsets, "2024-03-11")
	if len(reminders) != 1 || reminders[0].Kind != planner.ReminderFollowUp {
		t.Errorf("expected only the follow-up after sending thanks, got %+v", reminders)
	}

	// 6. A rejection silences the application entirely.
	app.Status = models.StatusRejected
	app.UpdatedAt = "2024-03-15T09:00:00Z"
	if err := store.UpdateApplication(app); err != nil {
		t.Fatalf("update application failed: %v", err)
	}
	apps, _ = store.GetAllApplications()
	if got := p.ComputeReminders(apps, events, offsets, "2024-03-20"); len(got) != 0 {
		t.Errorf("rejected application still produced reminders: %+v", got)
	}
}
