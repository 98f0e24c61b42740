package planner

import (
	"testing"

	"github.com/julianstephens/joblit/internal/models"
)

func TestBuildDailyView_FiltersRemindersToDate(t *testing.T) {
	p := New()

	apps := []models.Application{
		// Follow-up due 2024-01-08.
		{ID: "app-due", Status: models.StatusApplied, AppliedDate: "2024-01-01"},
		// Follow-up due 2024-01-12.
		{ID: "app-later", Status: models.StatusApplied, AppliedDate: "2024-01-05"},
	}

	view := p.BuildDailyView("2024-01-08", defaultConfig(8*60, 17*60), apps, nil, defaultOffsets())

	if view.Date != "2024-01-08" {
		t.Errorf("unexpected view date: %s", view.Date)
	}
	if len(view.Reminders) != 1 {
		t.Fatalf("expected only the reminder due on the view date, got %d", len(view.Reminders))
	}
	if view.Reminders[0].ApplicationID != "app-due" {
		t.Errorf("expected app-due, got %s", view.Reminders[0].ApplicationID)
	}
	if len(view.Blocks) == 0 {
		t.Error("expected generated blocks in the daily view")
	}
}

func TestBuildDailyView_ThemeMatchesWeekday(t *testing.T) {
	p := New()

	// 2024-01-08 is a Monday.
	view := p.BuildDailyView("2024-01-08", defaultConfig(8*60, 17*60), nil, nil, defaultOffsets())
	if view.Theme != "Applications" {
		t.Errorf("expected Monday theme %q, got %q", "Applications", view.Theme)
	}

	// 2024-01-14 is a Sunday.
	view = p.BuildDailyView("2024-01-14", defaultConfig(8*60, 17*60), nil, nil, defaultOffsets())
	if view.Theme != "Rest & reset" {
		t.Errorf("expected Sunday theme %q, got %q", "Rest & reset", view.Theme)
	}
}

func TestBuildDailyView_InvalidDateYieldsEmptyView(t *testing.T) {
	p := New()

	apps := []models.Application{
		{ID: "app-1", Status: models.StatusApplied, AppliedDate: "2024-01-01"},
	}

	view := p.BuildDailyView("January 8th", defaultConfig(8*60, 17*60), apps, nil, defaultOffsets())
	if len(view.Blocks) != 0 || len(view.Reminders) != 0 || view.Theme != "" {
		t.Errorf("expected an empty view for a malformed date, got %+v", view)
	}
}
