package validation

import (
	"testing"

	"github.com/julianstephens/joblit/internal/models"
	"github.com/julianstephens/joblit/internal/planner"
)

func validSettings() models.Settings {
	return models.Settings{
		DayStart:                   "08:00",
		DayEnd:                     "17:00",
		BlockOrder:                 planner.DefaultBlockOrder(),
		Timezone:                   "Local",
		DaysAfterApplication:       7,
		DaysAfterInterview:         2,
		DaysBetweenFollowUps:       2,
		DaysAfterInterviewThankYou: 1,
		HomeReminderCount:          5,
	}
}

func conflictTypes(r Result) map[ConflictType]int {
	counts := make(map[ConflictType]int)
	for _, c := range r.Conflicts {
		counts[c.Type]++
	}
	return counts
}

func TestValidateSettings_CleanSettingsPass(t *testing.T) {
	v := New()

	result := v.ValidateSettings(validSettings())
	if result.HasConflicts() {
		t.Errorf("expected no conflicts, got: %s", result.FormatReport())
	}
	if result.FormatReport() != "No conflicts detected." {
		t.Errorf("unexpected clean report: %q", result.FormatReport())
	}
}

func TestValidateSettings_InvalidTimes(t *testing.T) {
	v := New()

	settings := validSettings()
	settings.DayStart = "8am"
	settings.DayEnd = "25:00"

	result := v.ValidateSettings(settings)
	if got := conflictTypes(result)[ConflictInvalidTime]; got != 2 {
		t.Errorf("expected 2 invalid-time conflicts, got %d", got)
	}
}

func TestValidateSettings_UnknownBlockID(t *testing.T) {
	v := New()

	settings := validSettings()
	settings.BlockOrder = append(settings.BlockOrder, "standup")

	result := v.ValidateSettings(settings)
	if got := conflictTypes(result)[ConflictUnknownBlockID]; got != 1 {
		t.Errorf("expected 1 unknown-block conflict, got %d", got)
	}
}

func TestValidateSettings_MissingFixedBlocks(t *testing.T) {
	v := New()

	settings := validSettings()
	// Keep only the editable blocks; all three fixed blocks go missing.
	settings.BlockOrder = []string{
		planner.BlockHighFocus, planner.BlockApplications,
		planner.BlockNetworking, planner.BlockInterviewPrep, planner.BlockSkills,
	}

	result := v.ValidateSettings(settings)
	if got := conflictTypes(result)[ConflictMissingFixedBlock]; got != 3 {
		t.Errorf("expected 3 missing-fixed-block conflicts, got %d", got)
	}
}

func TestValidateSettings_FixedBlockMoved(t *testing.T) {
	v := New()

	// Swap the morning routine and lunch; both are fixed, so both are out
	// of their designated slot even though every block is still present.
	settings := validSettings()
	settings.BlockOrder[0], settings.BlockOrder[3] = settings.BlockOrder[3], settings.BlockOrder[0]

	result := v.ValidateSettings(settings)
	if got := conflictTypes(result)[ConflictFixedBlockMoved]; got != 2 {
		t.Errorf("expected 2 fixed-block-moved conflicts, got %d: %s", got, result.FormatReport())
	}
	if got := conflictTypes(result)[ConflictMissingFixedBlock]; got != 0 {
		t.Errorf("expected no missing-fixed-block conflicts, got %d", got)
	}
}

func TestValidateSettings_EditableBlocksMayReorder(t *testing.T) {
	v := New()

	// Swapping two editable blocks leaves every fixed block in place.
	settings := validSettings()
	settings.BlockOrder[1], settings.BlockOrder[4] = settings.BlockOrder[4], settings.BlockOrder[1]

	result := v.ValidateSettings(settings)
	if result.HasConflicts() {
		t.Errorf("expected no conflicts, got: %s", result.FormatReport())
	}
}

func TestValidateSettings_NegativeOffsets(t *testing.T) {
	v := New()

	settings := validSettings()
	settings.DaysAfterInterview = -1

	result := v.ValidateSettings(settings)
	if got := conflictTypes(result)[ConflictNegativeOffset]; got != 1 {
		t.Errorf("expected 1 negative-offset conflict, got %d", got)
	}
}

func TestValidateSettings_OffsetConflictOrderIsStable(t *testing.T) {
	v := New()

	settings := validSettings()
	settings.DaysAfterApplication = -1
	settings.DaysAfterInterview = -2
	settings.DaysBetweenFollowUps = -3
	settings.DaysAfterInterviewThankYou = -4

	want := []string{
		"Reminder offset days after application is negative (-1)",
		"Reminder offset days after interview is negative (-2)",
		"Reminder offset days between follow-ups is negative (-3)",
		"Reminder offset days after interview thank-you is negative (-4)",
	}
	for run := 0; run < 5; run++ {
		result := v.ValidateSettings(settings)
		if len(result.Conflicts) != len(want) {
			t.Fatalf("expected %d conflicts, got %d", len(want), len(result.Conflicts))
		}
		for i, w := range want {
			if result.Conflicts[i].Description != w {
				t.Fatalf("run %d conflict %d: expected %q, got %q", run, i, w, result.Conflicts[i].Description)
			}
		}
	}
}

func TestValidateSettings_InvalidTimezone(t *testing.T) {
	v := New()

	settings := validSettings()
	settings.Timezone = "Mars/Olympus_Mons"

	result := v.ValidateSettings(settings)
	if got := conflictTypes(result)[ConflictInvalidTimezone]; got != 1 {
		t.Errorf("expected 1 invalid-timezone conflict, got %d", got)
	}
}

func TestValidateRecords_CleanRecordsPass(t *testing.T) {
	v := New()

	apps := []models.Application{
		{ID: "app-1", Company: "Initech", Role: "Engineer", Status: models.StatusApplied, AppliedDate: "2024-01-01"},
	}
	events := []models.Event{
		{ID: "ev-1", ApplicationID: "app-1", Kind: models.EventInterview, Date: "2024-01-15"},
	}

	result := v.ValidateRecords(apps, events)
	if result.HasConflicts() {
		t.Errorf("expected no conflicts, got: %s", result.FormatReport())
	}
}

func TestValidateRecords_BadStatusAndDates(t *testing.T) {
	v := New()

	apps := []models.Application{
		{ID: "app-1", Company: "Initech", Role: "Engineer", Status: "ghosted", AppliedDate: "soon", LastFollowUpDate: "never"},
	}

	result := v.ValidateRecords(apps, nil)
	counts := conflictTypes(result)
	if counts[ConflictInvalidStatus] != 1 {
		t.Errorf("expected 1 invalid-status conflict, got %d", counts[ConflictInvalidStatus])
	}
	if counts[ConflictInvalidDate] != 2 {
		t.Errorf("expected 2 invalid-date conflicts, got %d", counts[ConflictInvalidDate])
	}
}

func TestValidateRecords_DuplicateApplications(t *testing.T) {
	v := New()

	apps := []models.Application{
		{ID: "app-1", Company: "Initech", Role: "Engineer", Status: models.StatusApplied, AppliedDate: "2024-01-01"},
		{ID: "app-2", Company: "Initech", Role: "Engineer", Status: models.StatusApplied, AppliedDate: "2024-02-01"},
	}

	result := v.ValidateRecords(apps, nil)
	if got := conflictTypes(result)[ConflictDuplicateApplication]; got != 1 {
		t.Errorf("expected 1 duplicate-application conflict, got %d", got)
	}
}

func TestValidateRecords_DeletedApplicationNotDuplicate(t *testing.T) {
	v := New()

	deletedAt := "2024-01-10T09:00:00Z"
	apps := []models.Application{
		{ID: "app-1", Company: "Initech", Role: "Engineer", Status: models.StatusApplied, AppliedDate: "2024-01-01", DeletedAt: &deletedAt},
		{ID: "app-2", Company: "Initech", Role: "Engineer", Status: models.StatusApplied, AppliedDate: "2024-02-01"},
	}

	result := v.ValidateRecords(apps, nil)
	if result.HasConflicts() {
		t.Errorf("soft-deleted application should not count as a duplicate: %s", result.FormatReport())
	}
}

func TestValidateRecords_DanglingEvent(t *testing.T) {
	v := New()

	events := []models.Event{
		{ID: "ev-1", ApplicationID: "gone", Kind: models.EventInterview, Date: "2024-01-15"},
	}

	result := v.ValidateRecords(nil, events)
	if got := conflictTypes(result)[ConflictDanglingEvent]; got != 1 {
		t.Errorf("expected 1 dangling-event conflict, got %d", got)
	}
}
