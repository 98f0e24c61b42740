package storage

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/joblit/internal/models"
	"github.com/julianstephens/joblit/internal/planner"
)

// newTestStore initializes a fresh store of each backend under a temp dir.
func newTestStore(t *testing.T, backend string) Provider {
	t.Helper()

	var store Provider
	switch backend {
	case "sqlite":
		store = NewSQLiteStore(filepath.Join(t.TempDir(), "joblit.db"))
	case "json":
		store = NewJSONStore(filepath.Join(t.TempDir(), "joblit.json"))
	default:
		t.Fatalf("unknown backend %s", backend)
	}

	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func forEachBackend(t *testing.T, fn func(t *testing.T, store Provider)) {
	for _, backend := range []string{"sqlite", "json"} {
		t.Run(backend, func(t *testing.T) {
			fn(t, newTestStore(t, backend))
		})
	}
}

func sampleApplication(id string) models.Application {
	return models.Application{
		ID:          id,
		Company:     "Initech",
		Role:        "Engineer",
		Status:      models.StatusApplied,
		AppliedDate: "2024-01-01",
		CreatedAt:   "2024-01-01T09:00:00Z",
		UpdatedAt:   "2024-01-01T09:00:00Z",
	}
}

func TestLoad_UninitializedStoreFails(t *testing.T) {
	dir := t.TempDir()

	for _, store := range []Provider{
		NewSQLiteStore(filepath.Join(dir, "missing.db")),
		NewJSONStore(filepath.Join(dir, "missing.json")),
	} {
		if err := store.Load(); err == nil {
			t.Errorf("%T: expected Load to fail before Init", store)
		}
	}
}

func TestInit_SeedsDefaultSettings(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store Provider) {
		settings, err := store.GetSettings()
		if err != nil {
			t.Fatalf("GetSettings failed: %v", err)
		}

		if settings.DayStart != "08:00" || settings.DayEnd != "17:00" {
			t.Errorf("unexpected default day: %s-%s", settings.DayStart, settings.DayEnd)
		}
		if len(settings.BlockOrder) != len(planner.DefaultBlockOrder()) {
			t.Errorf("unexpected default block order: %v", settings.BlockOrder)
		}
		if settings.DaysAfterApplication != 7 || settings.DaysAfterInterviewThankYou != 1 {
			t.Errorf("unexpected default offsets: %+v", settings)
		}
		if settings.HomeReminderCount != 5 {
			t.Errorf("unexpected default home reminder count: %d", settings.HomeReminderCount)
		}
	})
}

func TestSettings_RoundTrip(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store Provider) {
		settings, err := store.GetSettings()
		if err != nil {
			t.Fatalf("GetSettings failed: %v", err)
		}

		settings.DayStart = "09:30"
		settings.DayEnd = "18:30"
		settings.Timezone = "America/New_York"
		settings.BlockOrder = []string{planner.BlockMorning, planner.BlockLunch, planner.BlockEvening}
		settings.DaysBetweenFollowUps = 5

		if err := store.SaveSettings(settings); err != nil {
			t.Fatalf("SaveSettings failed: %v", err)
		}

		got, err := store.GetSettings()
		if err != nil {
			t.Fatalf("GetSettings failed after save: %v", err)
		}
		if got.DayStart != "09:30" || got.DayEnd != "18:30" || got.Timezone != "America/New_York" {
			t.Errorf("settings did not round-trip: %+v", got)
		}
		if len(got.BlockOrder) != 3 || got.BlockOrder[1] != planner.BlockLunch {
			t.Errorf("block order did not round-trip: %v", got.BlockOrder)
		}
		if got.DaysBetweenFollowUps != 5 {
			t.Errorf("offsets did not round-trip: %+v", got)
		}
	})
}

func TestApplications_CRUD(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store Provider) {
		app := sampleApplication("app-1")
		if err := store.AddApplication(app); err != nil {
			t.Fatalf("AddApplication failed: %v", err)
		}

		got, err := store.GetApplication("app-1")
		if err != nil {
			t.Fatalf("GetApplication failed: %v", err)
		}
		if got.Company != "Initech" || got.Status != models.StatusApplied {
			t.Errorf("unexpected application: %+v", got)
		}

		got.Status = models.StatusInterview
		got.LastFollowUpDate = "2024-01-10"
		if err := store.UpdateApplication(got); err != nil {
			t.Fatalf("UpdateApplication failed: %v", err)
		}

		got, _ = store.GetApplication("app-1")
		if got.Status != models.StatusInterview || got.LastFollowUpDate != "2024-01-10" {
			t.Errorf("update did not persist: %+v", got)
		}

		if _, err := store.GetApplication("nope"); err == nil {
			t.Error("expected error for unknown id")
		}
		if err := store.UpdateApplication(sampleApplication("nope")); err == nil {
			t.Error("expected error updating unknown id")
		}
	})
}

func TestApplications_SoftDeleteAndRestore(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store Provider) {
		if err := store.AddApplication(sampleApplication("app-1")); err != nil {
			t.Fatalf("AddApplication failed: %v", err)
		}

		if err := store.DeleteApplication("app-1"); err != nil {
			t.Fatalf("DeleteApplication failed: %v", err)
		}

		if _, err := store.GetApplication("app-1"); err == nil {
			t.Error("deleted application still retrievable")
		}
		apps, _ := store.GetAllApplications()
		if len(apps) != 0 {
			t.Errorf("deleted application still listed: %v", apps)
		}

		all, err := store.GetAllApplicationsIncludingDeleted()
		if err != nil {
			t.Fatalf("GetAllApplicationsIncludingDeleted failed: %v", err)
		}
		if len(all) != 1 || all[0].DeletedAt == nil {
			t.Errorf("expected one soft-deleted row, got %+v", all)
		}

		// Double delete fails; restore brings it back.
		if err := store.DeleteApplication("app-1"); err == nil {
			t.Error("expected error deleting an already-deleted application")
		}
		if err := store.RestoreApplication("app-1"); err != nil {
			t.Fatalf("RestoreApplication failed: %v", err)
		}
		if _, err := store.GetApplication("app-1"); err != nil {
			t.Errorf("restored application not retrievable: %v", err)
		}
		if err := store.RestoreApplication("app-1"); err == nil {
			t.Error("expected error restoring a live application")
		}
	})
}

func TestEvents_PerApplicationAndSoftDelete(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store Provider) {
		if err := store.AddApplication(sampleApplication("app-1")); err != nil {
			t.Fatalf("AddApplication failed: %v", err)
		}

		events := []models.Event{
			{ID: "ev-2", ApplicationID: "app-1", Kind: models.EventInterview, Category: models.CategoryTechnical, Date: "2024-01-20", Time: "14:00", CreatedAt: "2024-01-02T09:00:00Z"},
			{ID: "ev-1", ApplicationID: "app-1", Kind: models.EventInterview, Category: models.CategoryScreening, Date: "2024-01-15", Time: "10:00", CreatedAt: "2024-01-02T09:00:00Z"},
			{ID: "ev-3", Kind: models.EventNetworking, Date: "2024-01-18", CreatedAt: "2024-01-02T09:00:00Z"},
		}
		for _, ev := range events {
			if err := store.AddEvent(ev); err != nil {
				t.Fatalf("AddEvent failed: %v", err)
			}
		}

		forApp, err := store.GetEventsForApplication("app-1")
		if err != nil {
			t.Fatalf("GetEventsForApplication failed: %v", err)
		}
		if len(forApp) != 2 {
			t.Fatalf("expected 2 events for app-1, got %d", len(forApp))
		}
		// Sorted by date.
		if forApp[0].ID != "ev-1" || forApp[1].ID != "ev-2" {
			t.Errorf("events not date-sorted: %s, %s", forApp[0].ID, forApp[1].ID)
		}

		// Recording a thank-you persists.
		ev := forApp[0]
		ev.ThankYouSentDate = "2024-01-16"
		if err := store.UpdateEvent(ev); err != nil {
			t.Fatalf("UpdateEvent failed: %v", err)
		}
		got, _ := store.GetEvent("ev-1")
		if got.ThankYouSentDate != "2024-01-16" {
			t.Errorf("thank-you date did not persist: %+v", got)
		}

		if err := store.DeleteEvent("ev-3"); err != nil {
			t.Fatalf("DeleteEvent failed: %v", err)
		}
		allEvents, _ := store.GetAllEvents()
		if len(allEvents) != 2 {
			t.Errorf("expected 2 live events after delete, got %d", len(allEvents))
		}
	})
}

func TestOffers_PerApplication(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store Provider) {
		if err := store.AddApplication(sampleApplication("app-1")); err != nil {
			t.Fatalf("AddApplication failed: %v", err)
		}

		offer := models.Offer{
			ID:            "offer-1",
			ApplicationID: "app-1",
			Status:        models.OfferReceived,
			BaseSalary:    "120k",
			Deadline:      "2024-03-01",
			CreatedAt:     "2024-02-20T09:00:00Z",
		}
		if err := store.AddOffer(offer); err != nil {
			t.Fatalf("AddOffer failed: %v", err)
		}

		offers, err := store.GetOffersForApplication("app-1")
		if err != nil {
			t.Fatalf("GetOffersForApplication failed: %v", err)
		}
		if len(offers) != 1 || offers[0].Status != models.OfferReceived {
			t.Fatalf("unexpected offers: %+v", offers)
		}

		offers[0].Status = models.OfferAccepted
		if err := store.UpdateOffer(offers[0]); err != nil {
			t.Fatalf("UpdateOffer failed: %v", err)
		}
		offers, _ = store.GetAllOffers()
		if len(offers) != 1 || offers[0].Status != models.OfferAccepted {
			t.Errorf("offer update did not persist: %+v", offers)
		}
	})
}

func TestPrepNotes_CategoryFilterAndStarOrder(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store Provider) {
		notes := []models.PrepNote{
			{ID: "note-1", Category: models.CategoryBehavioral, Question: "Tell me about a conflict", CreatedAt: "2024-01-01T09:00:00Z"},
			{ID: "note-2", Category: models.CategoryBehavioral, Question: "Biggest weakness", Starred: true, CreatedAt: "2024-01-02T09:00:00Z"},
			{ID: "note-3", Category: models.CategoryTechnical, Question: "Reverse a linked list", CreatedAt: "2024-01-03T09:00:00Z"},
		}
		for _, note := range notes {
			if err := store.AddPrepNote(note); err != nil {
				t.Fatalf("AddPrepNote failed: %v", err)
			}
		}

		behavioral, err := store.GetPrepNotes(models.CategoryBehavioral)
		if err != nil {
			t.Fatalf("GetPrepNotes failed: %v", err)
		}
		if len(behavioral) != 2 {
			t.Fatalf("expected 2 behavioral notes, got %d", len(behavioral))
		}
		// Starred notes sort first.
		if behavioral[0].ID != "note-2" {
			t.Errorf("expected starred note first, got %s", behavioral[0].ID)
		}

		all, _ := store.GetPrepNotes("")
		if len(all) != 3 {
			t.Errorf("expected 3 notes with no filter, got %d", len(all))
		}
	})
}

func TestReferences_CRUD(t *testing.T) {
	forEachBackend(t, func(t *testing.T, store Provider) {
		ref := models.Reference{
			ID:        "ref-1",
			Name:      "Alex Chen",
			Company:   "Initech",
			CreatedAt: "2024-01-01T09:00:00Z",
		}
		if err := store.AddReference(ref); err != nil {
			t.Fatalf("AddReference failed: %v", err)
		}

		ref.LastContactedDate = "2024-02-01"
		if err := store.UpdateReference(ref); err != nil {
			t.Fatalf("UpdateReference failed: %v", err)
		}

		refs, err := store.GetAllReferences()
		if err != nil {
			t.Fatalf("GetAllReferences failed: %v", err)
		}
		if len(refs) != 1 || refs[0].LastContactedDate != "2024-02-01" {
			t.Errorf("reference update did not persist: %+v", refs)
		}

		if err := store.DeleteReference("ref-1"); err != nil {
			t.Fatalf("DeleteReference failed: %v", err)
		}
		refs, _ = store.GetAllReferences()
		if len(refs) != 0 {
			t.Errorf("deleted reference still listed: %+v", refs)
		}
	})
}
