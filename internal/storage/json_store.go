package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/julianstephens/joblit/internal/models"
)

type jsonFile struct {
	Version      int                           `json:"version"`
	Settings     models.Settings               `json:"settings"`
	Applications map[string]models.Application `json:"applications"`
	Events       map[string]models.Event       `json:"events"`
	Offers       map[string]models.Offer       `json:"offers"`
	References   map[string]models.Reference   `json:"references"`
	PrepNotes    map[string]models.PrepNote    `json:"prep_notes"`
}

// JSONStore keeps everything in a single pretty-printed JSON file. It exists
// for debuggability and for tests; the SQLite store is the default.
type JSONStore struct {
	path  string
	store *jsonFile
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func newJSONFile() *jsonFile {
	return &jsonFile{
		Version:      1,
		Settings:     DefaultSettings(),
		Applications: make(map[string]models.Application),
		Events:       make(map[string]models.Event),
		Offers:       make(map[string]models.Offer),
		References:   make(map[string]models.Reference),
		PrepNotes:    make(map[string]models.PrepNote),
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = newJSONFile()
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'joblit init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &jsonFile{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure maps are initialized
	if s.store.Applications == nil {
		s.store.Applications = make(map[string]models.Application)
	}
	if s.store.Events == nil {
		s.store.Events = make(map[string]models.Event)
	}
	if s.store.Offers == nil {
		s.store.Offers = make(map[string]models.Offer)
	}
	if s.store.References == nil {
		s.store.References = make(map[string]models.Reference)
	}
	if s.store.PrepNotes == nil {
		s.store.PrepNotes = make(map[string]models.PrepNote)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) loaded() error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if err := s.loaded(); err != nil {
		return models.Settings{}, err
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Settings = settings
	return s.save()
}

// Applications

func (s *JSONStore) AddApplication(app models.Application) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Applications[app.ID] = app
	return s.save()
}

func (s *JSONStore) GetApplication(id string) (models.Application, error) {
	if err := s.loaded(); err != nil {
		return models.Application{}, err
	}
	app, ok := s.store.Applications[id]
	if !ok || app.DeletedAt != nil {
		return models.Application{}, fmt.Errorf("application not found: %s", id)
	}
	return app, nil
}

func (s *JSONStore) GetAllApplications() ([]models.Application, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	apps := make([]models.Application, 0, len(s.store.Applications))
	for _, app := range s.store.Applications {
		if app.DeletedAt == nil {
			apps = append(apps, app)
		}
	}
	sort.Slice(apps, func(i, j int) bool {
		if apps[i].AppliedDate != apps[j].AppliedDate {
			return apps[i].AppliedDate > apps[j].AppliedDate
		}
		return apps[i].Company < apps[j].Company
	})
	return apps, nil
}

func (s *JSONStore) GetAllApplicationsIncludingDeleted() ([]models.Application, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	apps := make([]models.Application, 0, len(s.store.Applications))
	for _, app := range s.store.Applications {
		apps = append(apps, app)
	}
	sort.Slice(apps, func(i, j int) bool {
		if apps[i].AppliedDate != apps[j].AppliedDate {
			return apps[i].AppliedDate > apps[j].AppliedDate
		}
		return apps[i].Company < apps[j].Company
	})
	return apps, nil
}

func (s *JSONStore) UpdateApplication(app models.Application) error {
	if err := s.loaded(); err != nil {
		return err
	}
	existing, ok := s.store.Applications[app.ID]
	if !ok || existing.DeletedAt != nil {
		return fmt.Errorf("application not found: %s", app.ID)
	}
	s.store.Applications[app.ID] = app
	return s.save()
}

func (s *JSONStore) DeleteApplication(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	app, ok := s.store.Applications[id]
	if !ok || app.DeletedAt != nil {
		return fmt.Errorf("application not found: %s", id)
	}
	now := time.Now().Format(time.RFC3339)
	app.DeletedAt = &now
	s.store.Applications[id] = app
	return s.save()
}

func (s *JSONStore) RestoreApplication(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	app, ok := s.store.Applications[id]
	if !ok || app.DeletedAt == nil {
		return fmt.Errorf("no deleted application found: %s", id)
	}
	app.DeletedAt = nil
	s.store.Applications[id] = app
	return s.save()
}

// Events

func (s *JSONStore) AddEvent(event models.Event) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Events[event.ID] = event
	return s.save()
}

func (s *JSONStore) GetEvent(id string) (models.Event, error) {
	if err := s.loaded(); err != nil {
		return models.Event{}, err
	}
	event, ok := s.store.Events[id]
	if !ok || event.DeletedAt != nil {
		return models.Event{}, fmt.Errorf("event not found: %s", id)
	}
	return event, nil
}

func (s *JSONStore) GetAllEvents() ([]models.Event, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	events := make([]models.Event, 0, len(s.store.Events))
	for _, event := range s.store.Events {
		if event.DeletedAt == nil {
			events = append(events, event)
		}
	}
	sortEvents(events)
	return events, nil
}

func (s *JSONStore) GetEventsForApplication(appID string) ([]models.Event, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	var events []models.Event
	for _, event := range s.store.Events {
		if event.DeletedAt == nil && event.ApplicationID == appID {
			events = append(events, event)
		}
	}
	sortEvents(events)
	return events, nil
}

func sortEvents(events []models.Event) {
	sort.Slice(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		return events[i].Time < events[j].Time
	})
}

func (s *JSONStore) UpdateEvent(event models.Event) error {
	if err := s.loaded(); err != nil {
		return err
	}
	existing, ok := s.store.Events[event.ID]
	if !ok || existing.DeletedAt != nil {
		return fmt.Errorf("event not found: %s", event.ID)
	}
	s.store.Events[event.ID] = event
	return s.save()
}

func (s *JSONStore) DeleteEvent(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	event, ok := s.store.Events[id]
	if !ok || event.DeletedAt != nil {
		return fmt.Errorf("event not found: %s", id)
	}
	now := time.Now().Format(time.RFC3339)
	event.DeletedAt = &now
	s.store.Events[id] = event
	return s.save()
}

// Offers

func (s *JSONStore) AddOffer(offer models.Offer) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Offers[offer.ID] = offer
	return s.save()
}

func (s *JSONStore) GetAllOffers() ([]models.Offer, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	offers := make([]models.Offer, 0, len(s.store.Offers))
	for _, offer := range s.store.Offers {
		if offer.DeletedAt == nil {
			offers = append(offers, offer)
		}
	}
	sort.Slice(offers, func(i, j int) bool { return offers[i].CreatedAt < offers[j].CreatedAt })
	return offers, nil
}

func (s *JSONStore) GetOffersForApplication(appID string) ([]models.Offer, error) {
	offers, err := s.GetAllOffers()
	if err != nil {
		return nil, err
	}
	filtered := offers[:0]
	for _, offer := range offers {
		if offer.ApplicationID == appID {
			filtered = append(filtered, offer)
		}
	}
	return filtered, nil
}

func (s *JSONStore) UpdateOffer(offer models.Offer) error {
	if err := s.loaded(); err != nil {
		return err
	}
	existing, ok := s.store.Offers[offer.ID]
	if !ok || existing.DeletedAt != nil {
		return fmt.Errorf("offer not found: %s", offer.ID)
	}
	s.store.Offers[offer.ID] = offer
	return s.save()
}

func (s *JSONStore) DeleteOffer(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	offer, ok := s.store.Offers[id]
	if !ok || offer.DeletedAt != nil {
		return fmt.Errorf("offer not found: %s", id)
	}
	now := time.Now().Format(time.RFC3339)
	offer.DeletedAt = &now
	s.store.Offers[id] = offer
	return s.save()
}

// References

func (s *JSONStore) AddReference(ref models.Reference) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.References[ref.ID] = ref
	return s.save()
}

func (s *JSONStore) GetAllReferences() ([]models.Reference, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	refs := make([]models.Reference, 0, len(s.store.References))
	for _, ref := range s.store.References {
		if ref.DeletedAt == nil {
			refs = append(refs, ref)
		}
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func (s *JSONStore) UpdateReference(ref models.Reference) error {
	if err := s.loaded(); err != nil {
		return err
	}
	existing, ok := s.store.References[ref.ID]
	if !ok || existing.DeletedAt != nil {
		return fmt.Errorf("reference not found: %s", ref.ID)
	}
	s.store.References[ref.ID] = ref
	return s.save()
}

func (s *JSONStore) DeleteReference(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	ref, ok := s.store.References[id]
	if !ok || ref.DeletedAt != nil {
		return fmt.Errorf("reference not found: %s", id)
	}
	now := time.Now().Format(time.RFC3339)
	ref.DeletedAt = &now
	s.store.References[id] = ref
	return s.save()
}

// Prep notes

func (s *JSONStore) AddPrepNote(note models.PrepNote) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.PrepNotes[note.ID] = note
	return s.save()
}

func (s *JSONStore) GetPrepNotes(category models.EventCategory) ([]models.PrepNote, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	var notes []models.PrepNote
	for _, note := range s.store.PrepNotes {
		if note.DeletedAt != nil {
			continue
		}
		if category != "" && note.Category != category {
			continue
		}
		notes = append(notes, note)
	}
	sort.Slice(notes, func(i, j int) bool {
		if notes[i].Starred != notes[j].Starred {
			return notes[i].Starred
		}
		return notes[i].CreatedAt < notes[j].CreatedAt
	})
	return notes, nil
}

func (s *JSONStore) UpdatePrepNote(note models.PrepNote) error {
	if err := s.loaded(); err != nil {
		return err
	}
	existing, ok := s.store.PrepNotes[note.ID]
	if !ok || existing.DeletedAt != nil {
		return fmt.Errorf("prep note not found: %s", note.ID)
	}
	s.store.PrepNotes[note.ID] = note
	return s.save()
}

func (s *JSONStore) DeletePrepNote(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	note, ok := s.store.PrepNotes[id]
	if !ok || note.DeletedAt != nil {
		return fmt.Errorf("prep note not found: %s", id)
	}
	now := time.Now().Format(time.RFC3339)
	note.DeletedAt = &now
	s.store.PrepNotes[id] = note
	return s.save()
}
