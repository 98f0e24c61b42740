package storage

import (
	"github.com/julianstephens/joblit/internal/constants"
	"github.com/julianstephens/joblit/internal/models"
	"github.com/julianstephens/joblit/internal/planner"
	"github.com/julianstephens/joblit/internal/utils"
)

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Applications
	AddApplication(models.Application) error
	GetApplication(id string) (models.Application, error)
	GetAllApplications() ([]models.Application, error)
	GetAllApplicationsIncludingDeleted() ([]models.Application, error)
	UpdateApplication(models.Application) error
	DeleteApplication(id string) error
	RestoreApplication(id string) error

	// Events
	AddEvent(models.Event) error
	GetEvent(id string) (models.Event, error)
	GetAllEvents() ([]models.Event, error)
	GetEventsForApplication(appID string) ([]models.Event, error)
	UpdateEvent(models.Event) error
	DeleteEvent(id string) error

	// Offers
	AddOffer(models.Offer) error
	GetOffersForApplication(appID string) ([]models.Offer, error)
	GetAllOffers() ([]models.Offer, error)
	UpdateOffer(models.Offer) error
	DeleteOffer(id string) error

	// References
	AddReference(models.Reference) error
	GetAllReferences() ([]models.Reference, error)
	UpdateReference(models.Reference) error
	DeleteReference(id string) error

	// Prep notes
	AddPrepNote(models.PrepNote) error
	GetPrepNotes(category models.EventCategory) ([]models.PrepNote, error)
	UpdatePrepNote(models.PrepNote) error
	DeletePrepNote(id string) error

	// Utils
	GetConfigPath() string
}

// DefaultSettings returns the settings a freshly initialized store starts
// with: an 08:00 day start, a nine-hour day, the canonical block order, and
// the documented reminder offsets.
func DefaultSettings() models.Settings {
	start, _ := utils.ParseTimeToMinutes(constants.DefaultDayStart)
	return models.Settings{
		DayStart:                   constants.DefaultDayStart,
		DayEnd:                     utils.FormatMinutes(start + constants.DefaultDayLengthMin),
		BlockOrder:                 planner.DefaultBlockOrder(),
		Timezone:                   constants.DefaultTimezone,
		DaysAfterApplication:       constants.DefaultDaysAfterApplication,
		DaysAfterInterview:         constants.DefaultDaysAfterInterview,
		DaysBetweenFollowUps:       constants.DefaultDaysBetweenFollowUps,
		DaysAfterInterviewThankYou: constants.DefaultDaysAfterInterviewThankYou,
		HomeReminderCount:          constants.DefaultHomeReminderCount,
	}
}
