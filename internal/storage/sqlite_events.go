package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/julianstephens/joblit/internal/models"
)

const eventColumns = `id, application_id, kind, category, date, time, location,
       notes, thank_you_sent_date, created_at, deleted_at`

func scanEvent(row interface{ Scan(...any) error }) (models.Event, error) {
	var e models.Event
	var kind, category string
	var deletedAt sql.NullString

	err := row.Scan(
		&e.ID, &e.ApplicationID, &kind, &category, &e.Date, &e.Time, &e.Location,
		&e.Notes, &e.ThankYouSentDate, &e.CreatedAt, &deletedAt,
	)
	if err != nil {
		return models.Event{}, err
	}

	e.Kind = models.EventKind(kind)
	e.Category = models.EventCategory(category)
	if deletedAt.Valid {
		e.DeletedAt = &deletedAt.String
	}
	return e, nil
}

func (s *SQLiteStore) AddEvent(event models.Event) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO events (`+eventColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		event.ID, event.ApplicationID, string(event.Kind), string(event.Category),
		event.Date, event.Time, event.Location, event.Notes,
		event.ThankYouSentDate, event.CreatedAt, event.DeletedAt,
	)
	return err
}

func (s *SQLiteStore) GetEvent(id string) (models.Event, error) {
	row := s.db.QueryRow(`
		SELECT `+eventColumns+` FROM events
		WHERE id = ? AND deleted_at IS NULL`, id)

	event, err := scanEvent(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Event{}, fmt.Errorf("event not found: %s", id)
		}
		return models.Event{}, err
	}
	return event, nil
}

func (s *SQLiteStore) GetAllEvents() ([]models.Event, error) {
	return s.queryEvents(`
		SELECT ` + eventColumns + ` FROM events
		WHERE deleted_at IS NULL ORDER BY date, time`)
}

func (s *SQLiteStore) GetEventsForApplication(appID string) ([]models.Event, error) {
	return s.queryEvents(`
		SELECT `+eventColumns+` FROM events
		WHERE application_id = ? AND deleted_at IS NULL ORDER BY date, time`, appID)
}

func (s *SQLiteStore) queryEvents(query string, args ...any) ([]models.Event, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (s *SQLiteStore) UpdateEvent(event models.Event) error {
	res, err := s.db.Exec(`
		UPDATE events
		SET application_id = ?, kind = ?, category = ?, date = ?, time = ?,
		    location = ?, notes = ?, thank_you_sent_date = ?
		WHERE id = ? AND deleted_at IS NULL`,
		event.ApplicationID, string(event.Kind), string(event.Category), event.Date, event.Time,
		event.Location, event.Notes, event.ThankYouSentDate, event.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("event not found: %s", event.ID)
	}
	return nil
}

func (s *SQLiteStore) DeleteEvent(id string) error {
	now := time.Now().Format(time.RFC3339)
	res, err := s.db.Exec(`
		UPDATE events SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`, now, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("event not found: %s", id)
	}
	return nil
}
