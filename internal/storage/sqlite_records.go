package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/julianstephens/joblit/internal/models"
)

// Offers

const offerColumns = `id, application_id, status, base_salary, bonus, equity,
       deadline, notes, created_at, deleted_at`

func scanOffer(row interface{ Scan(...any) error }) (models.Offer, error) {
	var o models.Offer
	var status string
	var deletedAt sql.NullString

	err := row.Scan(
		&o.ID, &o.ApplicationID, &status, &o.BaseSalary, &o.Bonus, &o.Equity,
		&o.Deadline, &o.Notes, &o.CreatedAt, &deletedAt,
	)
	if err != nil {
		return models.Offer{}, err
	}

	o.Status = models.OfferStatus(status)
	if deletedAt.Valid {
		o.DeletedAt = &deletedAt.String
	}
	return o, nil
}

func (s *SQLiteStore) AddOffer(offer models.Offer) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO offers (`+offerColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		offer.ID, offer.ApplicationID, string(offer.Status), offer.BaseSalary, offer.Bonus,
		offer.Equity, offer.Deadline, offer.Notes, offer.CreatedAt, offer.DeletedAt,
	)
	return err
}

func (s *SQLiteStore) GetAllOffers() ([]models.Offer, error) {
	return s.queryOffers(`
		SELECT ` + offerColumns + ` FROM offers
		WHERE deleted_at IS NULL ORDER BY created_at`)
}

func (s *SQLiteStore) GetOffersForApplication(appID string) ([]models.Offer, error) {
	return s.queryOffers(`
		SELECT `+offerColumns+` FROM offers
		WHERE application_id = ? AND deleted_at IS NULL ORDER BY created_at`, appID)
}

func (s *SQLiteStore) queryOffers(query string, args ...any) ([]models.Offer, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []models.Offer
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		offers = append(offers, offer)
	}
	return offers, rows.Err()
}

func (s *SQLiteStore) UpdateOffer(offer models.Offer) error {
	res, err := s.db.Exec(`
		UPDATE offers
		SET application_id = ?, status = ?, base_salary = ?, bonus = ?, equity = ?,
		    deadline = ?, notes = ?
		WHERE id = ? AND deleted_at IS NULL`,
		offer.ApplicationID, string(offer.Status), offer.BaseSalary, offer.Bonus, offer.Equity,
		offer.Deadline, offer.Notes, offer.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(res, "offer", offer.ID)
}

func (s *SQLiteStore) DeleteOffer(id string) error {
	now := time.Now().Format(time.RFC3339)
	res, err := s.db.Exec(`
		UPDATE offers SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`, now, id)
	if err != nil {
		return err
	}
	return requireRow(res, "offer", id)
}

// References

const referenceColumns = `id, name, relationship, company, email, phone,
       last_contacted_date, notes, created_at, deleted_at`

func scanReference(row interface{ Scan(...any) error }) (models.Reference, error) {
	var r models.Reference
	var deletedAt sql.NullString

	err := row.Scan(
		&r.ID, &r.Name, &r.Relationship, &r.Company, &r.Email, &r.Phone,
		&r.LastContactedDate, &r.Notes, &r.CreatedAt, &deletedAt,
	)
	if err != nil {
		return models.Reference{}, err
	}

	if deletedAt.Valid {
		r.DeletedAt = &deletedAt.String
	}
	return r, nil
}

func (s *SQLiteStore) AddReference(ref models.Reference) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO references_contacts (`+referenceColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ref.ID, ref.Name, ref.Relationship, ref.Company, ref.Email, ref.Phone,
		ref.LastContactedDate, ref.Notes, ref.CreatedAt, ref.DeletedAt,
	)
	return err
}

func (s *SQLiteStore) GetAllReferences() ([]models.Reference, error) {
	rows, err := s.db.Query(`
		SELECT ` + referenceColumns + ` FROM references_contacts
		WHERE deleted_at IS NULL ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []models.Reference
	for rows.Next() {
		ref, err := scanReference(rows)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

func (s *SQLiteStore) UpdateReference(ref models.Reference) error {
	res, err := s.db.Exec(`
		UPDATE references_contacts
		SET name = ?, relationship = ?, company = ?, email = ?, phone = ?,
		    last_contacted_date = ?, notes = ?
		WHERE id = ? AND deleted_at IS NULL`,
		ref.Name, ref.Relationship, ref.Company, ref.Email, ref.Phone,
		ref.LastContactedDate, ref.Notes, ref.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(res, "reference", ref.ID)
}

func (s *SQLiteStore) DeleteReference(id string) error {
	now := time.Now().Format(time.RFC3339)
	res, err := s.db.Exec(`
		UPDATE references_contacts SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`, now, id)
	if err != nil {
		return err
	}
	return requireRow(res, "reference", id)
}

// Prep notes

const prepColumns = `id, category, question, answer, starred, created_at, updated_at, deleted_at`

func scanPrepNote(row interface{ Scan(...any) error }) (models.PrepNote, error) {
	var p models.PrepNote
	var category string
	var starred bool
	var deletedAt sql.NullString

	err := row.Scan(
		&p.ID, &category, &p.Question, &p.Answer, &starred, &p.CreatedAt, &p.UpdatedAt, &deletedAt,
	)
	if err != nil {
		return models.PrepNote{}, err
	}

	p.Category = models.EventCategory(category)
	p.Starred = starred
	if deletedAt.Valid {
		p.DeletedAt = &deletedAt.String
	}
	return p, nil
}

func (s *SQLiteStore) AddPrepNote(note models.PrepNote) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO prep_notes (`+prepColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		note.ID, string(note.Category), note.Question, note.Answer, note.Starred,
		note.CreatedAt, note.UpdatedAt, note.DeletedAt,
	)
	return err
}

// GetPrepNotes returns non-deleted prep notes, optionally filtered by
// category; an empty category returns everything.
func (s *SQLiteStore) GetPrepNotes(category models.EventCategory) ([]models.PrepNote, error) {
	query := `SELECT ` + prepColumns + ` FROM prep_notes WHERE deleted_at IS NULL`
	var args []any
	if category != "" {
		query += " AND category = ?"
		args = append(args, string(category))
	}
	query += " ORDER BY starred DESC, created_at"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []models.PrepNote
	for rows.Next() {
		note, err := scanPrepNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

func (s *SQLiteStore) UpdatePrepNote(note models.PrepNote) error {
	res, err := s.db.Exec(`
		UPDATE prep_notes
		SET category = ?, question = ?, answer = ?, starred = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		string(note.Category), note.Question, note.Answer, note.Starred, note.UpdatedAt, note.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(res, "prep note", note.ID)
}

func (s *SQLiteStore) DeletePrepNote(id string) error {
	now := time.Now().Format(time.RFC3339)
	res, err := s.db.Exec(`
		UPDATE prep_notes SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`, now, id)
	if err != nil {
		return err
	}
	return requireRow(res, "prep note", id)
}

func requireRow(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s not found: %s", entity, id)
	}
	return nil
}
