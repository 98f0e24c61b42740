package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/julianstephens/joblit/internal/models"
)

const applicationColumns = `id, company, role, status, applied_date, last_follow_up_date,
       url, salary_range, notes, created_at, updated_at, deleted_at`

func scanApplication(row interface{ Scan(...any) error }) (models.Application, error) {
	var a models.Application
	var status string
	var deletedAt sql.NullString

	err := row.Scan(
		&a.ID, &a.Company, &a.Role, &status, &a.AppliedDate, &a.LastFollowUpDate,
		&a.URL, &a.SalaryRange, &a.Notes, &a.CreatedAt, &a.UpdatedAt, &deletedAt,
	)
	if err != nil {
		return models.Application{}, err
	}

	a.Status = models.ApplicationStatus(status)
	if deletedAt.Valid {
		a.DeletedAt = &deletedAt.String
	}
	return a, nil
}

func (s *SQLiteStore) AddApplication(app models.Application) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO applications (`+applicationColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		app.ID, app.Company, app.Role, string(app.Status), app.AppliedDate, app.LastFollowUpDate,
		app.URL, app.SalaryRange, app.Notes, app.CreatedAt, app.UpdatedAt, app.DeletedAt,
	)
	return err
}

func (s *SQLiteStore) GetApplication(id string) (models.Application, error) {
	row := s.db.QueryRow(`
		SELECT `+applicationColumns+` FROM applications
		WHERE id = ? AND deleted_at IS NULL`, id)

	app, err := scanApplication(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Application{}, fmt.Errorf("application not found: %s", id)
		}
		return models.Application{}, err
	}
	return app, nil
}

func (s *SQLiteStore) GetAllApplications() ([]models.Application, error) {
	rows, err := s.db.Query(`
		SELECT ` + applicationColumns + ` FROM applications
		WHERE deleted_at IS NULL ORDER BY applied_date DESC, company`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []models.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

// GetAllApplicationsIncludingDeleted also returns soft-deleted rows, for the
// views that offer restore.
func (s *SQLiteStore) GetAllApplicationsIncludingDeleted() ([]models.Application, error) {
	rows, err := s.db.Query(`
		SELECT ` + applicationColumns + ` FROM applications
		ORDER BY applied_date DESC, company`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []models.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (s *SQLiteStore) UpdateApplication(app models.Application) error {
	res, err := s.db.Exec(`
		UPDATE applications
		SET company = ?, role = ?, status = ?, applied_date = ?, last_follow_up_date = ?,
		    url = ?, salary_range = ?, notes = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		app.Company, app.Role, string(app.Status), app.AppliedDate, app.LastFollowUpDate,
		app.URL, app.SalaryRange, app.Notes, app.UpdatedAt, app.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("application not found: %s", app.ID)
	}
	return nil
}

func (s *SQLiteStore) DeleteApplication(id string) error {
	now := time.Now().Format(time.RFC3339)
	res, err := s.db.Exec(`
		UPDATE applications SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`, now, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("application not found: %s", id)
	}
	return nil
}

func (s *SQLiteStore) RestoreApplication(id string) error {
	res, err := s.db.Exec(`
		UPDATE applications SET deleted_at = NULL WHERE id = ? AND deleted_at IS NOT NULL`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("no deleted application found: %s", id)
	}
	return nil
}
