package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/joblit/internal/migration"
	"github.com/julianstephens/joblit/internal/models"
	"github.com/julianstephens/joblit/migrations"
)

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize default settings if not present
	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'joblit init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return s.migrationRunner().ValidateVersion()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

// GetDB exposes the underlying connection for diagnostics.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}

// SchemaStatus returns the applied and latest schema versions.
func (s *SQLiteStore) SchemaStatus() (current, latest int, err error) {
	runner := s.migrationRunner()
	if current, err = runner.CurrentVersion(); err != nil {
		return 0, 0, err
	}
	migs, err := runner.ReadMigrations()
	if err != nil {
		return 0, 0, err
	}
	if len(migs) > 0 {
		latest = migs[len(migs)-1].Version
	}
	return current, latest, nil
}

func (s *SQLiteStore) migrationRunner() *migration.Runner {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		// The embedded filesystem always contains sqlite/; reaching this
		// means the binary itself is broken.
		panic(fmt.Sprintf("embedded migrations missing: %v", err))
	}
	return migration.NewRunner(s.db, subFS)
}

func (s *SQLiteStore) runMigrations() error {
	_, err := s.migrationRunner().Apply(func(msg string) {
		fmt.Println(msg)
	})
	return err
}

func (s *SQLiteStore) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case "day_start":
			settings.DayStart = value
		case "day_end":
			settings.DayEnd = value
		case "block_order":
			if err := json.Unmarshal([]byte(value), &settings.BlockOrder); err != nil {
				return models.Settings{}, fmt.Errorf("parsing block_order: %w", err)
			}
		case "timezone":
			settings.Timezone = value
		case "days_after_application":
			if settings.DaysAfterApplication, err = strconv.Atoi(value); err != nil {
				return models.Settings{}, fmt.Errorf("parsing days_after_application: %w", err)
			}
		case "days_after_interview":
			if settings.DaysAfterInterview, err = strconv.Atoi(value); err != nil {
				return models.Settings{}, fmt.Errorf("parsing days_after_interview: %w", err)
			}
		case "days_between_follow_ups":
			if settings.DaysBetweenFollowUps, err = strconv.Atoi(value); err != nil {
				return models.Settings{}, fmt.Errorf("parsing days_between_follow_ups: %w", err)
			}
		case "days_after_interview_thank_you":
			if settings.DaysAfterInterviewThankYou, err = strconv.Atoi(value); err != nil {
				return models.Settings{}, fmt.Errorf("parsing days_after_interview_thank_you: %w", err)
			}
		case "home_reminder_count":
			if settings.HomeReminderCount, err = strconv.Atoi(value); err != nil {
				return models.Settings{}, fmt.Errorf("parsing home_reminder_count: %w", err)
			}
		}
		count++
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings models.Settings) error {
	blockOrder, err := json.Marshal(settings.BlockOrder)
	if err != nil {
		return fmt.Errorf("failed to serialize block order: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	pairs := [][2]string{
		{"day_start", settings.DayStart},
		{"day_end", settings.DayEnd},
		{"block_order", string(blockOrder)},
		{"timezone", settings.Timezone},
		{"days_after_application", strconv.Itoa(settings.DaysAfterApplication)},
		{"days_after_interview", strconv.Itoa(settings.DaysAfterInterview)},
		{"days_between_follow_ups", strconv.Itoa(settings.DaysBetweenFollowUps)},
		{"days_after_interview_thank_you", strconv.Itoa(settings.DaysAfterInterviewThankYou)},
		{"home_reminder_count", strconv.Itoa(settings.HomeReminderCount)},
	}
	for _, p := range pairs {
		if _, err := stmt.Exec(p[0], p[1]); err != nil {
			return err
		}
	}

	return tx.Commit()
}
