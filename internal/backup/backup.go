// Package backup snapshots the storage file into a rotated backups
// directory next to it. Both backends are covered: SQLite files are
// snapshotted through VACUUM INTO, JSON files are verified and copied.
package backup

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/joblit/internal/logger"
)

const (
	// MaxBackups is how many snapshots rotation keeps.
	MaxBackups = 14
	// DirName is the backup directory name, created beside the storage file.
	DirName = "backups"
	// FilePrefix marks backup files so rotation never touches anything else.
	FilePrefix = "joblit-"

	timestampLayout = "20060102-150405"
)

// Info describes one backup file.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager snapshots and restores a single storage file.
type Manager struct {
	srcPath   string
	backupDir string
	ext       string
}

// NewManager creates a manager for the given storage file. The extension
// decides the snapshot strategy, matching the store selection in main.
func NewManager(srcPath string) *Manager {
	ext := filepath.Ext(srcPath)
	if ext == "" {
		ext = ".db"
	}
	return &Manager{
		srcPath:   srcPath,
		backupDir: filepath.Join(filepath.Dir(srcPath), DirName),
		ext:       ext,
	}
}

// Dir returns the backup directory path.
func (m *Manager) Dir() string {
	return m.backupDir
}

// CreateBackup snapshots the storage file and rotates old backups. It
// returns the path of the new backup.
func (m *Manager) CreateBackup() (string, error) {
	return m.createBackup(false)
}

// createBackup does the work; skipRotation keeps the pre-restore safety
// snapshot from deleting the very backup being restored.
func (m *Manager) createBackup(skipRotation bool) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}
	if _, err := os.Stat(m.srcPath); os.IsNotExist(err) {
		return "", fmt.Errorf("storage file does not exist: %s", m.srcPath)
	}

	backupPath, err := m.nextBackupPath(time.Now())
	if err != nil {
		return "", err
	}

	if err := m.snapshot(backupPath); err != nil {
		return "", fmt.Errorf("failed to snapshot storage file: %w", err)
	}

	if !skipRotation {
		if err := m.rotate(); err != nil {
			logger.Warn("Failed to rotate old backups", "error", err)
		}
	}

	return backupPath, nil
}

// nextBackupPath picks an unused timestamped filename, appending a counter
// when two backups land within the same second.
func (m *Manager) nextBackupPath(now time.Time) (string, error) {
	stamp := now.Format(timestampLayout)
	path := filepath.Join(m.backupDir, FilePrefix+stamp+m.ext)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path, nil
	}
	for counter := 1; counter <= 100; counter++ {
		path = filepath.Join(m.backupDir, fmt.Sprintf("%s%s-%d%s", FilePrefix, stamp, counter, m.ext))
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
	}
	return "", fmt.Errorf("failed to generate unique backup filename")
}

// snapshot writes a consistent copy of the storage file to destPath.
func (m *Manager) snapshot(destPath string) error {
	if m.ext == ".json" {
		if err := verifyJSON(m.srcPath); err != nil {
			return fmt.Errorf("storage file is not valid JSON: %w", err)
		}
		return copyFile(m.srcPath, destPath)
	}

	db, err := sql.Open("sqlite", m.srcPath+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open storage file: %w", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
		return fmt.Errorf("storage file appears to be corrupted: %w", err)
	}

	// VACUUM INTO produces a clean single-file copy even with the store
	// open elsewhere. Fall back to a plain copy when unavailable.
	if _, err := db.Exec("VACUUM INTO ?", destPath); err != nil {
		return copyFile(m.srcPath, destPath)
	}
	return nil
}

// ListBackups returns the available backups, newest first.
func (m *Manager) ListBackups() ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if os.IsNotExist(err) {
		return []Info{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	backups := []Info{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, FilePrefix) || !strings.HasSuffix(name, m.ext) {
			continue
		}

		stamp := strings.TrimSuffix(strings.TrimPrefix(name, FilePrefix), m.ext)
		// Strip a same-second counter suffix.
		if len(stamp) > len(timestampLayout) {
			stamp = stamp[:len(timestampLayout)]
		}
		timestamp, err := time.Parse(timestampLayout, stamp)
		if err != nil {
			continue
		}

		path := filepath.Join(m.backupDir, name)
		fi, err := os.Stat(path)
		if err != nil {
			continue
		}
		backups = append(backups, Info{Path: path, Timestamp: timestamp, Size: fi.Size()})
	}

	sort.Slice(backups, func(i, j int) bool {
		if backups[i].Timestamp.Equal(backups[j].Timestamp) {
			return backups[i].Path > backups[j].Path
		}
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// rotate removes the oldest backups beyond the retention limit.
func (m *Manager) rotate() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}
	for i := MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// RestoreBackup replaces the storage file with the given backup. The
// current file is snapshotted first, and the swap is an atomic rename.
func (m *Manager) RestoreBackup(backupPath string) error {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file does not exist: %s", backupPath)
	}
	if err := m.verify(backupPath); err != nil {
		return fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	if _, err := os.Stat(m.srcPath); err == nil {
		safety, err := m.createBackup(true)
		if err != nil {
			return fmt.Errorf("failed to back up current storage before restore: %w", err)
		}
		logger.Info("Backed up current storage before restore", "backup", filepath.Base(safety))
	}

	tempPath := m.srcPath + ".restore.tmp"
	if err := copyFile(backupPath, tempPath); err != nil {
		return fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tempPath, m.srcPath); err != nil {
		if removeErr := os.Remove(tempPath); removeErr != nil {
			logger.Warn("Failed to remove temporary restore file", "path", tempPath, "error", removeErr)
		}
		return fmt.Errorf("failed to restore storage file: %w", err)
	}
	return nil
}

// verify checks that a backup file is a readable storage file.
func (m *Manager) verify(path string) error {
	if m.ext == ".json" {
		return verifyJSON(path)
	}

	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return err
	}
	defer db.Close()

	var count int
	return db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count)
}

func verifyJSON(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if !json.Valid(data) {
		return fmt.Errorf("not valid JSON: %s", path)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.ReadFrom(in); err != nil {
		return err
	}
	return out.Sync()
}
