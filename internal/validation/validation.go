package validation

import (
	"fmt"
	"sort"

	"github.com/julianstephens/joblit/internal/models"
	"github.com/julianstephens/joblit/internal/planner"
	"github.com/julianstephens/joblit/internal/utils"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictInvalidTime          ConflictType = "invalid_time"
	ConflictInvalidDate          ConflictType = "invalid_date"
	ConflictUnknownBlockID       ConflictType = "unknown_block_id"
	ConflictMissingFixedBlock    ConflictType = "missing_fixed_block"
	ConflictFixedBlockMoved      ConflictType = "fixed_block_moved"
	ConflictNegativeOffset       ConflictType = "negative_offset"
	ConflictInvalidStatus        ConflictType = "invalid_status"
	ConflictDanglingEvent        ConflictType = "dangling_event"
	ConflictDuplicateApplication ConflictType = "duplicate_application"
	ConflictInvalidTimezone      ConflictType = "invalid_timezone"
)

// Conflict represents a detected problem in settings or records
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // IDs or names involved
}

// Result contains all detected conflicts
type Result struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (r *Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (r *Result) FormatReport() string {
	if !r.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range r.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator checks settings and records for conflicts
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateSettings checks the schedule and reminder settings. None of these
// conflicts are fatal at runtime (the planner degrades to less output), but
// they all mean some part of the planner is silently producing nothing.
func (v *Validator) ValidateSettings(settings models.Settings) Result {
	result := Result{Conflicts: []Conflict{}}

	if !utils.ValidateTimeFormat(settings.DayStart) {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidTime,
			Description: fmt.Sprintf("Day start %q is not a valid HH:MM time; the schedule preview will be empty", settings.DayStart),
		})
	}
	if !utils.ValidateTimeFormat(settings.DayEnd) {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidTime,
			Description: fmt.Sprintf("Day end %q is not a valid HH:MM time; the schedule preview will be empty", settings.DayEnd),
		})
	}
	if !utils.ValidateTimezone(settings.Timezone) {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidTimezone,
			Description: fmt.Sprintf("Timezone %q is not a valid IANA timezone name", settings.Timezone),
		})
	}

	defaultOrder := planner.DefaultBlockOrder()
	designated := make(map[string]int, len(defaultOrder))
	for i, id := range defaultOrder {
		designated[id] = i
	}

	seen := make(map[string]bool)
	for i, id := range settings.BlockOrder {
		def, ok := planner.Definition(id)
		if !ok {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnknownBlockID,
				Description: fmt.Sprintf("Block order references unknown block id %q; it will be skipped", id),
				Items:       []string{id},
			})
		} else if def.Fixed && designated[id] != i {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictFixedBlockMoved,
				Description: fmt.Sprintf("Fixed block %q must stay at position %d in the block order, found at %d", id, designated[id]+1, i+1),
				Items:       []string{id},
			})
		}
		seen[id] = true
	}
	for _, def := range planner.Definitions() {
		if def.Fixed && !seen[def.ID] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictMissingFixedBlock,
				Description: fmt.Sprintf("Fixed block %q is missing from the block order", def.ID),
				Items:       []string{def.ID},
			})
		}
	}

	// Fixed order so the report is stable across runs.
	offsets := []struct {
		name  string
		value int
	}{
		{"days after application", settings.DaysAfterApplication},
		{"days after interview", settings.DaysAfterInterview},
		{"days between follow-ups", settings.DaysBetweenFollowUps},
		{"days after interview thank-you", settings.DaysAfterInterviewThankYou},
	}
	for _, o := range offsets {
		if o.value < 0 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictNegativeOffset,
				Description: fmt.Sprintf("Reminder offset %s is negative (%d)", o.name, o.value),
			})
		}
	}

	return result
}

// ValidateRecords checks applications and events for problems that would
// silently drop reminders.
func (v *Validator) ValidateRecords(apps []models.Application, events []models.Event) Result {
	result := Result{Conflicts: []Conflict{}}

	appIDs := make(map[string]bool)
	byCompanyRole := make(map[string][]string)
	for _, app := range apps {
		if app.DeletedAt != nil {
			continue
		}
		appIDs[app.ID] = true

		if !models.ValidStatus(app.Status) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidStatus,
				Description: fmt.Sprintf("Application %s (%s) has unknown status %q", app.ID, app.Company, app.Status),
				Items:       []string{app.ID},
			})
		}
		if !utils.ValidateDateFormat(app.AppliedDate) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDate,
				Description: fmt.Sprintf("Application %s (%s) has invalid applied date %q; no reminders will be produced for it", app.ID, app.Company, app.AppliedDate),
				Items:       []string{app.ID},
			})
		}
		if app.LastFollowUpDate != "" && !utils.ValidateDateFormat(app.LastFollowUpDate) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDate,
				Description: fmt.Sprintf("Application %s (%s) has invalid last follow-up date %q", app.ID, app.Company, app.LastFollowUpDate),
				Items:       []string{app.ID},
			})
		}

		key := app.Company + "|" + app.Role
		byCompanyRole[key] = append(byCompanyRole[key], app.ID)
	}

	dupKeys := make([]string, 0, len(byCompanyRole))
	for key := range byCompanyRole {
		dupKeys = append(dupKeys, key)
	}
	sort.Strings(dupKeys)
	for _, key := range dupKeys {
		ids := byCompanyRole[key]
		if len(ids) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateApplication,
				Description: fmt.Sprintf("Multiple active applications for %q (IDs: %v)", key, ids),
				Items:       ids,
			})
		}
	}

	for _, event := range events {
		if event.DeletedAt != nil {
			continue
		}
		if !utils.ValidateDateFormat(event.Date) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDate,
				Description: fmt.Sprintf("Event %s has invalid date %q", event.ID, event.Date),
				Items:       []string{event.ID},
			})
		}
		if event.ApplicationID != "" && !appIDs[event.ApplicationID] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDanglingEvent,
				Description: fmt.Sprintf("Event %s references missing application %s", event.ID, event.ApplicationID),
				Items:       []string{event.ID, event.ApplicationID},
			})
		}
	}

	return result
}
