package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/joblit/internal/models"
	"github.com/julianstephens/joblit/internal/utils"
)

func settingsFormFrom(s models.Settings) *SettingsFormModel {
	return &SettingsFormModel{
		DayStart:                   s.DayStart,
		DayEnd:                     s.DayEnd,
		Timezone:                   s.Timezone,
		DaysAfterApplication:       strconv.Itoa(s.DaysAfterApplication),
		DaysAfterInterview:         strconv.Itoa(s.DaysAfterInterview),
		DaysBetweenFollowUps:       strconv.Itoa(s.DaysBetweenFollowUps),
		DaysAfterInterviewThankYou: strconv.Itoa(s.DaysAfterInterviewThankYou),
		HomeReminderCount:          strconv.Itoa(s.HomeReminderCount),
	}
}

func validateClockTime(s string) error {
	if !utils.ValidateTimeFormat(s) {
		return fmt.Errorf("use HH:MM, e.g. 08:00")
	}
	return nil
}

func validateNonNegativeDays(s string) error {
	i, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	if i < 0 {
		return fmt.Errorf("must be zero or more days")
	}
	return nil
}

// NewSettingsForm creates the form for editing planner settings.
func NewSettingsForm(fm *SettingsFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Day start (HH:MM)").
				Value(&fm.DayStart).
				Validate(validateClockTime),
			huh.NewInput().
				Title("Day end (HH:MM)").
				Value(&fm.DayEnd).
				Validate(validateClockTime),
			huh.NewInput().
				Title("Timezone").
				Description("IANA name, or 'Local'").
				Value(&fm.Timezone).
				Validate(func(s string) error {
					if !utils.ValidateTimezone(s) {
						return fmt.Errorf("unknown timezone")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Days after application").
				Description("Before the first follow-up reminder").
				Value(&fm.DaysAfterApplication).
				Validate(validateNonNegativeDays),
			huh.NewInput().
				Title("Days after interview").
				Value(&fm.DaysAfterInterview).
				Validate(validateNonNegativeDays),
			huh.NewInput().
				Title("Days between follow-ups").
				Value(&fm.DaysBetweenFollowUps).
				Validate(validateNonNegativeDays),
			huh.NewInput().
				Title("Days after interview for thank-you").
				Value(&fm.DaysAfterInterviewThankYou).
				Validate(validateNonNegativeDays),
			huh.NewInput().
				Title("Home reminder count").
				Value(&fm.HomeReminderCount).
				Validate(validateNonNegativeDays),
		),
	).WithTheme(huh.ThemeDracula())
}

// applySettingsForm copies a completed form back onto the settings. Form
// validation already guaranteed the numeric fields parse.
func applySettingsForm(fm *SettingsFormModel, s models.Settings) models.Settings {
	s.DayStart = fm.DayStart
	s.DayEnd = fm.DayEnd
	s.Timezone = fm.Timezone
	s.DaysAfterApplication, _ = strconv.Atoi(fm.DaysAfterApplication)
	s.DaysAfterInterview, _ = strconv.Atoi(fm.DaysAfterInterview)
	s.DaysBetweenFollowUps, _ = strconv.Atoi(fm.DaysBetweenFollowUps)
	s.DaysAfterInterviewThankYou, _ = strconv.Atoi(fm.DaysAfterInterviewThankYou)
	s.HomeReminderCount, _ = strconv.Atoi(fm.HomeReminderCount)
	return s
}
