package utils

import "testing"

func TestParseTimeToMinutes(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:00", 480, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"8:00am", 0, true},
		{"noon", 0, true},
		{"", 0, true},
	}

	for _, tc := range cases {
		got, err := ParseTimeToMinutes(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseTimeToMinutes(%q): expected error, got %d", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeToMinutes(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseTimeToMinutes(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeMinutes(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{0, 0},
		{1439, 1439},
		{1440, 0},
		{1500, 60},
		{-60, 1380},
		{-1440, 0},
		// Large shifts wrap more than once.
		{3000, 120},
		{-3000, 1320},
	}

	for _, tc := range cases {
		if got := NormalizeMinutes(tc.in); got != tc.want {
			t.Errorf("NormalizeMinutes(%d) = %d, want %d", tc.in, got, tc.want)
		}
		// Normalizing twice changes nothing.
		if got := NormalizeMinutes(NormalizeMinutes(tc.in)); got != tc.want {
			t.Errorf("NormalizeMinutes is not idempotent for %d", tc.in)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{480, "08:00"},
		{1439, "23:59"},
		// Out-of-range values normalize, never "24:xx" or negative.
		{1440, "00:00"},
		{1500, "01:00"},
		{-60, "23:00"},
	}

	for _, tc := range cases {
		if got := FormatMinutes(tc.in); got != tc.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAddDays(t *testing.T) {
	got, err := AddDays("2024-01-01", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2024-01-08" {
		t.Errorf("AddDays(2024-01-01, 7) = %s, want 2024-01-08", got)
	}

	// Month and year boundaries.
	got, _ = AddDays("2024-12-30", 3)
	if got != "2025-01-02" {
		t.Errorf("AddDays(2024-12-30, 3) = %s, want 2025-01-02", got)
	}

	// Leap day.
	got, _ = AddDays("2024-02-28", 1)
	if got != "2024-02-29" {
		t.Errorf("AddDays(2024-02-28, 1) = %s, want 2024-02-29", got)
	}

	if _, err := AddDays("yesterday", 1); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestValidateDateFormat(t *testing.T) {
	valid := []string{"2024-01-01", "1999-12-31"}
	invalid := []string{"2024-1-1", "01/01/2024", "2024-13-01", "today", ""}

	for _, s := range valid {
		if !ValidateDateFormat(s) {
			t.Errorf("ValidateDateFormat(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if ValidateDateFormat(s) {
			t.Errorf("ValidateDateFormat(%q) = true, want false", s)
		}
	}
}

func TestValidateTimezone(t *testing.T) {
	for _, s := range []string{"", "Local", "UTC", "America/New_York"} {
		if !ValidateTimezone(s) {
			t.Errorf("ValidateTimezone(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"Mars/Olympus_Mons", "Not A Zone"} {
		if ValidateTimezone(s) {
			t.Errorf("ValidateTimezone(%q) = true, want false", s)
		}
	}
}

func TestGetTodayInTimezone(t *testing.T) {
	got, err := GetTodayInTimezone("UTC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ValidateDateFormat(got) {
		t.Errorf("GetTodayInTimezone returned a malformed date: %q", got)
	}

	if _, err := GetTodayInTimezone("Nowhere/Special"); err == nil {
		t.Error("expected error for unknown timezone")
	}
}
