package sli

import "testing"

func TestResolveWeekday(t *testing.T) {
	tests := []struct {
		date string
		want Weekday
	}{
		{"2025-11-03", Monday},
		{"2025-11-04", Tuesday},
		{"2025-11-05", Wednesday},
		{"2025-11-06", Thursday},
		{"2025-11-07", Friday},
		{"2025-11-01", Saturday},
		{"2025-11-02", Sunday},
		{"2024-02-29", Thursday},
		{"2000-01-01", Saturday},
		{"2025-02-29", WeekdayInvalid},
		{"2025-13-01", WeekdayInvalid},
		{"2025-11-3", WeekdayInvalid},
		{"", WeekdayInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			if got := ResolveWeekday(tt.date); got != tt.want {
				t.Errorf("ResolveWeekday(%q) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestWeekdays(t *testing.T) {
	days := Weekdays()
	if len(days) != 7 {
		t.Fatalf("Expected 7 weekdays, got %d", len(days))
	}

	want := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	for i, d := range days {
		if !d.Valid() {
			t.Errorf("Expected %v to be valid", d)
		}
		if d.String() != want[i] {
			t.Errorf("Weekdays()[%d] = %s, want %s", i, d, want[i])
		}
	}
}

func TestWeekdayInvalid(t *testing.T) {
	if WeekdayInvalid.Valid() {
		t.Error("Expected WeekdayInvalid to be invalid")
	}
	if WeekdayInvalid.String() != "Invalid" {
		t.Errorf("Unexpected name %q", WeekdayInvalid.String())
	}
}
