package report

import (
	"math"
	"strings"
	"testing"

	"github.com/olegiv/sli-report/internal/sli"
)

const exampleLog = `2025-11-03 10:00:00 [SUCCESS] ATM00101 TRANSFER 200000 REF100001
2025-11-03 10:05:00 [ERROR] ATM00101 TRANSFER TIMEOUT REF100002
2025-11-04 09:00:00 [ERROR] CONNECTION_LOST REF100003
`

func exampleAggregates(t *testing.T) *sli.Aggregates {
	t.Helper()
	agg, err := sli.NewReader(0).ReadFrom(strings.NewReader(exampleLog))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return agg
}

func TestRate(t *testing.T) {
	tests := []struct {
		name        string
		part, total int
		want        float64
	}{
		{"zero total", 0, 0, 0},
		{"zero total with part", 5, 0, 0},
		{"all", 4, 4, 100},
		{"half", 1, 2, 50},
		{"none", 0, 7, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rate(tt.part, tt.total); got != tt.want {
				t.Errorf("Rate(%d, %d) = %v, want %v", tt.part, tt.total, got, tt.want)
			}
		})
	}
}

func TestBuild_ExampleScenario(t *testing.T) {
	r := Build("atm.log", exampleAggregates(t))

	if r.Source != "atm.log" {
		t.Errorf("Expected source atm.log, got %s", r.Source)
	}
	if r.Summary.Total != 3 || r.Summary.Success != 1 || r.Summary.Errors != 2 {
		t.Errorf("Unexpected summary counts: %+v", r.Summary)
	}
	if got := percent(r.Summary.SuccessRate); got != "33.33%" {
		t.Errorf("Expected success rate 33.33%%, got %s", got)
	}
	if got := percent(r.Summary.ErrorRate); got != "66.67%" {
		t.Errorf("Expected error rate 66.67%%, got %s", got)
	}

	if len(r.Operations) != 3 {
		t.Fatalf("Expected 3 operation rows, got %d", len(r.Operations))
	}
	wantOps := []OperationRow{
		{Operation: sli.OpTransfer, Total: 2, Success: 1, SuccessRate: 50},
		{Operation: sli.OpWithdraw},
		{Operation: sli.OpBalance},
	}
	for i, want := range wantOps {
		if r.Operations[i] != want {
			t.Errorf("Operations[%d] = %+v, want %+v", i, r.Operations[i], want)
		}
	}

	if len(r.Days) != 7 {
		t.Fatalf("Expected 7 day rows, got %d", len(r.Days))
	}
	for i, row := range r.Days {
		if row.Day != sli.Weekday(i) {
			t.Errorf("Days[%d] is %s, expected calendar order", i, row.Day)
		}
	}
	if r.Days[0] != (DayRow{Day: sli.Monday, Total: 2, Errors: 1, ErrorRate: 50}) {
		t.Errorf("Unexpected Monday row: %+v", r.Days[0])
	}
	if r.Days[1] != (DayRow{Day: sli.Tuesday, Total: 1, Errors: 1, ErrorRate: 100}) {
		t.Errorf("Unexpected Tuesday row: %+v", r.Days[1])
	}
	for _, row := range r.Days[2:] {
		if row.Total != 0 || row.Errors != 0 || row.ErrorRate != 0 {
			t.Errorf("Expected zero row for %s, got %+v", row.Day, row)
		}
	}

	// Equal counts are ordered by kind.
	if len(r.ErrorKinds) != 2 {
		t.Fatalf("Expected 2 error kinds, got %d", len(r.ErrorKinds))
	}
	if r.ErrorKinds[0].Kind != "CONNECTION_LOST" || r.ErrorKinds[1].Kind != "TIMEOUT" {
		t.Errorf("Unexpected error kind order: %+v", r.ErrorKinds)
	}
	if got := percent(r.ErrorKinds[0].Share); got != "33.33%" {
		t.Errorf("Expected share 33.33%%, got %s", got)
	}
}

func TestBuild_ErrorKindOrderingAndFilter(t *testing.T) {
	agg := sli.NewAggregates()
	agg.Total = 20
	agg.Success = 5
	agg.ErrorKinds = map[string]int{
		"TIMEOUT":            3,
		"CARD_BLOCKED":       5,
		"TRANSFER":           4,
		"BALANCE":            1,
		"LIMIT_EXCEEDED":     3,
		"INVALID_ACCOUNT":    3,
		"SYSTEM_MAINTENANCE": 1,
	}

	r := Build("x", agg)

	want := []string{"CARD_BLOCKED", "INVALID_ACCOUNT", "LIMIT_EXCEEDED", "TIMEOUT", "SYSTEM_MAINTENANCE"}
	if len(r.ErrorKinds) != len(want) {
		t.Fatalf("Expected %d rows, got %d: %+v", len(want), len(r.ErrorKinds), r.ErrorKinds)
	}
	for i, kind := range want {
		if r.ErrorKinds[i].Kind != kind {
			t.Errorf("ErrorKinds[%d] = %s, want %s", i, r.ErrorKinds[i].Kind, kind)
		}
	}
	if r.ErrorKinds[0].Share != 25 {
		t.Errorf("Expected CARD_BLOCKED share 25, got %v", r.ErrorKinds[0].Share)
	}
}

func TestBuild_Empty(t *testing.T) {
	r := Build("empty.log", sli.NewAggregates())

	if r.Summary.SuccessRate != 0 {
		t.Errorf("Expected zero success rate, got %v", r.Summary.SuccessRate)
	}
	if len(r.Days) != 7 || len(r.Operations) != 3 {
		t.Errorf("Expected fixed rows, got %d days and %d operations", len(r.Days), len(r.Operations))
	}
	if len(r.ErrorKinds) != 0 {
		t.Errorf("Expected no error kinds, got %+v", r.ErrorKinds)
	}
}

func TestBuild_RateBounds(t *testing.T) {
	for _, tc := range []struct{ total, success int }{{1, 0}, {1, 1}, {3, 1}, {7, 3}, {1000, 999}} {
		agg := sli.NewAggregates()
		agg.Total = tc.total
		agg.Success = tc.success

		s := Build("x", agg).Summary
		if s.SuccessRate < 0 || s.SuccessRate > 100 {
			t.Errorf("Success rate %v out of bounds", s.SuccessRate)
		}
		if s.ErrorRate != 100-s.SuccessRate {
			t.Errorf("Expected error rate %v, got %v", 100-s.SuccessRate, s.ErrorRate)
		}
		if math.IsNaN(s.SuccessRate) {
			t.Error("Success rate is NaN")
		}
	}
}
