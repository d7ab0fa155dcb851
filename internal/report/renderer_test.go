package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/olegiv/sli-report/internal/sli"
)

func render(t *testing.T, renderer Renderer, r *Report) string {
	t.Helper()
	var buf bytes.Buffer
	if err := renderer.Render(&buf, r); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	return buf.String()
}

// reportValues lists every value cell of the example report.
var reportValues = []string{
	"33.33%", "66.67%",
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
	"50.00%", "100.00%", "0.00%",
	"TRANSFER", "WITHDRAW", "BALANCE",
	"CONNECTION_LOST", "TIMEOUT",
}

func TestTextRenderer(t *testing.T) {
	out := render(t, NewTextRenderer(), Build("atm.log", exampleAggregates(t)))

	for _, want := range append([]string{"SLI REPORT FOR FILE: atm.log", titleGlobal, titleDays, titleOperations, titleErrorKinds}, reportValues...) {
		if !strings.Contains(out, want) {
			t.Errorf("Expected text output to contain %q\n%s", want, out)
		}
	}
	for _, hidden := range []string{"SYSTEM", "UNKNOWN_OP"} {
		if strings.Contains(out, hidden) {
			t.Errorf("Did not expect %s in the operation table", hidden)
		}
	}
}

func TestMarkdownRenderer(t *testing.T) {
	out := render(t, NewMarkdownRenderer(), Build("atm.log", exampleAggregates(t)))

	for _, want := range append([]string{"# SLI Report: atm.log", "## " + titleGlobal, "## " + titleDays, "## " + titleOperations, "## " + titleErrorKinds, "|"}, reportValues...) {
		if !strings.Contains(out, want) {
			t.Errorf("Expected markdown output to contain %q\n%s", want, out)
		}
	}
	if !strings.Contains(out, "- Overall success rate: **33.33%**") {
		t.Errorf("Expected summary bullet in markdown output\n%s", out)
	}
}

func TestRenderers_DayOrder(t *testing.T) {
	r := Build("atm.log", exampleAggregates(t))

	for _, renderer := range []Renderer{NewTextRenderer(), NewMarkdownRenderer()} {
		out := render(t, renderer, r)
		last := -1
		for _, d := range sli.Weekdays() {
			idx := strings.Index(out, d.String())
			if idx <= last {
				t.Errorf("%s: expected %s after previous weekday", renderer.Format(), d)
			}
			last = idx
		}
	}
}

func TestRenderers_NoErrorKinds(t *testing.T) {
	agg := sli.NewAggregates()
	rec, ok := sli.Match("2025-11-03 10:00:00 [SUCCESS] ATM00101 BALANCE 0 REF1")
	if !ok {
		t.Fatal("Expected line to match")
	}
	agg.Add(rec)
	r := Build("ok.log", agg)

	for _, renderer := range []Renderer{NewTextRenderer(), NewMarkdownRenderer()} {
		out := render(t, renderer, r)
		if !strings.Contains(out, noErrorKinds) {
			t.Errorf("%s: expected %q in output", renderer.Format(), noErrorKinds)
		}
		if !strings.Contains(out, "100.00%") {
			t.Errorf("%s: expected 100.00%% success rate", renderer.Format())
		}
	}
}

func TestRenderers_Deterministic(t *testing.T) {
	for _, renderer := range []Renderer{NewTextRenderer(), NewMarkdownRenderer()} {
		first := render(t, renderer, Build("atm.log", exampleAggregates(t)))
		second := render(t, renderer, Build("atm.log", exampleAggregates(t)))
		if first != second {
			t.Errorf("%s: expected byte-identical output across runs", renderer.Format())
		}
	}
}
