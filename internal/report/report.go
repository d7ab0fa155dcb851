// Package report builds the structured SLI report from aggregates and
// renders it as plain text or Markdown.
package report

import (
	"sort"

	"github.com/olegiv/sli-report/internal/sli"
)

// Summary is the global availability section.
type Summary struct {
	Total       int
	Success     int
	Errors      int
	SuccessRate float64
	ErrorRate   float64
}

// DayRow is one row of the per-weekday error table.
type DayRow struct {
	Day       sli.Weekday
	Total     int
	Errors    int
	ErrorRate float64
}

// OperationRow is one row of the per-operation success table.
type OperationRow struct {
	Operation   sli.Operation
	Total       int
	Success     int
	SuccessRate float64
}

// ErrorKindRow is one row of the error breakdown table.
type ErrorKindRow struct {
	Kind  string
	Count int
	Share float64 // percentage of all records
}

// Report is the format-agnostic result of a run.
type Report struct {
	Source     string
	Summary    Summary
	Days       []DayRow
	Operations []OperationRow
	ErrorKinds []ErrorKindRow
}

// Rate returns part/total as a percentage, or 0 when total is 0.
func Rate(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// Build assembles the report sections from final aggregates.
func Build(source string, agg *sli.Aggregates) *Report {
	successRate := Rate(agg.Success, agg.Total)

	r := &Report{
		Source: source,
		Summary: Summary{
			Total:       agg.Total,
			Success:     agg.Success,
			Errors:      agg.Errors(),
			SuccessRate: successRate,
			ErrorRate:   100 - successRate,
		},
	}

	for _, d := range sli.Weekdays() {
		c := agg.Day(d)
		r.Days = append(r.Days, DayRow{
			Day:       d,
			Total:     c.Total,
			Errors:    c.Errors,
			ErrorRate: Rate(c.Errors, c.Total),
		})
	}

	for _, op := range sli.TransactionalOperations() {
		c := agg.Operation(op)
		r.Operations = append(r.Operations, OperationRow{
			Operation:   op,
			Total:       c.Total,
			Success:     c.Success,
			SuccessRate: Rate(c.Success, c.Total),
		})
	}

	r.ErrorKinds = buildErrorKinds(agg)
	return r
}

// buildErrorKinds drops kinds named after transactional operations (they
// come from the classifier fallback) and sorts by count descending, then by
// kind ascending.
func buildErrorKinds(agg *sli.Aggregates) []ErrorKindRow {
	rows := make([]ErrorKindRow, 0, len(agg.ErrorKinds))
	for kind, count := range agg.ErrorKinds {
		if count <= 0 || sli.Operation(kind).IsTransactional() {
			continue
		}
		rows = append(rows, ErrorKindRow{
			Kind:  kind,
			Count: count,
			Share: Rate(count, agg.Total),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Kind < rows[j].Kind
	})
	return rows
}
