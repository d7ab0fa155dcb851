package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Format names an output format.
type Format string

// Supported output formats.
const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
)

// Renderer serializes a Report. Implementations differ only in layout;
// every value comes from the shared cell builders below.
type Renderer interface {
	// Format returns the format this renderer produces.
	Format() Format

	// Render writes the report to w.
	Render(w io.Writer, r *Report) error
}

// Section titles shared by all renderers.
const (
	titleGlobal     = "Global Transaction Availability"
	titleDays       = "Error Rate by Day of Week"
	titleOperations = "Success Rate by Operation"
	titleErrorKinds = "Error Breakdown"
	noErrorKinds    = "No errors recorded."
)

var (
	dayHeader       = []string{"Day", "Total", "Errors", "Error Rate"}
	operationHeader = []string{"Operation", "Total", "Success", "Success Rate"}
	errorKindHeader = []string{"Error Kind", "Count", "Share of Total"}
)

// percent formats a rate with two decimals.
func percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// summaryLines returns the global section as label/value pairs.
func summaryLines(s Summary) [][2]string {
	return [][2]string{
		{"Total log entries", strconv.Itoa(s.Total)},
		{"Successful transactions", strconv.Itoa(s.Success)},
		{"Failed transactions", strconv.Itoa(s.Errors)},
		{"Overall success rate", percent(s.SuccessRate)},
		{"Overall error rate", percent(s.ErrorRate)},
	}
}

func dayCells(rows []DayRow) [][]string {
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{
			row.Day.String(),
			strconv.Itoa(row.Total),
			strconv.Itoa(row.Errors),
			percent(row.ErrorRate),
		})
	}
	return cells
}

func operationCells(rows []OperationRow) [][]string {
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{
			string(row.Operation),
			strconv.Itoa(row.Total),
			strconv.Itoa(row.Success),
			percent(row.SuccessRate),
		})
	}
	return cells
}

func errorKindCells(rows []ErrorKindRow) [][]string {
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{
			row.Kind,
			strconv.Itoa(row.Count),
			percent(row.Share),
		})
	}
	return cells
}

// writeTable renders one table with tablewriter.
func writeTable(w io.Writer, header []string, rows [][]string, opts ...tablewriter.Option) error {
	table := tablewriter.NewTable(w, opts...)
	table.Header(header)
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("failed to add table rows: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}
