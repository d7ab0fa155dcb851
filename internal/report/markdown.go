package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
)

// Compile-time interface check
var _ Renderer = (*MarkdownRenderer)(nil)

// MarkdownRenderer writes the report as a Markdown document with tables.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a Markdown renderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Format implements Renderer.Format.
func (m *MarkdownRenderer) Format() Format {
	return FormatMarkdown
}

// Render implements Renderer.Render.
func (m *MarkdownRenderer) Render(w io.Writer, r *Report) error {
	bw := bufio.NewWriter(w)

	_, _ = fmt.Fprintf(bw, "# SLI Report: %s\n", r.Source)

	m.section(bw, titleGlobal)
	for _, line := range summaryLines(r.Summary) {
		_, _ = fmt.Fprintf(bw, "- %s: **%s**\n", line[0], line[1])
	}

	m.section(bw, titleDays)
	if err := m.table(bw, dayHeader, dayCells(r.Days)); err != nil {
		return err
	}

	m.section(bw, titleOperations)
	if err := m.table(bw, operationHeader, operationCells(r.Operations)); err != nil {
		return err
	}

	m.section(bw, titleErrorKinds)
	if len(r.ErrorKinds) == 0 {
		_, _ = fmt.Fprintln(bw, noErrorKinds)
	} else if err := m.table(bw, errorKindHeader, errorKindCells(r.ErrorKinds)); err != nil {
		return err
	}

	return bw.Flush()
}

func (m *MarkdownRenderer) section(w io.Writer, title string) {
	_, _ = fmt.Fprintf(w, "\n## %s\n\n", title)
}

func (m *MarkdownRenderer) table(w io.Writer, header []string, rows [][]string) error {
	return writeTable(w, header, rows, tablewriter.WithRenderer(renderer.NewMarkdown()))
}
