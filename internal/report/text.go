package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Compile-time interface check
var _ Renderer = (*TextRenderer)(nil)

// TextRenderer writes the report as fixed-width plain text.
type TextRenderer struct{}

// NewTextRenderer creates a plain-text renderer.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Format implements Renderer.Format.
func (t *TextRenderer) Format() Format {
	return FormatText
}

// Render implements Renderer.Render.
func (t *TextRenderer) Render(w io.Writer, r *Report) error {
	bw := bufio.NewWriter(w)

	rule := strings.Repeat("=", 60)
	_, _ = fmt.Fprintln(bw, rule)
	_, _ = fmt.Fprintf(bw, "       SLI REPORT FOR FILE: %s\n", r.Source)
	_, _ = fmt.Fprintln(bw, rule)

	t.section(bw, titleGlobal)
	for _, line := range summaryLines(r.Summary) {
		_, _ = fmt.Fprintf(bw, "%-25s %s\n", line[0]+":", line[1])
	}

	t.section(bw, titleDays)
	if err := writeTable(bw, dayHeader, dayCells(r.Days)); err != nil {
		return err
	}

	t.section(bw, titleOperations)
	if err := writeTable(bw, operationHeader, operationCells(r.Operations)); err != nil {
		return err
	}

	t.section(bw, titleErrorKinds)
	if len(r.ErrorKinds) == 0 {
		_, _ = fmt.Fprintln(bw, noErrorKinds)
	} else if err := writeTable(bw, errorKindHeader, errorKindCells(r.ErrorKinds)); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(bw, rule)
	return bw.Flush()
}

func (t *TextRenderer) section(w io.Writer, title string) {
	_, _ = fmt.Fprintf(w, "\n%s\n%s\n", title, strings.Repeat("-", len(title)))
}
