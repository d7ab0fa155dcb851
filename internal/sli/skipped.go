package sli

import (
	"regexp"
	"sort"
	"strings"
)

// maxSkipShapes bounds the number of distinct shapes kept per run.
const maxSkipShapes = 32

var (
	timestampPattern = regexp.MustCompile(`\b\d{1,2}:\d{2}:\d{2}\b`)
	datePattern      = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b|\b\d{2}/\d{2}/\d{4}\b`)
	numberPattern    = regexp.MustCompile(`\d+`)
)

// SkipShape is a group of rejected lines that normalize to the same text.
type SkipShape struct {
	Shape   string
	Example string
	Count   int
}

// SkipSummary groups lines rejected by the grammar by their shape, so that a
// format drift in the input shows up as one large group.
type SkipSummary struct {
	counts   map[string]int
	examples map[string]string
	overflow int
}

func newSkipSummary() *SkipSummary {
	return &SkipSummary{
		counts:   make(map[string]int),
		examples: make(map[string]string),
	}
}

// Record adds a rejected line. Lines with a new shape beyond the limit are
// only counted as overflow.
func (s *SkipSummary) Record(line string) {
	shape := normalizeLine(line)
	if _, ok := s.counts[shape]; !ok && len(s.counts) >= maxSkipShapes {
		s.overflow++
		return
	}
	s.counts[shape]++
	if s.examples[shape] == "" {
		s.examples[shape] = strings.TrimSpace(line)
	}
}

// Overflow returns the number of lines whose shape was not tracked.
func (s *SkipSummary) Overflow() int {
	return s.overflow
}

// Top returns up to n shapes ordered by count descending, then shape.
func (s *SkipSummary) Top(n int) []SkipShape {
	shapes := make([]SkipShape, 0, len(s.counts))
	for shape, count := range s.counts {
		shapes = append(shapes, SkipShape{Shape: shape, Example: s.examples[shape], Count: count})
	}
	sort.Slice(shapes, func(i, j int) bool {
		if shapes[i].Count != shapes[j].Count {
			return shapes[i].Count > shapes[j].Count
		}
		return shapes[i].Shape < shapes[j].Shape
	})
	if n >= 0 && len(shapes) > n {
		shapes = shapes[:n]
	}
	return shapes
}

// normalizeLine replaces dates, times and numbers with placeholders.
func normalizeLine(line string) string {
	line = strings.TrimSpace(line)
	line = datePattern.ReplaceAllString(line, "DATE")
	line = timestampPattern.ReplaceAllString(line, "TIME")
	return numberPattern.ReplaceAllString(line, "N")
}
