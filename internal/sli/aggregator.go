package sli

// Counter tracks outcomes for one operation.
type Counter struct {
	Total   int
	Success int
}

// DayCounter tracks outcomes for one weekday.
type DayCounter struct {
	Total  int
	Errors int
}

// Aggregates holds every counter produced by one run. It is filled by Add
// during a single pass and only read afterwards.
type Aggregates struct {
	Total      int
	Success    int
	Operations map[Operation]Counter
	Daily      [7]DayCounter
	ErrorKinds map[string]int

	// Diagnostics. They never change the reported views.
	Lines        int // physical lines read
	Ignored      int // blank and separator lines
	Skipped      int // lines rejected by the grammar
	InvalidDates int // matched records with an unparseable date
	SkipSummary  *SkipSummary
}

// NewAggregates returns empty aggregates.
func NewAggregates() *Aggregates {
	return &Aggregates{
		Operations:  make(map[Operation]Counter),
		ErrorKinds:  make(map[string]int),
		SkipSummary: newSkipSummary(),
	}
}

// Add classifies a matched record and accumulates it.
func (a *Aggregates) Add(rec LogRecord) Classification {
	c := Classify(rec)
	success := rec.Status == StatusSuccess

	a.Total++
	if success {
		a.Success++
	}

	op := a.Operations[c.Operation]
	op.Total++
	if success {
		op.Success++
	}
	a.Operations[c.Operation] = op

	if c.Weekday.Valid() {
		a.Daily[c.Weekday].Total++
		if !success {
			a.Daily[c.Weekday].Errors++
		}
	} else {
		a.InvalidDates++
	}

	if !success {
		a.ErrorKinds[c.ErrorKind]++
	}
	return c
}

// Ignore counts a blank or separator line.
func (a *Aggregates) Ignore() {
	a.Ignored++
}

// Skip counts a line that did not match the grammar.
func (a *Aggregates) Skip(line string) {
	a.Skipped++
	if a.SkipSummary != nil {
		a.SkipSummary.Record(line)
	}
}

// Errors returns the number of failed records.
func (a *Aggregates) Errors() int {
	return a.Total - a.Success
}

// Day returns the counters for d, or zero counters for an invalid bucket.
func (a *Aggregates) Day(d Weekday) DayCounter {
	if !d.Valid() {
		return DayCounter{}
	}
	return a.Daily[d]
}

// Operation returns the counters for op; missing operations are zero.
func (a *Aggregates) Operation(op Operation) Counter {
	return a.Operations[op]
}
