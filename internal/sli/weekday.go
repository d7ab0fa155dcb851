package sli

import "time"

// Weekday is a day-of-week bucket. Monday is the first bucket.
type Weekday int

// Weekday buckets in fixed calendar order, plus the bucket for dates that
// fail strict parsing.
const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
	WeekdayInvalid Weekday = -1
)

const dateLayout = "2006-01-02"

var weekdayNames = [...]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Weekdays returns the 7 valid buckets, Monday through Sunday.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// Valid reports whether d is one of the 7 calendar buckets.
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

func (d Weekday) String() string {
	if !d.Valid() {
		return "Invalid"
	}
	return weekdayNames[d]
}

// ResolveWeekday maps a YYYY-MM-DD date to its weekday bucket.
// Unparseable dates resolve to WeekdayInvalid.
func ResolveWeekday(date string) Weekday {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return WeekdayInvalid
	}
	// time.Weekday starts at Sunday=0.
	return Weekday((int(t.Weekday()) + 6) % 7)
}
