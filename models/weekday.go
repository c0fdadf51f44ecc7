package models

import "time"

// Weekday is a day-of-week key into a doctor's recurring availability.
type Weekday string

const (
	Monday    Weekday = "MON"
	Tuesday   Weekday = "TUE"
	Wednesday Weekday = "WED"
	Thursday  Weekday = "THU"
	Friday    Weekday = "FRI"
	Saturday  Weekday = "SAT"
	Sunday    Weekday = "SUN"
)

// WeekOrder lists all weekdays in calendar order starting Monday.
var WeekOrder = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayTime = map[Weekday]time.Weekday{
	Monday:    time.Monday,
	Tuesday:   time.Tuesday,
	Wednesday: time.Wednesday,
	Thursday:  time.Thursday,
	Friday:    time.Friday,
	Saturday:  time.Saturday,
	Sunday:    time.Sunday,
}

// Time maps the weekday onto the standard library's time.Weekday.
func (w Weekday) Time() (time.Weekday, bool) {
	d, ok := weekdayTime[w]
	return d, ok
}

// Valid reports whether w is one of the seven known weekdays.
func (w Weekday) Valid() bool {
	_, ok := weekdayTime[w]
	return ok
}

// TimeWindow is one contiguous block of availability on a weekday.
// Start and End are wall-clock "HH:MM" strings, start < end expected.
type TimeWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Availability maps each offered weekday to its availability windows.
type Availability map[Weekday][]TimeWindow
