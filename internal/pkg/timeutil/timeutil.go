package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time expressed as seconds since midnight.
// All scan and schedule times are same-day, same-locale wall-clock
// values; there is no timezone handling anywhere in this package.
type TimeOfDay int

const (
	Minute TimeOfDay = 60
	Hour   TimeOfDay = 3600
	Day    TimeOfDay = 24 * Hour
)

// ISODateLayout is the internal calendar-date form.
const ISODateLayout = "2006-01-02"

// DisplayDateLayout is the locale form shown on the dashboard.
const DisplayDateLayout = "Mon, 02 Jan 2006"

func (t TimeOfDay) Hours() int   { return int(t / Hour) }
func (t TimeOfDay) Minutes() int { return int(t%Hour) / 60 }
func (t TimeOfDay) Seconds() int { return int(t % Minute) }

// Clock renders the time as "HH:MM:SS".
func (t TimeOfDay) Clock() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hours(), t.Minutes(), t.Seconds())
}

// Short renders the time as "HH:MM".
func (t TimeOfDay) Short() string {
	return fmt.Sprintf("%02d:%02d", t.Hours(), t.Minutes())
}

// ParseClock parses an "HH:MM:SS" scan timestamp.
func ParseClock(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, &FormatError{Input: s, Reason: "expected HH:MM:SS"}
	}

	h, err := parseUnit(s, parts[0], 23)
	if err != nil {
		return 0, err
	}
	m, err := parseUnit(s, parts[1], 59)
	if err != nil {
		return 0, err
	}
	sec, err := parseUnit(s, parts[2], 59)
	if err != nil {
		return 0, err
	}

	return TimeOfDay(h)*Hour + TimeOfDay(m)*Minute + TimeOfDay(sec), nil
}

// ParseShortClock parses an "HH:MM" time, as used inside window spans.
func ParseShortClock(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, &FormatError{Input: s, Reason: "expected HH:MM"}
	}

	h, err := parseUnit(s, parts[0], 23)
	if err != nil {
		return 0, err
	}
	m, err := parseUnit(s, parts[1], 59)
	if err != nil {
		return 0, err
	}

	return TimeOfDay(h)*Hour + TimeOfDay(m)*Minute, nil
}

// ParseWindow parses an "HH:MM - HH:MM" schedule span into a start/end
// pair. The end must come strictly after the start; same-day windows
// only.
func ParseWindow(s string) (start, end TimeOfDay, err error) {
	left, right, found := strings.Cut(s, "-")
	if !found {
		return 0, 0, &FormatError{Input: s, Reason: `missing "-" separator`}
	}

	start, err = ParseShortClock(strings.TrimSpace(left))
	if err != nil {
		return 0, 0, err
	}
	end, err = ParseShortClock(strings.TrimSpace(right))
	if err != nil {
		return 0, 0, err
	}
	if end <= start {
		return 0, 0, &FormatError{Input: s, Reason: "window end must be after start"}
	}

	return start, end, nil
}

func parseUnit(input, part string, max int) (int, error) {
	if len(part) != 2 {
		return 0, &FormatError{Input: input, Reason: "time units must be two digits"}
	}
	n, err := strconv.Atoi(part)
	if err != nil || n < 0 || n > max {
		return 0, &FormatError{Input: input, Reason: fmt.Sprintf("unit %q out of range", part)}
	}
	return n, nil
}

// DisplayDate converts an ISO "2006-01-02" date to the display form.
func DisplayDate(iso string) (string, error) {
	d, err := time.Parse(ISODateLayout, iso)
	if err != nil {
		return "", &FormatError{Input: iso, Reason: "expected YYYY-MM-DD"}
	}
	return d.Format(DisplayDateLayout), nil
}

// ISODate converts a display-form date back to ISO "2006-01-02".
func ISODate(display string) (string, error) {
	d, err := time.Parse(DisplayDateLayout, display)
	if err != nil {
		return "", &FormatError{Input: display, Reason: `expected "Mon, 02 Jan 2006"`}
	}
	return d.Format(ISODateLayout), nil
}

// Weekday returns the ISO weekday (1=Monday .. 7=Sunday) of an ISO date.
func Weekday(iso string) (int, error) {
	d, err := time.Parse(ISODateLayout, iso)
	if err != nil {
		return 0, &FormatError{Input: iso, Reason: "expected YYYY-MM-DD"}
	}
	wd := int(d.Weekday())
	if wd == 0 {
		wd = 7
	}
	return wd, nil
}

// WeekOfMonth returns the calendar-day week partition of an ISO date:
// ceil(day-of-month / 7). This is intentionally not an ISO week; a 29th
// falls in week 5 even when the month aligns to four weeks. Existing
// reports depend on this partition.
func WeekOfMonth(iso string) (int, error) {
	d, err := time.Parse(ISODateLayout, iso)
	if err != nil {
		return 0, &FormatError{Input: iso, Reason: "expected YYYY-MM-DD"}
	}
	return (d.Day() + 6) / 7, nil
}
