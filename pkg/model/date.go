package model

import (
	"encoding/json"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date in the local time zone. The zero value means the date is not set.
type Date struct {
	t time.Time
}

// NewDate returns the given calendar date.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

// DateOf returns the local calendar date of t.
func DateOf(t time.Time) Date {
	y, m, d := t.In(time.Local).Date()

	return NewDate(y, m, d)
}

// ParseDate accepts YYYY-MM-DD or a full RFC 3339 timestamp. Anything else, including the
// empty string, reports false.
func ParseDate(s string) (Date, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, false
	}

	if t, err := time.ParseInLocation(DateLayout, s, time.Local); err == nil {
		return DateOf(t), true
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return DateOf(t), true
	}

	return Date{}, false
}

// IsSet reports whether d holds a date.
func (d Date) IsSet() bool {
	return !d.t.IsZero()
}

// Time returns local midnight of d.
func (d Date) Time() time.Time {
	return d.t
}

// AddDays returns the date n days after d.
func (d Date) AddDays(n int) Date {
	y, m, day := d.t.Date()

	return NewDate(y, m, day+n)
}

// DaysSince returns the whole number of days from earlier to d; negative when earlier is after d.
func (d Date) DaysSince(earlier Date) int {
	return int(utcMidnight(d.t).Sub(utcMidnight(earlier.t)).Hours() / 24)
}

// Equal reports whether both dates name the same day.
func (d Date) Equal(other Date) bool {
	return d.IsSet() == other.IsSet() && d.DaysSince(other) == 0
}

// Before reports whether d is an earlier day than other.
func (d Date) Before(other Date) bool {
	return d.DaysSince(other) < 0
}

func (d Date) String() string {
	if !d.IsSet() {
		return ""
	}

	return d.t.Format(DateLayout)
}

// MarshalJSON writes an unset date as the empty string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON never fails; anything unparseable leaves the date unset.
func (d *Date) UnmarshalJSON(data []byte) error {
	*d = decodeDate(data)

	return nil
}

// utcMidnight re-anchors a calendar day in UTC so day arithmetic is unaffected by DST.
func utcMidnight(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
