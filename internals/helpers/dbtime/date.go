// Package dbtime has the calendar-date type used at the HTTP boundary.
package dbtime

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const layout = "2006-01-02"

// Date is a calendar date. JSON is "YYYY-MM-DD"; full RFC 3339 timestamps
// are accepted on input and truncated to their date.
type Date time.Time

func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// From truncates t to its calendar date (in t's own location).
func From(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// Parse accepts "YYYY-MM-DD" or an RFC 3339 timestamp.
func Parse(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(layout, s); err == nil {
		return From(t), nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Date{}, fmt.Errorf("date: cannot parse %q", s)
	}
	return From(t), nil
}

// TodayUTC is the current calendar date in UTC.
func TodayUTC() Date {
	return From(time.Now().UTC())
}

func (d Date) Time() time.Time { return time.Time(d) }

func (d Date) String() string { return time.Time(d).Format(layout) }

func (d Date) Before(o Date) bool { return time.Time(d).Before(time.Time(o)) }

func (d Date) After(o Date) bool { return time.Time(d).After(time.Time(o)) }

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	v, err := Parse(strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Scan accepts time.Time or a string from the driver.
func (d *Date) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		*d = From(x)
		return nil
	case []byte:
		return d.scanString(string(x))
	case string:
		return d.scanString(x)
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("date: unsupported Scan type %T", v)
	}
}

func (d *Date) scanString(s string) error {
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}
