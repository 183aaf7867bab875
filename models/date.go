package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// DateLayout is the wire form of calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date stored in a DATE column and serialized as YYYY-MM-DD.
type Date datatypes.Date

// NewDate keeps only the calendar part of t.
func NewDate(t time.Time) Date {
	return Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}

// ParseDate reads a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date(t), nil
}

func (d Date) Time() time.Time { return time.Time(d) }

func (d Date) String() string { return d.Time().Format(DateLayout) }

func (Date) GormDataType() string { return "date" }

func (d Date) Value() (driver.Value, error) { return datatypes.Date(d).Value() }

func (d *Date) Scan(value any) error { return (*datatypes.Date)(d).Scan(value) }

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts YYYY-MM-DD and, for older clients, RFC 3339 timestamps.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date: %w", err)
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		*d = Date(t)
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("date %q: want YYYY-MM-DD", s)
	}
	*d = NewDate(t)
	return nil
}
