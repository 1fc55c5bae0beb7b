package types

import (
	"fmt"
	"strings"
	"time"
)

// Month is a month in a specific year.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs in UTC.
func MonthOf(t time.Time) Month {
	year, month, _ := t.UTC().Date()
	return NewMonth(year, month)
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it represents
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, err
	}

	return MonthOf(t), nil
}

// String returns the time formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// MarshalJSON implements the json.Marshaler interface.
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// Both "YYYY-MM" and anything accepted by ParseDate can be used,
// everything except the year and month is ignored.
func (m *Month) UnmarshalJSON(data []byte) error {
	return m.UnmarshalParam(strings.Trim(string(data), `"`))
}

// UnmarshalParam parses query parameters with gin's binding.
func (m *Month) UnmarshalParam(p string) error {
	if p == "" || p == "null" {
		return nil
	}

	if len(p) == len("2006-01") {
		month, err := ParseMonth(p)
		if err != nil {
			return err
		}
		*m = month
		return nil
	}

	d, err := ParseDate(p)
	if err != nil {
		return err
	}

	*m = MonthOf(d.Time())
	return nil
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// FirstDay returns the first day of the month.
func (m Month) FirstDay() Date {
	return DateOf(time.Time(m))
}

// LastDay returns the last day of the month.
func (m Month) LastDay() Date {
	return m.AddDate(0, 1).FirstDay().AddDays(-1)
}

// Contains reports whether the day is in the month.
func (m Month) Contains(d Date) bool {
	return d.Time().Year() == time.Time(m).Year() && d.Time().Month() == time.Time(m).Month()
}
