package analysis

import "time"

// period is the budget period, measured in whole calendar days.
type period struct {
	start time.Time
	end   time.Time
	today time.Time
}

func newPeriod(start, end, today time.Time) period {
	return period{
		start: day(start),
		end:   day(end),
		today: day(today),
	}
}

// contains reports if t falls on a day within the period. Both the first and
// the last day are part of it.
func (p period) contains(t time.Time) bool {
	d := day(t)
	return !d.Before(p.start) && !d.After(p.end)
}

// totalDays is the length of the period, counting both the first and the last day.
func (p period) totalDays() int {
	return daysBetween(p.start, p.end) + 1
}

// daysElapsed is the number of days between the start of the period and
// today, capped at the end of the period. It is never less than 1 so that
// it can safely be used as divisor.
func (p period) daysElapsed() int {
	until := p.today
	if until.After(p.end) {
		until = p.end
	}

	return max(1, daysBetween(p.start, until))
}

func (p period) daysRemaining() int {
	return max(0, p.totalDays()-p.daysElapsed())
}

// day returns midnight UTC of the calendar day t falls on in UTC.
func day(t time.Time) time.Time {
	year, month, d := t.UTC().Date()
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the number of calendar days from a to b. It is
// negative if b is before a.
func daysBetween(a, b time.Time) int {
	return int(day(b).Sub(day(a)).Hours() / 24)
}
