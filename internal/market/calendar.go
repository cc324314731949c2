// Package market provides US equity trading-session date arithmetic, used to
// derive default date ranges for aggregate queries.
package market

import "time"

// LastNTradingDays returns the last n US trading days, most recent first,
// starting at from and walking backwards.
func LastNTradingDays(n int, from time.Time) []time.Time {
	out := make([]time.Time, 0, n)
	d := truncateToDate(from)

	for len(out) < n {
		if IsTradingDay(d) {
			out = append(out, d)
		}
		d = d.AddDate(0, 0, -1)
	}
	return out
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsTradingDay reports whether d is a regular US equity session: a weekday
// that is not a full NYSE market closure.
func IsTradingDay(d time.Time) bool {
	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false
	}
	return !isMarketHoliday(truncateToDate(d))
}

// isMarketHoliday checks the NYSE full-closure schedule for d's year.
//
// Fixed-date holidays shift to the nearest weekday when they fall on a
// weekend (Saturday to the preceding Friday, Sunday to the following
// Monday), except New Year's Day: a Saturday January 1 is simply not
// observed, the exchange stays open on the prior December 31.
func isMarketHoliday(d time.Time) bool {
	y := d.Year()
	loc := d.Location()

	newYear := time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	switch newYear.Weekday() {
	case time.Saturday:
		newYear = time.Time{}
	case time.Sunday:
		newYear = newYear.AddDate(0, 0, 1)
	}
	if !newYear.IsZero() && d.Equal(newYear) {
		return true
	}

	fixed := []time.Time{
		observed(time.Date(y, time.July, 4, 0, 0, 0, 0, loc)),      // Independence Day
		observed(time.Date(y, time.December, 25, 0, 0, 0, 0, loc)), // Christmas Day
	}
	if y >= 2022 { // Juneteenth became an exchange holiday in 2022
		fixed = append(fixed, observed(time.Date(y, time.June, 19, 0, 0, 0, 0, loc)))
	}
	for _, h := range fixed {
		if d.Equal(h) {
			return true
		}
	}

	floating := []time.Time{
		nthWeekday(y, time.January, time.Monday, 3, loc),    // Martin Luther King Jr. Day
		nthWeekday(y, time.February, time.Monday, 3, loc),   // Washington's Birthday
		lastWeekday(y, time.May, time.Monday, loc),          // Memorial Day
		nthWeekday(y, time.September, time.Monday, 1, loc),  // Labor Day
		nthWeekday(y, time.November, time.Thursday, 4, loc), // Thanksgiving Day
		easterSunday(y, loc).AddDate(0, 0, -2),              // Good Friday
	}
	for _, h := range floating {
		if d.Equal(h) {
			return true
		}
	}

	return false
}

// observed maps a weekend holiday to the weekday the exchange closes on.
func observed(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, -1)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	}
	return d
}

// nthWeekday returns the n-th wd of the given month.
func nthWeekday(year int, month time.Month, wd time.Weekday, n int, loc *time.Location) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	offset := (int(wd) - int(first.Weekday()) + 7) % 7
	return first.AddDate(0, 0, offset+(n-1)*7)
}

// lastWeekday returns the final wd of the given month.
func lastWeekday(year int, month time.Month, wd time.Weekday, loc *time.Location) time.Time {
	last := time.Date(year, month+1, 1, 0, 0, 0, 0, loc).AddDate(0, 0, -1)
	offset := (int(last.Weekday()) - int(wd) + 7) % 7
	return last.AddDate(0, 0, -offset)
}

// easterSunday returns the date of Easter Sunday for a given year
// (Meeus/Jones/Butcher algorithm).
func easterSunday(year int, loc *time.Location) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
}
