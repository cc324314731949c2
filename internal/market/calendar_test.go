package market

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsTradingDay(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"regular Tuesday", day(2025, time.September, 16), true},
		{"Saturday", day(2025, time.September, 20), false},
		{"Sunday", day(2025, time.September, 21), false},
		{"New Year's Day", day(2025, time.January, 1), false},
		{"New Year's observed on Monday", day(2023, time.January, 2), false},
		{"Saturday New Year's not observed on prior Friday", day(2021, time.December, 31), true},
		{"Martin Luther King Jr. Day", day(2025, time.January, 20), false},
		{"Washington's Birthday", day(2025, time.February, 17), false},
		{"Good Friday 2024", day(2024, time.March, 29), false},
		{"Good Friday 2025", day(2025, time.April, 18), false},
		{"Memorial Day", day(2025, time.May, 26), false},
		{"Juneteenth", day(2025, time.June, 19), false},
		{"Juneteenth not yet observed in 2021", day(2021, time.June, 18), true},
		{"Independence Day", day(2025, time.July, 4), false},
		{"Independence Day observed on Friday", day(2026, time.July, 3), false},
		{"Monday after Saturday July 4th", day(2026, time.July, 6), true},
		{"Labor Day", day(2025, time.September, 1), false},
		{"Thanksgiving", day(2025, time.November, 27), false},
		{"Christmas", day(2025, time.December, 25), false},
		{"Christmas observed on Friday", day(2021, time.December, 24), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTradingDay(tt.date); got != tt.want {
				t.Errorf("IsTradingDay(%s) = %v, want %v", tt.date.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestLastNTradingDays(t *testing.T) {
	got := LastNTradingDays(5, day(2025, time.September, 20)) // a Saturday

	want := []time.Time{
		day(2025, time.September, 19),
		day(2025, time.September, 18),
		day(2025, time.September, 17),
		day(2025, time.September, 16),
		day(2025, time.September, 15),
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d days, got %d", len(want), len(got))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("day %d: expected %s, got %s", i, want[i].Format("2006-01-02"), got[i].Format("2006-01-02"))
		}
	}
}

func TestLastNTradingDays_SkipsHolidays(t *testing.T) {
	// Walking back from Wed Sep 3 2025 crosses Labor Day (Mon Sep 1) and the
	// preceding weekend.
	got := LastNTradingDays(4, day(2025, time.September, 3))

	want := []time.Time{
		day(2025, time.September, 3),
		day(2025, time.September, 2),
		day(2025, time.August, 29),
		day(2025, time.August, 28),
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d days, got %d", len(want), len(got))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("day %d: expected %s, got %s", i, want[i].Format("2006-01-02"), got[i].Format("2006-01-02"))
		}
	}
}

func TestLastNTradingDays_TruncatesTimeOfDay(t *testing.T) {
	from := time.Date(2025, time.September, 19, 15, 45, 12, 0, time.UTC) // a Friday afternoon
	got := LastNTradingDays(1, from)

	if len(got) != 1 {
		t.Fatalf("expected 1 day, got %d", len(got))
	}
	if !got[0].Equal(day(2025, time.September, 19)) {
		t.Errorf("expected midnight Sep 19, got %s", got[0])
	}
}

func TestLastNTradingDays_Zero(t *testing.T) {
	if got := LastNTradingDays(0, day(2025, time.September, 19)); len(got) != 0 {
		t.Errorf("expected empty slice, got %v", got)
	}
}

func TestEasterSunday(t *testing.T) {
	tests := []struct {
		year int
		want time.Time
	}{
		{2000, day(2000, time.April, 23)},
		{2024, day(2024, time.March, 31)},
		{2025, day(2025, time.April, 20)},
		{2026, day(2026, time.April, 5)},
	}

	for _, tt := range tests {
		if got := easterSunday(tt.year, time.UTC); !got.Equal(tt.want) {
			t.Errorf("easterSunday(%d) = %s, want %s", tt.year, got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
		}
	}
}
