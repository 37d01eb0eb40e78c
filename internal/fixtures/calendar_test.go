package fixtures

import (
	"testing"
	"time"
)

func TestIsTradingDay(t *testing.T) {
	cases := []struct {
		name string
		day  time.Time
		want bool
	}{
		{name: "regular tuesday", day: date(2025, time.September, 16), want: true},
		{name: "sunday", day: date(2025, time.September, 21), want: false},
		{name: "saturday", day: date(2025, time.September, 20), want: false},
		{name: "new year", day: date(2025, time.January, 1), want: false},
		{name: "mlk day", day: date(2025, time.January, 20), want: false},
		{name: "presidents day", day: date(2025, time.February, 17), want: false},
		{name: "good friday 2025", day: date(2025, time.April, 18), want: false},
		{name: "good friday 2024", day: date(2024, time.March, 29), want: false},
		{name: "memorial day", day: date(2025, time.May, 26), want: false},
		{name: "juneteenth", day: date(2025, time.June, 19), want: false},
		{name: "independence day observed friday", day: date(2026, time.July, 3), want: false},
		{name: "labor day", day: date(2025, time.September, 1), want: false},
		{name: "thanksgiving", day: date(2025, time.November, 27), want: false},
		{name: "christmas", day: date(2025, time.December, 25), want: false},
		{name: "christmas observed monday", day: date(2022, time.December, 26), want: false},
		{name: "new year on saturday not moved", day: date(2021, time.December, 31), want: true},
		{name: "day after thanksgiving", day: date(2025, time.November, 28), want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsTradingDay(tc.day); got != tc.want {
				t.Fatalf("IsTradingDay(%s)=%v, want %v", tc.day.Format(time.DateOnly), got, tc.want)
			}
		})
	}
}

func TestEasterSunday(t *testing.T) {
	cases := map[int]time.Time{
		2024: date(2024, time.March, 31),
		2025: date(2025, time.April, 20),
		2026: date(2026, time.April, 5),
	}
	for year, want := range cases {
		if got := easterSunday(year); !got.Equal(want) {
			t.Fatalf("easter %d = %s, want %s", year, got, want)
		}
	}
}

func TestLastNTradingDays_CountAndOrder(t *testing.T) {
	from := time.Date(2025, 9, 20, 12, 30, 0, 0, time.UTC) // Sat
	days := LastNTradingDays(5, from)
	if len(days) != 5 {
		t.Fatalf("want 5 got %d", len(days))
	}
	if !days[0].Equal(date(2025, time.September, 19)) {
		t.Fatalf("most recent day = %s, want 2025-09-19", days[0])
	}
	for i := 0; i < len(days); i++ {
		if i > 0 && !days[i].Before(days[i-1]) {
			t.Fatal("dates should be strictly decreasing")
		}
		if !IsTradingDay(days[i]) {
			t.Fatalf("non-trading day returned: %s", days[i])
		}
	}
}
