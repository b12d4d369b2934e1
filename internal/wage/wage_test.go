package wage

import "testing"

func TestTiered_Examples(t *testing.T) {
	r := DefaultRates()

	tests := []struct {
		name     string
		date     string
		start    string
		end      string
		expected int
	}{
		// 2026-06-06 is a Saturday: 30 morning minutes + 90 day minutes, both with surcharge
		{"saturday morning into day", "2026-06-06", "08:30", "10:30", 2625},
		{"weekday morning into day", "2026-06-08", "08:30", "10:30", 2525},
		{"weekday daytime only", "2026-06-08", "09:00", "13:00", 4960},
		{"sunday daytime only", "2026-06-07", "09:00", "13:00", 5160},
		{"weekday all three bands", "2026-06-08", "08:00", "23:00", 19005},
		{"weekday night only", "2026-06-08", "22:00", "23:30", 2332},
		{"fractional daytime truncated", "2026-06-08", "10:00", "10:20", 413},
		{"zero length", "2026-06-08", "10:00", "10:00", 0},
		{"inverted", "2026-06-08", "12:00", "10:00", 0},
		{"malformed start", "2026-06-08", "1000", "12:00", 0},
		{"until end of day", "2026-06-08", "22:00", "24:00", 3110},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Tiered(tt.date, tt.start, tt.end)
			if got != tt.expected {
				t.Errorf("Tiered(%q, %q, %q) = %d, expected %d", tt.date, tt.start, tt.end, got, tt.expected)
			}
		})
	}
}

func TestTiered_TruncatesTotalOnce(t *testing.T) {
	r := DefaultRates()

	// 10 morning minutes (221.67) + 10 day minutes (206.67) = 428.33
	got := r.Tiered("2026-06-08", "08:50", "09:10")
	if got != 428 {
		t.Errorf("Tiered() = %d, expected 428 (per-band flooring would give 427)", got)
	}
}

func TestTiered_DaytimeMatchesFormula(t *testing.T) {
	r := DefaultRates()

	for minutes := 0; minutes <= 13*60; minutes += 7 {
		start := 9 * 60
		got := r.TieredMinutes(false, start, start+minutes)
		expected := minutes * r.DayRate / 60
		if got != expected {
			t.Errorf("TieredMinutes(day, %d minutes) = %d, expected %d", minutes, got, expected)
		}
	}
}

func TestTiered_SpanningAllBandsIsSumOfBands(t *testing.T) {
	r := DefaultRates()
	start, end := 6*60, 23*60+30

	var sum int
	for _, b := range r.Bands(false) {
		sum += Overlap(start, end, b.Start, b.End) * b.Rate
	}
	if got := r.TieredMinutes(false, start, end); got != sum/60 {
		t.Errorf("TieredMinutes() = %d, expected %d", got, sum/60)
	}
}

func TestTiered_WeekendSurcharge(t *testing.T) {
	r := DefaultRates()

	intervals := [][2]int{
		{8 * 60, 10 * 60},
		{9 * 60, 17 * 60},
		{21 * 60, 23 * 60},
		{7 * 60, 23 * 60},
	}
	for _, iv := range intervals {
		weekday := r.TieredMinutes(false, iv[0], iv[1])
		weekend := r.TieredMinutes(true, iv[0], iv[1])
		minutes := iv[1] - iv[0]
		// Exact yen-minutes differ by minutes*surcharge; compare untruncated sums
		weekdayExact := 0
		weekendExact := 0
		for i, b := range r.Bands(false) {
			weekdayExact += Overlap(iv[0], iv[1], b.Start, b.End) * b.Rate
			weekendExact += Overlap(iv[0], iv[1], b.Start, b.End) * r.Bands(true)[i].Rate
		}
		if weekendExact-weekdayExact != minutes*r.WeekendSurcharge {
			t.Errorf("surcharge for %v = %d yen-minutes, expected %d", iv, weekendExact-weekdayExact, minutes*r.WeekendSurcharge)
		}
		if weekend < weekday {
			t.Errorf("weekend wage %d should not be below weekday wage %d", weekend, weekday)
		}
	}
}

func TestOverlap(t *testing.T) {
	tests := []struct {
		start, end, bStart, bEnd int
		expected                 int
	}{
		{0, 60, 0, 540, 60},
		{500, 600, 0, 540, 40},
		{600, 700, 0, 540, 0},
		{100, 50, 0, 540, 0},
		{0, 1440, 540, 1320, 780},
	}
	for _, tt := range tests {
		if got := Overlap(tt.start, tt.end, tt.bStart, tt.bEnd); got != tt.expected {
			t.Errorf("Overlap(%d, %d, %d, %d) = %d, expected %d", tt.start, tt.end, tt.bStart, tt.bEnd, got, tt.expected)
		}
	}
}

func TestHourly(t *testing.T) {
	tests := []struct {
		name     string
		rate     int
		start    string
		end      string
		expected int
	}{
		{"two hours", 1200, "10:00", "12:00", 2400},
		{"ninety minutes", 1100, "10:00", "11:30", 1650},
		{"truncates", 1000, "10:00", "10:10", 166},
		{"zero length", 1200, "10:00", "10:00", 0},
		{"inverted", 1200, "12:00", "10:00", 0},
		{"zero rate", 0, "10:00", "12:00", 0},
		{"malformed", 1200, "ten", "12:00", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hourly(tt.rate, tt.start, tt.end); got != tt.expected {
				t.Errorf("Hourly(%d, %q, %q) = %d, expected %d", tt.rate, tt.start, tt.end, got, tt.expected)
			}
		})
	}
}

func TestHourly_MonotonicInLength(t *testing.T) {
	prev := -1
	for minutes := -30; minutes <= 600; minutes += 5 {
		got := HourlyMinutes(1234, minutes)
		if got < prev {
			t.Fatalf("HourlyMinutes(1234, %d) = %d, decreased from %d", minutes, got, prev)
		}
		if minutes <= 0 && got != 0 {
			t.Errorf("HourlyMinutes(1234, %d) = %d, expected 0", minutes, got)
		}
		prev = got
	}
}

func TestPerDiem(t *testing.T) {
	tests := []struct {
		name        string
		description string
		expected    int
	}{
		{"full-width colon", "案件名：算数 / 日給：4,000円 / 勤務地：中央ふれあい館", 4000},
		{"ascii colon", "日給:12,500円", 12500},
		{"space after colon", "日給： 8000円", 8000},
		{"no match", "時給：1,200円", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PerDiem(tt.description); got != tt.expected {
				t.Errorf("PerDiem(%q) = %d, expected %d", tt.description, got, tt.expected)
			}
		})
	}
}

func TestRateTable_Validate(t *testing.T) {
	if err := DefaultRates().Validate(); err != nil {
		t.Errorf("DefaultRates().Validate() returned unexpected error: %v", err)
	}

	bad := DefaultRates()
	bad.MorningEnd = 23 * 60
	if err := bad.Validate(); err == nil {
		t.Error("Validate() should reject morning_end after night_start")
	}

	neg := DefaultRates()
	neg.DayRate = -1
	if err := neg.Validate(); err == nil {
		t.Error("Validate() should reject negative rates")
	}
}

func TestBreakdown(t *testing.T) {
	got := DefaultRates().Breakdown(8*60+30, 10*60+30)
	if got["morning"] != 30 || got["day"] != 90 || got["night"] != 0 {
		t.Errorf("Breakdown() = %v, expected morning=30 day=90", got)
	}
}
