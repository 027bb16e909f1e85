package date

import "testing"

func TestISOWeekKey(t *testing.T) {
	testCases := []struct {
		date string
		want string
	}{
		// Mid-year, unambiguous.
		{"2024-03-01", "2024-W09"},
		// Monday 2024-12-30 belongs to ISO week 1 of 2025.
		{"2024-12-30", "2025-W01"},
		{"2024-12-31", "2025-W01"},
		{"2025-01-01", "2025-W01"},
		// Friday 2021-01-01 belongs to ISO week 53 of 2020.
		{"2021-01-01", "2020-W53"},
		// Single-digit weeks are zero padded.
		{"2025-02-20", "2025-W08"},
	}
	for _, tc := range testCases {
		t.Run(tc.date, func(t *testing.T) {
			if got := MustParse(tc.date).ISOWeekKey(); got != tc.want {
				t.Errorf("ISOWeekKey(%s) = %q, want %q", tc.date, got, tc.want)
			}
		})
	}
}

func TestStartEndOf(t *testing.T) {
	testCases := []struct {
		name   string
		date   string
		period Period
		from   string
		to     string
	}{
		{"week from wednesday", "2025-02-19", Weekly, "2025-02-17", "2025-02-23"},
		{"week from monday", "2025-02-17", Weekly, "2025-02-17", "2025-02-23"},
		{"week from sunday", "2025-02-23", Weekly, "2025-02-17", "2025-02-23"},
		{"week across year boundary", "2025-01-01", Weekly, "2024-12-30", "2025-01-05"},
		{"month", "2025-02-19", Monthly, "2025-02-01", "2025-02-28"},
		{"leap month", "2024-02-10", Monthly, "2024-02-01", "2024-02-29"},
		{"day", "2025-02-19", Daily, "2025-02-19", "2025-02-19"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := MustParse(tc.date)
			r := tc.period.Range(d)
			if r.From.String() != tc.from || r.To.String() != tc.to {
				t.Errorf("Range(%s, %s) = [%s, %s], want [%s, %s]", tc.period, tc.date, r.From, r.To, tc.from, tc.to)
			}
			if !r.Contains(d) {
				t.Errorf("Range(%s, %s) does not contain its own date", tc.period, tc.date)
			}
		})
	}
}

func TestParsePeriod(t *testing.T) {
	for in, want := range map[string]Period{"day": Daily, "Weekly": Weekly, " month ": Monthly} {
		got, err := ParsePeriod(in)
		if err != nil {
			t.Fatalf("ParsePeriod(%q) error = %v", in, err)
		}
		if got != want {
			t.Errorf("ParsePeriod(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParsePeriod("fortnight"); err == nil {
		t.Error("ParsePeriod() expected an error for unknown period")
	}
}
