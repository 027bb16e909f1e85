package date

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	d, err := Parse("2024-03-01")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if d != New(2024, time.March, 1) {
		t.Errorf("Parse() = %v, want 2024-03-01", d)
	}

	// Permissive single-digit form.
	d, err = Parse("2024-3-1")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if d.String() != "2024-03-01" {
		t.Errorf("String() = %q, want %q", d.String(), "2024-03-01")
	}

	if _, err := Parse("not-a-date"); err == nil {
		t.Error("Parse() expected an error for garbage input")
	}
}

func TestDate_Add(t *testing.T) {
	d := New(2024, time.December, 30)
	if got := d.Add(2).String(); got != "2025-01-01" {
		t.Errorf("Add(2) = %q, want 2025-01-01", got)
	}
	if got := d.Add(-30).String(); got != "2024-11-30" {
		t.Errorf("Add(-30) = %q, want 2024-11-30", got)
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := MustParse("2024-07-15")
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if string(b) != `"2024-07-15"` {
		t.Errorf("MarshalJSON() = %s", b)
	}
	var back Date
	if err := back.UnmarshalJSON(b); err != nil {
		t.Fatalf("UnmarshalJSON() error = %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}
