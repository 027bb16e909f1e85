package date

import (
	"fmt"
	"strings"
)

// Period is a standard reporting bucket size.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

func ParsePeriod(p string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	default:
		return Daily, fmt.Errorf("unknown period %s", p)
	}
}

// StartOf returns the first day of the period containing d.
// Weeks are ISO-8601 weeks and start on Monday.
func (d Date) StartOf(p Period) Date {
	switch p {
	case Daily:
		return d
	case Weekly:
		// Monday is day 1; Sunday closes the week.
		offset := (int(d.Weekday()) + 6) % 7
		return d.Add(-offset)
	case Monthly:
		return New(d.y, d.m, 1)
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// EndOf returns the last day of the period containing d.
func (d Date) EndOf(p Period) Date {
	switch p {
	case Daily:
		return d
	case Weekly:
		return d.StartOf(Weekly).Add(6)
	case Monthly:
		return New(d.y, d.m+1, 0)
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// Range returns the full period range containing d.
func (p Period) Range(d Date) Range {
	return Range{From: d.StartOf(p), To: d.EndOf(p)}
}

// ISOWeekKey returns the ISO-8601 week identifier of d, e.g. "2025-W07".
//
// The year is the ISO week-numbering year (the year of the week's Thursday),
// which may differ from d.Year() around new year. The fixed-width format makes
// lexicographic order equal to chronological order.
func (d Date) ISOWeekKey() string {
	year, week := d.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// MonthKey returns the calendar month identifier of d, e.g. "2025-02".
func (d Date) MonthKey() string { return d.Format("2006-01") }
