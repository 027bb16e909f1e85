package drivelog

import (
	"sort"

	"github.com/etnz/drivelog/date"
)

// Bucket is one aggregation group of the weekly or monthly view.
type Bucket struct {
	// Key identifies the bucket: "2025-W07" for weeks, "2025-02" for
	// months. Fixed-width formatting makes lexicographic order
	// chronological.
	Key string
	// Range covers the full calendar period of the bucket (weekly view
	// only; the monthly view identifies the period by MonthName and Year).
	Range date.Range
	// MonthName is the pt-BR month display name (monthly view only).
	MonthName string
	Year      int

	Totals
}

// WeeklyReport groups records by ISO-8601 week, newest first.
type WeeklyReport struct {
	Weeks []Bucket
}

func (r *WeeklyReport) IsEmpty() bool { return len(r.Weeks) == 0 }

// NewWeeklyReport builds the weekly view of the ledger. Weeks follow ISO
// 8601: Monday start, week 1 is the week containing the year's first
// Thursday.
func NewWeeklyReport(l *Ledger) *WeeklyReport {
	buckets := make(map[string]*Bucket)
	for rec := range l.Records() {
		key := rec.Date.ISOWeekKey()
		b, ok := buckets[key]
		if !ok {
			b = &Bucket{Key: key, Range: date.Weekly.Range(rec.Date)}
			buckets[key] = b
		}
		b.add(rec)
	}
	return &WeeklyReport{Weeks: sortBuckets(buckets)}
}

// MonthlyReport groups records by calendar month, newest first.
type MonthlyReport struct {
	Months []Bucket
}

func (r *MonthlyReport) IsEmpty() bool { return len(r.Months) == 0 }

// NewMonthlyReport builds the monthly view of the ledger. The bucket is
// derived from the record's calendar date directly, with no timezone
// conversion.
func NewMonthlyReport(l *Ledger) *MonthlyReport {
	buckets := make(map[string]*Bucket)
	for rec := range l.Records() {
		key := rec.Date.MonthKey()
		b, ok := buckets[key]
		if !ok {
			b = &Bucket{
				Key:       key,
				Range:     date.Monthly.Range(rec.Date),
				MonthName: monthNames[rec.Date.Month()-1],
				Year:      rec.Date.Year(),
			}
			buckets[key] = b
		}
		b.add(rec)
	}
	return &MonthlyReport{Months: sortBuckets(buckets)}
}

// sortBuckets flattens the bucket index newest key first.
func sortBuckets(buckets map[string]*Bucket) []Bucket {
	out := make([]Bucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key > out[j].Key })
	return out
}
