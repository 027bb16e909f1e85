package drivelog

import (
	"sort"

	"github.com/etnz/drivelog/date"
)

// DayStats is one record of the daily view with its derived metrics.
type DayStats struct {
	Record      DailyRecord
	ProfitPerKm Money   // 0 when the day has no distance
	Margin      Percent // 0 when the day has no income
	UberShare   Percent
	N99Share    Percent
	OtherShare  Percent
	// Savings is the day's earmarked reserve slice at the current
	// configuration, whether committed or not.
	Savings Money
}

// DailyReport is the per-day view over all records, newest date first.
type DailyReport struct {
	Days []DayStats
}

// IsEmpty reports whether there is no data to show. Renderers must show an
// explicit "no records" state in that case.
func (r *DailyReport) IsEmpty() bool { return len(r.Days) == 0 }

// NewDailyReport builds the daily view of the ledger.
func NewDailyReport(l *Ledger) *DailyReport {
	report := &DailyReport{}
	for rec := range l.Records() {
		report.Days = append(report.Days, newDayStats(l, rec))
	}
	sort.Slice(report.Days, func(i, j int) bool {
		return report.Days[j].Record.Date.Before(report.Days[i].Record.Date)
	})
	return report
}

func newDayStats(l *Ledger, rec DailyRecord) DayStats {
	profitPerKm := BRL(0)
	if rec.Km > 0 {
		profitPerKm = rec.Profit().Div(rec.Km)
	}
	income := rec.TotalIncome()
	return DayStats{
		Record:      rec,
		ProfitPerKm: profitPerKm,
		Margin:      ratio(rec.Profit(), income),
		UberShare:   ratio(rec.Uber, income),
		N99Share:    ratio(rec.N99, income),
		OtherShare:  ratio(rec.OtherIncome, income),
		Savings:     l.SavingsSlice(rec),
	}
}

// NewDayStats builds the single-day view for the given date. The second
// return value is false when the day has no record.
func NewDayStats(l *Ledger, d date.Date) (DayStats, bool) {
	rec, ok := l.Record(d)
	if !ok {
		return DayStats{}, false
	}
	return newDayStats(l, rec), true
}
