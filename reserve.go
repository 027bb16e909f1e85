package drivelog

import "github.com/etnz/drivelog/date"

// SavingsSlice returns the share of the record's profit earmarked for the
// reserve, at the current savings percentage. Days without a positive profit
// contribute nothing.
func (l *Ledger) SavingsSlice(r DailyRecord) Money {
	profit := r.Profit()
	if !profit.IsPositive() {
		return BRL(0)
	}
	return profit.Share(l.config.SavingsPercentage)
}

// ReserveEntry is one profitable day's contribution to the reserve.
type ReserveEntry struct {
	Date   date.Date
	Profit Money
	Slice  Money
}

// ReserveReport details how the reserve balance comes together: committed
// slices in, completed maintenance costs out, and the profitable days whose
// slice has not been committed yet.
type ReserveReport struct {
	Balance    Money
	Percentage Percent

	Committed []ReserveEntry
	Pending   []ReserveEntry

	// Debits are the completed maintenance items, newest entry last.
	Debits []MaintenanceItem
}

func (r *ReserveReport) IsEmpty() bool {
	return len(r.Committed) == 0 && len(r.Pending) == 0 && len(r.Debits) == 0
}

// NewReserveReport breaks the reserve down per contributing day and per debit.
func NewReserveReport(l *Ledger) *ReserveReport {
	report := &ReserveReport{
		Balance:    l.ReserveBalance(),
		Percentage: l.config.SavingsPercentage,
	}
	for _, r := range l.records {
		slice := l.SavingsSlice(r)
		if slice.IsZero() {
			continue
		}
		entry := ReserveEntry{Date: r.Date, Profit: r.Profit(), Slice: slice}
		if r.SavedToReserve {
			report.Committed = append(report.Committed, entry)
		} else {
			report.Pending = append(report.Pending, entry)
		}
	}
	for _, m := range l.maintenance {
		if m.Completed {
			report.Debits = append(report.Debits, m)
		}
	}
	return report
}

// ReserveBalance computes the virtual reserve: the sum of the committed
// savings slices of every profitable day, minus the cost of every completed
// maintenance item. It can be negative.
//
// The balance is a pure function of the ledger, recomputed on demand, so it
// is always consistent with the latest mutation.
func (l *Ledger) ReserveBalance() Money {
	balance := BRL(0)
	for _, r := range l.records {
		if r.SavedToReserve {
			balance = balance.Add(l.SavingsSlice(r))
		}
	}
	for _, m := range l.maintenance {
		if m.Completed {
			balance = balance.Sub(m.Cost)
		}
	}
	return balance
}
