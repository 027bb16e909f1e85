package drivelog

import "github.com/etnz/drivelog/date"

// DailyRecord is one logbook entry: a driver's income and expenses for a
// single calendar date. The date is the record's identity, there is at most
// one record per date in a ledger.
type DailyRecord struct {
	Date         date.Date
	Km           float64 // distance driven that day
	Uber         Money
	N99          Money // the 99 platform
	OtherIncome  Money
	Fuel         Money
	OtherExpense Money

	// SavedToReserve reports whether this day's savings slice has been
	// committed to the virtual reserve. It is reset to false whenever the
	// record is re-saved, so the driver confirms the new amount.
	SavedToReserve bool
}

// TotalIncome is the sum of all platform income for the day.
func (r DailyRecord) TotalIncome() Money {
	return r.Uber.Add(r.N99).Add(r.OtherIncome)
}

// TotalExpenses is the sum of all costs for the day.
func (r DailyRecord) TotalExpenses() Money {
	return r.Fuel.Add(r.OtherExpense)
}

// Profit is the day's net result, income minus expenses.
func (r DailyRecord) Profit() Money {
	return r.TotalIncome().Sub(r.TotalExpenses())
}

// validate checks field-level invariants: a set date, non-negative distance
// and amounts.
func (r DailyRecord) validate() error {
	if r.Date.IsZero() {
		return newValidationError("record date is required")
	}
	if r.Km < 0 {
		return newValidationError("km must not be negative, got %v", r.Km)
	}
	for _, a := range []struct {
		name   string
		amount Money
	}{
		{"uber", r.Uber},
		{"99", r.N99},
		{"other income", r.OtherIncome},
		{"fuel", r.Fuel},
		{"other expense", r.OtherExpense},
	} {
		if a.amount.IsNegative() {
			return newValidationError("%s amount must not be negative, got %s", a.name, a.amount)
		}
	}
	return nil
}
