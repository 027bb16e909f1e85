package drivelog

// This file holds the pieces shared by the daily, weekly, monthly and overall
// views: the running totals of a bucket and the zero-guarded ratios.
//
// Every view is a pure function of the full record set, recomputed on demand.

// Totals accumulates the sums of a reporting bucket.
type Totals struct {
	Days         int // number of records in the bucket
	Km           float64
	Uber         Money
	N99          Money
	OtherIncome  Money
	Fuel         Money
	OtherExpense Money
	Income       Money
	Expenses     Money
}

func (t *Totals) add(r DailyRecord) {
	t.Days++
	t.Km += r.Km
	t.Uber = t.Uber.Add(r.Uber)
	t.N99 = t.N99.Add(r.N99)
	t.OtherIncome = t.OtherIncome.Add(r.OtherIncome)
	t.Fuel = t.Fuel.Add(r.Fuel)
	t.OtherExpense = t.OtherExpense.Add(r.OtherExpense)
	t.Income = t.Income.Add(r.TotalIncome())
	t.Expenses = t.Expenses.Add(r.TotalExpenses())
}

// Profit is the bucket's net result.
func (t Totals) Profit() Money { return t.Income.Sub(t.Expenses) }

// ProfitPerKm is the net result per driven km, 0 for a bucket without
// distance.
func (t Totals) ProfitPerKm() Money {
	if t.Km == 0 {
		return BRL(0)
	}
	return t.Profit().Div(t.Km)
}

// Margin is the profit share of the income, 0 for a bucket without income.
func (t Totals) Margin() Percent { return ratio(t.Profit(), t.Income) }

// UberShare is the Uber share of the bucket income.
func (t Totals) UberShare() Percent { return ratio(t.Uber, t.Income) }

// N99Share is the 99 share of the bucket income.
func (t Totals) N99Share() Percent { return ratio(t.N99, t.Income) }

// OtherShare is the remaining income share.
func (t Totals) OtherShare() Percent { return ratio(t.OtherIncome, t.Income) }

// AvgProfitPerDay is the mean daily net result, 0 for an empty bucket.
func (t Totals) AvgProfitPerDay() Money {
	if t.Days == 0 {
		return BRL(0)
	}
	return t.Profit().Div(float64(t.Days))
}

// AvgKmPerDay is the mean daily distance, 0 for an empty bucket.
func (t Totals) AvgKmPerDay() float64 {
	if t.Days == 0 {
		return 0
	}
	return t.Km / float64(t.Days)
}

// ratio returns part over whole as a percentage. Following the zero-guard
// rule of every view, a zero denominator yields 0, never a division error or
// an infinity.
func ratio(part, whole Money) Percent {
	if whole.IsZero() {
		return 0
	}
	return Percent(100 * part.AsFloat() / whole.AsFloat())
}

// monthNames are the pt-BR month display names of the original application.
var monthNames = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}
