package drivelog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fill populates a ledger spanning two ISO weeks and two months.
func fill(t *testing.T) *Ledger {
	t.Helper()
	l := NewLedger()
	records := []DailyRecord{
		// 2024-W09 and March.
		day("2024-03-01", 200, 150, 50, 0, 40, 10), // profit 150
		day("2024-03-02", 100, 80, 0, 20, 30, 0),   // profit 70
		// 2024-W10 and March.
		day("2024-03-04", 150, 0, 120, 0, 50, 20), // profit 50
		// 2024-W09 and February (week straddles the month boundary).
		day("2024-02-28", 120, 90, 30, 0, 25, 5), // profit 90
	}
	for _, r := range records {
		if err := l.UpsertRecord(r); err != nil {
			t.Fatalf("UpsertRecord(%s) error = %v", r.Date, err)
		}
	}
	return l
}

func TestDailyReport(t *testing.T) {
	l := fill(t)
	report := NewDailyReport(l)
	if report.IsEmpty() {
		t.Fatal("IsEmpty() = true on a populated ledger")
	}
	if len(report.Days) != 4 {
		t.Fatalf("len(Days) = %d, want 4", len(report.Days))
	}

	// Newest first.
	for i := 1; i < len(report.Days); i++ {
		if report.Days[i].Record.Date.After(report.Days[i-1].Record.Date) {
			t.Fatal("daily view is not sorted newest first")
		}
	}

	first := report.Days[0] // 2024-03-04
	if got := first.Record.Date.String(); got != "2024-03-04" {
		t.Fatalf("Days[0].Date = %s, want 2024-03-04", got)
	}
	// profit 50 over 150 km.
	if want := BRL(50).Div(150); !first.ProfitPerKm.Equal(want) {
		t.Errorf("ProfitPerKm = %s, want %s", first.ProfitPerKm, want)
	}
	// margin 50/120.
	if want := Percent(100 * 50.0 / 120.0); !first.Margin.Equal(want) {
		t.Errorf("Margin = %s, want %s", first.Margin, want)
	}
	if !first.UberShare.Equal(0) || !first.N99Share.Equal(100) {
		t.Errorf("platform shares = %s/%s, want 0%%/100%%", first.UberShare, first.N99Share)
	}
}

func TestDailyReport_ZeroGuards(t *testing.T) {
	l := NewLedger()
	// A day with no distance and no income.
	if err := l.UpsertRecord(day("2024-03-01", 0, 0, 0, 0, 10, 0)); err != nil {
		t.Fatalf("UpsertRecord() error = %v", err)
	}
	report := NewDailyReport(l)
	stats := report.Days[0]
	if !stats.ProfitPerKm.IsZero() {
		t.Errorf("ProfitPerKm = %s for km=0, want 0", stats.ProfitPerKm)
	}
	for name, p := range map[string]Percent{
		"Margin":     stats.Margin,
		"UberShare":  stats.UberShare,
		"N99Share":   stats.N99Share,
		"OtherShare": stats.OtherShare,
	} {
		if !p.Equal(0) {
			t.Errorf("%s = %s for income=0, want 0", name, p)
		}
	}
}

func TestWeeklyReport(t *testing.T) {
	l := fill(t)
	report := NewWeeklyReport(l)
	if len(report.Weeks) != 2 {
		t.Fatalf("len(Weeks) = %d, want 2", len(report.Weeks))
	}

	// Newest key first.
	if report.Weeks[0].Key != "2024-W10" || report.Weeks[1].Key != "2024-W09" {
		t.Fatalf("week keys = %s, %s; want 2024-W10, 2024-W09", report.Weeks[0].Key, report.Weeks[1].Key)
	}

	w9 := report.Weeks[1]
	// 2024-02-28, 2024-03-01 and 2024-03-02 share ISO week 9.
	if w9.Days != 3 {
		t.Fatalf("2024-W09 Days = %d, want 3", w9.Days)
	}
	if w9.Range.From.String() != "2024-02-26" || w9.Range.To.String() != "2024-03-03" {
		t.Errorf("2024-W09 range = [%s, %s], want [2024-02-26, 2024-03-03]", w9.Range.From, w9.Range.To)
	}
	if got := w9.Profit(); !got.Equal(BRL(310)) {
		t.Errorf("2024-W09 Profit() = %s, want R$310", got)
	}
	if want := BRL(310).Div(3); !w9.AvgProfitPerDay().Equal(want) {
		t.Errorf("AvgProfitPerDay() = %s, want %s", w9.AvgProfitPerDay(), want)
	}
}

func TestMonthlyReport(t *testing.T) {
	l := fill(t)
	report := NewMonthlyReport(l)
	if len(report.Months) != 2 {
		t.Fatalf("len(Months) = %d, want 2", len(report.Months))
	}
	march, feb := report.Months[0], report.Months[1]
	if march.Key != "2024-03" || feb.Key != "2024-02" {
		t.Fatalf("month keys = %s, %s; want 2024-03, 2024-02", march.Key, feb.Key)
	}
	if march.MonthName != "Março" || feb.MonthName != "Fevereiro" {
		t.Errorf("month names = %s, %s; want Março, Fevereiro", march.MonthName, feb.MonthName)
	}
	if march.Days != 3 || feb.Days != 1 {
		t.Errorf("days = %d, %d; want 3, 1", march.Days, feb.Days)
	}
	if got := march.AvgKmPerDay(); got != 150 {
		t.Errorf("March AvgKmPerDay() = %v, want 150", got)
	}
}

func TestBucketSumsMatchOverall(t *testing.T) {
	l := fill(t)
	overall := NewOverallReport(l)

	sum := func(buckets []Bucket) Totals {
		var total Totals
		for _, b := range buckets {
			total.Days += b.Days
			total.Km += b.Km
			total.Income = total.Income.Add(b.Income)
			total.Expenses = total.Expenses.Add(b.Expenses)
			total.Uber = total.Uber.Add(b.Uber)
			total.N99 = total.N99.Add(b.N99)
			total.OtherIncome = total.OtherIncome.Add(b.OtherIncome)
			total.Fuel = total.Fuel.Add(b.Fuel)
			total.OtherExpense = total.OtherExpense.Add(b.OtherExpense)
		}
		return total
	}

	weekly := sum(NewWeeklyReport(l).Weeks)
	monthly := sum(NewMonthlyReport(l).Months)

	if diff := cmp.Diff(overall.Totals, weekly, moneyComparer); diff != "" {
		t.Errorf("weekly bucket sums differ from overall totals (-overall +weekly):\n%s", diff)
	}
	if diff := cmp.Diff(overall.Totals, monthly, moneyComparer); diff != "" {
		t.Errorf("monthly bucket sums differ from overall totals (-overall +monthly):\n%s", diff)
	}
}

func TestOverallReport(t *testing.T) {
	l := fill(t)
	report := NewOverallReport(l)
	if report.IsEmpty() {
		t.Fatal("IsEmpty() = true on a populated ledger")
	}
	if report.Days != 4 || report.Km != 570 {
		t.Fatalf("Days = %d, Km = %v; want 4, 570", report.Days, report.Km)
	}
	if got := report.Profit(); !got.Equal(BRL(360)) {
		t.Errorf("Profit() = %s, want R$360", got)
	}
	if got := report.AvgKmPerDay(); got != 142.5 {
		t.Errorf("AvgKmPerDay() = %v, want 142.5", got)
	}
	if want := BRL(90); !report.AvgProfitPerDay().Equal(want) {
		t.Errorf("AvgProfitPerDay() = %s, want %s", report.AvgProfitPerDay(), want)
	}
}

func TestReports_EmptyStates(t *testing.T) {
	l := NewLedger()
	if !NewDailyReport(l).IsEmpty() {
		t.Error("daily view of an empty ledger is not empty")
	}
	if !NewWeeklyReport(l).IsEmpty() {
		t.Error("weekly view of an empty ledger is not empty")
	}
	if !NewMonthlyReport(l).IsEmpty() {
		t.Error("monthly view of an empty ledger is not empty")
	}
	if !NewOverallReport(l).IsEmpty() {
		t.Error("overall view of an empty ledger is not empty")
	}
}
