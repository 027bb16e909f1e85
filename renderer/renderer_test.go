package renderer

import (
	"io"
	"strings"
	"testing"

	"github.com/etnz/drivelog"
	"github.com/etnz/drivelog/date"
)

func testLedger(t *testing.T) *drivelog.Ledger {
	t.Helper()
	l := drivelog.NewLedger()
	records := []drivelog.DailyRecord{
		{Date: date.MustParse("2024-03-01"), Km: 200, Uber: drivelog.BRL(150), N99: drivelog.BRL(50), Fuel: drivelog.BRL(40), OtherExpense: drivelog.BRL(10)},
		{Date: date.MustParse("2024-03-04"), Km: 150, N99: drivelog.BRL(120), Fuel: drivelog.BRL(70)},
	}
	for _, r := range records {
		if err := l.UpsertRecord(r); err != nil {
			t.Fatalf("UpsertRecord() error = %v", err)
		}
	}
	l.MarkRecordSaved(date.MustParse("2024-03-01"))
	return l
}

func mustContain(t *testing.T, got string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("output misses %q:\n%s", want, got)
		}
	}
}

func TestDayMarkdown(t *testing.T) {
	l := testLedger(t)
	s, ok := drivelog.NewDayStats(l, date.MustParse("2024-03-01"))
	if !ok {
		t.Fatal("day not found")
	}
	got := DayMarkdown(s)
	mustContain(t, got, "Day 2024-03-01", "200 km", "Uber", "75.00%", "committed")
	if strings.Contains(got, "Outros") {
		t.Errorf("zero income source must not be listed:\n%s", got)
	}
}

func TestDailyMarkdown(t *testing.T) {
	got := DailyMarkdown(drivelog.NewDailyReport(testLedger(t)))
	mustContain(t, got, "Daily Report", "2024-03-04", "2024-03-01")
	// Newest first.
	if strings.Index(got, "2024-03-04") > strings.Index(got, "2024-03-01") {
		t.Errorf("days must render newest first:\n%s", got)
	}
}

func TestDailyMarkdown_Empty(t *testing.T) {
	got := DailyMarkdown(drivelog.NewDailyReport(drivelog.NewLedger()))
	mustContain(t, got, "No records yet.")
}

func TestWeeklyMarkdown(t *testing.T) {
	got := WeeklyMarkdown(drivelog.NewWeeklyReport(testLedger(t)))
	mustContain(t, got, "Weekly Report", "2024-W09", "2024-W10")
}

func TestMonthlyMarkdown(t *testing.T) {
	got := MonthlyMarkdown(drivelog.NewMonthlyReport(testLedger(t)))
	mustContain(t, got, "Monthly Report", "Março 2024")
}

func TestOverallMarkdown(t *testing.T) {
	got := OverallMarkdown(drivelog.NewOverallReport(testLedger(t)))
	mustContain(t, got, "Overall Report", "Days worked", "350 km", "Income Split")
}

func TestMaintenanceMarkdown(t *testing.T) {
	l := testLedger(t)
	item, err := l.AddMaintenance(drivelog.MaintenanceItem{
		Type: drivelog.OilChange, Date: date.MustParse("2024-02-01"),
		Km: 100, NextKm: 10100, Cost: drivelog.BRL(250),
	})
	if err != nil {
		t.Fatalf("AddMaintenance() error = %v", err)
	}

	got := MaintenanceMarkdown(drivelog.NewMaintenanceReport(l))
	mustContain(t, got, "Maintenance", "Troca de Óleo", "Pending", "10100 km")

	l.CompleteMaintenance(item.ID)
	got = MaintenanceMarkdown(drivelog.NewMaintenanceReport(l))
	mustContain(t, got, "Completed", "R$")
}

func TestMaintenanceMarkdown_Empty(t *testing.T) {
	got := MaintenanceMarkdown(drivelog.NewMaintenanceReport(drivelog.NewLedger()))
	mustContain(t, got, "No maintenance items yet.")
}

func TestReserveMarkdown(t *testing.T) {
	l := testLedger(t)
	got := ReserveMarkdown(drivelog.NewReserveReport(l))
	mustContain(t, got, "Reserve", "Committed Days", "Pending Days", "2024-03-01", "2024-03-04")
	if strings.Contains(got, "Maintenance Debits") {
		t.Errorf("no debits expected:\n%s", got)
	}
}

func TestReserveMarkdown_Empty(t *testing.T) {
	got := ReserveMarkdown(drivelog.NewReserveReport(drivelog.NewLedger()))
	mustContain(t, got, "No contributions yet.")
}

func TestConditionalBlock(t *testing.T) {
	var b strings.Builder
	ConditionalBlock(&b, func(w io.Writer) bool {
		io.WriteString(w, "discarded")
		return false
	})
	ConditionalBlock(&b, func(w io.Writer) bool {
		io.WriteString(w, "kept")
		return true
	})
	if b.String() != "kept" {
		t.Errorf("ConditionalBlock output = %q, want %q", b.String(), "kept")
	}
}
