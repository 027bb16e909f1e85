package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/drivelog"
	md "github.com/nao1215/markdown"
)

// DayMarkdown renders a single day's record with its derived metrics.
func DayMarkdown(s drivelog.DayStats) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	r := s.Record
	doc.H1(fmt.Sprintf("Day %s", r.Date))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Profit"),
			md.Bold(r.Profit().SignedString()),
		},
		Rows: [][]string{
			{"Distance", km(r.Km)},
			{"Income", r.TotalIncome().String()},
			{"Expenses", r.TotalExpenses().String()},
			{"Profit / km", s.ProfitPerKm.String()},
			{"Margin", s.Margin.String()},
		},
	})

	if !r.TotalIncome().IsZero() {
		doc.H2("Income Split")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Source", "Amount", "Share"},
		}
		if !r.Uber.IsZero() {
			table.Rows = append(table.Rows, []string{"Uber", r.Uber.String(), s.UberShare.String()})
		}
		if !r.N99.IsZero() {
			table.Rows = append(table.Rows, []string{"99", r.N99.String(), s.N99Share.String()})
		}
		if !r.OtherIncome.IsZero() {
			table.Rows = append(table.Rows, []string{"Outros", r.OtherIncome.String(), s.OtherShare.String()})
		}
		doc.Table(table)
	}

	if s.Savings.IsPositive() {
		state := "not committed yet"
		if r.SavedToReserve {
			state = "committed"
		}
		doc.PlainText(fmt.Sprintf("Reserve slice: %s (%s)", s.Savings, state))
	}

	return doc.String()
}

// DailyMarkdown renders the per-day view, newest date first.
func DailyMarkdown(r *drivelog.DailyReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Daily Report")
	if r.IsEmpty() {
		doc.PlainText("No records yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "KM", "Income", "Expenses", "Profit", "R$/km", "Margin"},
	}
	for _, s := range r.Days {
		rec := s.Record
		table.Rows = append(table.Rows, []string{
			rec.Date.String(),
			km(rec.Km),
			rec.TotalIncome().String(),
			rec.TotalExpenses().String(),
			rec.Profit().SignedString(),
			s.ProfitPerKm.String(),
			s.Margin.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
