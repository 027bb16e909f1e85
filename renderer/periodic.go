package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/drivelog"
	md "github.com/nao1215/markdown"
)

// WeeklyMarkdown renders the ISO-week view, newest week first.
func WeeklyMarkdown(r *drivelog.WeeklyReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Weekly Report")
	if r.IsEmpty() {
		doc.PlainText("No records yet.")
		return doc.String()
	}

	table := bucketTable("Week")
	for _, b := range r.Weeks {
		label := fmt.Sprintf("%s (%s to %s)", b.Key, b.Range.From, b.Range.To)
		table.Rows = append(table.Rows, bucketRow(label, b))
	}
	doc.Table(table)

	return doc.String()
}

// MonthlyMarkdown renders the calendar-month view, newest month first.
func MonthlyMarkdown(r *drivelog.MonthlyReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Monthly Report")
	if r.IsEmpty() {
		doc.PlainText("No records yet.")
		return doc.String()
	}

	table := bucketTable("Month")
	for _, b := range r.Months {
		label := fmt.Sprintf("%s %d", b.MonthName, b.Year)
		table.Rows = append(table.Rows, bucketRow(label, b))
	}
	doc.Table(table)

	return doc.String()
}

func bucketTable(period string) md.TableSet {
	return md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{period, "Days", "KM", "Income", "Expenses", "Profit", "R$/km", "Avg/day"},
	}
}

func bucketRow(label string, b drivelog.Bucket) []string {
	return []string{
		label,
		fmt.Sprintf("%d", b.Days),
		km(b.Km),
		b.Income.String(),
		b.Expenses.String(),
		b.Profit().SignedString(),
		b.ProfitPerKm().String(),
		b.AvgProfitPerDay().String(),
	}
}
