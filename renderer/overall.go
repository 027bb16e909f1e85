package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/drivelog"
	md "github.com/nao1215/markdown"
)

// OverallMarkdown renders the all-time view of the logbook.
func OverallMarkdown(r *drivelog.OverallReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Overall Report")
	if r.IsEmpty() {
		doc.PlainText("No records yet.")
		return doc.String()
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Total Profit"),
			md.Bold(r.Profit().SignedString()),
		},
		Rows: [][]string{
			{"Days worked", fmt.Sprintf("%d", r.Days)},
			{"Distance", km(r.Km)},
			{"Income", r.Income.String()},
			{"Expenses", r.Expenses.String()},
			{"Profit / km", r.ProfitPerKm().String()},
			{"Margin", r.Margin().String()},
			{"Avg profit / day", r.AvgProfitPerDay().String()},
			{"Avg km / day", km(r.AvgKmPerDay())},
		},
	})

	if !r.Income.IsZero() {
		doc.H2("Income Split")
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Source", "Amount", "Share"},
			Rows: [][]string{
				{"Uber", r.Uber.String(), r.UberShare().String()},
				{"99", r.N99.String(), r.N99Share().String()},
				{"Outros", r.OtherIncome.String(), r.OtherShare().String()},
			},
		})
	}

	return doc.String()
}
