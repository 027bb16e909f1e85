package renderer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/etnz/drivelog"
	md "github.com/nao1215/markdown"
)

// MaintenanceMarkdown renders the maintenance monitor: per-item urgency and
// reserve coverage against the current odometer.
func MaintenanceMarkdown(r *drivelog.MaintenanceReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Maintenance")
	doc.PlainText(fmt.Sprintf("Odometer: %s. Reserve: %s", km(r.CurrentKm), r.Reserve))

	if r.IsEmpty() {
		doc.PlainText("No maintenance items yet.")
		return doc.String()
	}

	for _, warning := range r.Warnings {
		doc.PlainText(md.Bold(fmt.Sprintf("⚠ %s", warning)))
	}

	if len(r.Pending) > 0 {
		doc.H2("Pending")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Service", "Next at", "Remaining", "Status", "Interval", "Budget"},
		}
		for _, p := range r.Pending {
			table.Rows = append(table.Rows, []string{
				p.Item.Type.Label(),
				km(p.Item.NextKm),
				km(p.KmRemaining),
				p.Status.String(),
				gauge(p.Progress, p.ProgressTier),
				budgetCell(p),
			})
		}
		doc.Table(table)
	}

	if len(r.Completed) > 0 {
		doc.H2("Completed")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Service", "Date", "At", "Cost"},
		}
		for _, c := range r.Completed {
			table.Rows = append(table.Rows, []string{
				c.Item.Type.Label(),
				c.Item.Date.String(),
				km(c.Item.Km),
				c.Debited.String(),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}

func budgetCell(p drivelog.PendingService) string {
	switch p.BudgetState {
	case drivelog.BudgetNoCost:
		return "no cost"
	case drivelog.BudgetReached:
		return fmt.Sprintf("%s covered", p.Item.Cost)
	default:
		return fmt.Sprintf("%s of %s", gauge(p.Budget, p.BudgetTier), p.Item.Cost)
	}
}

// ReserveMarkdown renders the reserve breakdown: committed slices, pending
// profitable days and maintenance debits.
func ReserveMarkdown(r *drivelog.ReserveReport) string {
	var b bytes.Buffer
	doc := md.NewMarkdown(&b)

	doc.H1("Reserve")
	doc.PlainText(fmt.Sprintf("Balance: %s (saving %s of each profitable day)", md.Bold(r.Balance.SignedString()), r.Percentage))

	if r.IsEmpty() {
		doc.PlainText("No contributions yet.")
		return doc.String()
	}
	out := doc.String()

	var tail bytes.Buffer
	ConditionalBlock(&tail, func(w io.Writer) bool {
		return entryTable(w, "Committed Days", r.Committed)
	})
	ConditionalBlock(&tail, func(w io.Writer) bool {
		return entryTable(w, "Pending Days", r.Pending)
	})
	ConditionalBlock(&tail, func(w io.Writer) bool {
		if len(r.Debits) == 0 {
			return false
		}
		var buf bytes.Buffer
		d := md.NewMarkdown(&buf)
		d.H2("Maintenance Debits")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignLeft,
				md.AlignRight,
			},
			Header: []string{"Service", "Date", "Cost"},
		}
		for _, m := range r.Debits {
			table.Rows = append(table.Rows, []string{m.Type.Label(), m.Date.String(), m.Cost.String()})
		}
		d.Table(table)
		io.WriteString(w, d.String())
		return true
	})
	return out + tail.String()
}

func entryTable(w io.Writer, title string, entries []drivelog.ReserveEntry) bool {
	if len(entries) == 0 {
		return false
	}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2(title)
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Profit", "Slice"},
	}
	for _, e := range entries {
		table.Rows = append(table.Rows, []string{e.Date.String(), e.Profit.String(), e.Slice.String()})
	}
	doc.Table(table)
	io.WriteString(w, doc.String())
	return true
}
