package drivelog

// OverallReport is the single all-time aggregate over every record.
type OverallReport struct {
	Totals
}

func (r *OverallReport) IsEmpty() bool { return r.Days == 0 }

// NewOverallReport builds the all-time view of the ledger.
func NewOverallReport(l *Ledger) *OverallReport {
	report := &OverallReport{}
	for rec := range l.Records() {
		report.add(rec)
	}
	return report
}
