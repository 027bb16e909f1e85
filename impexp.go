package drivelog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
)

// this file contains the CSV backup export.
// It keeps the exact column order and headers of the original application's
// backup files, so existing spreadsheets keep working.

// ErrNoRecords is returned when there is nothing to export.
var ErrNoRecords = errors.New("no records to export")

var csvHeader = []string{"Data", "KM", "Uber", "99", "Outros", "Combustivel", "Gastos", "Lucro"}

// ExportCSV writes every daily record to 'w' in the backup format, oldest
// first. An empty ledger is reported as ErrNoRecords and nothing is written.
func ExportCSV(w *csv.Writer, l *Ledger) error {
	if l.Len() == 0 {
		return ErrNoRecords
	}

	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("could not write export header: %w", err)
	}
	for r := range l.Records() {
		row := []string{
			r.Date.String(),
			strconv.FormatFloat(r.Km, 'f', -1, 64),
			r.Uber.Plain(),
			r.N99.Plain(),
			r.OtherIncome.Plain(),
			r.Fuel.Plain(),
			r.OtherExpense.Plain(),
			r.Profit().Plain(),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("could not write export row for %s: %w", r.Date, err)
		}
	}
	w.Flush()
	return w.Error()
}
