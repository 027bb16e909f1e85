package drivelog

import (
	"errors"
	"fmt"
	"iter"
	"sort"

	"github.com/etnz/drivelog/date"
)

// ErrValidation is wrapped by every error reported for a rejected mutation.
// A failed validation leaves the ledger untouched.
var ErrValidation = errors.New("validation failed")

func newValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Ledger holds the whole logbook state: one record per day, the maintenance
// history, and the configuration.
//
// Records are always kept in chronological order. Deleting, completing or
// marking something that does not exist is a deliberate no-op, not an error.
type Ledger struct {
	records     []DailyRecord
	maintenance []MaintenanceItem
	config      Config
}

// NewLedger creates an empty ledger with the default configuration.
func NewLedger() *Ledger {
	return &Ledger{config: DefaultConfig()}
}

// Config returns a copy of the current configuration.
func (l *Ledger) Config() Config { return l.config }

// Record returns the record for the given date, if any.
func (l *Ledger) Record(d date.Date) (DailyRecord, bool) {
	for _, r := range l.records {
		if r.Date == d {
			return r, true
		}
	}
	return DailyRecord{}, false
}

// Records iterates over all daily records in chronological order.
func (l *Ledger) Records() iter.Seq[DailyRecord] {
	return func(yield func(DailyRecord) bool) {
		for _, r := range l.records {
			if !yield(r) {
				return
			}
		}
	}
}

// Maintenance iterates over all maintenance items in entry order.
func (l *Ledger) Maintenance() iter.Seq[MaintenanceItem] {
	return func(yield func(MaintenanceItem) bool) {
		for _, m := range l.maintenance {
			if !yield(m) {
				return
			}
		}
	}
}

// Len returns the number of daily records.
func (l *Ledger) Len() int { return len(l.records) }

// UpsertRecord stores the record for its date, replacing any existing record
// for the same date. The stored copy always has SavedToReserve reset to
// false: re-saving a day means its savings slice must be confirmed again.
//
// The vehicle odometer follows the change: a fresh record adds its km, a
// replacement adds only the km delta, so editing a day never double-counts.
func (l *Ledger) UpsertRecord(r DailyRecord) error {
	if err := r.validate(); err != nil {
		return err
	}
	r.SavedToReserve = false

	for i, old := range l.records {
		if old.Date == r.Date {
			l.records[i] = r
			l.adjustOdometer(r.Km - old.Km)
			return nil
		}
	}
	l.records = append(l.records, r)
	l.adjustOdometer(r.Km)
	l.stableSort()
	return nil
}

// DeleteRecord removes the record for the given date and subtracts its km
// from the odometer. It is a no-op if there is no such record.
func (l *Ledger) DeleteRecord(d date.Date) {
	for i, r := range l.records {
		if r.Date == d {
			l.records = append(l.records[:i], l.records[i+1:]...)
			l.adjustOdometer(-r.Km)
			return
		}
	}
}

// MarkRecordSaved commits the day's savings slice to the reserve by setting
// the record's SavedToReserve flag. It is a no-op if there is no such record.
func (l *Ledger) MarkRecordSaved(d date.Date) {
	for i := range l.records {
		if l.records[i].Date == d {
			l.records[i].SavedToReserve = true
			return
		}
	}
}

// AddMaintenance validates and appends a maintenance item. An item without an
// ID is assigned one. If the serviced odometer is beyond the vehicle's, the
// vehicle odometer is raised to match. The stored item is returned.
func (l *Ledger) AddMaintenance(m MaintenanceItem) (MaintenanceItem, error) {
	if err := m.validate(); err != nil {
		return MaintenanceItem{}, err
	}
	if m.ID == "" {
		m.ID = newMaintenanceID()
	}
	m.Completed = false
	l.maintenance = append(l.maintenance, m)
	if m.Km > l.config.TotalVehicleKm {
		l.config.TotalVehicleKm = m.Km
	}
	return m, nil
}

// DeleteMaintenance removes the item with the given id, pending or completed.
// It is a no-op if there is no such item.
func (l *Ledger) DeleteMaintenance(id string) {
	for i, m := range l.maintenance {
		if m.ID == id {
			l.maintenance = append(l.maintenance[:i], l.maintenance[i+1:]...)
			return
		}
	}
}

// CompleteMaintenance marks the item as completed, which permanently debits
// its cost from the computed reserve balance. The transition is terminal and
// idempotent: completing a completed or unknown item is a no-op, so the cost
// can never be deducted twice.
func (l *Ledger) CompleteMaintenance(id string) {
	for i := range l.maintenance {
		if l.maintenance[i].ID == id {
			l.maintenance[i].Completed = true
			return
		}
	}
}

// UpdateConfig merges the non-nil fields of the patch into the configuration.
func (l *Ledger) UpdateConfig(p ConfigPatch) error {
	if err := p.validate(); err != nil {
		return err
	}
	l.config.apply(p)
	return nil
}

func (l *Ledger) adjustOdometer(deltaKm float64) {
	l.config.TotalVehicleKm += deltaKm
	if l.config.TotalVehicleKm < 0 {
		l.config.TotalVehicleKm = 0
	}
}

// stableSort sorts the records by date. The sort is stable, although dates
// are unique by construction.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.records, func(i, j int) bool {
		return l.records[i].Date.Before(l.records[j].Date)
	})
}
