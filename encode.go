package drivelog

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/etnz/drivelog/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The persisted document keeps the field names of the original application's
// payload, so an exported browser snapshot decodes as-is:
//
//	{ "records": [...], "maintenance": [...], "config": {...} }
//
// Decoding is deliberately tolerant: missing top-level keys, missing config
// fields and unknown extra fields all fall back to defaults instead of
// failing, so older or partially-shaped payloads keep loading.

type jrecord struct {
	Date         date.Date       `json:"date"`
	Km           float64         `json:"km"`
	Uber         decimal.Decimal `json:"uber"`
	N99          decimal.Decimal `json:"n99"`
	OtherIncome  decimal.Decimal `json:"other_income"`
	Fuel         decimal.Decimal `json:"fuel"`
	OtherExpense decimal.Decimal `json:"other_expense"`

	// Derived sums are persisted for payload parity but recomputed on load,
	// the stored values are never trusted.
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	Profit        decimal.Decimal `json:"profit"`

	// A nil flag means the record predates the reserve feature; those
	// legacy days count as already saved.
	SavedToReserve *bool `json:"saved_to_reserve"`
}

type jmaintenance struct {
	ID        string          `json:"id"`
	Type      ServiceType     `json:"type"`
	Date      date.Date       `json:"date"`
	Km        float64         `json:"km"`
	NextKm    float64         `json:"nextKm"`
	Cost      decimal.Decimal `json:"cost"`
	Completed bool            `json:"isCompleted"`
}

type jconfig struct {
	SavingsPercentage *Percent `json:"savingsPercentage"`
	TotalVehicleKm    *float64 `json:"totalVehicleKm"`
	AlertKm           *float64 `json:"alertKm"`
	Theme             *string  `json:"theme"`
}

type jledger struct {
	Records     []jrecord      `json:"records"`
	Maintenance []jmaintenance `json:"maintenance"`
	Config      jconfig        `json:"config"`
}

// DecodeLedger decodes a ledger from its JSON document.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	var doc jledger
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode ledger: %w", err)
	}

	l := NewLedger()
	l.config.apply(ConfigPatch(doc.Config))

	for _, jr := range doc.Records {
		saved := true // legacy records without the flag count as saved
		if jr.SavedToReserve != nil {
			saved = *jr.SavedToReserve
		}
		l.records = append(l.records, DailyRecord{
			Date:           jr.Date,
			Km:             jr.Km,
			Uber:           M(jr.Uber, DefaultCurrency),
			N99:            M(jr.N99, DefaultCurrency),
			OtherIncome:    M(jr.OtherIncome, DefaultCurrency),
			Fuel:           M(jr.Fuel, DefaultCurrency),
			OtherExpense:   M(jr.OtherExpense, DefaultCurrency),
			SavedToReserve: saved,
		})
	}
	l.stableSort()

	for _, jm := range doc.Maintenance {
		l.maintenance = append(l.maintenance, MaintenanceItem{
			ID:        jm.ID,
			Type:      jm.Type,
			Date:      jm.Date,
			Km:        jm.Km,
			NextKm:    jm.NextKm,
			Cost:      M(jm.Cost, DefaultCurrency),
			Completed: jm.Completed,
		})
	}
	return l, nil
}

// EncodeLedger writes the whole ledger as a single indented JSON document.
func EncodeLedger(w io.Writer, l *Ledger) error {
	doc := jledger{
		// Empty slices, not nulls, for the persisted arrays.
		Records:     make([]jrecord, 0, len(l.records)),
		Maintenance: make([]jmaintenance, 0, len(l.maintenance)),
	}

	cfg := l.config
	doc.Config = jconfig{
		SavingsPercentage: &cfg.SavingsPercentage,
		TotalVehicleKm:    &cfg.TotalVehicleKm,
		AlertKm:           &cfg.AlertKm,
		Theme:             &cfg.Theme,
	}

	for _, r := range l.records {
		saved := r.SavedToReserve
		doc.Records = append(doc.Records, jrecord{
			Date:           r.Date,
			Km:             r.Km,
			Uber:           rounded(r.Uber),
			N99:            rounded(r.N99),
			OtherIncome:    rounded(r.OtherIncome),
			Fuel:           rounded(r.Fuel),
			OtherExpense:   rounded(r.OtherExpense),
			TotalIncome:    rounded(r.TotalIncome()),
			TotalExpenses:  rounded(r.TotalExpenses()),
			Profit:         rounded(r.Profit()),
			SavedToReserve: &saved,
		})
	}
	for _, m := range l.maintenance {
		doc.Maintenance = append(doc.Maintenance, jmaintenance{
			ID:        m.ID,
			Type:      m.Type,
			Date:      m.Date,
			Km:        m.Km,
			NextKm:    m.NextKm,
			Cost:      rounded(m.Cost),
			Completed: m.Completed,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("could not encode ledger: %w", err)
	}
	return nil
}

func rounded(m Money) decimal.Decimal {
	return m.value.Round(2)
}
