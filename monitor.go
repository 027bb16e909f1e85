package drivelog

import "fmt"

// ServiceStatus is the urgency tier of a pending maintenance item.
type ServiceStatus int

const (
	// StatusOK means the next service threshold is comfortably away.
	StatusOK ServiceStatus = iota
	// StatusUpcoming means the threshold is within the configured alert
	// distance.
	StatusUpcoming
	// StatusOverdue means the odometer has reached or passed the threshold.
	StatusOverdue
)

func (s ServiceStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusUpcoming:
		return "upcoming"
	case StatusOverdue:
		return "overdue"
	default:
		return "unknown"
	}
}

// GaugeTier is the color tier of a progress gauge.
type GaugeTier int

const (
	TierSuccess GaugeTier = iota
	TierWarning
	TierDanger
)

func (t GaugeTier) String() string {
	switch t {
	case TierSuccess:
		return "success"
	case TierWarning:
		return "warning"
	case TierDanger:
		return "danger"
	default:
		return "unknown"
	}
}

// BudgetState qualifies the reserve-vs-cost gauge.
type BudgetState int

const (
	// BudgetNoCost means the item has no estimated cost; nothing to save for.
	BudgetNoCost BudgetState = iota
	// BudgetSaving means the reserve has not yet reached the estimated cost.
	BudgetSaving
	// BudgetReached means the reserve covers the estimated cost.
	BudgetReached
)

// PendingService is the monitor's evaluation of one pending maintenance item.
type PendingService struct {
	Item        MaintenanceItem
	KmRemaining float64
	Status      ServiceStatus

	// Progress is how far the vehicle has driven into the service interval,
	// clamped to [0, 100]. A zero or negative interval counts as fully due.
	Progress     Percent
	ProgressTier GaugeTier

	// Budget is the reserve coverage of the estimated cost, clamped to
	// [0, 100]. The gauge reads the single global reserve, so the same money
	// backs every pending item at once.
	Budget      Percent
	BudgetTier  GaugeTier
	BudgetState BudgetState
}

// CompletedService is a completed item with the amount it debited from the
// reserve. Read-only.
type CompletedService struct {
	Item    MaintenanceItem
	Debited Money
}

// MaintenanceReport is the full monitor view: per-item urgency and
// affordability against the current odometer and reserve.
type MaintenanceReport struct {
	CurrentKm float64
	Reserve   Money
	Pending   []PendingService
	Completed []CompletedService

	// HasAlert is raised when any pending item is overdue or upcoming.
	// Warnings holds one line per such item, naming the service.
	HasAlert bool
	Warnings []string
}

func (r *MaintenanceReport) IsEmpty() bool {
	return len(r.Pending) == 0 && len(r.Completed) == 0
}

// NewMaintenanceReport evaluates every maintenance item against the current
// odometer and reserve balance. Recomputed on every view load.
func NewMaintenanceReport(l *Ledger) *MaintenanceReport {
	report := &MaintenanceReport{
		CurrentKm: l.Config().TotalVehicleKm,
		Reserve:   l.ReserveBalance(),
	}
	alertKm := l.Config().AlertKm

	for item := range l.Maintenance() {
		if item.Completed {
			report.Completed = append(report.Completed, CompletedService{Item: item, Debited: item.Cost})
			continue
		}
		p := evaluatePending(item, report.CurrentKm, alertKm, report.Reserve)
		report.Pending = append(report.Pending, p)

		switch p.Status {
		case StatusOverdue:
			report.HasAlert = true
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("service overdue: %s (%v km past due)", item.Type.Label(), -p.KmRemaining))
		case StatusUpcoming:
			report.HasAlert = true
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("service due soon: %s (%v km left)", item.Type.Label(), p.KmRemaining))
		}
	}
	return report
}

func evaluatePending(item MaintenanceItem, currentKm, alertKm float64, reserve Money) PendingService {
	p := PendingService{
		Item:        item,
		KmRemaining: item.NextKm - currentKm,
	}

	switch {
	case p.KmRemaining <= 0:
		p.Status = StatusOverdue
	case p.KmRemaining <= alertKm:
		p.Status = StatusUpcoming
	default:
		p.Status = StatusOK
	}

	// Interval progress. A zero or negative interval means fully due.
	interval := item.NextKm - item.Km
	if interval <= 0 {
		p.Progress = 100
	} else {
		p.Progress = Percent(100 * (currentKm - item.Km) / interval).Clamp()
	}
	switch {
	case p.Progress >= 90:
		p.ProgressTier = TierDanger
	case p.Progress >= 70:
		p.ProgressTier = TierWarning
	default:
		p.ProgressTier = TierSuccess
	}

	// Reserve coverage of the estimated cost.
	switch {
	case item.Cost.IsZero():
		p.Budget = 100
		p.BudgetTier = TierSuccess
		p.BudgetState = BudgetNoCost
	default:
		if reserve.IsPositive() {
			p.Budget = Percent(100 * reserve.AsFloat() / item.Cost.AsFloat()).Clamp()
		}
		half := item.Cost.Share(50)
		switch {
		case reserve.LessThan(half):
			p.BudgetTier = TierDanger
		case reserve.LessThan(item.Cost):
			p.BudgetTier = TierWarning
		default:
			p.BudgetTier = TierSuccess
		}
		if reserve.GreaterThanOrEqual(item.Cost) {
			p.BudgetState = BudgetReached
		} else {
			p.BudgetState = BudgetSaving
		}
	}
	return p
}
