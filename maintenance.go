package drivelog

import (
	"fmt"
	"strconv"
	"time"

	"github.com/etnz/drivelog/date"
)

// ServiceType identifies one of the fixed vehicle service categories.
type ServiceType string

const (
	OilChange   ServiceType = "oil_change"
	OilFilter   ServiceType = "oil_filter"
	AirFilter   ServiceType = "air_filter"
	CabinFilter ServiceType = "cabin_filter"
	FuelFilter  ServiceType = "fuel_filter"
	BrakePads   ServiceType = "brake_pads"
	Tires       ServiceType = "tires"
	Alignment   ServiceType = "alignment"
	General     ServiceType = "general"
)

type serviceInfo struct {
	group string
	label string
}

// serviceCatalog is the closed set of service categories, each with its
// display group and its fixed pt-BR label.
var serviceCatalog = map[ServiceType]serviceInfo{
	OilChange:   {"oil", "Troca de Óleo"},
	OilFilter:   {"oil", "Filtro de Óleo"},
	AirFilter:   {"air", "Filtro de Ar"},
	CabinFilter: {"air", "Filtro de Cabine"},
	FuelFilter:  {"air", "Filtro de Combustível"},
	BrakePads:   {"general", "Pastilhas de Freio"},
	Tires:       {"general", "Pneus"},
	Alignment:   {"general", "Alinhamento/Balanceamento"},
	General:     {"general", "Serviço Geral"},
}

// ServiceTypes lists every known service category, in catalog order.
func ServiceTypes() []ServiceType {
	return []ServiceType{OilChange, OilFilter, AirFilter, CabinFilter, FuelFilter, BrakePads, Tires, Alignment, General}
}

// Known reports whether t is part of the service catalog.
func (t ServiceType) Known() bool {
	_, ok := serviceCatalog[t]
	return ok
}

// Group returns the display group of the service ("oil", "air" or "general").
// Unknown types fall back to "general".
func (t ServiceType) Group() string {
	if info, ok := serviceCatalog[t]; ok {
		return info.group
	}
	return "general"
}

// Label returns the display label of the service. Unknown types are shown
// verbatim.
func (t ServiceType) Label() string {
	if info, ok := serviceCatalog[t]; ok {
		return info.label
	}
	return string(t)
}

// ParseServiceType parses a service category identifier, e.g. "oil_change".
func ParseServiceType(s string) (ServiceType, error) {
	t := ServiceType(s)
	if !t.Known() {
		return "", newValidationError("unknown service type %q", s)
	}
	return t, nil
}

// MaintenanceItem is a serviceable part or task tracked against the vehicle
// odometer.
type MaintenanceItem struct {
	ID   string
	Type ServiceType
	Date date.Date // when the part was last serviced/installed
	Km   float64   // odometer at last service
	// NextKm is the odometer threshold for the next service.
	// It must be strictly greater than Km.
	NextKm float64
	Cost   Money // estimated cost; debited from the reserve once completed
	// Completed marks the service as done and paid. It is terminal: a
	// completed item is immutable except for deletion.
	Completed bool
}

// newMaintenanceID generates an identity for a maintenance item, a millisecond
// timestamp like the original application used.
func newMaintenanceID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

func (m MaintenanceItem) validate() error {
	if !m.Type.Known() {
		return newValidationError("unknown service type %q", m.Type)
	}
	if m.Cost.IsNegative() {
		return newValidationError("cost must not be negative, got %s", m.Cost)
	}
	if m.NextKm <= m.Km {
		return newValidationError("next service km (%v) must be greater than the service km (%v)", m.NextKm, m.Km)
	}
	return nil
}

// String implements a compact description, used in logs and confirmations.
func (m MaintenanceItem) String() string {
	return fmt.Sprintf("%s at %v km, next at %v km (%s)", m.Type.Label(), m.Km, m.NextKm, m.Cost)
}
