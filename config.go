package drivelog

// Config is the process-wide logbook configuration.
type Config struct {
	// SavingsPercentage is the share of each day's profit earmarked for the
	// virtual reserve, in [0, 100].
	SavingsPercentage Percent
	// TotalVehicleKm is the vehicle odometer. It follows the ledger: record
	// upserts and deletes adjust it by their km delta, and a maintenance
	// entry raises it to the serviced odometer if that is higher. It can
	// also be set directly in the configuration.
	TotalVehicleKm float64
	// AlertKm is the distance to a service threshold under which a pending
	// maintenance item becomes "upcoming".
	AlertKm float64
	// Theme is the display theme, persisted for the UI layers.
	Theme string
}

// DefaultConfig returns the configuration used for a fresh logbook and as
// fallback for missing persisted fields.
func DefaultConfig() Config {
	return Config{
		SavingsPercentage: 10,
		TotalVehicleKm:    0,
		AlertKm:           500,
		Theme:             "light",
	}
}

// ConfigPatch is a partial configuration update. Nil fields are left
// untouched by Ledger.UpdateConfig.
type ConfigPatch struct {
	SavingsPercentage *Percent
	TotalVehicleKm    *float64
	AlertKm           *float64
	Theme             *string
}

func (p ConfigPatch) validate() error {
	if p.SavingsPercentage != nil && (*p.SavingsPercentage < 0 || *p.SavingsPercentage > 100) {
		return newValidationError("savings percentage must be in [0, 100], got %v", *p.SavingsPercentage)
	}
	if p.TotalVehicleKm != nil && *p.TotalVehicleKm < 0 {
		return newValidationError("vehicle km must not be negative, got %v", *p.TotalVehicleKm)
	}
	if p.AlertKm != nil && *p.AlertKm < 0 {
		return newValidationError("alert km must not be negative, got %v", *p.AlertKm)
	}
	return nil
}

// apply merges the patch into c.
func (c *Config) apply(p ConfigPatch) {
	if p.SavingsPercentage != nil {
		c.SavingsPercentage = *p.SavingsPercentage
	}
	if p.TotalVehicleKm != nil {
		c.TotalVehicleKm = *p.TotalVehicleKm
	}
	if p.AlertKm != nil {
		c.AlertKm = *p.AlertKm
	}
	if p.Theme != nil {
		c.Theme = *p.Theme
	}
}
