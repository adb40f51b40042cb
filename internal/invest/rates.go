package invest

import "errors"

// Rates defines the market assumptions shared by every calculation on one
// engine instance. Units:
// - AppreciationRate: annual fraction (0.04 = 4%/year)
// - VacancyRate: fraction of gross rent lost to vacancy
// - MaintenanceRate: annual maintenance as a fraction of purchase price
type Rates struct {
	AppreciationRate float64
	VacancyRate      float64
	MaintenanceRate  float64
}

// DefaultRates returns the baseline assumptions: 4% appreciation,
// 5% vacancy, 1% maintenance.
func DefaultRates() Rates {
	return Rates{
		AppreciationRate: 0.04,
		VacancyRate:      0.05,
		MaintenanceRate:  0.01,
	}
}

func (r Rates) Validate() error {
	if r.AppreciationRate <= -1 {
		return errors.New("AppreciationRate must be > -1")
	}
	if r.VacancyRate < 0 || r.VacancyRate > 1 {
		return errors.New("VacancyRate must be in [0, 1]")
	}
	if r.MaintenanceRate < 0 || r.MaintenanceRate > 1 {
		return errors.New("MaintenanceRate must be in [0, 1]")
	}
	return nil
}
