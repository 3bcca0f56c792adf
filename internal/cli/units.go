package cli

import "github.com/alexanderramin/athlog/internal/domain"

const lbsToKg = 1.0 / 2.20462

// weightToKg converts user input in display units to the canonical kg.
func weightToKg(v float64, units domain.Units) float64 {
	if units == domain.UnitsImperial {
		return v * lbsToKg
	}
	return v
}

// distanceToKm converts user input in display units to the canonical km.
func distanceToKm(v float64, units domain.Units) float64 {
	if units == domain.UnitsImperial {
		return v * domain.MileToKm
	}
	return v
}
