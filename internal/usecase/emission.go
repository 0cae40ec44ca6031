package usecase

import (
	"math"

	"github.com/shoplens/backend/internal/domain"
)

// FootprintNotes is attached to every sustainability report. The factor
// tables below are illustrative defaults, not calibrated per carrier, lane,
// or material.
const FootprintNotes = "Approximate footprint only. Use calibrated factors per carrier/lane/materials for production accuracy."

// Default emission factors, g CO2e per tonne-km of freight work.
var shippingFactors = map[domain.TransportMode]float64{
	domain.TransportAir:  500,
	domain.TransportRoad: 120,
	domain.TransportRail: 30,
	domain.TransportSea:  10,
}

// Default emission factors, g CO2e per kg of packaging material.
var packagingFactors = map[domain.PackagingType]float64{
	domain.PackagingPlastic:   3300,
	domain.PackagingPaper:     800,
	domain.PackagingCardboard: 700,
	domain.PackagingMixed:     1500,
}

// EstimateShippingCO2e converts a shipment's weight, distance, and transport
// mode into a CO2-equivalent mass. tonne-km = (kg / 1000) * km. An unknown
// mode contributes a zero factor; the result is floored at 0.
func EstimateShippingCO2e(weightKg, distanceKm float64, mode domain.TransportMode) domain.ShippingEstimate {
	tonneKm := weightKg / 1000 * distanceKm
	ef := shippingFactors[mode]
	return domain.ShippingEstimate{
		GramsCO2e:     math.Max(0, tonneKm*ef),
		TonneKm:       tonneKm,
		FactorGPerTKm: ef,
	}
}

// EstimatePackagingCO2e converts a packaging material and weight into a
// CO2-equivalent mass. An unknown packaging type contributes a zero factor;
// the result is floored at 0.
func EstimatePackagingCO2e(packaging domain.PackagingType, packagingWeightKg float64) domain.PackagingEstimate {
	ef := packagingFactors[packaging]
	return domain.PackagingEstimate{
		GramsCO2e:         math.Max(0, packagingWeightKg*ef),
		PackagingWeightKg: packagingWeightKg,
		FactorGPerKg:      ef,
	}
}

// ToKgCO2e converts grams to kilograms, rounded to 3 decimal places for
// presentation.
func ToKgCO2e(grams float64) float64 {
	return round3(grams / 1000)
}

// round3 rounds to 3 decimal places.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
