package domain

// TransportMode is the freight mode used for a shipping emission estimate.
type TransportMode string

const (
	TransportAir  TransportMode = "air"
	TransportRoad TransportMode = "road"
	TransportRail TransportMode = "rail"
	TransportSea  TransportMode = "sea"
)

// Valid reports whether the mode is one of the supported values.
func (m TransportMode) Valid() bool {
	switch m {
	case TransportAir, TransportRoad, TransportRail, TransportSea:
		return true
	}
	return false
}

// PackagingType is the packaging material used for a packaging emission
// estimate.
type PackagingType string

const (
	PackagingPlastic   PackagingType = "plastic"
	PackagingPaper     PackagingType = "paper"
	PackagingCardboard PackagingType = "cardboard"
	PackagingMixed     PackagingType = "mixed"
)

// Valid reports whether the packaging type is one of the supported values.
func (p PackagingType) Valid() bool {
	switch p {
	case PackagingPlastic, PackagingPaper, PackagingCardboard, PackagingMixed:
		return true
	}
	return false
}

// ShippingEstimate is the result of a shipping footprint calculation.
type ShippingEstimate struct {
	GramsCO2e     float64 `json:"gramsCO2e"`
	TonneKm       float64 `json:"tonneKm"`
	FactorGPerTKm float64 `json:"ef_g_per_tkm"`
}

// PackagingEstimate is the result of a packaging footprint calculation.
type PackagingEstimate struct {
	GramsCO2e         float64 `json:"gramsCO2e"`
	PackagingWeightKg float64 `json:"packagingWeightKg"`
	FactorGPerKg      float64 `json:"ef_g_per_kg"`
}

// SustainabilityInputs echoes the effective parameters an estimate ran with.
type SustainabilityInputs struct {
	WeightKg          float64       `json:"weightKg"`
	DistanceKm        float64       `json:"distanceKm"`
	Transport         TransportMode `json:"transport"`
	Packaging         PackagingType `json:"packaging"`
	PackagingWeightKg float64       `json:"packagingWeightKg"`
}

// SustainabilityBreakdown splits the footprint into its shipping and
// packaging parts, each rounded to whole grams.
type SustainabilityBreakdown struct {
	ShippingGCO2e  int64 `json:"shipping_gCO2e"`
	PackagingGCO2e int64 `json:"packaging_gCO2e"`
}

// SustainabilityTotals reports the combined footprint in grams (rounded) and
// kilograms (3 decimal places).
type SustainabilityTotals struct {
	TotalGCO2e  int64   `json:"total_gCO2e"`
	TotalKgCO2e float64 `json:"total_kgCO2e"`
}

// SustainabilityReport is the full outcome of a sustainability estimate.
type SustainabilityReport struct {
	Inputs    SustainabilityInputs    `json:"inputs"`
	Breakdown SustainabilityBreakdown `json:"breakdown"`
	Totals    SustainabilityTotals    `json:"totals"`
	Notes     string                  `json:"notes"`
}
