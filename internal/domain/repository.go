package domain

import "context"

// CatalogSource loads the product catalog and its review index once at
// process start. Implementations never fail; a degraded source substitutes
// fallback data instead of returning an error.
type CatalogSource interface {
	Load() (products []Product, reviewsByProduct map[string][]Review)
}

// Commerce is the capability interface every transport (MCP tool, HTTP
// bridge) talks to. Callers stay implementation-agnostic; exactly one
// canonical engine implements it.
type Commerce interface {
	Search(query string, filters Filters) SearchResult
	Details(productID string) (*ProductDetails, error)
	Reviews(productID string, limit int) ([]Review, error)
	BudgetTop(query string, budgetMaxINR *float64, pref FeaturePreference, topK *int, filters *Filters) BudgetTopResponse
	Sustainability(weightKg, distanceKm *float64, transport TransportMode, packaging PackagingType, packagingWeightKg *float64) SustainabilityReport

	// Dispatch routes a boundary request to the matching operation.
	Dispatch(ctx context.Context, req ActionRequest) (any, error)
}
