package domain

// Supported action discriminators for the commerce dispatch boundary.
const (
	ActionPing           = "ping"
	ActionEcho           = "echo"
	ActionSearch         = "search"
	ActionDetails        = "details"
	ActionReviews        = "reviews"
	ActionBudgetTop      = "budget_top"
	ActionSustainability = "sustainability"
)

// ActionRequest is the single JSON-shaped request crossing into the engine.
// Action is the required discriminator; all other fields are action-specific
// and optional, with nil meaning "use the contract default".
type ActionRequest struct {
	Action  string `json:"action" binding:"required"`
	Message string `json:"message,omitempty"`

	// search / budget_top
	Query   string   `json:"query,omitempty"`
	Filters *Filters `json:"filters,omitempty"`

	// details / reviews
	ProductID string `json:"productId,omitempty"`
	Limit     *int   `json:"limit,omitempty"`

	// budget_top
	BudgetMaxINR *float64          `json:"budgetMaxINR,omitempty"`
	FeaturePref  FeaturePreference `json:"featurePref,omitempty" binding:"omitempty,oneof=camera battery display performance"`
	TopK         *int              `json:"topK,omitempty"`

	// sustainability
	WeightKg          *float64      `json:"weightKg,omitempty"`
	DistanceKm        *float64      `json:"distanceKm,omitempty"`
	Transport         TransportMode `json:"transport,omitempty" binding:"omitempty,oneof=air road rail sea"`
	Packaging         PackagingType `json:"packaging,omitempty" binding:"omitempty,oneof=plastic paper cardboard mixed"`
	PackagingWeightKg *float64      `json:"packagingWeightKg,omitempty"`
}

// TextResponse carries plain-text action results (ping, echo, unknown action).
type TextResponse struct {
	Message string `json:"message"`
}
