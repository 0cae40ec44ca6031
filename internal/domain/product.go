package domain

// CategoryOther is the default category for products that do not declare one.
const CategoryOther = "other"

// Product represents a single catalog entry. The catalog is loaded once at
// startup and treated as read-only for the process lifetime.
type Product struct {
	ID          string            `json:"id" validate:"required"`
	Title       string            `json:"title" validate:"required"`
	Brand       string            `json:"brand,omitempty"`
	Category    string            `json:"category,omitempty"`
	PriceINR    float64           `json:"priceINR"`
	Rating      float64           `json:"rating"`
	RatingCount int               `json:"ratingCount"`
	Specs       map[string]string `json:"specs,omitempty"`
	Images      []string          `json:"images,omitempty"`
	URL         string            `json:"url" validate:"required,url"`
}

// Review is a single customer review. Reviews are append-only from the
// engine's perspective; referential integrity with the product set is not
// enforced (orphaned reviews are tolerated).
type Review struct {
	ProductID string `json:"productId"`
	Stars     int    `json:"stars" validate:"min=1,max=5"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	Aspect    string `json:"aspect,omitempty"`
}

// Filters narrows a catalog search. Every field is independently optional;
// a nil/empty field imposes no constraint.
type Filters struct {
	Category     string   `json:"category,omitempty"`
	Brand        string   `json:"brand,omitempty"`
	BudgetMaxINR *float64 `json:"budgetMaxINR,omitempty"`
	MinRating    *float64 `json:"minRating,omitempty"`
}

// SearchResult is the ordered outcome of a filtered catalog search.
type SearchResult struct {
	Total    int       `json:"total"`
	Products []Product `json:"products"`
}

// ProductDetails is a Product enriched with aggregate review data.
// AvgReviewRating is nil when the product has no reviews.
type ProductDetails struct {
	Product
	ReviewCount     int      `json:"reviewCount"`
	AvgReviewRating *float64 `json:"avgReviewRating"`
}

// FeaturePreference biases ranking toward products whose specs match the
// preferred feature.
type FeaturePreference string

const (
	PrefCamera      FeaturePreference = "camera"
	PrefBattery     FeaturePreference = "battery"
	PrefDisplay     FeaturePreference = "display"
	PrefPerformance FeaturePreference = "performance"
)

// Valid reports whether the preference is one of the supported values.
// The empty preference is valid and means "no preference".
func (f FeaturePreference) Valid() bool {
	switch f {
	case "", PrefCamera, PrefBattery, PrefDisplay, PrefPerformance:
		return true
	}
	return false
}

// ScoreBreakdown is the per-product output of the budget scorer. It is
// computed fresh per request and never persisted.
type ScoreBreakdown struct {
	Rating       float64 `json:"rating"`
	FeatureBonus float64 `json:"featureBonus"`
	PricePenalty float64 `json:"pricePenalty"`
	Score        float64 `json:"score"`
}

// RankedResult is one entry of a budget_top response.
type RankedResult struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Brand    string   `json:"brand,omitempty"`
	PriceINR float64  `json:"priceINR"`
	Rating   float64  `json:"rating"`
	URL      string   `json:"url"`
	Images   []string `json:"images,omitempty"`
	Score    float64  `json:"score"`
	Reason   string   `json:"reason"`
}

// BudgetTopRequest echoes the effective parameters a ranking ran with.
type BudgetTopRequest struct {
	BudgetMaxINR *float64          `json:"budgetMaxINR,omitempty"`
	FeaturePref  FeaturePreference `json:"featurePref,omitempty"`
	TopK         int               `json:"topK"`
	Query        string            `json:"query"`
	MinRating    *float64          `json:"minRating,omitempty"`
}

// BudgetTopResponse is the full outcome of a budget_top ranking.
type BudgetTopResponse struct {
	Request BudgetTopRequest `json:"request"`
	Results []RankedResult   `json:"results"`
}
