package catalogstore

import "github.com/shoplens/backend/internal/domain"

// FallbackCatalog returns the built-in single-product dataset used when the
// catalog file is missing or unparseable. Returns a fresh copy so callers
// can never mutate the source of truth.
func FallbackCatalog() []domain.Product {
	return []domain.Product{
		{
			ID:          "B00PHONE001",
			Title:       "CamX Pro 5G Smartphone",
			Brand:       "CamX",
			Category:    "mobiles",
			PriceINR:    13999,
			Rating:      4.3,
			RatingCount: 12453,
			Specs: map[string]string{
				"camera":  "50MP OIS main + 8MP ultra-wide",
				"battery": "5000 mAh",
				"display": `6.5" AMOLED 120Hz`,
				"storage": "128GB",
				"ram":     "6GB",
			},
			Images: []string{
				"https://example.com/img/camxpro-front.jpg",
				"https://example.com/img/camxpro-back.jpg",
			},
			URL: "https://www.amazon.in/dp/B00PHONE001",
		},
	}
}

// FallbackReviews returns the built-in review index used when the reviews
// file is missing or unparseable.
func FallbackReviews() map[string][]domain.Review {
	return map[string][]domain.Review{
		"B00PHONE001": {
			{
				ProductID: "B00PHONE001",
				Stars:     5,
				Title:     "Great camera!",
				Text:      "OIS helps a lot in night photos.",
				Aspect:    "camera",
			},
			{
				ProductID: "B00PHONE001",
				Stars:     4,
				Title:     "Good display",
				Text:      "120Hz feels smooth.",
				Aspect:    "display",
			},
		},
	}
}
