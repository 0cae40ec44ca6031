package usecase

import (
	"math"
	"testing"

	"github.com/shoplens/backend/internal/domain"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func floatPtr(v float64) *float64 {
	return &v
}

func camxPro() domain.Product {
	return domain.Product{
		ID:       "B00PHONE001",
		Title:    "CamX Pro 5G Smartphone",
		Brand:    "CamX",
		Category: "mobiles",
		PriceINR: 13999,
		Rating:   4.3,
		Specs: map[string]string{
			"camera":  "50MP OIS main + 8MP ultra-wide",
			"battery": "5000 mAh",
			"display": `6.5" AMOLED 120Hz`,
		},
		URL: "https://www.amazon.in/dp/B00PHONE001",
	}
}

func TestScoreProduct(t *testing.T) {
	t.Run("rating only without preference or budget", func(t *testing.T) {
		s := ScoreProduct(camxPro(), "", nil)
		if !almostEqual(s.Score, 4.3) {
			t.Errorf("Score = %v, want 4.3", s.Score)
		}
		if s.FeatureBonus != 0 || s.PricePenalty != 0 {
			t.Errorf("FeatureBonus = %v, PricePenalty = %v, want both 0", s.FeatureBonus, s.PricePenalty)
		}
	})

	t.Run("camera preference earns keyword and pattern bonus", func(t *testing.T) {
		// Haystack is the camera spec plus title: "camera" is absent from
		// both, but "5g smartphone" is not what matters - the title holds no
		// keyword, so check a product whose title mentions the feature.
		p := camxPro()
		p.Title = "CamX Pro 5G Camera Smartphone"

		s := ScoreProduct(p, domain.PrefCamera, floatPtr(15000))
		if !almostEqual(s.FeatureBonus, 0.8) {
			t.Errorf("FeatureBonus = %v, want 0.8", s.FeatureBonus)
		}
		if s.PricePenalty != 0 {
			t.Errorf("PricePenalty = %v, want 0 (13999 <= 15000)", s.PricePenalty)
		}
		if !almostEqual(s.Score, 5.1) {
			t.Errorf("Score = %v, want 5.1", s.Score)
		}
	})

	t.Run("pattern bonus applies without keyword", func(t *testing.T) {
		// "ois" and "mp" match the camera pattern but the literal word
		// "camera" never appears in spec or title.
		s := ScoreProduct(camxPro(), domain.PrefCamera, nil)
		if !almostEqual(s.FeatureBonus, featurePatternBonus) {
			t.Errorf("FeatureBonus = %v, want %v", s.FeatureBonus, featurePatternBonus)
		}
	})

	t.Run("keyword bonus applies without pattern", func(t *testing.T) {
		p := domain.Product{
			ID:     "X1",
			Title:  "Endura battery phone",
			Rating: 4.0,
			Specs:  map[string]string{"camera": "dual lens"},
			URL:    "https://example.com/x1",
		}
		s := ScoreProduct(p, domain.PrefBattery, nil)
		if !almostEqual(s.FeatureBonus, featureKeywordBonus) {
			t.Errorf("FeatureBonus = %v, want %v", s.FeatureBonus, featureKeywordBonus)
		}
	})

	t.Run("haystack uses first non-empty spec", func(t *testing.T) {
		// No camera spec, so the battery spec feeds the haystack and its
		// "6000 mah" text satisfies the battery pattern.
		p := domain.Product{
			ID:     "X2",
			Title:  "Plain phone",
			Rating: 3.5,
			Specs:  map[string]string{"battery": "6000 mAh fast charge"},
			URL:    "https://example.com/x2",
		}
		s := ScoreProduct(p, domain.PrefBattery, nil)
		if !almostEqual(s.FeatureBonus, featurePatternBonus) {
			t.Errorf("FeatureBonus = %v, want %v", s.FeatureBonus, featurePatternBonus)
		}
	})

	t.Run("no penalty at or under budget", func(t *testing.T) {
		p := camxPro()
		s := ScoreProduct(p, "", floatPtr(13999))
		if s.PricePenalty != 0 {
			t.Errorf("PricePenalty = %v, want 0 at exactly the budget", s.PricePenalty)
		}
	})

	t.Run("penalty proportional to overage", func(t *testing.T) {
		p := camxPro()
		p.PriceINR = 12000

		s := ScoreProduct(p, "", floatPtr(10000))
		// over = 2000, budget = 10000 -> 2000/10000*2 = 0.4
		if !almostEqual(s.PricePenalty, 0.4) {
			t.Errorf("PricePenalty = %v, want 0.4", s.PricePenalty)
		}
		if !almostEqual(s.Score, 4.3-0.4) {
			t.Errorf("Score = %v, want %v", s.Score, 4.3-0.4)
		}
	})

	t.Run("penalty capped at 1.5", func(t *testing.T) {
		p := camxPro()
		p.PriceINR = 100000

		s := ScoreProduct(p, "", floatPtr(1000))
		if s.PricePenalty != pricePenaltyCap {
			t.Errorf("PricePenalty = %v, want %v", s.PricePenalty, pricePenaltyCap)
		}
	})

	t.Run("penalty monotonically increasing in overage", func(t *testing.T) {
		budget := floatPtr(10000)
		prev := 0.0
		for _, price := range []float64{10001, 11000, 13000, 16000} {
			p := camxPro()
			p.PriceINR = price
			s := ScoreProduct(p, "", budget)
			if s.PricePenalty <= prev {
				t.Errorf("PricePenalty = %v at price %v, want > %v", s.PricePenalty, price, prev)
			}
			if s.PricePenalty > pricePenaltyCap {
				t.Errorf("PricePenalty = %v, want <= %v", s.PricePenalty, pricePenaltyCap)
			}
			prev = s.PricePenalty
		}
	})

	t.Run("zero budget does not divide by zero", func(t *testing.T) {
		p := camxPro()
		p.PriceINR = 1

		s := ScoreProduct(p, "", floatPtr(0))
		// over = 1, max(1, 0) = 1 -> min(1.5, 1*2) = 1.5
		if s.PricePenalty != pricePenaltyCap {
			t.Errorf("PricePenalty = %v, want %v", s.PricePenalty, pricePenaltyCap)
		}
	})

	t.Run("total on zero-value product", func(t *testing.T) {
		s := ScoreProduct(domain.Product{}, domain.PrefDisplay, floatPtr(0))
		if s.Score != 0 {
			t.Errorf("Score = %v, want 0", s.Score)
		}
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		p := camxPro()
		a := ScoreProduct(p, domain.PrefCamera, floatPtr(9000))
		b := ScoreProduct(p, domain.PrefCamera, floatPtr(9000))
		if a != b {
			t.Errorf("breakdowns differ: %+v vs %+v", a, b)
		}
	})
}
