package usecase

import (
	"math"
	"regexp"
	"strings"

	"github.com/shoplens/backend/internal/domain"
)

// Scoring terms for budget-aware ranking
const (
	featureKeywordBonus = 0.6 // preference keyword appears in specs/title
	featurePatternBonus = 0.2 // preference-specific spec pattern matches
	pricePenaltySlope   = 2.0 // penalty per 100% budget overage
	pricePenaltyCap     = 1.5 // bounds the influence of extreme outliers
)

// Package-level compiled regex patterns for performance
var featurePatterns = map[domain.FeaturePreference]*regexp.Regexp{
	domain.PrefCamera:      regexp.MustCompile(`ois|mp|ultra-wide|telephoto`),
	domain.PrefBattery:     regexp.MustCompile(`5000|6000|mah|fast\s*charge`),
	domain.PrefDisplay:     regexp.MustCompile(`amoled|oled|120hz|90hz|hdr`),
	domain.PrefPerformance: regexp.MustCompile(`snapdragon|dimensity|8gb|12gb`),
}

// ScoreProduct computes the composite ranking score for one candidate.
// The score is rating + featureBonus - pricePenalty, an unbounded real used
// only for relative ranking within a single request. Pure function: identical
// inputs always produce an identical breakdown.
func ScoreProduct(p domain.Product, pref domain.FeaturePreference, budgetMaxINR *float64) domain.ScoreBreakdown {
	// Rating is already bounded to [0,5] at the catalog boundary and is the
	// dominant term, taken verbatim.
	rating := p.Rating

	featureBonus := 0.0
	if pref != "" {
		haystack := featureHaystack(p)
		if strings.Contains(haystack, string(pref)) {
			featureBonus += featureKeywordBonus
		}
		if re, ok := featurePatterns[pref]; ok && re.MatchString(haystack) {
			featureBonus += featurePatternBonus
		}
	}

	pricePenalty := 0.0
	if budgetMaxINR != nil && p.PriceINR > *budgetMaxINR {
		// Proportional to how far over budget, capped.
		over := p.PriceINR - *budgetMaxINR
		pricePenalty = math.Min(pricePenaltyCap, over/math.Max(1, *budgetMaxINR)*pricePenaltySlope)
	}

	return domain.ScoreBreakdown{
		Rating:       rating,
		FeatureBonus: featureBonus,
		PricePenalty: pricePenalty,
		Score:        rating + featureBonus - pricePenalty,
	}
}

// featureHaystack builds the lower-cased text the feature bonus matches
// against: the first non-empty of the camera/battery/display specs,
// concatenated with the title.
func featureHaystack(p domain.Product) string {
	spec := p.Specs["camera"]
	if spec == "" {
		spec = p.Specs["battery"]
	}
	if spec == "" {
		spec = p.Specs["display"]
	}
	return strings.ToLower(spec + " " + p.Title)
}
