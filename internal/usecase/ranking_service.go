package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shoplens/backend/internal/domain"
)

// Result set bounds for budget-aware ranking
const (
	defaultTopK = 3  // used when the caller omits topK or passes a non-positive value
	maxTopK     = 10 // hard ceiling regardless of caller input
)

// RankingService orchestrates search and budget scoring into a top-K ranked
// recommendation list.
type RankingService struct {
	search *SearchService
}

// NewRankingService creates a ranking service on top of the given search
// service.
func NewRankingService(search *SearchService) *RankingService {
	return &RankingService{search: search}
}

// BudgetTop ranks catalog candidates under a price ceiling. An explicit
// budgetMaxINR takes precedence over one nested in filters; the merged
// filters pre-exclude over-budget items before scoring. Ties keep their
// search order (stable sort), and the presentation score is rounded to three
// decimals while ranking uses the unrounded value.
func (r *RankingService) BudgetTop(
	query string,
	budgetMaxINR *float64,
	pref domain.FeaturePreference,
	topK *int,
	filters *domain.Filters,
) domain.BudgetTopResponse {
	k := defaultTopK
	if topK != nil && *topK > 0 {
		k = min(*topK, maxTopK)
	}

	effective := domain.Filters{}
	if filters != nil {
		effective = *filters
	}
	budget := budgetMaxINR
	if budget == nil {
		budget = effective.BudgetMaxINR
	}
	effective.BudgetMaxINR = budget

	candidates := r.search.Search(query, effective).Products

	type scored struct {
		product   domain.Product
		breakdown domain.ScoreBreakdown
	}
	ranked := make([]scored, 0, len(candidates))
	for _, p := range candidates {
		ranked = append(ranked, scored{product: p, breakdown: ScoreProduct(p, pref, budget)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].breakdown.Score > ranked[j].breakdown.Score
	})
	if len(ranked) > k {
		ranked = ranked[:k]
	}

	results := make([]domain.RankedResult, 0, len(ranked))
	for _, c := range ranked {
		results = append(results, domain.RankedResult{
			ID:       c.product.ID,
			Title:    c.product.Title,
			Brand:    c.product.Brand,
			PriceINR: c.product.PriceINR,
			Rating:   c.product.Rating,
			URL:      c.product.URL,
			Images:   c.product.Images,
			Score:    round3(c.breakdown.Score),
			Reason:   scoreReason(c.product, c.breakdown),
		})
	}

	return domain.BudgetTopResponse{
		Request: domain.BudgetTopRequest{
			BudgetMaxINR: budget,
			FeaturePref:  pref,
			TopK:         k,
			Query:        query,
			MinRating:    effective.MinRating,
		},
		Results: results,
	}
}

// scoreReason renders the human-readable rationale for one ranked result.
// Bonus and penalty segments appear only when strictly positive.
func scoreReason(p domain.Product, s domain.ScoreBreakdown) string {
	parts := []string{
		fmt.Sprintf("rating=%v", s.Rating),
		fmt.Sprintf("price=%v", p.PriceINR),
	}
	if s.FeatureBonus > 0 {
		parts = append(parts, fmt.Sprintf("featureMatch=+%.2f", s.FeatureBonus))
	}
	if s.PricePenalty > 0 {
		parts = append(parts, fmt.Sprintf("pricePenalty=-%.2f", s.PricePenalty))
	}
	return strings.Join(parts, ", ")
}
