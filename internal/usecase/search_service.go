package usecase

import (
	"sort"
	"strings"

	"github.com/shoplens/backend/internal/domain"
)

// SearchService applies free-text and structured filtering over an immutable
// catalog snapshot. The catalog is injected at construction and never
// mutated, so the service is safe for concurrent use without locking.
type SearchService struct {
	catalog []domain.Product
}

// NewSearchService creates a search service over the given catalog.
func NewSearchService(catalog []domain.Product) *SearchService {
	return &SearchService{catalog: catalog}
}

// Search returns every product matching the query and all active filters,
// ordered by rating descending, then price ascending, then id ascending.
// The id tiebreak makes the ordering a strict total order, so identical
// requests always return identical sequences.
func (s *SearchService) Search(query string, filters domain.Filters) domain.SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))

	results := make([]domain.Product, 0, len(s.catalog))
	for _, p := range s.catalog {
		if q != "" && !strings.Contains(searchHaystack(p), q) {
			continue
		}
		if !matchesFilters(p, filters) {
			continue
		}
		results = append(results, p)
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		if a.PriceINR != b.PriceINR {
			return a.PriceINR < b.PriceINR
		}
		return a.ID < b.ID
	})

	return domain.SearchResult{Total: len(results), Products: results}
}

// searchHaystack builds the lower-cased text a query matches against:
// title, brand, and all spec values. Spec values are joined in key order so
// the haystack is deterministic.
func searchHaystack(p domain.Product) string {
	parts := []string{p.Title, p.Brand}

	keys := make([]string, 0, len(p.Specs))
	for k := range p.Specs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, p.Specs[k])
	}

	return strings.ToLower(strings.Join(parts, " "))
}

// matchesFilters applies the structured filters as independent AND
// conditions. Unset fields impose no constraint.
func matchesFilters(p domain.Product, f domain.Filters) bool {
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.Brand != "" && !strings.EqualFold(p.Brand, f.Brand) {
		return false
	}
	if f.BudgetMaxINR != nil && p.PriceINR > *f.BudgetMaxINR {
		return false
	}
	if f.MinRating != nil && p.Rating < *f.MinRating {
		return false
	}
	return true
}
