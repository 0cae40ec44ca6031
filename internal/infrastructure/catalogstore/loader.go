// Package catalogstore loads the product catalog and review index from JSON
// files, substituting a built-in fallback dataset when a source is missing or
// unparseable. Loading never fails; a degraded source is logged and replaced.
package catalogstore

import (
	"encoding/json"
	"os"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/shoplens/backend/internal/domain"
)

// Loader reads the two catalog sources. The sources fail independently: a
// corrupt catalog file does not force the reviews onto fallback data, and
// vice versa.
type Loader struct {
	catalogPath string
	reviewsPath string
	validate    *validator.Validate
	logger      *zap.Logger
}

// NewLoader creates a loader for the given source paths.
func NewLoader(catalogPath, reviewsPath string, logger *zap.Logger) *Loader {
	return &Loader{
		catalogPath: catalogPath,
		reviewsPath: reviewsPath,
		validate:    validator.New(),
		logger:      logger,
	}
}

// Load reads both sources and applies boundary validation once. Records
// failing required-field validation are skipped; out-of-range numeric fields
// are normalized rather than rejected. Orphaned reviews are kept.
func (l *Loader) Load() ([]domain.Product, map[string][]domain.Review) {
	var products []domain.Product
	if err := readJSON(l.catalogPath, &products); err != nil {
		l.logger.Warn("catalog source degraded, using fallback dataset",
			zap.String("path", l.catalogPath), zap.Error(err))
		products = FallbackCatalog()
	}

	var reviews map[string][]domain.Review
	if err := readJSON(l.reviewsPath, &reviews); err != nil {
		l.logger.Warn("reviews source degraded, using fallback dataset",
			zap.String("path", l.reviewsPath), zap.Error(err))
		reviews = FallbackReviews()
	}

	return l.normalizeProducts(products), l.normalizeReviews(reviews)
}

// readJSON reads and structurally parses one source file.
func readJSON(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

// normalizeProducts validates and normalizes every record: id/title/url are
// required, rating is clamped to [0,5], negative price and rating count are
// floored at 0, and a missing category defaults to "other".
func (l *Loader) normalizeProducts(products []domain.Product) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if err := l.validate.Struct(p); err != nil {
			l.logger.Warn("skipping invalid catalog record",
				zap.String("id", p.ID), zap.Error(err))
			continue
		}
		if p.Rating < 0 {
			p.Rating = 0
		}
		if p.Rating > 5 {
			p.Rating = 5
		}
		if p.PriceINR < 0 {
			p.PriceINR = 0
		}
		if p.RatingCount < 0 {
			p.RatingCount = 0
		}
		if p.Category == "" {
			p.Category = domain.CategoryOther
		}
		out = append(out, p)
	}
	return out
}

// normalizeReviews fills the product id from the index key when a record
// omits it and drops reviews with out-of-range star counts.
func (l *Loader) normalizeReviews(reviews map[string][]domain.Review) map[string][]domain.Review {
	out := make(map[string][]domain.Review, len(reviews))
	for productID, revs := range reviews {
		kept := make([]domain.Review, 0, len(revs))
		for _, r := range revs {
			if r.ProductID == "" {
				r.ProductID = productID
			}
			if err := l.validate.Struct(r); err != nil {
				l.logger.Warn("skipping invalid review record",
					zap.String("productId", productID), zap.Error(err))
				continue
			}
			kept = append(kept, r)
		}
		if len(kept) > 0 {
			out[productID] = kept
		}
	}
	return out
}
