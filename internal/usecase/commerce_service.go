package usecase

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/shoplens/backend/internal/domain"
)

// Contract defaults for the dispatch boundary
const (
	defaultReviewLimit       = 10
	defaultWeightKg          = 0.5
	defaultDistanceKm        = 800
	defaultPackagingWeightKg = 0.2
)

// CommerceService is the canonical engine behind the domain.Commerce
// capability interface. It owns the immutable catalog snapshot and composes
// search, scoring, ranking, and emission estimation. All operations after the
// one-time load are pure, so concurrent requests never race.
type CommerceService struct {
	catalog []domain.Product
	byID    map[string]domain.Product
	reviews map[string][]domain.Review
	search  *SearchService
	ranking *RankingService
	logger  *zap.Logger
}

var _ domain.Commerce = (*CommerceService)(nil)

// NewCommerceService loads the catalog from the given source and wires the
// engine components around it.
func NewCommerceService(source domain.CatalogSource, logger *zap.Logger) *CommerceService {
	products, reviews := source.Load()

	byID := make(map[string]domain.Product, len(products))
	catalog := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if _, exists := byID[p.ID]; exists {
			logger.Warn("duplicate product id in catalog, keeping first", zap.String("id", p.ID))
			continue
		}
		byID[p.ID] = p
		catalog = append(catalog, p)
	}

	search := NewSearchService(catalog)
	return &CommerceService{
		catalog: catalog,
		byID:    byID,
		reviews: reviews,
		search:  search,
		ranking: NewRankingService(search),
		logger:  logger,
	}
}

// Search applies the free-text query and structured filters over the catalog.
func (s *CommerceService) Search(query string, filters domain.Filters) domain.SearchResult {
	return s.search.Search(query, filters)
}

// Details returns a single product enriched with its review aggregates.
func (s *CommerceService) Details(productID string) (*domain.ProductDetails, error) {
	if productID == "" {
		return nil, fmt.Errorf("%w: productId is required for details", domain.ErrInvalidRequest)
	}

	p, ok := s.byID[productID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, productID)
	}

	revs := s.reviews[productID]
	details := &domain.ProductDetails{Product: p, ReviewCount: len(revs)}
	if len(revs) > 0 {
		sum := 0
		for _, r := range revs {
			sum += r.Stars
		}
		avg := float64(sum) / float64(len(revs))
		details.AvgReviewRating = &avg
	}
	return details, nil
}

// Reviews returns up to limit reviews for a product. A product is known if it
// appears in the catalog or in the review index (orphaned reviews are
// tolerated at load time and stay readable).
func (s *CommerceService) Reviews(productID string, limit int) ([]domain.Review, error) {
	if productID == "" {
		return nil, fmt.Errorf("%w: productId is required for reviews", domain.ErrInvalidRequest)
	}

	revs, indexed := s.reviews[productID]
	if !indexed {
		if _, ok := s.byID[productID]; !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, productID)
		}
	}

	if limit < 0 {
		limit = 0
	}
	if len(revs) > limit {
		revs = revs[:limit]
	}

	out := make([]domain.Review, len(revs))
	copy(out, revs)
	return out, nil
}

// BudgetTop ranks candidates under a price ceiling, see RankingService.
func (s *CommerceService) BudgetTop(
	query string,
	budgetMaxINR *float64,
	pref domain.FeaturePreference,
	topK *int,
	filters *domain.Filters,
) domain.BudgetTopResponse {
	return s.ranking.BudgetTop(query, budgetMaxINR, pref, topK, filters)
}

// Sustainability estimates the shipping plus packaging footprint of one
// shipment. Omitted inputs take the contract defaults: 0.5 kg over 800 km by
// road, in 0.2 kg of cardboard.
func (s *CommerceService) Sustainability(
	weightKg, distanceKm *float64,
	transport domain.TransportMode,
	packaging domain.PackagingType,
	packagingWeightKg *float64,
) domain.SustainabilityReport {
	weight := defaultWeightKg
	if weightKg != nil {
		weight = *weightKg
	}
	distance := float64(defaultDistanceKm)
	if distanceKm != nil {
		distance = *distanceKm
	}
	if transport == "" {
		transport = domain.TransportRoad
	}
	if packaging == "" {
		packaging = domain.PackagingCardboard
	}
	pkgWeight := defaultPackagingWeightKg
	if packagingWeightKg != nil {
		pkgWeight = *packagingWeightKg
	}

	ship := EstimateShippingCO2e(weight, distance, transport)
	pack := EstimatePackagingCO2e(packaging, pkgWeight)
	totalG := ship.GramsCO2e + pack.GramsCO2e

	return domain.SustainabilityReport{
		Inputs: domain.SustainabilityInputs{
			WeightKg:          weight,
			DistanceKm:        distance,
			Transport:         transport,
			Packaging:         packaging,
			PackagingWeightKg: pkgWeight,
		},
		Breakdown: domain.SustainabilityBreakdown{
			ShippingGCO2e:  int64(math.Round(ship.GramsCO2e)),
			PackagingGCO2e: int64(math.Round(pack.GramsCO2e)),
		},
		Totals: domain.SustainabilityTotals{
			TotalGCO2e:  int64(math.Round(totalG)),
			TotalKgCO2e: ToKgCO2e(totalG),
		},
		Notes: FootprintNotes,
	}
}

// Dispatch routes a boundary request to the matching operation. Validation
// and not-found failures surface as errors for the transport to render;
// unknown actions resolve to an explicit text response, not an error.
func (s *CommerceService) Dispatch(ctx context.Context, req domain.ActionRequest) (any, error) {
	s.logger.Debug("dispatch", zap.String("action", req.Action))

	switch req.Action {
	case domain.ActionPing:
		return domain.TextResponse{Message: "pong"}, nil

	case domain.ActionEcho:
		return domain.TextResponse{Message: "echo: " + req.Message}, nil

	case domain.ActionSearch:
		filters := domain.Filters{}
		if req.Filters != nil {
			filters = *req.Filters
		}
		return s.Search(req.Query, filters), nil

	case domain.ActionDetails:
		details, err := s.Details(req.ProductID)
		if err != nil {
			return nil, err
		}
		return details, nil

	case domain.ActionReviews:
		limit := defaultReviewLimit
		if req.Limit != nil {
			limit = *req.Limit
		}
		revs, err := s.Reviews(req.ProductID, limit)
		if err != nil {
			return nil, err
		}
		return revs, nil

	case domain.ActionBudgetTop:
		if !req.FeaturePref.Valid() {
			return nil, fmt.Errorf("%w: unsupported featurePref %q", domain.ErrInvalidRequest, req.FeaturePref)
		}
		return s.BudgetTop(req.Query, req.BudgetMaxINR, req.FeaturePref, req.TopK, req.Filters), nil

	case domain.ActionSustainability:
		if req.Transport != "" && !req.Transport.Valid() {
			return nil, fmt.Errorf("%w: unsupported transport %q", domain.ErrInvalidRequest, req.Transport)
		}
		if req.Packaging != "" && !req.Packaging.Valid() {
			return nil, fmt.Errorf("%w: unsupported packaging %q", domain.ErrInvalidRequest, req.Packaging)
		}
		return s.Sustainability(req.WeightKg, req.DistanceKm, req.Transport, req.Packaging, req.PackagingWeightKg), nil

	case "":
		return nil, fmt.Errorf("%w: missing action", domain.ErrInvalidRequest)

	default:
		s.logger.Warn("unknown action", zap.String("action", req.Action))
		return domain.TextResponse{Message: "unknown action"}, nil
	}
}
