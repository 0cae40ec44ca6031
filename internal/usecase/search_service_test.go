package usecase

import (
	"testing"

	"github.com/shoplens/backend/internal/domain"
)

// testCatalog returns a small fixed catalog exercising every filter path.
func testCatalog() []domain.Product {
	return []domain.Product{
		{
			ID: "B00PHONE001", Title: "CamX Pro 5G Smartphone", Brand: "CamX",
			Category: "mobiles", PriceINR: 13999, Rating: 4.3,
			Specs: map[string]string{"camera": "50MP OIS main + 8MP ultra-wide", "battery": "5000 mAh"},
			URL:   "https://example.com/p1",
		},
		{
			ID: "B00PHONE002", Title: "Voltix Max Smartphone", Brand: "Voltix",
			Category: "mobiles", PriceINR: 11499, Rating: 4.1,
			Specs: map[string]string{"battery": "6000 mAh fast charge"},
			URL:   "https://example.com/p2",
		},
		{
			ID: "B00PHONE003", Title: "Pixelight S Smartphone", Brand: "Pixelight",
			Category: "mobiles", PriceINR: 24999, Rating: 4.5,
			Specs: map[string]string{"camera": "64MP OIS main + 12MP telephoto"},
			URL:   "https://example.com/p3",
		},
		{
			ID: "B00SKIN001", Title: "GlowLeaf Vitamin C Face Serum", Brand: "GlowLeaf",
			Category: "skincare", PriceINR: 699, Rating: 4.2,
			Specs: map[string]string{"ingredients": "Vitamin C, Hyaluronic Acid"},
			URL:   "https://example.com/s1",
		},
	}
}

func TestSearch(t *testing.T) {
	svc := NewSearchService(testCatalog())

	t.Run("empty query matches everything", func(t *testing.T) {
		res := svc.Search("", domain.Filters{})
		if res.Total != 4 {
			t.Errorf("Total = %d, want 4", res.Total)
		}
	})

	t.Run("query matches title case-insensitively", func(t *testing.T) {
		res := svc.Search("  PIXELIGHT  ", domain.Filters{})
		if res.Total != 1 || res.Products[0].ID != "B00PHONE003" {
			t.Errorf("got %+v, want only B00PHONE003", res.Products)
		}
	})

	t.Run("query matches brand and spec values", func(t *testing.T) {
		byBrand := svc.Search("glowleaf", domain.Filters{})
		if byBrand.Total != 1 || byBrand.Products[0].ID != "B00SKIN001" {
			t.Errorf("brand match got %+v, want only B00SKIN001", byBrand.Products)
		}

		bySpec := svc.Search("telephoto", domain.Filters{})
		if bySpec.Total != 1 || bySpec.Products[0].ID != "B00PHONE003" {
			t.Errorf("spec match got %+v, want only B00PHONE003", bySpec.Products)
		}
	})

	t.Run("category filter is exact case-insensitive", func(t *testing.T) {
		res := svc.Search("", domain.Filters{Category: "Skincare"})
		if res.Total != 1 || res.Products[0].ID != "B00SKIN001" {
			t.Errorf("got %+v, want only B00SKIN001", res.Products)
		}
	})

	t.Run("budget filter is an inclusive ceiling", func(t *testing.T) {
		res := svc.Search("", domain.Filters{BudgetMaxINR: floatPtr(13999)})
		for _, p := range res.Products {
			if p.PriceINR > 13999 {
				t.Errorf("product %s at %v exceeds budget", p.ID, p.PriceINR)
			}
		}
		if res.Total != 3 {
			t.Errorf("Total = %d, want 3 (13999 itself included)", res.Total)
		}
	})

	t.Run("min rating filter is an inclusive floor", func(t *testing.T) {
		res := svc.Search("", domain.Filters{MinRating: floatPtr(4.3)})
		if res.Total != 2 {
			t.Errorf("Total = %d, want 2", res.Total)
		}
		for _, p := range res.Products {
			if p.Rating < 4.3 {
				t.Errorf("product %s rating %v below floor", p.ID, p.Rating)
			}
		}
	})

	t.Run("filters combine as AND conditions", func(t *testing.T) {
		res := svc.Search("smartphone", domain.Filters{
			Category:     "mobiles",
			Brand:        "voltix",
			BudgetMaxINR: floatPtr(20000),
			MinRating:    floatPtr(4.0),
		})
		if res.Total != 1 || res.Products[0].ID != "B00PHONE002" {
			t.Errorf("got %+v, want only B00PHONE002", res.Products)
		}
	})

	t.Run("relaxing a filter never shrinks the result set", func(t *testing.T) {
		strict := svc.Search("smartphone", domain.Filters{BudgetMaxINR: floatPtr(12000), MinRating: floatPtr(4.0)})
		relaxed := svc.Search("smartphone", domain.Filters{MinRating: floatPtr(4.0)})
		if relaxed.Total < strict.Total {
			t.Errorf("relaxed Total = %d < strict Total = %d", relaxed.Total, strict.Total)
		}

		strictIDs := make(map[string]bool)
		for _, p := range strict.Products {
			strictIDs[p.ID] = true
		}
		for _, p := range relaxed.Products {
			delete(strictIDs, p.ID)
		}
		if len(strictIDs) > 0 {
			t.Errorf("relaxed result dropped products %v", strictIDs)
		}
	})

	t.Run("orders by rating desc then price asc then id", func(t *testing.T) {
		res := svc.Search("", domain.Filters{})
		for i := 1; i < len(res.Products); i++ {
			prev, cur := res.Products[i-1], res.Products[i]
			if prev.Rating < cur.Rating {
				t.Errorf("rating increased at %d: %v -> %v", i, prev.Rating, cur.Rating)
			}
			if prev.Rating == cur.Rating && prev.PriceINR > cur.PriceINR {
				t.Errorf("price decreased on rating tie at %d: %v -> %v", i, prev.PriceINR, cur.PriceINR)
			}
		}
	})

	t.Run("id breaks full ties deterministically", func(t *testing.T) {
		twins := []domain.Product{
			{ID: "B", Title: "Twin B", PriceINR: 100, Rating: 4.0, URL: "https://example.com/b"},
			{ID: "A", Title: "Twin A", PriceINR: 100, Rating: 4.0, URL: "https://example.com/a"},
		}
		res := NewSearchService(twins).Search("twin", domain.Filters{})
		if res.Products[0].ID != "A" || res.Products[1].ID != "B" {
			t.Errorf("got order %s, %s; want A, B", res.Products[0].ID, res.Products[1].ID)
		}
	})

	t.Run("budget phone search scenario", func(t *testing.T) {
		res := svc.Search("phone", domain.Filters{BudgetMaxINR: floatPtr(20000), MinRating: floatPtr(3.5)})
		if res.Total < 1 {
			t.Fatalf("Total = %d, want >= 1", res.Total)
		}
		found := false
		for _, p := range res.Products {
			if p.Title == "CamX Pro 5G Smartphone" {
				found = true
			}
		}
		if !found {
			t.Error("expected CamX Pro 5G Smartphone in results")
		}
	})
}
