package catalog

import (
	"sort"
	"strings"
	"time"

	"fruitshop/internal/models"
)

// Recognized sort keys. Any other non-empty key falls back to the featured
// ordering (original price, or price when none, descending); an empty key
// leaves the catalog order untouched.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNameAsc   = "name_asc"
	SortNameDesc  = "name_desc"
	SortStockDesc = "stock_desc"
)

// Filters narrow and order a product search. All set filters combine with
// AND semantics; unrecognized values are ignored. Nil price bounds mean
// unbounded.
type Filters struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	InStock  bool
	SortBy   string
}

// badgePriority ranks badges for the featured list. Unlisted badges rank
// lowest.
var badgePriority = map[string]int{
	"bestseller": 3,
	"new":        2,
	"sale":       1,
}

// Search returns the products matching the query text and filters. The query
// is a case-insensitive substring match against name, description and
// category id; empty matches everything. Ties in every sort keep catalog
// order.
func (s *Store) Search(query string, filters Filters) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]models.Product, 0, len(s.products))
	term := strings.ToLower(strings.TrimSpace(query))

	for _, p := range s.products {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) &&
			!strings.Contains(strings.ToLower(p.Category), term) {
			continue
		}
		if filters.Category != "" && p.Category != filters.Category {
			continue
		}
		if filters.MinPrice != nil && p.Price < *filters.MinPrice {
			continue
		}
		if filters.MaxPrice != nil && p.Price > *filters.MaxPrice {
			continue
		}
		if filters.InStock && p.Stock == 0 {
			continue
		}
		results = append(results, annotate(p))
	}

	sortProducts(results, filters.SortBy)
	return results
}

func sortProducts(products []models.Product, sortBy string) {
	switch sortBy {
	case "":
		// keep catalog order
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortNameAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Name < products[j].Name
		})
	case SortNameDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Name > products[j].Name
		})
	case SortStockDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Stock > products[j].Stock
		})
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return listPrice(products[i]) > listPrice(products[j])
		})
	}
}

// listPrice is the pre-discount price used as the featured ranking key.
func listPrice(p models.Product) float64 {
	if p.OriginalPrice > 0 {
		return p.OriginalPrice
	}
	return p.Price
}

// Featured returns up to limit in-stock products, ranked by badge priority
// and then by discount percentage.
func (s *Store) Featured(limit int) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	featured := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.Stock > 0 {
			featured = append(featured, annotate(p))
		}
	}

	sort.SliceStable(featured, func(i, j int) bool {
		pi, pj := badgePriority[featured[i].Badge], badgePriority[featured[j].Badge]
		if pi != pj {
			return pi > pj
		}
		return featured[i].DiscountPercent() > featured[j].DiscountPercent()
	})

	if limit >= 0 && len(featured) > limit {
		featured = featured[:limit]
	}
	return featured
}

// ProductsByCategory returns all products in the category, in catalog order.
func (s *Store) ProductsByCategory(categoryID string) []models.Product {
	return s.Search("", Filters{Category: categoryID})
}

// ProductsInPriceRange returns products priced within [min, max] inclusive.
func (s *Store) ProductsInPriceRange(min, max float64) []models.Product {
	return s.Search("", Filters{MinPrice: &min, MaxPrice: &max})
}

// ActivePromotions returns the promotions usable at the given time.
func (s *Store) ActivePromotions(now time.Time) []models.Promotion {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := make([]models.Promotion, 0, len(s.promotions))
	for _, promo := range s.promotions {
		if promo.ActiveAt(now) {
			active = append(active, promo)
		}
	}
	return active
}
