package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fruitshop/internal/models"
)

func ids(products []models.Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestSearchTextIsCaseInsensitive(t *testing.T) {
	s := newFallbackStore(t)

	assert.Equal(t, []int{1}, ids(s.Search("APPLES", Filters{})))
	assert.Equal(t, []int{5}, ids(s.Search("mango", Filters{})))
}

func TestSearchMatchesDescriptionAndCategory(t *testing.T) {
	s := newFallbackStore(t)

	// "squeezed" only appears in the juice description
	assert.Equal(t, []int{6}, ids(s.Search("squeezed", Filters{})))
	// category id is part of the searchable text
	assert.Equal(t, []int{5}, ids(s.Search("dried", Filters{})))
}

func TestSearchEmptyQueryMatchesEverything(t *testing.T) {
	s := newFallbackStore(t)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(s.Search("", Filters{})))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(s.Search("   ", Filters{})))
}

func TestSearchFiltersCompose(t *testing.T) {
	s := newFallbackStore(t)

	min, max := 50.0, 150.0
	results := s.Search("", Filters{Category: "fresh", MinPrice: &min, MaxPrice: &max})

	assert.Equal(t, []int{1, 2}, ids(results))
}

func TestSearchPriceBoundsInclusive(t *testing.T) {
	s := newFallbackStore(t)

	exact := 120.0
	results := s.Search("", Filters{MinPrice: &exact, MaxPrice: &exact})

	assert.Equal(t, []int{1}, ids(results))
}

func TestSearchInStockFilter(t *testing.T) {
	s := newFallbackStore(t)
	require.NoError(t, s.SetStock(3, 0))

	assert.Equal(t, []int{1, 2, 4, 5, 6}, ids(s.Search("", Filters{InStock: true})))
	// without the filter, sold-out products still show up
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(s.Search("", Filters{})))
}

func TestSearchSortOrders(t *testing.T) {
	s := newFallbackStore(t)

	tests := []struct {
		sortBy string
		want   []int
	}{
		{sortBy: SortPriceAsc, want: []int{3, 6, 2, 5, 1, 4}},
		{sortBy: SortPriceDesc, want: []int{4, 1, 5, 2, 6, 3}},
		{sortBy: SortStockDesc, want: []int{5, 6, 2, 1, 3, 4}},
		// an unrecognized key falls back to the original-price ordering
		{sortBy: "popularity", want: []int{4, 1, 5, 2, 6, 3}},
		// empty keeps catalog order
		{sortBy: "", want: []int{1, 2, 3, 4, 5, 6}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ids(s.Search("", Filters{SortBy: tt.sortBy})), "sortBy=%s", tt.sortBy)
	}
}

func TestSearchSortTiesKeepCatalogOrder(t *testing.T) {
	s := New(nil)
	s.Load(context.Background(), staticSource{data: sourceData{
		Products: []models.Product{
			{ID: 10, Name: "a", Price: 50, Stock: 1},
			{ID: 11, Name: "b", Price: 50, Stock: 1},
			{ID: 12, Name: "c", Price: 40, Stock: 1},
		},
	}})

	assert.Equal(t, []int{12, 10, 11}, ids(s.Search("", Filters{SortBy: SortPriceAsc})))
}

func TestSearchDoesNotMutateCatalogOrder(t *testing.T) {
	s := newFallbackStore(t)

	s.Search("", Filters{SortBy: SortPriceAsc})

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(s.Search("", Filters{})))
}

func TestFeaturedRanking(t *testing.T) {
	s := New(nil)
	s.Load(context.Background(), staticSource{data: sourceData{
		Products: []models.Product{
			{ID: 1, Name: "plain", Price: 100, Stock: 5},
			{ID: 2, Name: "deep sale", Price: 50, OriginalPrice: 100, Badge: "sale", Stock: 5},
			{ID: 3, Name: "new", Price: 100, Badge: "new", Stock: 5},
			{ID: 4, Name: "best", Price: 100, Badge: "bestseller", Stock: 5},
			{ID: 5, Name: "sold out best", Price: 100, Badge: "bestseller", Stock: 0},
			{ID: 6, Name: "shallow sale", Price: 90, OriginalPrice: 100, Badge: "sale", Stock: 5},
		},
	}})

	// badge priority first, then discount percentage, sold-out excluded
	assert.Equal(t, []int{4, 3, 2, 6, 1}, ids(s.Featured(10)))
}

func TestFeaturedLimit(t *testing.T) {
	s := newFallbackStore(t)

	assert.Len(t, s.Featured(2), 2)
	assert.Len(t, s.Featured(0), 0)
}

func TestProductsByCategory(t *testing.T) {
	s := newFallbackStore(t)

	assert.Equal(t, []int{1, 2, 3, 4}, ids(s.ProductsByCategory("fresh")))
	assert.Empty(t, s.ProductsByCategory("unknown"))
}

func TestProductsInPriceRange(t *testing.T) {
	s := newFallbackStore(t)

	assert.Equal(t, []int{2, 5, 6}, ids(s.ProductsInPriceRange(60, 100)))
}

func TestActivePromotions(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	expired := now.Add(-time.Hour)
	later := now.Add(time.Hour)

	s := New(nil)
	s.Load(context.Background(), staticSource{data: sourceData{
		Promotions: []models.Promotion{
			{ID: 1, Code: "A", Active: true},
			{ID: 2, Code: "B", Active: false},
			{ID: 3, Code: "C", Active: true, ValidUntil: &expired},
			{ID: 4, Code: "D", Active: true, ValidUntil: &later},
		},
	}})

	active := s.ActivePromotions(now)
	require.Len(t, active, 2)
	assert.Equal(t, "A", active[0].Code)
	assert.Equal(t, "D", active[1].Code)
}

func TestStats(t *testing.T) {
	s := newFallbackStore(t)
	require.NoError(t, s.SetStock(3, 0))
	require.NoError(t, s.SetStock(4, 2))

	stats := s.Stats(time.Now())

	assert.Equal(t, 6, stats.TotalProducts)
	assert.Equal(t, 5, stats.InStockProducts)
	assert.Equal(t, 1, stats.LowStockProducts)
	assert.Equal(t, 1, stats.OutOfStockProducts)
	assert.Equal(t, 1, stats.ActivePromotions)
	assert.Equal(t, 4, stats.CategoryCounts["Fresh Fruit"])
	assert.Equal(t, 45.0, stats.PriceRange.Min)
	assert.Equal(t, 200.0, stats.PriceRange.Max)
}

func TestNotifications(t *testing.T) {
	s := newFallbackStore(t)
	require.NoError(t, s.SetStock(3, 0))
	require.NoError(t, s.SetStock(4, 2))

	notifications := s.Notifications(time.Now())

	require.Len(t, notifications, 2)
	assert.Equal(t, "warning", notifications[0].Type)
	assert.Equal(t, []int{4}, ids(notifications[0].Products))
	assert.Equal(t, "error", notifications[1].Type)
	assert.Equal(t, []int{3}, ids(notifications[1].Products))
}
