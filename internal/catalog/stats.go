package catalog

import (
	"fmt"
	"time"

	"fruitshop/internal/models"
)

// Products with this many units or fewer count as running low.
const lowStockThreshold = 5

type PriceRange struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
}

type Stats struct {
	TotalProducts      int            `json:"totalProducts"`
	InStockProducts    int            `json:"inStockProducts"`
	LowStockProducts   int            `json:"lowStockProducts"`
	OutOfStockProducts int            `json:"outOfStockProducts"`
	CategoryCounts     map[string]int `json:"categoryCounts"`
	PriceRange         PriceRange     `json:"priceRange"`
	ActivePromotions   int            `json:"activePromotions"`
}

// Stats summarizes the catalog for the admin dashboard.
func (s *Store) Stats(now time.Time) Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Stats{
		TotalProducts:  len(s.products),
		CategoryCounts: make(map[string]int, len(s.categories)),
	}

	var priceSum float64
	for i, p := range s.products {
		switch {
		case p.Stock == 0:
			stats.OutOfStockProducts++
		case p.Stock <= lowStockThreshold:
			stats.InStockProducts++
			stats.LowStockProducts++
		default:
			stats.InStockProducts++
		}

		priceSum += p.Price
		if i == 0 || p.Price < stats.PriceRange.Min {
			stats.PriceRange.Min = p.Price
		}
		if p.Price > stats.PriceRange.Max {
			stats.PriceRange.Max = p.Price
		}
	}
	if len(s.products) > 0 {
		stats.PriceRange.Average = priceSum / float64(len(s.products))
	}

	for _, c := range s.categories {
		count := 0
		for _, p := range s.products {
			if p.Category == c.ID {
				count++
			}
		}
		stats.CategoryCounts[c.Name] = count
	}

	for _, promo := range s.promotions {
		if promo.ActiveAt(now) {
			stats.ActivePromotions++
		}
	}

	return stats
}

type Notification struct {
	Type       string             `json:"type"`
	Title      string             `json:"title"`
	Message    string             `json:"message"`
	Products   []models.Product   `json:"products,omitempty"`
	Promotions []models.Promotion `json:"promotions,omitempty"`
}

// Notifications lists stock and promotion conditions worth flagging: low
// stock, sold-out products, and promotions expiring within a week.
func (s *Store) Notifications(now time.Time) []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notifications := make([]Notification, 0, 3)

	var lowStock, outOfStock []models.Product
	for _, p := range s.products {
		switch {
		case p.Stock == 0:
			outOfStock = append(outOfStock, annotate(p))
		case p.Stock <= lowStockThreshold:
			lowStock = append(lowStock, annotate(p))
		}
	}

	if len(lowStock) > 0 {
		notifications = append(notifications, Notification{
			Type:     "warning",
			Title:    "Low stock",
			Message:  fmt.Sprintf("%d products are running low", len(lowStock)),
			Products: lowStock,
		})
	}
	if len(outOfStock) > 0 {
		notifications = append(notifications, Notification{
			Type:     "error",
			Title:    "Out of stock",
			Message:  fmt.Sprintf("%d products are sold out", len(outOfStock)),
			Products: outOfStock,
		})
	}

	var expiring []models.Promotion
	for _, promo := range s.promotions {
		if promo.ValidUntil == nil {
			continue
		}
		left := promo.ValidUntil.Sub(now)
		if left > 0 && left <= 7*24*time.Hour {
			expiring = append(expiring, promo)
		}
	}
	if len(expiring) > 0 {
		notifications = append(notifications, Notification{
			Type:       "info",
			Title:      "Promotions expiring soon",
			Message:    fmt.Sprintf("%d promotions expire within a week", len(expiring)),
			Promotions: expiring,
		})
	}

	return notifications
}
