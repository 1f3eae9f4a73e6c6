// Package cart holds the in-progress selection. Adding reserves stock,
// removing returns it, and checkout consumes the reservation for good. Every
// mutation either fully commits (cart entry and stock together) or leaves
// both untouched.
package cart

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"fruitshop/internal/catalog"
	"fruitshop/internal/models"
	"fruitshop/internal/pricing"
	"fruitshop/internal/storage"
)

// ErrEmptyCart is returned by Checkout when there is nothing to buy.
var ErrEmptyCart = errors.New("cart is empty")

type NotInCartError struct {
	ProductID int
}

func (e NotInCartError) Error() string {
	return fmt.Sprintf("product %d is not in the cart", e.ProductID)
}

type InvalidPromoError struct {
	Code    string
	Message string
}

func (e InvalidPromoError) Error() string {
	return fmt.Sprintf("promo code %q rejected: %s", e.Code, e.Message)
}

// Cart is the single shopper cart. All stock arithmetic is delegated to the
// catalog store; the cart never touches stock directly.
type Cart struct {
	mu      sync.Mutex
	entries []models.CartEntry

	catalog *catalog.Store
	store   storage.Store
}

func New(cat *catalog.Store, store storage.Store) *Cart {
	return &Cart{catalog: cat, store: store}
}

// Restore loads the persisted cart. Entries whose product vanished from the
// catalog are dropped; the stock snapshot already accounts for the matching
// reservations, so nothing is re-reserved here.
func (c *Cart) Restore(ctx context.Context) {
	if c.store == nil {
		return
	}
	saved, err := c.store.LoadCart(ctx)
	if err != nil {
		log.Println("[cart] loading saved cart failed:", err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = c.entries[:0]
	for _, entry := range saved {
		if entry.Quantity < 1 {
			continue
		}
		if _, err := c.catalog.GetByID(entry.ProductID); err != nil {
			log.Printf("[cart] dropping saved entry for unknown product %d", entry.ProductID)
			continue
		}
		c.entries = append(c.entries, entry)
	}
	if len(c.entries) > 0 {
		log.Printf("[cart] restored %d entries", len(c.entries))
	}
}

// Add puts one unit of the product in the cart and reserves it. The entry
// increment and the stock decrement commit together: if the stock
// reservation fails, the entry change is rolled back.
func (c *Cart) Add(productID int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	product, err := c.catalog.GetByID(productID)
	if err != nil {
		return err
	}
	if product.Stock == 0 {
		return catalog.InsufficientStockError{ProductID: productID, Available: 0, Requested: 1}
	}

	i := c.indexOf(productID)
	if i >= 0 {
		if c.entries[i].Quantity >= product.Stock {
			return catalog.InsufficientStockError{
				ProductID: productID,
				Available: product.Stock,
				Requested: c.entries[i].Quantity + 1,
			}
		}
		c.entries[i].Quantity++
	} else {
		c.entries = append(c.entries, models.CartEntry{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Emoji:     product.Emoji,
			Quantity:  1,
		})
		i = len(c.entries) - 1
	}

	if err := c.catalog.ReduceStock(productID, 1); err != nil {
		// Lost a race on stock: undo the entry change.
		if c.entries[i].Quantity > 1 {
			c.entries[i].Quantity--
		} else {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
		}
		return err
	}

	c.persist()
	return nil
}

// Remove deletes the entry and returns its full reserved quantity to stock.
func (c *Cart) Remove(productID int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.removeLocked(productID)
}

func (c *Cart) removeLocked(productID int) error {
	i := c.indexOf(productID)
	if i < 0 {
		return NotInCartError{ProductID: productID}
	}

	if err := c.catalog.IncreaseStock(productID, c.entries[i].Quantity); err != nil {
		log.Printf("[cart] returning stock for product %d failed: %v", productID, err)
	}
	c.entries = append(c.entries[:i], c.entries[i+1:]...)

	c.persist()
	return nil
}

// SetQuantity moves the entry to the requested quantity, reserving or
// returning the difference. A quantity of zero or less removes the entry.
// On insufficient stock nothing changes.
func (c *Cart) SetQuantity(productID, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		return c.removeLocked(productID)
	}

	i := c.indexOf(productID)
	if i < 0 {
		return NotInCartError{ProductID: productID}
	}

	delta := quantity - c.entries[i].Quantity
	switch {
	case delta > 0:
		// ReduceStock checks and decrements atomically; on failure the
		// entry is untouched.
		if err := c.catalog.ReduceStock(productID, delta); err != nil {
			return err
		}
	case delta < 0:
		if err := c.catalog.IncreaseStock(productID, -delta); err != nil {
			return err
		}
	}
	c.entries[i].Quantity = quantity

	c.persist()
	return nil
}

// Clear empties the cart without restoring stock: the reservation is
// consumed, as at checkout.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = nil
	c.persist()
}

// Entries returns the raw cart entries with their add-time display snapshots.
func (c *Cart) Entries() []models.CartEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.CartEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lines prices the cart against the current catalog, so price changes after
// add are reflected. The add-time snapshot only fills in when a product has
// disappeared from the catalog.
func (c *Cart) Lines() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.linesLocked()
}

func (c *Cart) linesLocked() []models.CartLine {
	lines := make([]models.CartLine, 0, len(c.entries))
	for _, entry := range c.entries {
		name, price := entry.Name, entry.Price
		if product, err := c.catalog.GetByID(entry.ProductID); err == nil {
			name, price = product.Name, product.Price
		}
		lines = append(lines, models.CartLine{
			ProductID: entry.ProductID,
			Name:      name,
			UnitPrice: price,
			Quantity:  entry.Quantity,
			LineTotal: price * float64(entry.Quantity),
		})
	}
	return lines
}

// Subtotal is the cart value at current prices, before discount and
// shipping.
func (c *Cart) Subtotal() float64 {
	return pricing.Subtotal(c.Lines())
}

// Totals computes the full order breakdown with an optional promo code.
func (c *Cart) Totals(promoCode string, now time.Time) pricing.OrderTotals {
	lines := c.Lines()
	return pricing.OrderTotal(lines, c.catalog.Settings(), c.catalog.Promotions(), promoCode, now)
}

// Checkout turns the cart into a persisted order and empties it. Stock is
// not restored: checkout consumes the reservation. A non-empty promo code
// must validate, and the order must persist, or the cart stays as it was.
func (c *Cart) Checkout(ctx context.Context, promoCode string, now time.Time) (models.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	lines := c.linesLocked()
	settings := c.catalog.Settings()

	if promoCode != "" {
		result := pricing.ValidatePromoCode(
			c.catalog.Promotions(), settings.CurrencySymbol, promoCode, pricing.Subtotal(lines), now)
		if !result.Valid {
			return models.Order{}, InvalidPromoError{Code: promoCode, Message: result.Message}
		}
	}
	totals := pricing.OrderTotal(lines, settings, c.catalog.Promotions(), promoCode, now)

	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}

	order := models.Order{
		ID:          uuid.NewString(),
		Items:       items,
		Subtotal:    totals.Subtotal,
		Discount:    totals.Discount,
		ShippingFee: totals.ShippingFee,
		Total:       totals.Total,
		PromoCode:   promoCode,
		Currency:    totals.Currency,
		Status:      "pending",
		CreatedAt:   now,
	}

	if c.store != nil {
		if err := c.store.SaveOrder(ctx, order); err != nil {
			return models.Order{}, fmt.Errorf("saving order: %w", err)
		}
	}

	c.entries = nil
	c.persist()
	return order, nil
}

func (c *Cart) indexOf(productID int) int {
	for i, entry := range c.entries {
		if entry.ProductID == productID {
			return i
		}
	}
	return -1
}

// persist saves the cart best-effort; the in-memory cart stays authoritative
// on storage failure.
func (c *Cart) persist() {
	if c.store == nil {
		return
	}
	entries := make([]models.CartEntry, len(c.entries))
	copy(entries, c.entries)
	if err := c.store.SaveCart(context.Background(), entries); err != nil {
		log.Println("[cart] saving cart failed:", err)
	}
}
