package cart

import (
	"sync"

	"hostel-store/internal/product"

	"github.com/shopspring/decimal"
)

// Item is a product line in the cart. Quantity is always >= 1; a line
// that would drop to zero is removed instead.
type Item struct {
	product.Product
	Quantity int `json:"quantity"`
}

// Subtotal is price times quantity for this line.
func (i Item) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Store holds the in-memory cart for one storefront session. Lines keep
// insertion order and there is at most one line per product id. All
// operations are synchronous, serialized by a mutex, and never fail;
// totals are derived on each read, never cached.
type Store struct {
	mu    sync.Mutex
	items []Item
}

func NewStore() *Store {
	return &Store{}
}

// AddItem puts one unit of the product into the cart: a new line with
// quantity 1, or one more on the existing line.
func (s *Store) AddItem(p product.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i].Quantity++
			return
		}
	}
	s.items = append(s.items, Item{Product: p, Quantity: 1})
}

// UpdateQuantity sets the line's quantity. Zero or below removes the
// line; an unknown product id is a no-op.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(productID)
		return
	}
	for i := range s.items {
		if s.items[i].ID == productID {
			s.items[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem deletes the line for the product id; a no-op when absent.
func (s *Store) RemoveItem(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(productID)
}

// Clear empties the cart unconditionally.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
}

// Items returns a snapshot copy of the lines in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]Item, len(s.items))
	copy(snapshot, s.items)
	return snapshot
}

// Total is the sum of price times quantity over all lines, recomputed
// on every call.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// ItemCount is the sum of quantities, used for the cart badge.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Len is the number of distinct product lines.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.items)
}

func (s *Store) removeLocked(productID string) {
	for i := range s.items {
		if s.items[i].ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}
