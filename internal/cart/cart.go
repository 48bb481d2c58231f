// Package cart tracks selected products and quantities.
package cart

import (
	"sync"

	"github.com/sarthakbiswas97/ecommerce/internal/catalog"
)

// Item is one cart entry: a product reference, a price snapshot taken at
// add-time, and a positive quantity.
type Item struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

// Store holds cart items in insertion order. At most one item exists per
// product id. All methods are safe for concurrent use.
//
// Persistence is not the store's concern: callers subscribe to change
// notifications and write the durable slot themselves.
type Store struct {
	mu          sync.Mutex
	items       []Item
	subscribers []func()
}

// NewStore builds an empty cart store.
func NewStore() *Store {
	return &Store{}
}

// Load replaces the cart contents, normalizing quantities below 1 up to 1.
// Subscribers are not notified; Load restores previously persisted state.
func (s *Store) Load(items []Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make([]Item, 0, len(items))
	for _, item := range items {
		if item.Quantity < 1 {
			item.Quantity = 1
		}
		s.items = append(s.items, item)
	}
}

// AddItem adds a product to the cart. An existing item for the same product
// id has its quantity incremented; otherwise a new item is inserted with
// quantity 1 and the price snapshotted from the given product. Later price
// changes upstream never affect the snapshot.
func (s *Store) AddItem(product catalog.Product) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == product.ID {
			s.items[i].Quantity++
			s.mu.Unlock()
			s.notify()
			return
		}
	}
	s.items = append(s.items, Item{
		ID:       product.ID,
		Title:    product.Title,
		Price:    product.Price,
		Image:    product.Image,
		Quantity: 1,
	})
	s.mu.Unlock()
	s.notify()
}

// RemoveItem deletes the item entirely, regardless of quantity. Removing an
// absent id is a no-op and notifies nobody.
func (s *Store) RemoveItem(id int) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.mu.Unlock()
			s.notify()
			return
		}
	}
	s.mu.Unlock()
}

// UpdateQuantity sets an item's quantity directly. Quantities below 1 clamp
// to 1; removal stays an explicit separate action. Unknown ids are ignored.
func (s *Store) UpdateQuantity(id int, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			s.mu.Unlock()
			s.notify()
			return
		}
	}
	s.mu.Unlock()
}

// TotalPrice returns the sum over all items of price times quantity.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, item := range s.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Items returns a copy of the cart contents in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Item(nil), s.items...)
}

// Len returns the number of distinct items in the cart.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Contains reports whether the cart holds an item for the product id.
func (s *Store) Contains(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Subscribe registers a callback invoked after every mutation. Callbacks run
// outside the store lock, in registration order.
func (s *Store) Subscribe(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) notify() {
	s.mu.Lock()
	subscribers := append([]func(){}, s.subscribers...)
	s.mu.Unlock()
	for _, fn := range subscribers {
		fn()
	}
}
