package catalog

import (
	"strings"
	"sync"
)

// CategoryAll selects every category in the derived view.
const CategoryAll = "all"

// Store holds the fetched product collection and derives the visible subset
// from three independent criteria: free-text query, category, and sort key.
//
// All methods are safe for concurrent use.
type Store struct {
	mu         sync.Mutex
	products   []Product
	categories []string
	query      string
	category   string
	sort       SortKey
	view       []Product
	errMessage string
}

// NewStore builds an empty catalog store with neutral criteria.
func NewStore() *Store {
	return &Store{category: CategoryAll, sort: SortDefault}
}

// Load replaces the full product collection, clears any error state, and
// recomputes the derived view. The distinct category list is derived in
// first-seen order for use as filter options.
func (s *Store) Load(products []Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append([]Product(nil), products...)
	s.categories = deriveCategories(s.products)
	s.errMessage = ""
	s.recompute()
}

// SetError records a fetch failure. The collection and derived view are
// cleared so no stale data survives behind the error.
func (s *Store) SetError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = nil
	s.categories = nil
	s.view = nil
	s.errMessage = strings.TrimSpace(message)
	if s.errMessage == "" {
		s.errMessage = "failed to fetch products"
	}
}

// Err returns the recorded fetch failure message, if any.
func (s *Store) Err() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMessage, s.errMessage != ""
}

// SetQuery updates the free-text criterion and recomputes the view.
func (s *Store) SetQuery(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = strings.TrimSpace(text)
	s.recompute()
}

// SetCategory updates the category criterion and recomputes the view.
// An empty value means CategoryAll.
func (s *Store) SetCategory(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.category = strings.TrimSpace(value)
	if s.category == "" {
		s.category = CategoryAll
	}
	s.recompute()
}

// SetSort updates the sort criterion and recomputes the view.
func (s *Store) SetSort(key SortKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sort = ParseSortKey(string(key))
	s.recompute()
}

// View returns a copy of the current derived view.
func (s *Store) View() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Product(nil), s.view...)
}

// Products returns a copy of the full fetched collection.
func (s *Store) Products() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Product(nil), s.products...)
}

// Categories returns the distinct categories present in the collection,
// in first-seen order.
func (s *Store) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.categories...)
}

// Criteria returns the current filter criteria.
func (s *Store) Criteria() (query string, category string, sort SortKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query, s.category, s.sort
}

func (s *Store) recompute() {
	s.view = DeriveView(s.products, s.query, s.category, s.sort)
}

// DeriveView computes the filtered and sorted subset of products.
//
// It is a pure function of its inputs: the query keeps products whose title,
// description, or category contains it as a case-insensitive substring; a
// category other than CategoryAll keeps exact matches only; the survivors are
// stably sorted by key. The input slice is never mutated.
func DeriveView(products []Product, query string, category string, key SortKey) []Product {
	view := make([]Product, 0, len(products))
	needle := strings.ToLower(strings.TrimSpace(query))
	category = strings.TrimSpace(category)
	for _, product := range products {
		if needle != "" && !matchesQuery(product, needle) {
			continue
		}
		if category != "" && category != CategoryAll && product.Category != category {
			continue
		}
		view = append(view, product)
	}
	sortProducts(view, ParseSortKey(string(key)))
	return view
}

func matchesQuery(product Product, needle string) bool {
	return strings.Contains(strings.ToLower(product.Title), needle) ||
		strings.Contains(strings.ToLower(product.Description), needle) ||
		strings.Contains(strings.ToLower(product.Category), needle)
}

func deriveCategories(products []Product) []string {
	seen := make(map[string]struct{}, len(products))
	categories := make([]string, 0, len(products))
	for _, product := range products {
		category := strings.TrimSpace(product.Category)
		if category == "" {
			continue
		}
		if _, ok := seen[category]; ok {
			continue
		}
		seen[category] = struct{}{}
		categories = append(categories, category)
	}
	return categories
}
