package store

import (
	"sync"

	"quickbite-pos/models"
)

// CartStore owns the basket of the order currently being built. One line
// per distinct item id; name and price are snapshotted at add time.
type CartStore struct {
	mu    sync.Mutex
	lines []models.CartLine
}

func NewCartStore() *CartStore {
	return &CartStore{}
}

// Add accumulates quantity on an existing line or appends a new one with
// quantity 1. Repeated adds of the same item never duplicate lines.
func (s *CartStore) Add(item models.CatalogItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].ItemID == item.ID {
			s.lines[i].Quantity++
			return
		}
	}
	s.lines = append(s.lines, models.CartLine{
		ItemID:    item.ID,
		Name:      item.Name,
		UnitPrice: item.UnitPrice,
		Quantity:  1,
	})
}

// UpdateQuantity applies a delta with a floor of 1. Removing a line goes
// through Remove, never through a negative delta. Reports whether the line
// exists.
func (s *CartStore) UpdateQuantity(itemID string, delta int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].ItemID == itemID {
			q := s.lines[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			s.lines[i].Quantity = q
			return true
		}
	}
	return false
}

// Remove deletes the line; no-op if absent.
func (s *CartStore) Remove(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].ItemID == itemID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

func (s *CartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// Lines returns a copy of the basket.
func (s *CartStore) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.CartLine(nil), s.lines...)
}

func (s *CartStore) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines) == 0
}
