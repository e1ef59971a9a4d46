package store

import (
	"encoding/csv"
	"io"
	"strconv"
	"sync"

	"quickbite-pos/helpers"
	"quickbite-pos/models"
)

// DefaultHistoryCapacity bounds the in-memory order log. Records past the
// cap are silently evicted, oldest first; that is documented policy, not
// data loss.
const DefaultHistoryCapacity = 10000

// HistoryStore is an append-only, capacity-bounded log of archived orders,
// surfaced most-recent-first. It does not enforce the admin gate itself;
// callers reach it only through the gated layer above.
type HistoryStore struct {
	mu       sync.Mutex
	capacity int
	orders   []models.ArchivedOrder // oldest first internally
}

func NewHistoryStore(capacity int) *HistoryStore {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &HistoryStore{capacity: capacity}
}

// Append records an order and evicts past capacity in one step; no
// intermediate state is observable between two appends.
func (s *HistoryStore) Append(order models.ArchivedOrder) {
	order.Lines = append([]models.CartLine(nil), order.Lines...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, order)
	if len(s.orders) > s.capacity {
		s.orders = s.orders[len(s.orders)-s.capacity:]
	}
}

// List returns the full log, most recent first.
func (s *HistoryStore) List() []models.ArchivedOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ArchivedOrder, len(s.orders))
	for i, o := range s.orders {
		out[len(s.orders)-1-i] = o
	}
	return out
}

func (s *HistoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

// ExportRows projects one row per order, most recent first: id, date,
// time, mode, total, customer, staff, table, vip count. No header row;
// downstream consumers rely on the stable shape.
func (s *HistoryStore) ExportRows() [][]string {
	loc := helpers.Location()

	s.mu.Lock()
	defer s.mu.Unlock()
	rows := make([][]string, 0, len(s.orders))
	for i := len(s.orders) - 1; i >= 0; i-- {
		o := s.orders[i]
		at := o.CreatedAt.In(loc)
		rows = append(rows, []string{
			strconv.FormatInt(o.ID, 10),
			at.Format("02/01/2006"),
			at.Format("15:04:05"),
			string(o.Mode),
			o.Breakdown.GrandTotal.StringFixed(2),
			o.CustomerLabel(),
			o.StaffLabel(),
			o.TableLabel(),
			o.VIPLabel(),
		})
	}
	return rows
}

func (s *HistoryStore) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	for _, row := range s.ExportRows() {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
