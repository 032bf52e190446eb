// Package mockorder is the local fallback store for demo orders. It must keep
// working exactly when the marketplace backend is unreachable, so records live
// in process memory with JSON file persistence instead of any networked store.
package mockorder

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/scrapmarket/constant"
	"github.com/muhammadheryan/scrapmarket/model"
)

type CreateMockOrderItem struct {
	ListingID    uint64
	ListingTitle string
	BuyerEmail   string
	Quantity     float64
	Unit         string
	PricePerUnit float64
	TotalPrice   float64
}

type Repository interface {
	Create(item *CreateMockOrderItem) (*model.MockOrder, error)
	GetForBuyer(buyerEmail string) ([]model.MockOrder, error)
	All() ([]model.MockOrder, error)
}

// fileStore keeps orders keyed by buyer email. Writes are append-only; the
// whole map is flushed to disk on every create, last write wins across
// processes.
type fileStore struct {
	mu     sync.RWMutex
	path   string
	orders map[string][]model.MockOrder
}

func NewRepository(path string) (Repository, error) {
	s := &fileStore{
		path:   path,
		orders: make(map[string][]model.MockOrder),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileStore) load() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read mock order store: %w", err)
	}
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, &s.orders); err != nil {
		return fmt.Errorf("decode mock order store: %w", err)
	}
	return nil
}

// flush must be called with the write lock held.
func (s *fileStore) flush() error {
	raw, err := json.MarshalIndent(s.orders, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, raw, 0o644)
}

func (s *fileStore) Create(item *CreateMockOrderItem) (*model.MockOrder, error) {
	if item == nil || item.BuyerEmail == "" {
		return nil, fmt.Errorf("mock order requires a buyer identity")
	}

	order := model.MockOrder{
		ID:           constant.MockOrderIDPrefix + uuid.NewString()[:8],
		ListingID:    item.ListingID,
		ListingTitle: item.ListingTitle,
		BuyerEmail:   item.BuyerEmail,
		Quantity:     item.Quantity,
		Unit:         item.Unit,
		PricePerUnit: item.PricePerUnit,
		TotalPrice:   item.TotalPrice,
		CreatedAt:    time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[item.BuyerEmail] = append(s.orders[item.BuyerEmail], order)
	if err := s.flush(); err != nil {
		// drop the in-memory record too, so the caller's Failed state
		// matches what a later GetForBuyer would return
		buyerOrders := s.orders[item.BuyerEmail]
		s.orders[item.BuyerEmail] = buyerOrders[:len(buyerOrders)-1]
		return nil, fmt.Errorf("persist mock order: %w", err)
	}
	return &order, nil
}

func (s *fileStore) GetForBuyer(buyerEmail string) ([]model.MockOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := make([]model.MockOrder, len(s.orders[buyerEmail]))
	copy(orders, s.orders[buyerEmail])
	return orders, nil
}

func (s *fileStore) All() ([]model.MockOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var all []model.MockOrder
	for _, orders := range s.orders {
		all = append(all, orders...)
	}
	return all, nil
}
