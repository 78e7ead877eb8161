package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"pizza-orders/internal/domain"
)

// Ids start here on an empty store and only grow from there.
const firstOrderID = 1001

// FileStore persists the whole collection as one pretty-printed JSON array
// in a single file, the layout existing data files already use. A missing
// file is an empty store. Every mutation reads the whole collection and
// writes the changed collection back.
//
// Writers are serialized behind the mutex and the file is replaced by an
// atomic rename, so concurrent requests within the process cannot lose
// writes or hand out duplicate ids. nextID is the monotonic id counter:
// seeded from max+1 at open, bumped on every create, never rewound, so an
// id freed by a delete is not handed out again while the process lives.
type FileStore struct {
	path string

	mu     sync.RWMutex
	nextID int
}

func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}

	orders, err := s.load()
	if err != nil {
		return nil, err
	}
	s.nextID = nextAfter(orders)
	return s, nil
}

func (s *FileStore) List(ctx context.Context) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.load()
}

func (s *FileStore) Get(ctx context.Context, id int) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].OrderID == id {
			return &orders[i], nil
		}
	}
	return nil, ErrOrderNotFound
}

func (s *FileStore) Create(ctx context.Context, draft domain.OrderDraft) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.load()
	if err != nil {
		return nil, err
	}

	id := s.nextID
	// the file may have been grown by another process since the last look
	if n := nextAfter(orders); n > id {
		id = n
	}

	order := draft.ToOrder(id)
	orders = append(orders, order)
	if err := s.persist(orders); err != nil {
		return nil, err
	}

	s.nextID = id + 1
	return &order, nil
}

func (s *FileStore) Update(ctx context.Context, id int, draft domain.OrderDraft) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].OrderID != id {
			continue
		}

		// full replace, id forced back to the original
		orders[i] = draft.ToOrder(id)
		if err := s.persist(orders); err != nil {
			return nil, err
		}
		return &orders[i], nil
	}
	return nil, ErrOrderNotFound
}

func (s *FileStore) Delete(ctx context.Context, id int) (domain.DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.load()
	if err != nil {
		return domain.DeleteResult{}, err
	}

	kept := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if o.OrderID != id {
			kept = append(kept, o)
		}
	}
	if len(kept) == len(orders) {
		return domain.DeleteResult{OrderID: id, Status: domain.DeleteStatusNotFound}, nil
	}

	if err := s.persist(kept); err != nil {
		return domain.DeleteResult{}, err
	}
	return domain.DeleteResult{OrderID: id, Status: domain.DeleteStatusDeleted}, nil
}

func (s *FileStore) load() ([]domain.Order, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Order{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	orders := []domain.Order{}
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return orders, nil
}

func (s *FileStore) persist(orders []domain.Order) error {
	data, err := json.MarshalIndent(orders, "", "    ")
	if err != nil {
		return fmt.Errorf("encode orders: %w", err)
	}

	// write-then-rename so readers never observe a half-written file
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".orders-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp.Name(), err)
	}
	return nil
}

func nextAfter(orders []domain.Order) int {
	next := firstOrderID
	for _, o := range orders {
		if o.OrderID >= next {
			next = o.OrderID + 1
		}
	}
	return next
}
