package logic

import (
	"fmt"
	"sync"

	"yubin/internal/domain"
)

// MemoryRecordStore is an in-memory implementation of RecordStore
type MemoryRecordStore struct {
	mu      sync.RWMutex
	state   LoadState
	records []domain.Record
	loadErr error
}

// NewMemoryRecordStore creates an unloaded store
func NewMemoryRecordStore() *MemoryRecordStore {
	return &MemoryRecordStore{}
}

// NewLoadedRecordStore creates a store that is already loaded with records
func NewLoadedRecordStore(records []domain.Record) *MemoryRecordStore {
	s := NewMemoryRecordStore()
	_ = s.BeginLoad()
	_ = s.CompleteLoad(records)
	return s
}

func (s *MemoryRecordStore) State() LoadState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *MemoryRecordStore) Records() ([]domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateLoaded {
		return nil, domain.ErrDataNotReady
	}
	return s.records, nil
}

func (s *MemoryRecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *MemoryRecordStore) LoadError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// BeginLoad moves unloaded -> loading
func (s *MemoryRecordStore) BeginLoad() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateUnloaded {
		return fmt.Errorf("begin load in state %s: %w", s.state, domain.ErrStoreSealed)
	}
	s.state = StateLoading
	return nil
}

// CompleteLoad moves loading -> loaded. The slice is copied so callers
// cannot mutate the dataset afterwards.
func (s *MemoryRecordStore) CompleteLoad(records []domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateLoading {
		return fmt.Errorf("complete load in state %s: %w", s.state, domain.ErrStoreSealed)
	}
	s.records = append([]domain.Record(nil), records...)
	s.state = StateLoaded
	return nil
}

// FailLoad moves loading -> load-failed, which is terminal
func (s *MemoryRecordStore) FailLoad(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateLoading {
		return fmt.Errorf("fail load in state %s: %w", s.state, domain.ErrStoreSealed)
	}
	s.loadErr = err
	s.state = StateLoadFailed
	return nil
}
