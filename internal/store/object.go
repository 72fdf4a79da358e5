package store

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// ErrObjectNotExist is returned when a key holds no object.
var ErrObjectNotExist = fmt.Errorf("object does not exist")

// Stats describes the objects currently held by an ObjectStore.
type Stats struct {
	TotalObjects int           `json:"total_objects"`
	TotalBytes   int64         `json:"total_bytes"`
	OldestObject time.Time     `json:"oldest_object"`
	AverageAge   time.Duration `json:"average_age"`
}

// ObjectStore is the durable key-value boundary the article store writes
// through. Get and Set are whole-value operations; there are no transactions.
type ObjectStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
	GetStats(ctx context.Context) (*Stats, error)
	Close() error
}

// MemoryStore implements ObjectStore in memory, for tests and local runs.
type MemoryStore struct {
	objects map[string][]byte
	mutex   sync.RWMutex
}

// NewMemoryStore creates a new in-memory object store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		objects: make(map[string][]byte),
	}
}

// Get retrieves an object from memory.
func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	data, exists := s.objects[key]
	if !exists {
		return nil, ErrObjectNotExist
	}

	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Set stores an object in memory.
func (s *MemoryStore) Set(ctx context.Context, key string, data []byte) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.objects[key] = stored
	return nil
}

// GetStats counts the objects held in memory. The in-memory store keeps no
// creation times, so the age fields stay zero.
func (s *MemoryStore) GetStats(ctx context.Context) (*Stats, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	stats := &Stats{}
	for _, data := range s.objects {
		stats.TotalObjects++
		stats.TotalBytes += int64(len(data))
	}
	return stats, nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
