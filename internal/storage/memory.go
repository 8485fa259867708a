package storage

import (
	"context"
	"sync"
)

// MemoryBucket is the bucket name reported by MemoryStore references.
const MemoryBucket = "memory"

type memoryObject struct {
	data        []byte
	contentType string
}

// MemoryStore is an in-process Store for local runs and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string]memoryObject
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string]memoryObject)}
}

func (s *MemoryStore) Put(ctx context.Context, key string, data []byte, contentType string) (Ref, error) {
	if err := ctx.Err(); err != nil {
		return Ref{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = memoryObject{data: append([]byte(nil), data...), contentType: contentType}
	return Ref{Bucket: MemoryBucket, Key: key, URL: "memory://" + key}, nil
}

// Get returns a copy of the stored bytes and their content type.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[key]
	if !ok {
		return nil, "", &NotFoundError{Key: key}
	}
	return append([]byte(nil), obj.data...), obj.contentType, nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[key]; !ok {
		return &NotFoundError{Key: key}
	}
	delete(s.objects, key)
	return nil
}

// Len returns the number of stored objects.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
