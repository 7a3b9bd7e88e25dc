// Package memory implements the blob store as a mutex-guarded map.
// Payloads are held as single in-memory byte slices; nothing survives a
// process restart.
package memory

import "sync"

type blob struct {
	name string
	data []byte
}

// Store is an in-memory blob store.
type Store struct {
	mu    sync.Mutex
	blobs map[string]blob
}

// New creates an empty store.
func New() *Store {
	return &Store{blobs: make(map[string]blob)}
}

// Put stores the payload for a code, replacing any previous one.
func (s *Store) Put(code, name string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[code] = blob{name: name, data: data}
}

// Get returns the stored payload, if any.
func (s *Store) Get(code string) (string, []byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blobs[code]
	if !ok {
		return "", nil, false
	}
	return b.name, b.data, true
}

// Delete removes the payload for a code. No-op if absent.
func (s *Store) Delete(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, code)
}

// Close discards all stored payloads.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs = make(map[string]blob)
	return nil
}
