// Package store defines the blob store holding the single payload
// bound to a room code. Payloads live exactly as long as their room;
// the hub deletes them on teardown.
package store

// Store is the payload storage interface.
type Store interface {
	// Put stores the payload for a room code, replacing any previous one.
	Put(code, name string, data []byte)
	// Get returns the stored payload, if any.
	Get(code string) (name string, data []byte, ok bool)
	// Delete removes the payload for a code. No-op if absent.
	Delete(code string)
	// Close releases any resources held by the store.
	Close() error
}
