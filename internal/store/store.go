// Package store provides the durable key-value persistence used by the
// habit, goal, and day stores.
package store

// KV loads and saves named string blobs. Callers own the serialization
// format and must treat a missing key as "no data yet".
type KV interface {
	// Load returns the value for key. ok is false when the key has never
	// been saved; err is reserved for failures of the backing store.
	Load(key string) (value string, ok bool, err error)
	// Save durably writes value under key, replacing any previous value.
	Save(key, value string) error
}

// Lister is implemented by adapters that can enumerate their keys.
type Lister interface {
	// Keys returns every key starting with prefix, in ascending order.
	Keys(prefix string) ([]string, error)
}
