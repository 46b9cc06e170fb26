package kvdb

// Iterator walks key/value pairs in ascending key order. Key and Value are
// only valid until the next call to Next.
type Iterator interface {
	Next() bool
	Key() []byte
	Value() []byte
	// Release frees the iterator; calling it twice is safe
	Release()
	// Error reports a failure that stopped the walk early
	Error() error
}

// Iteratee opens iterators over a key range. start is relative to prefix:
// the walk begins at prefix+start.
type Iteratee interface {
	NewIterator(prefix, start []byte) Iterator
}

// ForEachPrefix visits every pair under prefix until fn returns false
func ForEachPrefix(it Iteratee, prefix []byte, fn func(key, value []byte) bool) error {
	iter := it.NewIterator(prefix, nil)
	defer iter.Release()

	for iter.Next() {
		if !fn(iter.Key(), iter.Value()) {
			break
		}
	}

	return iter.Error()
}
