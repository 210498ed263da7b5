package dfa

import (
	"iter"
	"sync"
)

// Hashable is implemented by keys of HashMap.
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

// HashMap is a chained hash table keyed by Hashable values. Reads take a read
// lock, so a map that is no longer written can be shared by many readers.
type HashMap[T any] struct {
	buckets    []*Entry[T]
	size       int
	mask       uint64
	mutex      sync.RWMutex
	emptyValue T
	loadFactor float64
}

// Entry is one key/value pair of a bucket chain.
type Entry[T any] struct {
	key   Hashable
	value T
	next  *Entry[T]
}

type optionsHashMap struct {
	capacity   int
	loadFactor float64
}

func newOptionsHashMap(opts ...OptionsHashMap) *optionsHashMap {
	options := &optionsHashMap{
		capacity:   4,
		loadFactor: 0.75,
	}

	for _, opt := range opts {
		opt(options)
	}

	// Bucket count is always a power of two so hash & mask picks a bucket.
	realCap := 1
	for realCap < options.capacity {
		realCap <<= 1
	}
	options.capacity = realCap

	if options.loadFactor <= 0 || options.loadFactor >= 1 {
		options.loadFactor = 0.75
	}

	return options
}

type OptionsHashMap func(hashMap *optionsHashMap)

func WithMapCapacity(capacity int) OptionsHashMap {
	return func(hashMap *optionsHashMap) {
		hashMap.capacity = capacity
	}
}

func WithLoadFactor(loadFactor float64) OptionsHashMap {
	return func(hashMap *optionsHashMap) {
		hashMap.loadFactor = loadFactor
	}
}

// NewHashMap creates an empty map. The initial capacity is rounded up to a
// power of two.
func NewHashMap[T any](options ...OptionsHashMap) *HashMap[T] {
	opt := newOptionsHashMap(options...)

	return &HashMap[T]{
		buckets:    make([]*Entry[T], opt.capacity),
		mask:       uint64(opt.capacity - 1),
		loadFactor: opt.loadFactor,
	}
}

// Set inserts key or replaces its value.
func (m *HashMap[T]) Set(key Hashable, value T) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	index := key.Hash() & m.mask

	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			e.value = value
			return
		}
	}

	m.buckets[index] = &Entry[T]{
		key:   key,
		value: value,
		next:  m.buckets[index],
	}
	m.size++

	if float64(m.size)/float64(len(m.buckets)) > m.loadFactor {
		m.resize()
	}
}

// SetIfAbsent inserts key only when it is not present yet. It reports whether
// the value was stored.
func (m *HashMap[T]) SetIfAbsent(key Hashable, value T) bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	index := key.Hash() & m.mask

	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			return false
		}
	}

	m.buckets[index] = &Entry[T]{
		key:   key,
		value: value,
		next:  m.buckets[index],
	}
	m.size++

	if float64(m.size)/float64(len(m.buckets)) > m.loadFactor {
		m.resize()
	}
	return true
}

// Get returns the value stored for key.
func (m *HashMap[T]) Get(key Hashable) (T, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	index := key.Hash() & m.mask

	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			return e.value, true
		}
	}
	return m.emptyValue, false
}

// Delete removes key if present.
func (m *HashMap[T]) Delete(key Hashable) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	index := key.Hash() & m.mask

	var prev *Entry[T]
	for e := m.buckets[index]; e != nil; prev, e = e, e.next {
		if e.key.Equals(key) {
			if prev == nil {
				m.buckets[index] = e.next
			} else {
				prev.next = e.next
			}
			m.size--
			return
		}
	}
}

// Caller holds the write lock.
func (m *HashMap[T]) resize() {
	newCap := len(m.buckets) << 1
	newBuckets := make([]*Entry[T], newCap)
	newMask := uint64(newCap - 1)

	for _, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			newIndex := e.key.Hash() & newMask
			newBuckets[newIndex] = &Entry[T]{
				key:   e.key,
				value: e.value,
				next:  newBuckets[newIndex],
			}
		}
	}

	m.buckets = newBuckets
	m.mask = newMask
}

// Size returns the number of keys.
func (m *HashMap[T]) Size() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.size
}

// Iterator yields every key/value pair in bucket order. The map must not be
// written while iterating.
func (m *HashMap[T]) Iterator() iter.Seq2[Hashable, T] {
	return func(yield func(Hashable, T) bool) {
		for _, bucket := range m.buckets {
			for e := bucket; e != nil; e = e.next {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}
