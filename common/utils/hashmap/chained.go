package hashmap

import (
	"fmt"
	"strings"

	"github.com/Scusemua/go-utils/config"
	"github.com/Scusemua/go-utils/logger"
	"github.com/pkg/errors"
)

var _ HashMap[string, int] = (*ChainedHashMap[string, int])(nil)

// Link is a key/value pair copied out of a ChainedHashMap.
type Link[K comparable, V any] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

// ChainedHashMap is a hash map that resolves collisions with separate chaining.
//
// The number of buckets only changes when ResizeTable is called. ChainedHashMap is not safe for concurrent use.
//
// A ChainedHashMap must be created with NewChainedHashMap. Operations on the zero value panic with
// ErrUninitializedTable.
type ChainedHashMap[K comparable, V any] struct {
	buckets  []*Chain[K, V]
	capacity int
	size     int
	hasher   Hasher[K]

	log logger.Logger
}

// NewChainedHashMap creates a ChainedHashMap with the given number of buckets that indexes keys using hasher.
func NewChainedHashMap[K comparable, V any](capacity int, hasher Hasher[K]) (*ChainedHashMap[K, V], error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "cannot create table with capacity %d", capacity)
	}

	if hasher == nil {
		return nil, ErrNilHasher
	}

	if f, ok := hasher.(HashFunc[K]); ok && f == nil {
		return nil, ErrNilHasher
	}

	m := &ChainedHashMap[K, V]{
		buckets:  newBuckets[K, V](capacity),
		capacity: capacity,
		hasher:   hasher,
	}

	config.InitLogger(&m.log, m)

	return m, nil
}

func newBuckets[K comparable, V any](capacity int) []*Chain[K, V] {
	buckets := make([]*Chain[K, V], capacity)
	for i := range buckets {
		buckets[i] = NewChain[K, V]()
	}
	return buckets
}

// mustBeInitialized panics if m was not created by NewChainedHashMap.
func (m *ChainedHashMap[K, V]) mustBeInitialized() {
	if m.hasher == nil || m.capacity <= 0 {
		panic(ErrUninitializedTable)
	}
}

// indexFor returns hash(key) mod capacity, folded into [0, capacity) if the hasher misbehaves.
func (m *ChainedHashMap[K, V]) indexFor(key K, capacity int) int {
	m.mustBeInitialized()

	idx := m.hasher.Hash(key) % capacity
	if idx < 0 {
		idx += capacity
	}
	return idx
}

// BucketIndex returns the index of the bucket that key belongs to.
func (m *ChainedHashMap[K, V]) BucketIndex(key K) int {
	return m.indexFor(key, m.capacity)
}

// BucketLen returns the number of entries in the bucket at index i.
func (m *ChainedHashMap[K, V]) BucketLen(i int) int {
	return m.buckets[i].Len()
}

// RangeBucket calls cb with each key/value pair in the bucket at index i, head to tail,
// until cb returns false. The values passed to cb are copies.
func (m *ChainedHashMap[K, V]) RangeBucket(i int, cb func(K, V) bool) {
	m.buckets[i].Range(func(e *Entry[K, V]) bool {
		return cb(e.Key, e.Value)
	})
}

// BucketString renders the bucket at index i the same way as the corresponding line of String.
func (m *ChainedHashMap[K, V]) BucketString(i int) string {
	return m.buckets[i].String()
}

// Get returns the value stored under key and whether it was found.
func (m *ChainedHashMap[K, V]) Get(key K) (value V, ok bool) {
	if e := m.buckets[m.BucketIndex(key)].Contains(key); e != nil {
		return e.Value, true
	}
	return value, false
}

// ContainsKey reports whether the table holds an entry for key.
func (m *ChainedHashMap[K, V]) ContainsKey(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Put associates value with key. An existing entry is updated in place; otherwise
// a new entry is added to the front of its bucket.
//
// Put never grows the table. Call ResizeTable when TableLoad gets too high.
func (m *ChainedHashMap[K, V]) Put(key K, value V) {
	bucket := m.buckets[m.BucketIndex(key)]
	if e := bucket.Contains(key); e != nil {
		e.Value = value
		return
	}

	bucket.AddFront(key, value)
	m.size += 1
}

// Remove deletes the entry for key, reporting whether there was one.
func (m *ChainedHashMap[K, V]) Remove(key K) bool {
	if !m.buckets[m.BucketIndex(key)].Remove(key) {
		return false
	}

	m.size -= 1
	return true
}

// Clear removes every entry. The capacity and hash function are unchanged.
func (m *ChainedHashMap[K, V]) Clear() {
	m.log.Debug("Clearing %d entries from %d bucket(s).", m.size, m.capacity)
	m.buckets = newBuckets[K, V](m.capacity)
	m.size = 0
}

// ResizeTable rebuilds the table with newCapacity buckets and rehashes every entry into it.
//
// The relative order of entries that share a bucket is not preserved.
func (m *ChainedHashMap[K, V]) ResizeTable(newCapacity int) error {
	if newCapacity <= 0 {
		return errors.Wrapf(ErrInvalidCapacity, "cannot resize table to capacity %d", newCapacity)
	}

	if m.hasher == nil || m.capacity <= 0 {
		return ErrUninitializedTable
	}

	buckets := newBuckets[K, V](newCapacity)
	for _, bucket := range m.buckets {
		for e := bucket.Head(); e != nil; e = e.Next() {
			buckets[m.indexFor(e.Key, newCapacity)].AddFront(e.Key, e.Value)
		}
	}

	m.log.Debug("Resized table from %d to %d bucket(s). Rehashed %d entries.", m.capacity, newCapacity, m.size)

	m.capacity = newCapacity
	m.buckets = buckets
	return nil
}

// EmptyBuckets returns the number of buckets that hold no entries.
func (m *ChainedHashMap[K, V]) EmptyBuckets() int {
	empty := 0
	for _, bucket := range m.buckets {
		if bucket.Len() == 0 {
			empty += 1
		}
	}
	return empty
}

// TableLoad returns the load factor, i.e., the number of entries divided by the number of buckets.
func (m *ChainedHashMap[K, V]) TableLoad() float64 {
	m.mustBeInitialized()
	return float64(m.size) / float64(m.capacity)
}

// ListOfLinks returns every key/value pair in bucket order, and head to tail within each bucket.
func (m *ChainedHashMap[K, V]) ListOfLinks() []Link[K, V] {
	links := make([]Link[K, V], 0, m.size)
	for _, bucket := range m.buckets {
		for e := bucket.Head(); e != nil; e = e.Next() {
			links = append(links, Link[K, V]{Key: e.Key, Value: e.Value})
		}
	}
	return links
}

// Size returns the number of entries in the table.
func (m *ChainedHashMap[K, V]) Size() int {
	return m.size
}

// Capacity returns the number of buckets.
func (m *ChainedHashMap[K, V]) Capacity() int {
	return m.capacity
}

func (m *ChainedHashMap[K, V]) String() string {
	var sb strings.Builder
	for i, bucket := range m.buckets {
		sb.WriteString(fmt.Sprintf("%d: %s\n", i, bucket.String()))
	}
	return sb.String()
}

// // // // // // // // // // // // //
// HashMap interface implementation //
// // // // // // // // // // // // //

func (m *ChainedHashMap[K, V]) Load(key K) (V, bool) {
	return m.Get(key)
}

func (m *ChainedHashMap[K, V]) Store(key K, val V) {
	m.Put(key, val)
}

func (m *ChainedHashMap[K, V]) Delete(key K) {
	m.Remove(key)
}

func (m *ChainedHashMap[K, V]) LoadAndDelete(key K) (val V, exists bool) {
	bucket := m.buckets[m.BucketIndex(key)]
	e := bucket.Contains(key)
	if e == nil {
		return val, false
	}

	val = e.Value
	bucket.Remove(key)
	m.size -= 1
	return val, true
}

func (m *ChainedHashMap[K, V]) LoadOrStore(key K, value V) (V, bool) {
	bucket := m.buckets[m.BucketIndex(key)]
	if e := bucket.Contains(key); e != nil {
		return e.Value, true
	}

	bucket.AddFront(key, value)
	m.size += 1
	return value, false
}

// Range visits entries in the same order as ListOfLinks.
func (m *ChainedHashMap[K, V]) Range(cb func(K, V) bool) {
	for _, bucket := range m.buckets {
		for e := bucket.Head(); e != nil; e = e.Next() {
			if !cb(e.Key, e.Value) {
				return
			}
		}
	}
}

func (m *ChainedHashMap[K, V]) Len() int {
	return m.size
}
