package hashmap

import (
	"fmt"
	"strings"
)

// Entry is a single key/value link within a Chain.
type Entry[K comparable, V any] struct {
	Key   K
	Value V

	next *Entry[K, V]
}

// Next returns the entry that follows e in its chain, or nil if e is the tail.
func (e *Entry[K, V]) Next() *Entry[K, V] {
	return e.next
}

func (e *Entry[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", e.Key, e.Value)
}

// Chain is a singly linked list of entries that hashed to the same bucket.
// The most recently added entry is always at the head.
type Chain[K comparable, V any] struct {
	head   *Entry[K, V]
	length int
}

// NewChain returns an empty Chain.
func NewChain[K comparable, V any]() *Chain[K, V] {
	return &Chain[K, V]{}
}

// AddFront links a new entry at the head of the chain.
//
// AddFront does not check whether the key is already present; that is up to the caller.
func (c *Chain[K, V]) AddFront(key K, value V) {
	c.head = &Entry[K, V]{
		Key:   key,
		Value: value,
		next:  c.head,
	}
	c.length += 1
}

// Remove unlinks the first entry with the given key and reports whether one was found.
func (c *Chain[K, V]) Remove(key K) bool {
	for link := &c.head; *link != nil; link = &(*link).next {
		if (*link).Key == key {
			*link = (*link).next
			c.length -= 1
			return true
		}
	}

	return false
}

// Contains returns the entry holding the given key, or nil if there is none.
// The returned entry's Value may be modified in place.
func (c *Chain[K, V]) Contains(key K) *Entry[K, V] {
	for e := c.head; e != nil; e = e.next {
		if e.Key == key {
			return e
		}
	}

	return nil
}

// Head returns the first entry of the chain, or nil if the chain is empty.
func (c *Chain[K, V]) Head() *Entry[K, V] {
	return c.head
}

// Len returns the number of entries in the chain.
func (c *Chain[K, V]) Len() int {
	return c.length
}

// Range calls cb for each entry from head to tail until cb returns false.
func (c *Chain[K, V]) Range(cb func(*Entry[K, V]) bool) {
	for e := c.head; e != nil; e = e.next {
		if !cb(e) {
			return
		}
	}
}

func (c *Chain[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for e := c.head; e != nil; e = e.next {
		if e != c.head {
			sb.WriteString(" -> ")
		}
		sb.WriteString(e.String())
	}
	sb.WriteString("]")
	return sb.String()
}
