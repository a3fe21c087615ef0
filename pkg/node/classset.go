package node

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultClassSetSize bounds the number of distinct classes a ClassSet
// keeps interned.
const DefaultClassSetSize = 1024

// nodeClass is the interned (role, actions, flags) part of a node.
type nodeClass struct {
	role    Role
	actions ActionSet
	flags   flagSet
}

// ClassSet interns node classes so that nodes with the same role, actions
// and flags share one class value. It is safe for concurrent use.
//
// Eviction only affects sharing: a node keeps its class after the class
// has been evicted, and equality never depends on class identity.
type ClassSet struct {
	cache *lru.Cache[nodeClass, *nodeClass]
}

// NewClassSet returns a ClassSet holding up to DefaultClassSetSize classes.
func NewClassSet() *ClassSet {
	s, err := NewClassSetSize(DefaultClassSetSize)
	if err != nil {
		// Only reachable with a non-positive size.
		panic(err)
	}
	return s
}

// NewClassSetSize returns a ClassSet holding up to size classes.
func NewClassSetSize(size int) (*ClassSet, error) {
	cache, err := lru.New[nodeClass, *nodeClass](size)
	if err != nil {
		return nil, err
	}
	return &ClassSet{cache: cache}, nil
}

// Len returns the number of interned classes.
func (s *ClassSet) Len() int { return s.cache.Len() }

// Purge drops every interned class.
func (s *ClassSet) Purge() { s.cache.Purge() }

func (s *ClassSet) intern(key nodeClass) *nodeClass {
	if s == nil {
		c := key
		return &c
	}
	if c, ok := s.cache.Get(key); ok {
		return c
	}
	c := key
	if prev, ok, _ := s.cache.PeekOrAdd(key, &c); ok {
		return prev
	}
	return &c
}
