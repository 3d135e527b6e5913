package metadata

import "iter"

// Cloner is implemented by values that need a deep copy when the store
// they live in is cloned. Values that do not implement Cloner are copied
// by assignment.
type Cloner interface {
	CloneValue() any
}

// Store is a heterogeneous key-value store. Keys are strings; values can
// be of any type and are retrieved with the type-checked Get, Update and
// Pop functions.
//
// The zero value is ready to use. Store is not safe for concurrent
// mutation.
type Store struct {
	m map[string]any
}

func (s *Store) init() {
	if s.m == nil {
		s.m = make(map[string]any)
	}
}

// Insert stores value under key. The key must not already exist; remove
// the existing entry first to replace it.
func (s *Store) Insert(key string, value any) error {
	s.init()
	if _, ok := s.m[key]; ok {
		return &ErrKeyExists{Key: key}
	}
	s.m[key] = value
	return nil
}

// Remove deletes the entry for key and reports whether one existed.
func (s *Store) Remove(key string) bool {
	_, ok := s.m[key]
	delete(s.m, key)
	return ok
}

// Has reports whether key is present.
func (s *Store) Has(key string) bool {
	_, ok := s.m[key]
	return ok
}

// Len returns the number of entries.
func (s *Store) Len() int { return len(s.m) }

// IsEmpty reports whether the store has no entries.
func (s *Store) IsEmpty() bool { return len(s.m) == 0 }

// Clear removes all entries.
func (s *Store) Clear() {
	clear(s.m)
}

// Keys returns an iterator over the stored keys in unspecified order.
func (s *Store) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for k := range s.m {
			if !yield(k) {
				return
			}
		}
	}
}

// Clone returns a copy of the store. Values implementing Cloner are
// deep-copied through CloneValue; all other values are copied by
// assignment, so pointer-based values still alias the original.
func (s *Store) Clone() Store {
	if len(s.m) == 0 {
		return Store{}
	}
	c := Store{m: make(map[string]any, len(s.m))}
	for k, v := range s.m {
		if cl, ok := v.(Cloner); ok {
			c.m[k] = cl.CloneValue()
		} else {
			c.m[k] = v
		}
	}
	return c
}

// Get returns the value stored under key. The type parameter must be
// exactly the dynamic type of the stored value.
func Get[T any](s *Store, key string) (T, error) {
	var zero T
	x, ok := s.m[key]
	if !ok {
		return zero, &ErrKeyNotFound{Key: key}
	}
	v, ok := x.(T)
	if !ok {
		return zero, newTypeMismatch(key, zero, x)
	}
	return v, nil
}

// Update mutates the value stored under key in place. The mutate callback
// receives a pointer to the value; the (possibly modified) value is stored
// back when the callback returns. Fails with the same errors as Get.
func Update[T any](s *Store, key string, mutate func(*T)) error {
	v, err := Get[T](s, key)
	if err != nil {
		return err
	}
	mutate(&v)
	s.m[key] = v
	return nil
}

// Pop removes the entry for key and returns its value. The store is left
// unchanged when the type does not match.
func Pop[T any](s *Store, key string) (T, error) {
	v, err := Get[T](s, key)
	if err != nil {
		var zero T
		return zero, err
	}
	delete(s.m, key)
	return v, nil
}
