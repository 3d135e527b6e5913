package metadata

import "fmt"

// ErrKeyExists indicates an insert with a key that is already present.
type ErrKeyExists struct {
	Key string
}

func (e *ErrKeyExists) Error() string {
	return fmt.Sprintf("metadata: key %q already exists; remove the existing entry before inserting", e.Key)
}

// ErrKeyNotFound indicates a lookup with a key that is not present.
type ErrKeyNotFound struct {
	Key string
}

func (e *ErrKeyNotFound) Error() string {
	return fmt.Sprintf("metadata: key %q not found", e.Key)
}

// ErrTypeMismatch indicates a typed retrieval whose type parameter does
// not match the dynamic type of the stored value.
type ErrTypeMismatch struct {
	Key  string
	Want string
	Got  string
}

func (e *ErrTypeMismatch) Error() string {
	return fmt.Sprintf("metadata: key %q holds %s, not %s", e.Key, e.Got, e.Want)
}

func newTypeMismatch(key string, want, got any) *ErrTypeMismatch {
	return &ErrTypeMismatch{
		Key:  key,
		Want: fmt.Sprintf("%T", want),
		Got:  fmt.Sprintf("%T", got),
	}
}
