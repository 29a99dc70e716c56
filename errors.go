package hashtable

import "errors"

var (
	// ErrInvalidArgument is returned by constructors when the capacity or the
	// load factor threshold is out of range.
	ErrInvalidArgument = errors.New("hashtable: invalid argument")

	// ErrKeyNotFound is returned by lookups and deletes of absent keys.
	ErrKeyNotFound = errors.New("hashtable: key not found")
)
