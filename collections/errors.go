package collections

import "errors"

var (
	// ErrDuplicateKey is returned by Add when the key is already present.
	// The stored value is left untouched.
	ErrDuplicateKey = errors.New("collections: key already present")

	// ErrDestinationTooSmall is returned by CopyTo when the destination
	// cannot hold every live mapping.
	ErrDestinationTooSmall = errors.New("collections: destination too small")
)

// corruptedChainMsg is the panic raised when a chain walk exceeds the table
// size. A chain can only cycle if the table was mutated concurrently without
// synchronization, so this is surfaced as a caller bug rather than an error.
const corruptedChainMsg = "collections: concurrent unsynchronized mutation detected (corrupted chain)"
