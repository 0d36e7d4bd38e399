package sapling

import "github.com/cockroachdb/errors"

// Input errors
var (
	// ErrInvalidInput indicates that user input could not be parsed as an integer key.
	ErrInvalidInput = errors.New("sapling: invalid input")
)

// Tree errors
var (
	// ErrDuplicateKey indicates an insert of a key that is already in the tree.
	// The tree is left unchanged.
	ErrDuplicateKey = errors.New("sapling: duplicate key")

	// ErrKeyNotFound indicates a delete or search for a key that is not in the tree.
	ErrKeyNotFound = errors.New("sapling: key not found")

	// ErrEmptyTree indicates a query, delete or traversal on a tree with no root.
	ErrEmptyTree = errors.New("sapling: tree is empty")
)

// Session errors
var (
	// ErrBusy indicates that an operation was rejected because a highlight
	// sequence is still running.
	ErrBusy = errors.New("sapling: animation in progress")
)

func duplicateKeyError(key int) error {
	return errors.Mark(errors.Newf("sapling: key %d is already present", key), ErrDuplicateKey)
}

func keyNotFoundError(key int) error {
	return errors.Mark(errors.Newf("sapling: key %d not found", key), ErrKeyNotFound)
}
