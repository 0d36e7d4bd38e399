package sapling

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Op identifies a user-level operation for notices and logging.
type Op uint8

const (
	OpInsert Op = iota
	OpDelete
	OpSearch
	OpTraverse
	OpClear
	OpReset
)

// String returns the operation name.
func (op Op) String() string {
	switch op {
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	case OpSearch:
		return "search"
	case OpTraverse:
		return "traverse"
	case OpClear:
		return "clear"
	case OpReset:
		return "reset"
	default:
		return "unknown"
	}
}

// NoticeFor returns the user-facing message for an operation that failed
// with err. key is the key the operation was given, if it got that far.
func NoticeFor(op Op, key int, err error) string {
	switch {
	case errors.Is(err, ErrBusy):
		return "Animation in progress, please wait"
	case errors.Is(err, ErrInvalidInput):
		switch op {
		case OpDelete:
			return "Please enter a valid number to delete"
		case OpSearch:
			return "Please enter a valid number to search"
		default:
			return "Please enter a valid number"
		}
	case errors.Is(err, ErrDuplicateKey):
		return fmt.Sprintf("Node %d is already present", key)
	case errors.Is(err, ErrEmptyTree):
		switch op {
		case OpDelete:
			return "Tree is empty, nothing to delete"
		case OpSearch:
			return "Tree is empty, nothing to search"
		default:
			return "Tree is empty"
		}
	case errors.Is(err, ErrKeyNotFound):
		if op == OpDelete {
			return "Node not found"
		}
		return fmt.Sprintf("Node %d not found!", key)
	default:
		return fmt.Sprintf("%s failed: %v", op, err)
	}
}

// FoundNotice is shown when a search completes successfully.
func FoundNotice(key int) string {
	return fmt.Sprintf("Node %d found!", key)
}

// TraversalNotice reports the keys visited by a traversal, e.g.
// "Traversal Order: 10 → 20 → 30".
func TraversalNotice(keys []int) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Itoa(k)
	}
	return "Traversal Order: " + strings.Join(parts, " → ")
}
