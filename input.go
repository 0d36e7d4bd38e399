package sapling

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ParseKey parses user input as an integer key. Surrounding whitespace is
// ignored; anything else that is not a base-10 integer is rejected with an
// error matching ErrInvalidInput.
func ParseKey(input string) (int, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, errors.Mark(errors.New("sapling: empty input"), ErrInvalidInput)
	}
	key, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Mark(errors.Wrapf(err, "sapling: parse %q", s), ErrInvalidInput)
	}
	return key, nil
}

// ParseOrder parses a traversal order name. Accepted spellings are "in",
// "inorder" and "in-order" (and likewise for pre, post and level), case
// insensitive.
func ParseOrder(name string) (Order, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.TrimSuffix(strings.ReplaceAll(s, "-", ""), "order")
	switch s {
	case "in":
		return InOrder, nil
	case "pre":
		return PreOrder, nil
	case "post":
		return PostOrder, nil
	case "level", "bfs":
		return LevelOrder, nil
	}
	return 0, errors.Mark(errors.Newf("sapling: unknown traversal order %q", name), ErrInvalidInput)
}
