package sapling

import (
	"testing"

	"github.com/cockroachdb/errors"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"42", 42, true},
		{"  -7\n", -7, true},
		{"+3", 3, true},
		{"0", 0, true},
		{"", 0, false},
		{"   ", 0, false},
		{"12abc", 0, false},
		{"1.5", 0, false},
		{"forty", 0, false},
		{"99999999999999999999999", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseKey(tt.in)
		if tt.ok {
			if err != nil || got != tt.want {
				t.Errorf("ParseKey(%q) = %d, %v; want %d", tt.in, got, err, tt.want)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ParseKey(%q) err = %v, want ErrInvalidInput", tt.in, err)
		}
	}
}

func TestParseOrder(t *testing.T) {
	tests := map[string]Order{
		"in":          InOrder,
		"In-Order":    InOrder,
		"inorder":     InOrder,
		"pre":         PreOrder,
		"pre-order":   PreOrder,
		"post":        PostOrder,
		"postorder":   PostOrder,
		"level":       LevelOrder,
		"level-order": LevelOrder,
		"bfs":         LevelOrder,
	}
	for in, want := range tests {
		got, err := ParseOrder(in)
		if err != nil || got != want {
			t.Errorf("ParseOrder(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	for _, in := range []string{"", "sideways", "order"} {
		if _, err := ParseOrder(in); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ParseOrder(%q) err = %v, want ErrInvalidInput", in, err)
		}
	}
	for _, o := range Orders {
		if got, err := ParseOrder(o.String()); err != nil || got != o {
			t.Errorf("ParseOrder(%q) = %v, %v", o.String(), got, err)
		}
	}
}

func TestNoticeFor(t *testing.T) {
	_, badInput := ParseKey("x")
	tests := []struct {
		op   Op
		key  int
		err  error
		want string
	}{
		{OpInsert, 0, ErrBusy, "Animation in progress, please wait"},
		{OpClear, 0, errors.Wrap(ErrBusy, "wrapped"), "Animation in progress, please wait"},
		{OpInsert, 0, badInput, "Please enter a valid number"},
		{OpDelete, 0, badInput, "Please enter a valid number to delete"},
		{OpSearch, 0, badInput, "Please enter a valid number to search"},
		{OpInsert, 40, duplicateKeyError(40), "Node 40 is already present"},
		{OpDelete, 0, ErrEmptyTree, "Tree is empty, nothing to delete"},
		{OpSearch, 0, ErrEmptyTree, "Tree is empty, nothing to search"},
		{OpTraverse, 0, ErrEmptyTree, "Tree is empty"},
		{OpSearch, 9, keyNotFoundError(9), "Node 9 not found!"},
		{OpDelete, 9, keyNotFoundError(9), "Node not found"},
		{OpReset, 0, errors.New("boom"), "reset failed: boom"},
	}
	for _, tt := range tests {
		if got := NoticeFor(tt.op, tt.key, tt.err); got != tt.want {
			t.Errorf("NoticeFor(%v, %d, %v) = %q, want %q", tt.op, tt.key, tt.err, got, tt.want)
		}
	}
}

func TestFoundAndTraversalNotices(t *testing.T) {
	if got := FoundNotice(30); got != "Node 30 found!" {
		t.Errorf("FoundNotice = %q", got)
	}
	if got := TraversalNotice([]int{1, 2, 3}); got != "Traversal Order: 1 → 2 → 3" {
		t.Errorf("TraversalNotice = %q", got)
	}
	if got := TraversalNotice(nil); got != "Traversal Order: " {
		t.Errorf("TraversalNotice(nil) = %q", got)
	}
}
