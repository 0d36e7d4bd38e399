package sapling

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

// TestTreeDataDriven runs the scripts in testdata/tree. Commands:
//
//	insert / delete / find   one key per whitespace-separated field of the input
//	print                    Tree.String
//	traverse order=<name>    keys in the given order
//	layout                   key, depth and position of every node, level order
//	clear
func TestTreeDataDriven(t *testing.T) {
	datadriven.Walk(t, "testdata/tree", func(t *testing.T, path string) {
		tr := NewTree()
		tr.SetDebugMode(true, nil)
		datadriven.RunTest(t, path, func(t *testing.T, td *datadriven.TestData) string {
			switch td.Cmd {
			case "insert", "delete", "find":
				var out strings.Builder
				for _, f := range strings.Fields(td.Input) {
					key, err := strconv.Atoi(f)
					require.NoError(t, err)
					switch td.Cmd {
					case "insert":
						_, err = tr.Insert(key)
					case "delete":
						err = tr.Delete(key)
					case "find":
						var id NodeID
						id, err = tr.Find(key)
						if err == nil {
							fmt.Fprintf(&out, "%s %d: depth %d\n", td.Cmd, key, tr.Depth(id))
							continue
						}
					}
					fmt.Fprintf(&out, "%s %d: %s\n", td.Cmd, key, outcome(err))
				}
				return out.String()

			case "print":
				return tr.String()

			case "traverse":
				var name string
				td.ScanArgs(t, "order", &name)
				order, err := ParseOrder(name)
				require.NoError(t, err)
				ids, err := tr.Traverse(order)
				if err != nil {
					return outcome(err)
				}
				return fmt.Sprint(tr.KeysOf(ids))

			case "layout":
				Layout(tr, DefaultLayoutConfig())
				var out strings.Builder
				for id := range tr.Walk(LevelOrder) {
					n, _ := tr.Node(id)
					fmt.Fprintf(&out, "%d depth=%d x=%g y=%g\n", n.Key, tr.Depth(id), n.X, n.Y)
				}
				if out.Len() == 0 {
					return "(empty)"
				}
				return out.String()

			case "clear":
				tr.Clear()
				return tr.String()

			default:
				return fmt.Sprintf("unknown command: %s", td.Cmd)
			}
		})
	})
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrDuplicateKey):
		return "duplicate key"
	case errors.Is(err, ErrKeyNotFound):
		return "key not found"
	case errors.Is(err, ErrEmptyTree):
		return "empty tree"
	default:
		return err.Error()
	}
}
