package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/phanxgames/sapling"
)

// repl drives a session from line-oriented text input. It is also the
// session's Presenter: notices are printed, and each highlighted node is
// reported as it is visited.
type repl struct {
	vis    *sapling.Visualizer
	sched  *sapling.FrameScheduler
	out    io.Writer
	log    *slog.Logger
	prompt string
	// after runs once the current command's animation has finished.
	after func()
	// sleep paces animations; nil finishes them instantly.
	sleep func(time.Duration)
}

func newREPL(cfg sapling.Config, out io.Writer, sleep func(time.Duration)) *repl {
	r := &repl{
		sched:  sapling.NewFrameScheduler(),
		out:    out,
		log:    cfg.Logger,
		prompt: "sapling> ",
		sleep:  sleep,
	}
	if r.log == nil {
		r.log = slog.Default()
	}
	r.vis = sapling.New(r.sched, r, cfg)
	return r
}

func runREPL(cctx *cli.Context) error {
	logger := configLogger(cctx, os.Stderr)
	cfg, err := sessionConfig(cctx, logger)
	if err != nil {
		return err
	}
	sleep := time.Sleep
	if cctx.Bool("no-wait") {
		sleep = nil
	}
	r := newREPL(cfg, os.Stdout, sleep)
	fmt.Fprintln(r.out, "Sapling REPL - binary search tree visualizer")
	fmt.Fprintln(r.out, "Type 'help' for available commands, 'quit' to exit")
	fmt.Fprintln(r.out)
	r.printTree()
	return r.run(os.Stdin)
}

// run reads commands until EOF or quit.
func (r *repl) run(in io.Reader) error {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(r.out, r.prompt)
		if !sc.Scan() {
			fmt.Fprintln(r.out)
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if !r.handleCommand(line) {
			return nil
		}
		// Every command runs to completion before the next is read.
		r.sched.Drain(r.sleep)
		if r.after != nil {
			r.after()
			r.after = nil
		}
	}
}

// --- sapling.Presenter ---

func (r *repl) Notice(msg string) {
	fmt.Fprintln(r.out, msg)
}

func (r *repl) Highlight(id sapling.NodeID, on bool) {
	if !on {
		return
	}
	if key, ok := r.vis.Tree().Key(id); ok {
		fmt.Fprintf(r.out, "  visit %d\n", key)
	}
}

func (r *repl) Relayout() {}

// --- commands ---

func (r *repl) handleCommand(input string) bool {
	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	var err error
	switch cmd {
	case "help", "?":
		r.printHelp()

	case "quit", "exit":
		fmt.Fprintln(r.out, "Goodbye!")
		return false

	case "insert", "i":
		if len(args) == 0 {
			err = r.vis.Insert("")
			break
		}
		for _, a := range args {
			if err = r.vis.Insert(a); err != nil {
				break
			}
		}
		if err == nil {
			r.printTree()
		}

	case "delete", "d":
		err = r.vis.Delete(strings.Join(args, " "))
		if err == nil {
			r.after = func() {
				fmt.Fprintf(r.out, "Node %d deleted\n", r.vis.Last().Key)
				r.printTree()
			}
		}

	case "search", "find", "s":
		err = r.vis.Search(strings.Join(args, " "))

	case "inorder", "preorder", "postorder", "levelorder", "traverse":
		name := cmd
		if cmd == "traverse" {
			if len(args) != 1 {
				fmt.Fprintln(r.out, "usage: traverse <in|pre|post|level>")
				return true
			}
			name = args[0]
		}
		var order sapling.Order
		if order, err = sapling.ParseOrder(name); err != nil {
			fmt.Fprintln(r.out, err)
			return true
		}
		err = r.vis.Traverse(order)

	case "clear":
		err = r.vis.Clear()
		if err == nil {
			fmt.Fprintln(r.out, "Tree cleared")
		}

	case "reset":
		err = r.vis.Reset()
		if err == nil {
			r.printTree()
		}

	case "tree", "print":
		r.printTree()

	case "layout":
		r.printLayout()

	case "drag", "move":
		r.drag(args)

	default:
		fmt.Fprintf(r.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}

	if err != nil {
		r.log.Debug("command failed", "cmd", cmd, "err", err)
	}
	return true
}

func (r *repl) drag(args []string) {
	if len(args) != 3 {
		fmt.Fprintln(r.out, "usage: drag <key> <x> <y>")
		return
	}
	key, err := sapling.ParseKey(args[0])
	if err != nil {
		fmt.Fprintln(r.out, "Please enter a valid number")
		return
	}
	x, errX := strconv.ParseFloat(args[1], 64)
	y, errY := strconv.ParseFloat(args[2], 64)
	if errX != nil || errY != nil {
		fmt.Fprintln(r.out, "usage: drag <key> <x> <y>")
		return
	}
	id, err := r.vis.Tree().Find(key)
	if err != nil {
		r.Notice(sapling.NoticeFor(sapling.OpSearch, key, err))
		return
	}
	r.vis.Drag(id, x, y)
	fmt.Fprintf(r.out, "Node %d moved to (%g, %g)\n", key, x, y)
}

func (r *repl) printTree() {
	fmt.Fprintln(r.out, r.vis.Tree().String())
}

// printLayout prints every node's current position in level order.
func (r *repl) printLayout() {
	tree := r.vis.Tree()
	if tree.Empty() {
		fmt.Fprintln(r.out, "(empty)")
		return
	}
	tbl := tablewriter.NewWriter(r.out)
	tbl.SetHeader([]string{"Key", "Depth", "X", "Y", "State"})
	for id := range tree.Walk(sapling.LevelOrder) {
		n, _ := tree.Node(id)
		tbl.Append([]string{
			strconv.Itoa(n.Key),
			strconv.Itoa(tree.Depth(id)),
			strconv.FormatFloat(n.X, 'g', -1, 64),
			strconv.FormatFloat(n.Y, 'g', -1, 64),
			n.State.String(),
		})
	}
	tbl.Render()
}

func (r *repl) printHelp() {
	fmt.Fprint(r.out, `Commands:
  insert <key>...          insert one or more keys
  delete <key>             highlight and delete a key
  search <key>             highlight a key if present (alias: find)
  inorder | preorder | postorder | levelorder
                           highlight every node in that order
  traverse <order>         same, with order in|pre|post|level
  clear                    remove every node
  reset                    restore the initial tree
  tree                     print the tree
  layout                   print every node's position
  drag <key> <x> <y>       move a node until the next relayout
  help                     show this help
  quit                     exit
`)
}
