// Package view presents a sapling session in an ebiten window.
//
// A Scene draws the tree as outlined circles joined by edges, with a toolbar
// along the bottom holding a numeric text field and one button per
// operation. Messages from the session open a modal notice that is closed by
// a click, Enter or Escape. Nodes can be dragged; edges follow the dragged
// node until the next structural change relays out the tree.
//
// # Quick start
//
//	err := view.Run(sapling.DefaultConfig(), view.DefaultRunConfig())
//
// # Automation
//
// Input can be injected instead of read from the devices, one event per
// frame (InjectClick, InjectDrag, InjectText, InjectKey), and a JSON script
// loaded with LoadScript drives a whole session, taking screenshots along
// the way:
//
//	{"steps": [
//	    {"action": "type", "text": "25"},
//	    {"action": "key", "key": "enter"},
//	    {"action": "button", "label": "In-order"},
//	    {"action": "wait", "frames": 240},
//	    {"action": "screenshot", "label": "in-order"}
//	]}
package view
