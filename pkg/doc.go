// Package pkg provides the core libraries for Gridboard layout editing.
//
// # Overview
//
// Gridboard models a rectangular board of cells that can be selected,
// dragged and dropped into new positions. The pkg directory is organized
// into five main areas:
//
//  1. [grid] - Domain logic (cell registry, occupancy, placement rules)
//  2. [grid/session] - The press/drag/drop edit state machine
//  3. [grid/project] - Pixel geometry (coordinates to rectangles and back)
//  4. [layout], [store] - Serialization and named-layout persistence
//  5. [export] - Static SVG/PNG rendering
//
// # Architecture
//
// The typical data flow through Gridboard:
//
//	Layout JSON (file, Redis, Mongo)
//	         ↓
//	    [layout] package (deserialize, assign ids)
//	         ↓
//	    [grid] package (registry + occupancy + placement)
//	         ↓
//	    [grid/session] package (pointer events → moves)
//	         ↓
//	    [grid/session.Plan] / [export] output
//
// # Quick Start
//
// Load a layout and drive an edit session:
//
//	import (
//	    "github.com/matzehuels/gridboard/pkg/grid"
//	    "github.com/matzehuels/gridboard/pkg/grid/session"
//	    "github.com/matzehuels/gridboard/pkg/layout"
//	)
//
//	// 1. Load the layout
//	l, _ := layout.ReadLayoutFile("board.json")
//	cfg, _ := l.Config()
//
//	// 2. Build the session
//	m := session.New(cfg, session.DefaultStrategy())
//	m.SetCells(l.GridCells())
//	m.SetMetrics(800, 600)
//
//	// 3. Feed pointer events
//	m.Handle(session.Event{Kind: session.LongPress, X: 40, Y: 40})
//	m.Handle(session.Event{Kind: session.PointerDown, X: 40, Y: 40})
//	m.Handle(session.Event{Kind: session.PointerMove, X: 240, Y: 40})
//	m.Handle(session.Event{Kind: session.PointerUp, X: 240, Y: 40})
//
//	// 4. Render the result
//	plan := m.Plan()
//
// # Main Packages
//
//   - [grid]: board configuration, cells, registry, occupancy, placement
//   - [grid/session]: edit session state machine and render plan
//   - [grid/project]: cell metrics and pixel projection
//   - [layout]: JSON serialization format
//   - [store]: memory, file, Redis and Mongo layout stores
//   - [export]: SVG and PNG rendering
//   - [observability]: optional session/store instrumentation hooks
//   - [buildinfo]: ldflags-injected version information
package pkg
