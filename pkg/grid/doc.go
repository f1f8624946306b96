// Package grid implements the occupancy and placement core for gridboard.
//
// A board is a fixed matrix of Columns x Rows positions. Cells are rectangular
// items with a 1-based origin and positive spans; at most one content-bearing
// cell may cover any position. The package provides:
//
//   - [Config]: immutable board dimensions and sizing policy
//   - [Cell]: a placed item with origin, span, and opaque content
//   - [Registry]: the authoritative cell set with last-write-wins identity
//   - [ComputeOccupancy]: derives the free/occupied matrix for one update cycle
//   - [CanPlace] and [CanMoveNearby]: pure placement validation
//
// Occupancy is always recomputed in full from the registry rather than patched
// incrementally. Boards are small (tens of positions), so the O(columns·rows)
// recompute is cheaper than tracking staleness.
//
// Malformed input (out-of-bounds footprints, overlapping cells, duplicate IDs)
// never panics. The registry reports such cells as [Diagnostic] values and the
// occupancy computation clamps footprints to the board, so callers decide how
// loudly to complain.
//
// # Example
//
//	cfg := grid.Config{Columns: 4, Rows: 4}
//	reg := grid.NewRegistry(cfg)
//	reg.SetCells([]grid.Cell{
//	    {ID: "a", Column: 1, Row: 1, ColumnSpan: 2, RowSpan: 2, Content: "A"},
//	    {ID: "b", Column: 4, Row: 1, Content: "B"},
//	})
//
//	occ := grid.ComputeOccupancy(cfg, reg.All(), "b")
//	if grid.CanPlace(cfg, occ, 3, 2, 1, 1) {
//	    reg.Commit("b", 3, 2)
//	}
package grid
