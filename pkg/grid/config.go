package grid

import "fmt"

// SizingMode controls how a board's pixel aspect ratio is constrained.
type SizingMode int

const (
	// SizingFixedAspect locks the board aspect ratio to Columns/Rows,
	// producing square cells.
	SizingFixedAspect SizingMode = iota

	// SizingFree lets the board fill whatever space it is given.
	SizingFree
)

// String returns the mode name used in config files and flags.
func (m SizingMode) String() string {
	switch m {
	case SizingFixedAspect:
		return "fixed"
	case SizingFree:
		return "free"
	default:
		return fmt.Sprintf("SizingMode(%d)", int(m))
	}
}

// ParseSizingMode converts a config-file value to a SizingMode.
func ParseSizingMode(s string) (SizingMode, error) {
	switch s {
	case "fixed", "":
		return SizingFixedAspect, nil
	case "free":
		return SizingFree, nil
	default:
		return SizingFixedAspect, fmt.Errorf("unknown sizing mode %q (want fixed or free)", s)
	}
}

// Config holds the immutable board dimensions for one layout pass.
type Config struct {
	// Columns and Rows are the board dimensions. Both must be positive.
	Columns int
	Rows    int

	// Spacing is the pixel gap between cells. It only affects pixel
	// projection (pkg/grid/project), never placement.
	Spacing float64

	// Sizing selects the aspect-ratio policy for pixel projection.
	Sizing SizingMode
}

// Validate rejects impossible board dimensions.
// A non-positive column or row count is a configuration error, caught here
// at the boundary rather than deep in occupancy code.
func (c Config) Validate() error {
	if c.Columns <= 0 {
		return fmt.Errorf("grid config: columns must be positive, got %d", c.Columns)
	}
	if c.Rows <= 0 {
		return fmt.Errorf("grid config: rows must be positive, got %d", c.Rows)
	}
	if c.Spacing < 0 {
		return fmt.Errorf("grid config: spacing must not be negative, got %v", c.Spacing)
	}
	return nil
}

// InBounds reports whether the 1-based position lies on the board.
func (c Config) InBounds(column, row int) bool {
	return column >= 1 && column <= c.Columns && row >= 1 && row <= c.Rows
}
