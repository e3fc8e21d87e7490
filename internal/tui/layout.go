package tui

import "github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/config"

// Breakpoint is a terminal width class.
type Breakpoint int

// Breakpoints from narrowest to widest.
const (
	BreakpointXS Breakpoint = iota
	BreakpointSM
	BreakpointMD
	BreakpointLG
	BreakpointXL
)

// Minimum widths of each breakpoint above xs.
const (
	minWidthSM = 72
	minWidthMD = 96
	minWidthLG = 124
	minWidthXL = 150
)

// String returns the breakpoint name.
func (b Breakpoint) String() string {
	switch b {
	case BreakpointXS:
		return "xs"
	case BreakpointSM:
		return "sm"
	case BreakpointMD:
		return "md"
	case BreakpointLG:
		return "lg"
	case BreakpointXL:
		return "xl"
	default:
		return "unknown"
	}
}

// BreakpointFor classifies a terminal width.
func BreakpointFor(width int) Breakpoint {
	switch {
	case width >= minWidthXL:
		return BreakpointXL
	case width >= minWidthLG:
		return BreakpointLG
	case width >= minWidthMD:
		return BreakpointMD
	case width >= minWidthSM:
		return BreakpointSM
	default:
		return BreakpointXS
	}
}

// GridColumns is the number of grid columns per breakpoint. Each value is
// independent.
type GridColumns struct {
	XS, SM, MD, LG, XL int
}

// GridColumnsFrom converts configured columns.
func GridColumnsFrom(c config.Columns) GridColumns {
	return GridColumns{XS: c.XS, SM: c.SM, MD: c.MD, LG: c.LG, XL: c.XL}
}

// For returns the column count for a terminal width, never less than 1.
func (g GridColumns) For(width int) int {
	var n int
	switch BreakpointFor(width) {
	case BreakpointXS:
		n = g.XS
	case BreakpointSM:
		n = g.SM
	case BreakpointMD:
		n = g.MD
	case BreakpointLG:
		n = g.LG
	case BreakpointXL:
		n = g.XL
	}
	return max(n, 1)
}
