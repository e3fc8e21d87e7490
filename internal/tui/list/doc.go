// Package listview provides a virtual scrolling grid for Bubble Tea views.
//
// Items are laid out left to right in a fixed number of columns and only the
// rows that fit the viewport, plus a small buffer, are rendered. Key features:
//   - Two-dimensional keyboard navigation (arrows, hjkl, pgup/pgdn, home/end)
//   - Column count changes without losing the selection
//   - Rendering through a caller supplied function, joined with lipgloss
package listview
