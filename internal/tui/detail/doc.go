// Package detail provides the mount and slot machinery behind asynchronous
// detail views.
//
// A view creates a Mount when it starts showing an item and dismisses it when
// the item changes or the view goes away. Each remote resource lives in its
// own Slot, moving from pending to succeeded or failed exactly once per
// mount. Loads run as Bubble Tea commands in their own goroutines:
//   - every result carries the token of the mount that started it
//   - results for a dismissed mount are reported stale and never applied
//   - dismissing a mount cancels its context, stopping in-flight requests
//
// The 'r' key in the detail view starts a fresh mount for the same item.
package detail
