// Package pagination provides paging and sorting for CLI listings.
//
// Two mutually exclusive modes are supported:
//   - Offset-based: --limit and --offset
//   - Page-based: --page and --page-size
//
// Sorting accepts "field" or "field:order" expressions validated by a Sorter.
package pagination
