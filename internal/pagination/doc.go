// Package pagination provides page arithmetic, navigation and CLI pagination parameters.
//
// This package contains:
//   - GetNumberOfPages: the page count for a row count and page size
//   - State and Navigate: boundary-checked first/previous/next/last navigation
//   - ChangeRowsPerPage: page-size changes that keep the current page valid
//   - Params: CLI flag parsing and validation (offset- or page-based)
//   - Meta: response metadata for paginated results
//
// All functions are pure; page counts are recomputed from their inputs on
// every call and never cached.
package pagination
