// Package pagination windows list results for the CLI and the HTTP API.
//
// Two mutually exclusive modes are supported:
//
//   - Offset mode: limit and offset select a window directly.
//   - Page mode: page and page-size are translated into a window.
//
// Params validates the combination, Window clamps it against the total record
// count, and Meta describes the resulting page for JSON output.
package pagination
