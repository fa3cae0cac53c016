// Package display renders drgrep's user-facing output: search results with
// per-segment highlighting, matched file paths, and warnings.
//
// All functions accept io.Writer interfaces for testability. Color is
// applied with fatih/color and suppressed automatically when the target
// writer is not a terminal.
package display
