// Package logging assembles structured slog loggers and formatting helpers used
// across foldean.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so organizer code can tag log
// lines with the run identifier, the run stage, and the item being moved. The
// package also provides a no-op logger for tests and wiring code that cannot
// fail.
//
// Logs are diagnostics; the plan report the user reads is written separately
// by the CLI. Keep the two apart so --json output stays parseable.
package logging
