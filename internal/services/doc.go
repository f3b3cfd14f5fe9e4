// Package services defines shared utilities consumed by the organizer and the
// CLI.
//
// Key responsibilities:
//   - Context helpers that stamp run identifiers, run stages, and the item
//     being processed for logging.
//   - Structured error markers plus the Wrap helper that separate fatal run
//     failures (unreadable target, held lock, bad flags) from per-item move
//     failures that only mark a single file as failed.
//
// Use these helpers when wiring new organizer logic so error reporting and
// log fields stay uniform across the run.
package services
