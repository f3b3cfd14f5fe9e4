// Package organizer sorts the files of a directory into category folders.
//
// A run scans the target directory (and, at depth 1, each first-level
// subfolder), filters out entries that must never move, classifies the rest by
// extension, resolves collision-free destinations, and then either reports the
// plan or executes it. Moves prefer an atomic rename and fall back to a
// verified copy followed by removal of the source when the rename fails.
//
// Failures while moving one file are recorded on that file's Outcome and the
// run continues; only an unreadable target aborts the whole run. Dry runs never
// touch the filesystem beyond reading it.
package organizer
