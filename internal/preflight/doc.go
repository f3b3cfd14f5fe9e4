// Package preflight provides readiness checks for the directories a run
// touches.
//
// These checks run in two contexts:
//   - The organize command calls CheckTarget before scanning so a missing or
//     unwritable target fails fast with a clear message.
//   - The "foldean doctor" command runs RunAll and renders every result.
package preflight
