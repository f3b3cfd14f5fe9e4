// Package main hosts the foldean CLI entrypoint and command graph.
//
// The root command scans a directory (the user's Downloads folder unless
// --dir is given), sorts each file into a category folder by extension, and
// prints the plan. Nothing moves until --apply is passed. The remaining
// commands are read-only helpers: categories lists the classification table,
// config show prints the effective settings, doctor runs the preflight
// checks, and version reports the build.
//
// Keep this package lean: behaviour lives in internal/organizer and friends.
// Commands here resolve flags into a config, wire logging, and render output.
package main
