// Package controls holds the playback control widgets as plain data.
//
// A widget is built from an immutable props value and reports user intent
// upward through callbacks; it never stores the state it displays. Rendering
// and pointer capture live in package ui.
package controls
