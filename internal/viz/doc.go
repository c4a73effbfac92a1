// Package viz renders a running tween in the terminal.
//
// The live view is a Bubble Tea program that polls the session at 60 Hz and
// draws a progress bar per animated property and a braille plot of the
// first property's trajectory.
//
// # Key Bindings
//
//	Space - Stop where it is
//	Enter - Jump to the end
//	R     - Restart from the start values
//	T     - Cycle color themes
//	Q     - Quit
package viz
