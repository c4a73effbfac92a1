// Package easing provides the formulas that shape a tween's motion curve.
//
// A [Formula] follows Robert Penner's convention: given the elapsed time,
// the start value, the change in value and the total duration, it returns
// the interpolated value. Times are milliseconds.
//
//	f := easing.Linear
//	f(50, 0, 100, 100) // 50
//
// Formulas are looked up by name through a [Registry]. Unknown names resolve
// to [Linear] without an error.
package easing
