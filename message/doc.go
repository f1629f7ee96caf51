// Package message defines the result vocabulary of the inspection engine:
// the Importance ranking used to order and filter findings, the secondary
// Severity hint used to order findings within one importance level, and the
// immutable Message record that every check produces.
//
// Messages are plain values. Once a check returns one, nothing in the engine
// mutates it; the driver fills in blank fields (location, importance) on its
// own copy before accumulating it into a run result.
package message
