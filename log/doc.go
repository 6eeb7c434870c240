// Package log contains the leveled logger interface used by every other
// package in this module. It deliberately does not pull in a third-party
// logging package as a hard dependency: callers wire in their own sink
// (including one already satisfying a LeveledLogger style interface, such
// as github.com/neuronlabs/uni-logger's) by calling SetLogger. A dependency
// free BasicLogger backed by the standard library "log" package is used
// until a caller sets one, and a dummy no-op logger can be set explicitly
// to silence the client entirely.
package log
