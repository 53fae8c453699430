// Package command maps validated requests onto the argument vectors the
// DCP-o-matic executables accept.
//
// Builders are pure: one field contributes one flag (or flag pair),
// enumerations contribute their literal tokens, boolean flags appear only
// when true, and positional paths always come last. Every call builds a
// fresh vector, so no invocation can affect another.
package command
