// Package console renders pipeline progress with ANSI colors.
//
// Phase headers print bold blue, successes green, warnings yellow and
// failures red. Long tool invocations get a spinner when stdout is a
// terminal and verbose mode is off; verbose mode echoes the underlying
// commands and their output instead.
package console
