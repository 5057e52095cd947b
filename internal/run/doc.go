// Package run executes external toolchain binaries.
//
// Exec wraps os/exec with a per-command timeout, verbose command echoing,
// and an ExitError that carries the tool name, exit code and captured
// stderr so callers can report which phase failed and why.
package run
