package run

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"reforge/internal/domain"
)

// DefaultTimeout bounds a single tool invocation. apktool rebuilds of
// large projects stay well under this on commodity hardware.
const DefaultTimeout = 120 * time.Second

// ExitError reports a tool that ran but exited non-zero.
type ExitError struct {
	Tool   string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("%s exited with code %d", e.Tool, e.Code)
	}
	return fmt.Sprintf("%s exited with code %d: %s", e.Tool, e.Code, e.Stderr)
}

// Exec runs commands with a timeout and optional verbose echoing.
type Exec struct {
	Timeout time.Duration        // zero means DefaultTimeout
	Debugf  func(string, ...any) // optional; receives command echoes and output
}

// New returns an Exec with the default timeout. debugf may be nil.
func New(debugf func(string, ...any)) *Exec {
	return &Exec{Timeout: DefaultTimeout, Debugf: debugf}
}

// Run executes name with args and returns an *ExitError on non-zero exit.
func (e *Exec) Run(ctx context.Context, name string, args ...string) error {
	_, err := e.run(ctx, name, args...)
	return err
}

// Output executes name with args and returns its stdout.
func (e *Exec) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return e.run(ctx, name, args...)
}

func (e *Exec) run(ctx context.Context, name string, args ...string) ([]byte, error) {
	timeout := e.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	e.debugf("$ %s %s", name, strings.Join(args, " "))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if out := stdout.String(); out != "" {
		e.debugf("STDOUT:\n%s", out)
	}
	if errOut := stderr.String(); errOut != "" {
		e.debugf("STDERR:\n%s", errOut)
	}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s: %w", name, ctxErr)
		}
		var xerr *exec.ExitError
		if errors.As(err, &xerr) {
			return nil, &ExitError{
				Tool:   name,
				Code:   xerr.ExitCode(),
				Stderr: stderrTail(stderr.String()),
			}
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return stdout.Bytes(), nil
}

func (e *Exec) debugf(format string, a ...any) {
	if e.Debugf != nil {
		e.Debugf(format, a...)
	}
}

// stderrTail keeps the last few lines of stderr, where the toolchain
// binaries put the actionable message.
func stderrTail(s string) string {
	s = strings.TrimSpace(s)
	lines := strings.Split(s, "\n")
	if len(lines) > 5 {
		lines = lines[len(lines)-5:]
	}
	return strings.Join(lines, "\n")
}

var _ domain.Runner = (*Exec)(nil)
