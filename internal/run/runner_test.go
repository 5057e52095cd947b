package run_test

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"testing"
	"time"

	"reforge/internal/run"
)

func requireSh(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestRun_NonZeroExitIsExitError(t *testing.T) {
	requireSh(t)
	e := run.New(nil)

	err := e.Run(context.Background(), "sh", "-c", "echo boom >&2; exit 3")
	if err == nil {
		t.Fatal("expected error")
	}

	var xerr *run.ExitError
	if !errors.As(err, &xerr) {
		t.Fatalf("want ExitError, got %T: %v", err, err)
	}
	if xerr.Tool != "sh" || xerr.Code != 3 {
		t.Fatalf("unexpected exit error: %+v", xerr)
	}
	if !strings.Contains(xerr.Stderr, "boom") {
		t.Fatalf("stderr not captured: %+v", xerr)
	}
}

func TestOutput_CapturesStdout(t *testing.T) {
	requireSh(t)
	e := run.New(nil)

	out, err := e.Output(context.Background(), "sh", "-c", "echo hello")
	if err != nil {
		t.Fatalf("output: %v", err)
	}
	if strings.TrimSpace(string(out)) != "hello" {
		t.Fatalf("unexpected stdout: %q", out)
	}
}

func TestRun_Timeout(t *testing.T) {
	requireSh(t)
	e := run.New(nil)
	e.Timeout = 50 * time.Millisecond

	err := e.Run(context.Background(), "sh", "-c", "sleep 5")
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("want deadline exceeded, got %v", err)
	}
}

func TestRun_MissingBinary(t *testing.T) {
	e := run.New(nil)
	if err := e.Run(context.Background(), "reforge-no-such-tool"); err == nil {
		t.Fatal("expected error for missing binary")
	}
}

func TestRun_VerboseEchoesCommand(t *testing.T) {
	requireSh(t)
	var lines []string
	e := run.New(func(format string, a ...any) {
		lines = append(lines, fmt.Sprintf(format, a...))
	})

	if err := e.Run(context.Background(), "sh", "-c", "echo out"); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(lines) == 0 || !strings.HasPrefix(lines[0], "$ sh") {
		t.Fatalf("command echo missing: %v", lines)
	}
}

func TestExitError_Message(t *testing.T) {
	err := &run.ExitError{Tool: "zipalign", Code: 1, Stderr: "unaligned entry"}
	msg := err.Error()
	if !strings.Contains(msg, "zipalign") || !strings.Contains(msg, "unaligned entry") {
		t.Fatalf("unexpected message: %s", msg)
	}
}
