package tools_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"reforge/internal/tools"
)

// recordingRunner captures every invocation instead of executing it.
type recordingRunner struct {
	calls [][]string
}

func (r *recordingRunner) Run(_ context.Context, name string, args ...string) error {
	r.calls = append(r.calls, append([]string{name}, args...))
	return nil
}

func (r *recordingRunner) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	r.calls = append(r.calls, append([]string{name}, args...))
	return nil, nil
}

func TestApktool_Rebuild_RequiresManifest(t *testing.T) {
	dir := t.TempDir()
	runner := &recordingRunner{}
	apktool := tools.NewApktool(runner)

	err := apktool.Rebuild(context.Background(), dir, "out.apk", false)
	if err == nil {
		t.Fatal("expected error for directory without AndroidManifest.xml")
	}
	if len(runner.calls) != 0 {
		t.Fatalf("apktool should not run without a manifest, got calls %v", runner.calls)
	}
}

func TestApktool_Rebuild_RunsWithManifest(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "AndroidManifest.xml")
	if err := os.WriteFile(manifest, []byte(`<manifest/>`), 0o644); err != nil {
		t.Fatal(err)
	}

	runner := &recordingRunner{}
	apktool := tools.NewApktool(runner)

	if err := apktool.Rebuild(context.Background(), dir, "out.apk", true); err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if len(runner.calls) != 1 {
		t.Fatalf("want 1 call, got %d", len(runner.calls))
	}
	call := runner.calls[0]
	if call[0] != "apktool" || call[1] != "b" {
		t.Fatalf("unexpected invocation: %v", call)
	}
}
