package executor

import (
	"context"
	"strings"
	"testing"
)

func TestExecute(t *testing.T) {
	e := New()

	out, err := e.Execute(context.Background(), "sh", "-c", "printf hello")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "hello" {
		t.Errorf("stdout = %q, want %q", out, "hello")
	}
}

func TestExecuteFailureIncludesStderr(t *testing.T) {
	e := New()

	_, err := e.Execute(context.Background(), "sh", "-c", "echo boom >&2; exit 1")
	if err == nil {
		t.Fatal("expected error for failing command")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error = %v, want stderr folded in", err)
	}
}

func TestExecuteInDir(t *testing.T) {
	dir := t.TempDir()
	e := &implExecutor{}

	out, err := e.ExecuteInDir(context.Background(), dir, "pwd")
	if err != nil {
		t.Fatalf("ExecuteInDir() error = %v", err)
	}
	if strings.TrimSpace(out) != dir {
		t.Errorf("pwd = %q, want %q", strings.TrimSpace(out), dir)
	}
}
