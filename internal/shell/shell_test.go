package shell

import (
	"context"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestRunCapturesStdout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix shell test")
	}
	res, err := Run(context.Background(), 5*time.Second, "sh", "-c", "echo hello")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := strings.TrimSpace(string(res.Stdout)); got != "hello" {
		t.Errorf("stdout = %q, want hello", got)
	}
	if res.Code != 0 {
		t.Errorf("exit code = %d", res.Code)
	}
}

func TestRunNonZeroExitStillCaptures(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix shell test")
	}
	res, err := Run(context.Background(), 5*time.Second, "sh", "-c", "echo partial; exit 3")
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}
	if res.Code != 3 {
		t.Errorf("exit code = %d, want 3", res.Code)
	}
	if got := strings.TrimSpace(string(res.Stdout)); got != "partial" {
		t.Errorf("stdout = %q, want partial", got)
	}
}

func TestRunMissingCommand(t *testing.T) {
	res, err := Run(context.Background(), time.Second, "definitely-not-a-command-xyz")
	if err == nil {
		t.Fatal("expected error for missing command")
	}
	if len(res.Stdout) != 0 {
		t.Errorf("stdout = %q, want empty", res.Stdout)
	}
}
