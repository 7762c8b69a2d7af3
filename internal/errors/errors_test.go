package errors

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, ""},
		{"plain error", errors.New("gateway unreachable"), "Error: gateway unreachable"},
		{"wrapped chain", errors.New("failed to load timetable: database is locked"), "Error: failed to load timetable: database is locked"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.err); got != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, got, tt.expected)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		args     []interface{}
		expected string
	}{
		{"no args", "schedule refresh failed", nil, "Error: schedule refresh failed"},
		{"one arg", "unknown zone %q", []interface{}{"Party"}, `Error: unknown zone "Party"`},
		{"several args", "gateway %s returned status %d", []interface{}{"heatbox.local", 502}, "Error: gateway heatbox.local returned status 502"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Formatf(tt.format, tt.args...); got != tt.expected {
				t.Errorf("Formatf(%q, %v) = %q, want %q", tt.format, tt.args, got, tt.expected)
			}
		})
	}
}

// Fatal exits the process, so it runs in a re-exec'd subprocess and the
// parent asserts on the exit code and stderr.
func TestFatal(t *testing.T) {
	if os.Getenv("GO_TEST_FATAL") == "1" {
		Fatal(errors.New("gateway unreachable"))
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatal")
	cmd.Env = append(os.Environ(), "GO_TEST_FATAL=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	e, ok := err.(*exec.ExitError)
	if !ok || e.Success() {
		t.Fatalf("Fatal() did not exit with error: %v", err)
	}
	if e.ExitCode() != 1 {
		t.Errorf("Fatal() exit code = %d, want 1", e.ExitCode())
	}
	if out := stderr.String(); !strings.Contains(out, "Error: gateway unreachable") {
		t.Errorf("Fatal() stderr = %q, want to contain %q", out, "Error: gateway unreachable")
	}
}

func TestFatal_NilError(t *testing.T) {
	if os.Getenv("GO_TEST_FATAL_NIL") == "1" {
		Fatal(nil)
		os.Exit(0)
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatal_NilError")
	cmd.Env = append(os.Environ(), "GO_TEST_FATAL_NIL=1")

	if err := cmd.Run(); err != nil {
		t.Errorf("Fatal(nil) should return normally, got: %v", err)
	}
}

func TestFatalf(t *testing.T) {
	if os.Getenv("GO_TEST_FATALF") == "1" {
		Fatalf("gateway %s returned status %d", "heatbox.local", 502)
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatalf")
	cmd.Env = append(os.Environ(), "GO_TEST_FATALF=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	e, ok := err.(*exec.ExitError)
	if !ok || e.Success() {
		t.Fatalf("Fatalf() did not exit with error: %v", err)
	}
	if e.ExitCode() != 1 {
		t.Errorf("Fatalf() exit code = %d, want 1", e.ExitCode())
	}
	want := "Error: gateway heatbox.local returned status 502"
	if out := stderr.String(); !strings.Contains(out, want) {
		t.Errorf("Fatalf() stderr = %q, want to contain %q", out, want)
	}
}
