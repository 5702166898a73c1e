package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, false, &buf)

	Warn("loaded configuration", "path", "cfg.toml")

	output := buf.String()
	if !strings.Contains(output, "loaded configuration") {
		t.Errorf("Expected 'loaded configuration' in output, got: %s", output)
	}
}

func TestSetup_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, true, &buf)

	Warn("loaded configuration", "path", "cfg.toml")

	output := buf.String()
	// JSON output should contain braces
	if !strings.Contains(output, "{") {
		t.Errorf("Expected JSON output, got: %s", output)
	}
	if !strings.Contains(output, "loaded configuration") {
		t.Errorf("Expected 'loaded configuration' in output, got: %s", output)
	}
}

func TestSetup_VerboseMode(t *testing.T) {
	var buf bytes.Buffer
	Setup(true, false, &buf)

	Debug("collected field")

	output := buf.String()
	if !strings.Contains(output, "collected field") {
		t.Errorf("Debug message should appear in verbose mode, got: %s", output)
	}
}

func TestSetup_NonVerboseMode(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, false, &buf)

	Debug("collected field")

	output := buf.String()
	if strings.Contains(output, "collected field") {
		t.Errorf("Debug message should NOT appear in non-verbose mode, got: %s", output)
	}
}

func TestDebug(t *testing.T) {
	var buf bytes.Buffer
	Setup(true, false, &buf)

	Debug("prompt answered", "path", "cfg.toml")

	output := buf.String()
	if !strings.Contains(output, "prompt answered") {
		t.Errorf("Expected 'prompt answered' in output, got: %s", output)
	}
}

func TestWarn(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, false, &buf)

	Warn("unknown dataset", "path", "cfg.toml")

	output := buf.String()
	if !strings.Contains(output, "unknown dataset") {
		t.Errorf("Expected 'unknown dataset' in output, got: %s", output)
	}
}

func TestSetup_NilWriter(t *testing.T) {
	// Falls back to stderr
	Setup(false, false, nil)

	// Logger should still work (writes to stderr)
	if Logger == nil {
		t.Error("Logger should not be nil after Setup with nil writer")
	}
}

func TestUserOutput(t *testing.T) {
	var out, errOut bytes.Buffer
	SetUserOutput(&out, &errOut)
	t.Cleanup(func() { SetUserOutput(nil, nil) })

	UserInfo("loading %s", "cfg.toml")
	UserSuccess("Configuration file generation: SUCCESS")
	UserWarning("port %d reused", 5000)
	UserError("failed: %v", "boom")

	stdout := out.String()
	if !strings.Contains(stdout, "ℹ loading cfg.toml\n") {
		t.Errorf("stdout missing info line: %q", stdout)
	}
	if !strings.Contains(stdout, "✓ Configuration file generation: SUCCESS\n") {
		t.Errorf("stdout missing success line: %q", stdout)
	}

	stderr := errOut.String()
	if !strings.Contains(stderr, "⚠ port 5000 reused\n") {
		t.Errorf("stderr missing warning line: %q", stderr)
	}
	if !strings.Contains(stderr, "✗ failed: boom\n") {
		t.Errorf("stderr missing error line: %q", stderr)
	}
	if strings.Contains(stdout, "failed") {
		t.Errorf("error message leaked to stdout: %q", stdout)
	}
}

func TestFileWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "configuranator.log")

	w := FileWriter(path)
	Setup(true, true, w)
	t.Cleanup(func() { Setup(false, false, nil) })

	Debug("saved configuration", "path", "mission.toml")
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"saved configuration"`) {
		t.Errorf("log file = %q", data)
	}
}
