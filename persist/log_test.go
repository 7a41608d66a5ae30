package persist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestFileLoggerWritesStartupAndShutdownBanners checks the basic
// functions of the file logger work as designed: a log file opens with a
// STARTUP line, carries whatever the caller logs, and closes with a
// SHUTDOWN line.
func TestFileLoggerWritesStartupAndShutdownBanners(t *testing.T) {
	logFilename := filepath.Join(t.TempDir(), "test.log")
	fl, err := NewFileLogger("test", logFilename)
	if err != nil {
		t.Fatal(err)
	}

	fl.Info("TEST: this should get written to the logfile")
	if err := fl.Close(); err != nil {
		t.Fatal(err)
	}

	validateLogFile(t, logFilename, []string{"STARTUP", "TEST", "SHUTDOWN"})
}

// TestFileLoggerCriticalPanics checks that Critical always panics, rather
// than merely logging at a high severity.
func TestFileLoggerCriticalPanics(t *testing.T) {
	logFilename := filepath.Join(t.TempDir(), "test.log")
	fl, err := NewFileLogger("test", logFilename)
	if err != nil {
		t.Fatal(err)
	}

	defer func() {
		if recover() == nil {
			t.Error("critical message was not thrown in a panic")
		}
		if err := fl.Close(); err != nil {
			t.Fatal(err)
		}
	}()
	fl.Critical("a critical message")
}

// TestMultiLoggerWritesToBothDestinations checks that NewMultiLogger
// duplicates every line to the extra writer alongside the log file.
func TestMultiLoggerWritesToBothDestinations(t *testing.T) {
	logFilename := filepath.Join(t.TempDir(), "test.log")

	var buf strings.Builder
	fl, err := NewMultiLogger("test", logFilename, &buf)
	if err != nil {
		t.Fatal(err)
	}

	fl.Info("MULTITEST: mirrored line")
	if err := fl.Close(); err != nil {
		t.Fatal(err)
	}

	validateLogFile(t, logFilename, []string{"STARTUP", "MULTITEST", "SHUTDOWN"})
	if !strings.Contains(buf.String(), "MULTITEST") {
		t.Error("expected the extra writer to receive the mirrored line")
	}
}

func validateLogFile(t *testing.T, logFilename string, expectedSubstrings []string) {
	t.Helper()
	fileData, err := os.ReadFile(logFilename)
	if err != nil {
		t.Fatal(err)
	}
	content := string(fileData)
	for _, want := range expectedSubstrings {
		if !strings.Contains(content, want) {
			t.Errorf("expected log file to contain %q, got:\n%s", want, content)
		}
	}
}
