package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testMaxSize keeps the rotation test file small
const testMaxSize = 64 << 10

// restoreLog undoes the global logger changes made by setupLogging
func restoreLog(t *testing.T) {
	out, flags := log.Writer(), log.Flags()
	t.Cleanup(func() {
		log.SetOutput(out)
		log.SetFlags(flags)
	})
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	restoreLog(t)
	dir := filepath.Join(t.TempDir(), "logs")

	logFile, err := setupLogging(dir, false, testMaxSize)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	if logFile != nil {
		logFile.Close()
		t.Error("expected nil log file when debug=false")
	}
	if log.Writer() != io.Discard {
		t.Errorf("expected log output to be io.Discard, got %v", log.Writer())
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("log directory created with debug off")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	restoreLog(t)
	dir := filepath.Join(t.TempDir(), "logs")

	logFile, err := setupLogging(dir, true, testMaxSize)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	defer logFile.Close()

	log.Println("test log message")

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "debug session") || !strings.Contains(string(data), "test log message") {
		t.Errorf("log content: %q", data)
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	restoreLog(t)
	dir := t.TempDir()
	logPath := filepath.Join(dir, logFileName)

	large, err := os.Create(logPath)
	if err != nil {
		t.Fatalf("create large log: %v", err)
	}
	if err := large.Truncate(testMaxSize + 1); err != nil {
		t.Fatalf("grow log: %v", err)
	}
	large.Close()

	logFile, err := setupLogging(dir, true, testMaxSize)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	defer logFile.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read log dir: %v", err)
	}
	rotated := false
	for _, e := range entries {
		if e.Name() != logFileName && filepath.Ext(e.Name()) == ".log" {
			rotated = true
		}
	}
	if !rotated {
		t.Error("expected a rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("stat new log: %v", err)
	}
	if info.Size() > testMaxSize {
		t.Errorf("new log not rotated: %d bytes", info.Size())
	}
}

func TestSetupLogging_NoStdoutStderr(t *testing.T) {
	restoreLog(t)

	logFile, err := setupLogging(t.TempDir(), true, testMaxSize)
	if err != nil {
		t.Fatalf("setupLogging: %v", err)
	}
	defer logFile.Close()

	if out := log.Writer(); out == os.Stdout || out == os.Stderr {
		t.Error("log output must not be the terminal")
	}
}

func TestSetupLogging_BadDirectory(t *testing.T) {
	restoreLog(t)
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := setupLogging(filepath.Join(blocker, "logs"), true, testMaxSize); err == nil {
		t.Error("expected error when log directory cannot be created")
	}
}
