package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/kilo/render"
)

const logFileName = "kilo.log"

// setupLogging points the standard logger at dir/kilo.log when debug is set
// and discards everything otherwise. A log larger than maxSize bytes is moved
// aside to a timestamped file first. The terminal is in raw mode while the
// editor runs, so log output must never reach stdout or stderr.
// The returned file is nil when logging is disabled.
func setupLogging(dir string, debug bool, maxSize int64) (*os.File, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(err, "create log directory")
	}

	logPath := filepath.Join(dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxSize {
		stamp := time.Now().Format("20060102_150405")
		rotated := filepath.Join(dir, fmt.Sprintf("kilo_%s.log", stamp))
		if err := os.Rename(logPath, rotated); err != nil {
			return nil, errors.Wrap(err, "rotate log")
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "open log")
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	log.Printf("=== kilo %s debug session, pid %d ===", render.Version, os.Getpid())
	return f, nil
}
