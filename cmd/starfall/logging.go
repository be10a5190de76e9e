package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const (
	logDir      = "logs"
	logFileName = "starfall.log"
	maxLogSize  = 10 * 1024 * 1024 // Rotate beyond 10MB
)

// setupLogging builds the process logger under dataDir
// The terminal UI owns stdout, so without debug every record is discarded
// Returns the open log file, nil when logging is off or the file cannot be opened
func setupLogging(dataDir string, debug bool) (*slog.Logger, *os.File) {
	discard := func() (*slog.Logger, *os.File) {
		log.SetOutput(io.Discard)
		return slog.New(slog.DiscardHandler), nil
	}
	if !debug {
		return discard()
	}

	dir := filepath.Join(dataDir, logDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		return discard()
	}

	path := filepath.Join(dir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("starfall-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(path, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to rotate log file: %v\n", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		return discard()
	}

	// Stray standard log writes from libraries land in the same file
	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With("run", uuid.NewString())
	slog.SetDefault(logger)
	logger.Info("logging started", "path", path, "pid", os.Getpid())
	return logger, f
}
