package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	logFileName = "lucky-draw.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging opens the debug log in dir, rotating it once it passes maxLogSize
// With debug off, both zerolog and the standard logger are discarded; the terminal is never a log target
func setupLogging(debug bool, dir string) (zerolog.Logger, *os.File) {
	if !debug {
		log.SetOutput(io.Discard)
		return zerolog.Nop(), nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return zerolog.Nop(), nil
	}

	logPath := filepath.Join(dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		stem := strings.TrimSuffix(logFileName, filepath.Ext(logFileName))
		rotated := filepath.Join(dir, fmt.Sprintf("%s-%s.log", stem, time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return zerolog.Nop(), nil
	}

	// Third-party packages logging through the standard logger land in the same file
	log.SetOutput(f)

	logger := zerolog.New(f).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Str("app", "lucky-draw").
		Logger()
	return logger, f
}
