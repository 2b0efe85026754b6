package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// DefaultPath is the log file location. Logs go to a file rather than
// stderr because the terminal is owned by the UI while the program runs.
func DefaultPath() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "culler", "culler.log"), nil
}

// Open builds the application logger writing to the given file. The
// returned closer flushes and closes the file; callers defer it around the
// program run. An unopenable log file degrades to a no-op logger rather
// than failing startup.
func Open(path, level string) (zerolog.Logger, func()) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), func() {}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return zerolog.Nop(), func() {}
	}

	writer := zerolog.ConsoleWriter{Out: file, NoColor: true, TimeFormat: "2006-01-02 15:04:05"}
	logger := zerolog.New(writer).Level(parseLevel(level)).With().Timestamp().Logger()
	return logger, func() { _ = file.Close() }
}

// NewWriterLogger builds a logger over an arbitrary writer; tests use it
// to capture output.
func NewWriterLogger(out io.Writer, level string) zerolog.Logger {
	return zerolog.New(out).Level(parseLevel(level)).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
