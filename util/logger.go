package util

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	gokitlog "github.com/go-kit/log"
)

// NewLogger creates a logger that writes to both stdout and a timestamped
// file under dir. The returned closer releases the file.
func NewLogger(dir, prefix string) (gokitlog.Logger, io.Closer, error) {
	return newLogger(os.Stdout, dir, prefix, time.Now())
}

func newLogger(stdout io.Writer, dir, prefix string, now time.Time) (gokitlog.Logger, io.Closer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	timestamp := now.Format("2006-01-02_15-04-05")
	logFile := filepath.Join(dir, fmt.Sprintf("%s_%s.log", prefix, timestamp))

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := gokitlog.NewLogfmtLogger(gokitlog.NewSyncWriter(io.MultiWriter(stdout, file)))
	logger = gokitlog.With(logger, "ts", gokitlog.DefaultTimestampUTC, "caller", gokitlog.DefaultCaller)

	return logger, file, nil
}

// LogWithTiming logs a message with timing information
func LogWithTiming(logger gokitlog.Logger, startTime time.Time, format string, v ...interface{}) {
	elapsed := time.Since(startTime)
	message := fmt.Sprintf(format, v...)
	logger.Log("msg", message, "took", elapsed)
}

// TimeFunction runs fn and logs its start and outcome under the op key.
// The error from fn is returned unchanged.
func TimeFunction(logger gokitlog.Logger, op string, fn func() error) error {
	logger = gokitlog.With(logger, "op", op)
	startTime := time.Now()
	logger.Log("msg", "started")

	err := fn()

	if err != nil {
		logger.Log("msg", "failed", "err", err, "took", time.Since(startTime))
		return err
	}
	logger.Log("msg", "completed", "took", time.Since(startTime))
	return nil
}
