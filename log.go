package prettyplot

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger returns a logger writing to w with timestamps like
// "14:32:01.45", filtering below level.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "prettyplot",
	})
}

func defaultLogger() *log.Logger {
	return NewLogger(os.Stderr, log.WarnLevel)
}
