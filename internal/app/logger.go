package app

import (
	"io"
	"os"

	"github.com/dshills/helios/internal/config"
	"github.com/dshills/helios/internal/logging"
)

// nopCloser is returned when the logger writes to a caller-owned stream.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewLogger builds the logger described by cfg. Logs are appended to
// cfg.File when set and written to fallback otherwise. The returned closer
// releases the file.
func NewLogger(cfg config.LogConfig, fallback io.Writer) (*logging.Logger, io.Closer, error) {
	out := fallback
	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, NewComponentError("log", "open", err)
		}
		out, closer = f, f
	}

	logger := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.Level),
		Output: out,
		Prefix: "helios",
	})
	return logger, closer, nil
}
