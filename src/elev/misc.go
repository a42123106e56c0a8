package elev

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"elevsim/src/types"
)

// InitLogger installs the default logger. When logFile is set, output is also written there;
// the returned function closes that file.
func InitLogger(level slog.Level, logFile string) (func() error, error) {
	var out io.Writer = os.Stdout
	closeLog := func() error { return nil }
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		out = io.MultiWriter(os.Stdout, file)
		closeLog = file.Close
	}
	slog.SetDefault(NewLogger(out, level))
	return closeLog, nil
}

// NewLogger builds a text logger with compact time and file:line source.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format("15:04:05"))
				}
			}
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					file := source.File
					if lastSlash := strings.LastIndexByte(file, '/'); lastSlash >= 0 {
						file = file[lastSlash+1:]
					}
					a.Value = slog.StringValue(fmt.Sprintf("%s:%d", file, source.Line))
				}
			}
			return a
		},
	})
	return slog.New(handler)
}

func FormatRequest(req types.Request) string {
	switch {
	case req.IsMaintenanceStart():
		return fmt.Sprintf("MaintenanceStart@%d", req.Time)
	case req.IsMaintenanceEnd():
		return fmt.Sprintf("MaintenanceEnd@%d", req.Time)
	}
	return fmt.Sprintf("%d->%d@%d", req.Src, req.Dest, req.Time)
}
