package logger

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

const (
	LOG_FORMAT       = "%{time:2006-01-02 15:04:05.000} [%{level:.4s}] %{module} %{message}"
	LOG_COLOR_FORMAT = "%{color}%{time:2006-01-02 15:04:05.000} [%{level:.4s}]%{color:reset} %{module} %{message}"

	DefaultLevel = "WARNING"
)

// InitConsoleLog sends log records of every module to stderr, which keeps
// them apart from the tables printed on stdout
func InitConsoleLog(levelString string, color bool) error {
	return initLog(os.Stderr, levelString, color)
}

func initLog(w io.Writer, levelString string, color bool) error {
	level, err := logging.LogLevel(levelString)
	if err != nil {
		return err
	}

	format := LOG_FORMAT
	if color {
		format = LOG_COLOR_FORMAT
	}
	backend := logging.AddModuleLevel(
		logging.NewBackendFormatter(
			logging.NewLogBackend(w, "", 0),
			logging.MustStringFormatter(format),
		),
	)
	backend.SetLevel(level, "")
	logging.SetBackend(backend)
	return nil
}
