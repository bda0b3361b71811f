package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/dayflow/internal/constants"
)

var (
	// Logger is the global logger. It stays nil until Init, and every helper
	// below is a no-op while it is nil.
	Logger *log.Logger

	logPath string
)

type Config struct {
	Debug     bool
	ConfigDir string
}

// Init sends log output to <ConfigDir>/logs/dayflow.log. Debug lowers the
// level and mirrors output to stderr.
func Init(cfg Config) error {
	sink, path, err := fileSink(cfg.ConfigDir)
	if err != nil {
		return err
	}

	level := log.WarnLevel
	var w io.Writer = sink
	if cfg.Debug {
		level = log.DebugLevel
		w = io.MultiWriter(os.Stderr, sink)
	}

	Logger = log.NewWithOptions(w, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          constants.AppName,
	})
	logPath = path
	return nil
}

func fileSink(configDir string) (*lumberjack.Logger, string, error) {
	dir := filepath.Join(configDir, "logs")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, "", err
	}
	path := filepath.Join(dir, constants.AppName+".log")
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}, path, nil
}

// Path returns the active log file, or "" before Init.
func Path() string {
	return logPath
}

func Debug(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

func Info(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

func Warn(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

func Error(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}

// Fatal logs and exits with status 1.
func Fatal(msg string, keyvals ...any) {
	if Logger != nil {
		Logger.Fatal(msg, keyvals...)
	}
	os.Exit(1)
}
