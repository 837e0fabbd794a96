// Package output provides terminal output utilities.
package output

import (
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the global logger instance.
var Logger *log.Logger

func init() {
	Logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
}

// LogConfig controls logger behavior.
type LogConfig struct {
	// Verbose enables debug-level output.
	Verbose bool

	// Timestamps controls timestamp display; nil means off.
	Timestamps *bool
}

// SetupLogging configures the global logger.
func SetupLogging(cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	timestamps := cfg.Verbose
	if cfg.Timestamps != nil {
		timestamps = *cfg.Timestamps
	}

	Logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: timestamps,
		ReportCaller:    cfg.Verbose,
	})
}

// PackageLogger returns a logger scoped to one package name.
func PackageLogger(name string) *log.Logger {
	return Logger.WithPrefix(name)
}

// BoolPtr returns a pointer to the given bool.
func BoolPtr(b bool) *bool {
	return &b
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}

// Print prints a message to stdout without any formatting.
func Print(msg string) {
	os.Stdout.WriteString(msg)
}

// Println prints a message to stdout with a newline.
func Println(msg string) {
	os.Stdout.WriteString(msg + "\n")
}

// Prompt prints a prompt to stdout without a trailing newline.
func Prompt(msg string) {
	os.Stdout.WriteString(msg)
}
