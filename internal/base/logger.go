// Package base
package base

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/sky-brothers/skyair/internal/interfaces/global"
)

const levelFatal = slog.LevelError + 4

var levelTags = map[slog.Level]func(format string, a ...interface{}) string{
	slog.LevelDebug: color.New(color.FgCyan).SprintfFunc(),
	slog.LevelInfo:  color.New(color.FgGreen).SprintfFunc(),
	slog.LevelWarn:  color.New(color.FgYellow).SprintfFunc(),
	slog.LevelError: color.New(color.FgRed).SprintfFunc(),
	levelFatal:      color.New(color.FgRed, color.Bold).SprintfFunc(),
}

var levelNames = map[slog.Level]string{
	slog.LevelDebug: "DEBUG",
	slog.LevelInfo:  "INFO",
	slog.LevelWarn:  "WARN",
	slog.LevelError: "ERROR",
	levelFatal:      "FATAL",
}

// consoleHandler renders compact colored lines for interactive use. File
// logging goes through the regular slog text handler instead.
type consoleHandler struct {
	mu    sync.Mutex
	out   *os.File
	level slog.Level
}

func (handler *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= handler.level
}

func (handler *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	tag := levelTags[record.Level]("[%s]", levelNames[record.Level])
	handler.mu.Lock()
	defer handler.mu.Unlock()
	_, err := fmt.Fprintf(handler.out, "%s %s %s\n",
		record.Time.Format("2006-01-02 15:04:05"), tag, record.Message)
	return err
}

func (handler *consoleHandler) WithAttrs(_ []slog.Attr) slog.Handler { return handler }

func (handler *consoleHandler) WithGroup(_ string) slog.Handler { return handler }

type Logger struct {
	console *slog.Logger
	file    *slog.Logger
	logFile *os.File
}

func NewLogger() *Logger {
	return &Logger{}
}

func (logger *Logger) Init(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger.console = slog.New(&consoleHandler{out: os.Stdout, level: level})
	if *global.LogFilePath == "" {
		return
	}
	file, err := os.OpenFile(*global.LogFilePath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, global.DefaultFilePermissions)
	if err != nil {
		logger.console.Warn(fmt.Sprintf("Fail to open log file %s, console logging only: %v", *global.LogFilePath, err))
		return
	}
	logger.logFile = file
	logger.file = slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: level}))
}

func (logger *Logger) ShutdownCallback() global.Callable {
	return global.CallableFunc(func(_ context.Context) error {
		if logger.logFile == nil {
			return nil
		}
		if err := logger.logFile.Sync(); err != nil {
			return err
		}
		return logger.logFile.Close()
	})
}

func (logger *Logger) logAt(level slog.Level, msg string) {
	logger.console.Log(context.Background(), level, msg)
	if logger.file != nil {
		logger.file.Log(context.Background(), level, msg)
	}
}

func (logger *Logger) Debug(msg string, v ...interface{}) {
	logger.logAt(slog.LevelDebug, fmt.Sprint(append([]interface{}{msg}, v...)...))
}

func (logger *Logger) DebugF(msg string, v ...interface{}) {
	logger.logAt(slog.LevelDebug, fmt.Sprintf(msg, v...))
}

func (logger *Logger) Info(msg string, v ...interface{}) {
	logger.logAt(slog.LevelInfo, fmt.Sprint(append([]interface{}{msg}, v...)...))
}

func (logger *Logger) InfoF(msg string, v ...interface{}) {
	logger.logAt(slog.LevelInfo, fmt.Sprintf(msg, v...))
}

func (logger *Logger) Warn(msg string, v ...interface{}) {
	logger.logAt(slog.LevelWarn, fmt.Sprint(append([]interface{}{msg}, v...)...))
}

func (logger *Logger) WarnF(msg string, v ...interface{}) {
	logger.logAt(slog.LevelWarn, fmt.Sprintf(msg, v...))
}

func (logger *Logger) Error(msg string, v ...interface{}) {
	logger.logAt(slog.LevelError, fmt.Sprint(append([]interface{}{msg}, v...)...))
}

func (logger *Logger) ErrorF(msg string, v ...interface{}) {
	logger.logAt(slog.LevelError, fmt.Sprintf(msg, v...))
}

func (logger *Logger) Fatal(msg string, v ...interface{}) {
	logger.logAt(levelFatal, fmt.Sprint(append([]interface{}{msg}, v...)...))
}

func (logger *Logger) FatalF(msg string, v ...interface{}) {
	logger.logAt(levelFatal, fmt.Sprintf(msg, v...))
}
