// Package logger provides the leveled console logger used across clip2file.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

const (
	levelDebug = iota
	levelInfo
	levelWarn
	levelError
)

// Console writes timestamped, level-filtered messages to a writer. Output to
// a TTY is colored per level; everything else stays plain. Safe for
// concurrent use.
type Console struct {
	writer   io.Writer
	level    int
	mu       sync.Mutex
	colorize bool
}

// NewConsole creates a Console writing to w at the given level. Empty or
// unknown levels default to "info". A nil writer discards everything.
func NewConsole(w io.Writer, level string) *Console {
	return &Console{
		writer:   w,
		level:    levelFromString(level),
		colorize: isTerminal(w),
	}
}

func levelFromString(level string) int {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// isTerminal reports whether w is a color-capable terminal. The color
// package already folds NO_COLOR and TTY detection into color.NoColor.
func isTerminal(w io.Writer) bool {
	return (w == os.Stdout || w == os.Stderr) && !color.NoColor
}

// Debugf logs at debug level.
func (c *Console) Debugf(format string, args ...any) {
	c.logf(levelDebug, "DEBUG", color.FgHiBlack, format, args...)
}

// Infof logs at info level.
func (c *Console) Infof(format string, args ...any) {
	c.logf(levelInfo, "INFO", color.FgCyan, format, args...)
}

// Warnf logs at warn level.
func (c *Console) Warnf(format string, args ...any) {
	c.logf(levelWarn, "WARN", color.FgYellow, format, args...)
}

// Errorf logs at error level.
func (c *Console) Errorf(format string, args ...any) {
	c.logf(levelError, "ERROR", color.FgRed, format, args...)
}

func (c *Console) logf(level int, tag string, attr color.Attribute, format string, args ...any) {
	if c.writer == nil || level < c.level {
		return
	}
	if c.colorize {
		tag = color.New(attr).Sprint(tag)
	}
	msg := fmt.Sprintf(format, args...)

	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.writer, "[%s] [%s] %s\n", time.Now().Format("15:04:05"), tag, msg)
}
