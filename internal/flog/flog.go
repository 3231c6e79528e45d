// Package flog is a small structured, leveled logger used throughout fbxkit.
// Each package that can observe a recoverable anomaly owns one named logger
// created as a child of Default, so each line carries the subsystem's
// parent-qualified prefix and its level can be set per subsystem.
package flog

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// Levels, lowest to highest priority.
const (
	DEBUG = iota
	INFO
	WARN
	ERROR
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

// Default is the root logger; every package-level logger is its descendant
// unless constructed with an explicit parent.
var Default *Logger

var mutex sync.Mutex

// Logger is a named, leveled log sink that writes to stderr. Events are
// written once, by the logger they are sent to; they are not forwarded to
// its ancestors.
type Logger struct {
	name    string
	prefix  string
	level   int
	enabled bool
	parent  *Logger
	out     *os.File
}

func init() {
	Default = New("fbxkit", nil)
	Default.SetLevel(WARN)
}

// New creates a logger. If parent is non-nil, the new logger inherits its
// level and is prefixed with the parent's own prefix.
func New(name string, parent *Logger) *Logger {
	l := &Logger{name: name, prefix: name, level: WARN, enabled: true, parent: parent, out: os.Stderr}
	if parent != nil {
		l.prefix = parent.prefix + "/" + name
		l.level = parent.level
		l.enabled = parent.enabled
	}
	return l
}

// SetLevel sets the minimum level this logger will emit.
func (l *Logger) SetLevel(level int) {
	if level < DEBUG || level > ERROR {
		return
	}
	l.level = level
}

// SetEnabled toggles emission for this logger only.
func (l *Logger) SetEnabled(enabled bool) {
	l.enabled = enabled
}

func (l *Logger) log(level int, format string, v ...interface{}) {
	if !l.enabled || level < l.level {
		return
	}
	mutex.Lock()
	defer mutex.Unlock()
	now := time.Now().UTC().Format("15:04:05.000000")
	msg := fmt.Sprintf(format, v...)
	fmt.Fprintf(l.out, "%s:%s:%s:%s\n", now, strings.ToUpper(levelNames[level][:1]), l.prefix, msg)
}

// Debugf emits a DEBUG level message.
func (l *Logger) Debugf(format string, v ...interface{}) { l.log(DEBUG, format, v...) }

// Infof emits an INFO level message.
func (l *Logger) Infof(format string, v ...interface{}) { l.log(INFO, format, v...) }

// Warnf emits a WARN level message.
func (l *Logger) Warnf(format string, v ...interface{}) { l.log(WARN, format, v...) }

// Errorf emits an ERROR level message.
func (l *Logger) Errorf(format string, v ...interface{}) { l.log(ERROR, format, v...) }
