package platylog

import (
	"fmt"
	"time"
)

// Trace logs a message at trace severity. The format string and arguments
// follow fmt.Sprintf semantics.
func (l *Logger) Trace(format string, args ...any) {
	l.emit(LevelTrace, format, args...)
}

// Info logs a message at informational severity.
func (l *Logger) Info(format string, args ...any) {
	l.emit(LevelInfo, format, args...)
}

// Debug logs a message at debug severity.
func (l *Logger) Debug(format string, args ...any) {
	l.emit(LevelDebug, format, args...)
}

// Warning logs a message at warning severity.
func (l *Logger) Warning(format string, args ...any) {
	l.emit(LevelWarning, format, args...)
}

// Error logs a message at error severity.
func (l *Logger) Error(format string, args ...any) {
	l.emit(LevelError, format, args...)
}

// Fatal logs a message at fatal severity. It does not terminate the
// process; the caller decides how to react to fatal conditions.
func (l *Logger) Fatal(format string, args ...any) {
	l.emit(LevelFatal, format, args...)
}

// emit runs the whole log path as one critical section: filter decision,
// formatting, console write and file write. Logging is best effort and
// never reports errors to the caller; persistence failures disable saving
// for the remainder of the session instead.
func (l *Logger) emit(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	display := l.display&level != 0
	save := l.save&level != 0
	if !display && !save {
		return
	}

	header := renderHeader(l.header, time.Now(), level)
	line := header + " - " + fmt.Sprintf(format, args...)

	if display {
		l.console.WriteColored(level, line)
	}
	if save {
		if err := l.writeToFile(line); err != nil {
			l.disableSave(err)
		}
	}
}

// disableSave turns off file persistence for the remainder of the session
// after an unrecoverable filesystem error, warning on the console once.
// Console output keeps working.
func (l *Logger) disableSave(err error) {
	l.save = LevelNone
	if l.saveWarned {
		return
	}
	l.saveWarned = true
	l.console.WriteColored(LevelWarning, fmt.Sprintf("file logging disabled: %v", err))
}
