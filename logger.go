package platylog

import (
	"path/filepath"
	"sync"

	"github.com/valyala/fasttemplate"
)

// Logger owns one active log file and its archive directory. Construct one
// per log root; concurrent use from multiple goroutines is safe. All state,
// including the filter masks, is guarded by a single mutex so records are
// totally ordered and rotation cannot race with an emit.
type Logger struct {
	mu sync.Mutex

	display Level
	save    Level
	maxPast int

	directory  string
	activePath string
	pastDir    string

	header  *fasttemplate.Template
	console ConsoleWriter

	// fresh marks a session with no persisted write yet. The first
	// qualifying write performs the rollover and clears it.
	fresh      bool
	saveWarned bool
}

// New creates a Logger from the given configuration. Zero-valued fields are
// filled with defaults (all levels shown and saved, 5 retained archives,
// "./logs" root). No filesystem state is touched until the first persisted
// write.
func New(cfg ...*Config) (*Logger, error) {
	userCfg := &Config{}
	if len(cfg) > 0 && cfg[0] != nil {
		userCfg = cfg[0]
	}

	merged, err := mergeConfig(userCfg)
	if err != nil {
		return nil, err
	}

	header, err := newHeaderTemplate(merged.HeaderTemplate)
	if err != nil {
		return nil, err
	}

	return &Logger{
		display:    merged.DisplayLevels,
		save:       merged.SaveLevels,
		maxPast:    merged.MaxPastLogs,
		directory:  merged.Directory,
		activePath: filepath.Join(merged.Directory, activeLogName),
		pastDir:    filepath.Join(merged.Directory, pastLogsDirName),
		header:     header,
		console:    newDefaultConsole(),
		fresh:      true,
	}, nil
}

// NewFromFile creates a Logger from a TOML configuration file.
func NewFromFile(configPath string) (*Logger, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

// SetDisplayLevels replaces the bitmask of severities shown on the console.
// Takes effect on the next log call.
func (l *Logger) SetDisplayLevels(levels Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.display = levels
}

// SetSaveLevels replaces the bitmask of severities persisted to file.
// Takes effect on the next log call.
func (l *Logger) SetSaveLevels(levels Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.save = levels
}

// SetMaxPastLogs replaces the maximum number of archived log files retained.
// The cap is enforced before the next archival, not retroactively.
func (l *Logger) SetMaxPastLogs(n int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n < 0 {
		n = 0
	}
	l.maxPast = n
}

// SetConsole replaces the console sink, e.g. with a capture writer in tests
// or a custom renderer on hosts without ANSI support.
func (l *Logger) SetConsole(console ConsoleWriter) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if console != nil {
		l.console = console
	}
}

// std is the package-level default logger writing under "./logs".
var (
	std     *Logger
	stdOnce sync.Once
)

// defaultLogger lazily constructs the default instance. The default config
// cannot fail validation, so construction errors are impossible here.
func defaultLogger() *Logger {
	stdOnce.Do(func() {
		std, _ = New()
	})
	return std
}

// Default returns the package-level logger used by the top-level emit
// functions.
func Default() *Logger {
	return defaultLogger()
}

// Trace logs a trace message through the default logger.
func Trace(format string, args ...any) {
	defaultLogger().Trace(format, args...)
}

// Info logs an informational message through the default logger.
func Info(format string, args ...any) {
	defaultLogger().Info(format, args...)
}

// Debug logs a debug message through the default logger.
func Debug(format string, args ...any) {
	defaultLogger().Debug(format, args...)
}

// Warning logs a warning message through the default logger.
func Warning(format string, args ...any) {
	defaultLogger().Warning(format, args...)
}

// Error logs an error message through the default logger.
func Error(format string, args ...any) {
	defaultLogger().Error(format, args...)
}

// Fatal logs a fatal message through the default logger.
// It does not terminate the process.
func Fatal(format string, args ...any) {
	defaultLogger().Fatal(format, args...)
}

// SetDisplayLevels configures the default logger's console bitmask.
func SetDisplayLevels(levels Level) {
	defaultLogger().SetDisplayLevels(levels)
}

// SetSaveLevels configures the default logger's persistence bitmask.
func SetSaveLevels(levels Level) {
	defaultLogger().SetSaveLevels(levels)
}

// SetMaxPastLogs configures the default logger's archive retention cap.
func SetMaxPastLogs(n int) {
	defaultLogger().SetMaxPastLogs(n)
}
