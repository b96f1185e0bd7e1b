package platylog

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ConsoleWriter abstracts the colored console so hosts without ANSI support
// (or tests) can substitute their own sink. Implementations are called with
// the lock of the owning Logger held and must not call back into it.
type ConsoleWriter interface {
	// WriteColored prints one log line in the color mapped to level.
	WriteColored(level Level, text string)
}

// Per-severity console styles.
var (
	traceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	debugStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	fatalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// styleFor maps a severity to its console style.
func styleFor(level Level) lipgloss.Style {
	switch level {
	case LevelTrace:
		return traceStyle
	case LevelInfo:
		return infoStyle
	case LevelDebug:
		return debugStyle
	case LevelWarning:
		return warnStyle
	case LevelError:
		return errorStyle
	case LevelFatal:
		return fatalStyle
	default:
		return traceStyle
	}
}

// ansiConsole renders log lines with ANSI colors.
type ansiConsole struct {
	out io.Writer
}

func (c *ansiConsole) WriteColored(level Level, text string) {
	fmt.Fprintln(c.out, styleFor(level).Render(text))
}

// plainConsole renders log lines without any styling. It is the fallback
// when stdout is not a terminal.
type plainConsole struct {
	out io.Writer
}

func (c *plainConsole) WriteColored(_ Level, text string) {
	fmt.Fprintln(c.out, text)
}

// newDefaultConsole selects the colored console when stdout is a terminal
// and the plain one otherwise, so redirected output stays free of escapes.
func newDefaultConsole() ConsoleWriter {
	fd := os.Stdout.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return &ansiConsole{out: os.Stdout}
	}
	return &plainConsole{out: os.Stdout}
}
