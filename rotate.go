package platylog

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// writeToFile persists one formatted line. Every call is a full
// open/append/close cycle so a crash loses at most the in-flight write.
// The first persisted write of a session triggers the rollover.
func (l *Logger) writeToFile(line string) error {
	if err := l.ensureDirectories(); err != nil {
		return err
	}

	if l.fresh {
		return l.startSession(line)
	}

	f, err := os.OpenFile(l.activePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open active log file: %w", err)
	}
	if _, err := fmt.Fprintln(f, line); err != nil {
		f.Close()
		return fmt.Errorf("failed to append to active log file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close active log file: %w", err)
	}
	return nil
}

// startSession performs the Fresh to Active transition: an active file left
// over from a previous session is archived first, then a new one is created
// with its creation-stamp line, a blank separator and the first record.
func (l *Logger) startSession(line string) error {
	if _, err := os.Stat(l.activePath); err == nil {
		if err := l.archiveActiveLog(); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(l.activePath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to create active log file: %w", err)
	}
	if _, err := fmt.Fprintf(f, "%s\n\n%s\n", creationLine(time.Now()), line); err != nil {
		f.Close()
		return fmt.Errorf("failed to write active log file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close active log file: %w", err)
	}

	l.fresh = false
	return nil
}

// archiveActiveLog copies the current active file into the archive directory
// under a name derived from its creation-stamp line. When the archive is at
// capacity the oldest file is evicted first, so the archive count never
// exceeds the configured maximum. The active file itself is left in place;
// the caller truncates it when starting the new session.
func (l *Logger) archiveActiveLog() error {
	if err := l.ensureDirectories(); err != nil {
		return err
	}

	count, err := countRegularFiles(l.pastDir)
	if err != nil {
		return fmt.Errorf("failed to scan archive directory: %w", err)
	}
	if count >= l.maxPast {
		oldest, err := oldestArchive(l.pastDir)
		if err != nil {
			return fmt.Errorf("failed to find oldest archive: %w", err)
		}
		if oldest != "" {
			l.console.WriteColored(LevelError, fmt.Sprintf("maximum number of past logs reached, removing: %s", oldest))
			if err := os.Remove(oldest); err != nil {
				return fmt.Errorf("failed to remove oldest archive: %w", err)
			}
		}
	}

	first, err := readFirstLine(l.activePath)
	if err != nil {
		return fmt.Errorf("failed to read active log creation line: %w", err)
	}
	name, err := archiveFileName(first)
	if err != nil {
		return err
	}

	if err := copyFile(l.activePath, filepath.Join(l.pastDir, name)); err != nil {
		return fmt.Errorf("failed to archive active log: %w", err)
	}
	return nil
}
