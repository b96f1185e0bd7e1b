package platylog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// ensureDirectories creates the log root and archive directories if missing.
func (l *Logger) ensureDirectories() error {
	if err := os.MkdirAll(l.pastDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directories: %w", err)
	}
	return nil
}

// countRegularFiles returns the number of regular files in dir.
func countRegularFiles(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			count++
		}
	}
	return count, nil
}

// oldestArchive returns the path of the regular file in dir with the
// earliest modification time. Ties are broken by lexical file name order so
// eviction stays deterministic on filesystems with coarse timestamps.
// Returns an empty path when dir holds no regular files.
func oldestArchive(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var oldestName string
	var oldestTime time.Time
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		modTime := info.ModTime()
		switch {
		case oldestName == "" || modTime.Before(oldestTime):
			oldestName = entry.Name()
			oldestTime = modTime
		case modTime.Equal(oldestTime) && entry.Name() < oldestName:
			oldestName = entry.Name()
		}
	}

	if oldestName == "" {
		return "", nil
	}
	return filepath.Join(dir, oldestName), nil
}

// readFirstLine returns the first line of the file at path without its
// trailing newline.
func readFirstLine(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("file is empty: %s", path)
	}
	return scanner.Text(), nil
}

// copyFile copies src to dst, truncating dst if it already exists.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
