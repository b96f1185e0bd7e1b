package platylog

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFileAt(t *testing.T, dir, name string, modTime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(name+"\n"), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	if !modTime.IsZero() {
		if err := os.Chtimes(path, modTime, modTime); err != nil {
			t.Fatalf("chtimes %s: %v", name, err)
		}
	}
	return path
}

func TestCountRegularFilesSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	writeFileAt(t, dir, "a.txt", time.Time{})
	writeFileAt(t, dir, "b.txt", time.Time{})
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	count, err := countRegularFiles(dir)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("count: want 2, got %d", count)
	}
}

func TestOldestArchivePicksEarliestModTime(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	writeFileAt(t, dir, "log_newer.txt", base.Add(30*time.Minute))
	oldest := writeFileAt(t, dir, "log_oldest.txt", base)
	writeFileAt(t, dir, "log_middle.txt", base.Add(10*time.Minute))

	got, err := oldestArchive(dir)
	if err != nil {
		t.Fatalf("oldest: %v", err)
	}
	if got != oldest {
		t.Fatalf("oldest: want %s, got %s", oldest, got)
	}
}

func TestOldestArchiveLexicalTieBreak(t *testing.T) {
	dir := t.TempDir()
	at := time.Now().Add(-time.Hour).Truncate(time.Second)
	writeFileAt(t, dir, "log_b.txt", at)
	first := writeFileAt(t, dir, "log_a.txt", at)
	writeFileAt(t, dir, "log_c.txt", at)

	got, err := oldestArchive(dir)
	if err != nil {
		t.Fatalf("oldest: %v", err)
	}
	if got != first {
		t.Fatalf("tie break: want %s, got %s", first, got)
	}
}

func TestOldestArchiveEmptyDirectory(t *testing.T) {
	got, err := oldestArchive(t.TempDir())
	if err != nil {
		t.Fatalf("oldest: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty path, got %s", got)
	}
}

func TestReadFirstLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "latest_log.txt")
	if err := os.WriteFile(path, []byte("Created - 2024. 3. 7. 9:5:1\n\n[9:5:2] <Info> - hi\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	line, err := readFirstLine(path)
	if err != nil {
		t.Fatalf("read first line: %v", err)
	}
	if want := "Created - 2024. 3. 7. 9:5:1"; line != want {
		t.Fatalf("first line: want %q, got %q", want, line)
	}
}

func TestReadFirstLineEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := readFirstLine(path); err == nil {
		t.Fatal("expected error for empty file")
	}
}

func TestCopyFileOverwritesDestination(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	if err := os.WriteFile(src, []byte("fresh content\n"), 0644); err != nil {
		t.Fatalf("write src: %v", err)
	}
	if err := os.WriteFile(dst, []byte("stale content that is longer\n"), 0644); err != nil {
		t.Fatalf("write dst: %v", err)
	}

	if err := copyFile(src, dst); err != nil {
		t.Fatalf("copy: %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read dst: %v", err)
	}
	if string(got) != "fresh content\n" {
		t.Fatalf("dst content: got %q", got)
	}

	// Copy, not move: the source must survive
	if _, err := os.Stat(src); err != nil {
		t.Fatalf("source missing after copy: %v", err)
	}
}
