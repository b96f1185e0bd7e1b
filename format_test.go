package platylog

import (
	"testing"
	"time"
)

func TestClockStringUnpadded(t *testing.T) {
	at := time.Date(2024, 3, 7, 9, 5, 1, 0, time.Local)
	if got := clockString(at); got != "9:5:1" {
		t.Fatalf("clock string: want %q, got %q", "9:5:1", got)
	}
}

func TestCreationLine(t *testing.T) {
	at := time.Date(2024, 3, 7, 9, 5, 1, 0, time.Local)
	want := "Created - 2024. 3. 7. 9:5:1"
	if got := creationLine(at); got != want {
		t.Fatalf("creation line: want %q, got %q", want, got)
	}
}

func TestArchiveFileNameRoundTrip(t *testing.T) {
	got, err := archiveFileName("Created - 2024. 3. 7. 9:5:1")
	if err != nil {
		t.Fatalf("derive archive name: %v", err)
	}
	if want := "log_2024.3.7.9-5-1.txt"; got != want {
		t.Fatalf("archive name: want %q, got %q", want, got)
	}
}

func TestArchiveFileNameRejectsMalformedLine(t *testing.T) {
	if _, err := archiveFileName("not a creation line"); err == nil {
		t.Fatal("expected error for line without creation prefix")
	}
	if _, err := archiveFileName("Created -    "); err == nil {
		t.Fatal("expected error for empty creation stamp")
	}
}

func TestRenderHeaderDefaultTemplate(t *testing.T) {
	tmpl, err := newHeaderTemplate(defaultConfig().HeaderTemplate)
	if err != nil {
		t.Fatalf("compile template: %v", err)
	}
	at := time.Date(2024, 3, 7, 9, 5, 1, 0, time.Local)
	if got, want := renderHeader(tmpl, at, LevelInfo), "[9:5:1] <Info>"; got != want {
		t.Fatalf("header: want %q, got %q", want, got)
	}
	if got, want := renderHeader(tmpl, at, LevelWarning), "[9:5:1] <Warning>"; got != want {
		t.Fatalf("header: want %q, got %q", want, got)
	}
}

func TestRenderHeaderCustomTemplate(t *testing.T) {
	tmpl, err := newHeaderTemplate("{level} @ {time}")
	if err != nil {
		t.Fatalf("compile template: %v", err)
	}
	at := time.Date(2024, 3, 7, 23, 59, 59, 0, time.Local)
	if got, want := renderHeader(tmpl, at, LevelError), "Error @ 23:59:59"; got != want {
		t.Fatalf("header: want %q, got %q", want, got)
	}
}

func TestLevelString(t *testing.T) {
	cases := []struct {
		level Level
		want  string
	}{
		{LevelTrace, "Trace"},
		{LevelInfo, "Info"},
		{LevelDebug, "Debug"},
		{LevelWarning, "Warning"},
		{LevelError, "Error"},
		{LevelFatal, "Fatal"},
	}
	for _, tc := range cases {
		if got := tc.level.String(); got != tc.want {
			t.Errorf("level %d: want %q, got %q", tc.level, tc.want, got)
		}
	}
}
