package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cnwenf/tify/internal/history"
	"github.com/cnwenf/tify/internal/layout"
	"github.com/cnwenf/tify/internal/validate"
)

// populateTree writes a valid file for every entry in the layout table.
func populateTree(t *testing.T, root string) {
	t.Helper()
	for _, f := range layout.Files {
		var content string
		switch {
		case f.Path == "manifest.json":
			content = `{"manifest_version": 3, "name": "Tidy", "version": "1.0", "description": "d"}`
		case f.Kind == layout.Script:
			content = `chrome.runtime.sendMessage({kind: "ping"});`
		case f.Kind == layout.Markup:
			content = `<!DOCTYPE html><html><script src="popup.js"></script></html>`
		case f.Kind == layout.Style:
			content = `body { margin: 0 }`
		default:
			content = "x"
		}
		full := filepath.Join(root, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestRunCheckExitCodes(t *testing.T) {
	full := t.TempDir()
	populateTree(t, full)

	if got := runCheck(full, true, true); got != exitSuccess {
		t.Errorf("runCheck on full tree = %d, want %d", got, exitSuccess)
	}
	if got := runCheck(t.TempDir(), true, true); got != exitFailure {
		t.Errorf("runCheck on empty dir = %d, want %d", got, exitFailure)
	}
}

func TestMarkersPlainFlag(t *testing.T) {
	if got := markers(true); got != validate.Plain {
		t.Errorf("markers(true) = %+v, want Plain", got)
	}
}

func TestResolveRootExplicitWins(t *testing.T) {
	dir := t.TempDir()
	if got := resolveRoot(dir); got != dir {
		t.Errorf("resolveRoot(%q) = %q", dir, got)
	}
}

func TestFormatEntry(t *testing.T) {
	ts := time.Date(2026, 8, 30, 14, 2, 11, 0, time.Local)

	tests := []struct {
		name  string
		entry history.Entry
		want  string
	}{
		{
			"pass",
			history.Entry{Time: ts, Root: "/proj", ManifestOK: true, FilesOK: true},
			"2026-08-30 14:02:11  pass  /proj",
		},
		{
			"files missing",
			history.Entry{Time: ts, Root: "/proj", ManifestOK: true, Missing: 3},
			"2026-08-30 14:02:11  FAIL  /proj (3 files missing)",
		},
		{
			"manifest only",
			history.Entry{Time: ts, Root: "/proj", FilesOK: true},
			"2026-08-30 14:02:11  FAIL  /proj (manifest)",
		},
		{
			"both",
			history.Entry{Time: ts, Root: "/proj", Missing: 11},
			"2026-08-30 14:02:11  FAIL  /proj (manifest, 11 files missing)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatEntry(tt.entry); got != tt.want {
				t.Errorf("formatEntry = %q, want %q", got, tt.want)
			}
		})
	}
}
