package main

import (
	"os"
	"testing"

	"github.com/cnwenf/tify/internal/paths"
)

// pointHistoryAt redirects the history database under dir for the test.
func pointHistoryAt(t *testing.T, dir string) {
	t.Helper()
	orig := os.Getenv("APPDATA")
	t.Cleanup(func() { os.Setenv("APPDATA", orig) })
	os.Setenv("APPDATA", dir)
}

func TestHistoryCleanWithoutDatabase(t *testing.T) {
	pointHistoryAt(t, t.TempDir())

	historyClean([]string{"30"})

	if _, err := os.Stat(paths.HistoryPath()); !os.IsNotExist(err) {
		t.Error("history clean created a database just to clean it")
	}
}
