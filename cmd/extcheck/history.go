package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/cnwenf/tify/internal/history"
	"github.com/cnwenf/tify/internal/paths"
)

func historyCmd(args []string) {
	if len(args) > 0 {
		switch args[0] {
		case "clean":
			historyClean(args[1:])
			return
		case "clear":
			historyClear()
			return
		}
	}

	count := 10
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			fmt.Fprintf(os.Stderr, "Error: count must be a positive integer\n")
			os.Exit(exitFailure)
		}
		count = n
	}

	path := paths.HistoryPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Println("No validation runs recorded yet.")
		return
	}

	s, err := history.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitFailure)
	}
	defer s.Close()

	entries, err := s.Entries(count)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitFailure)
	}
	if len(entries) == 0 {
		fmt.Println("No validation runs recorded yet.")
		return
	}

	for _, e := range entries {
		fmt.Println(formatEntry(e))
	}
}

// formatEntry renders one history line:
//
//	2026-08-30 14:02:11  pass  /home/me/tidy
//	2026-08-30 14:05:40  FAIL  /home/me/tidy (manifest, 3 files missing)
func formatEntry(e history.Entry) string {
	line := e.Time.Format("2006-01-02 15:04:05")
	if e.OK() {
		return line + "  pass  " + e.Root
	}

	line += "  FAIL  " + e.Root + " ("
	sep := ""
	if !e.ManifestOK {
		line += "manifest"
		sep = ", "
	}
	if !e.FilesOK {
		line += fmt.Sprintf("%s%d files missing", sep, e.Missing)
	}
	return line + ")"
}

func historyClean(args []string) {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Error: 'history clean' requires a number of days\n")
		os.Exit(exitFailure)
	}
	days, err := strconv.Atoi(args[0])
	if err != nil || days <= 0 {
		fmt.Fprintf(os.Stderr, "Error: days must be a positive integer\n")
		os.Exit(exitFailure)
	}

	path := paths.HistoryPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Println("No validation runs recorded yet.")
		return
	}

	s, err := history.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitFailure)
	}
	defer s.Close()

	removed, err := s.Clean(days)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitFailure)
	}
	fmt.Printf("Removed %d entries older than %d days.\n", removed, days)
}

func historyClear() {
	path := paths.HistoryPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Println("No validation runs recorded yet.")
		return
	}

	s, err := history.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitFailure)
	}
	if err := s.Clear(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitFailure)
	}
	fmt.Println("History cleared.")
}
