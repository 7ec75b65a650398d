// extcheck validates the structure of the extension project: manifest.json
// fields, the expected file tree, and shallow syntax heuristics over the
// script, markup and style sources. Results are printed as a report; the
// exit code makes the check usable as a CI gate.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/cnwenf/tify/internal/history"
	"github.com/cnwenf/tify/internal/paths"
	"github.com/cnwenf/tify/internal/validate"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// Exit codes, so pipelines can gate on the result symbolically.
const (
	exitSuccess = 0
	exitFailure = 1
)

func main() {
	args := os.Args[1:]
	root := ""
	plain := false
	noLog := false

	// Parse flags
	filtered := args[:0]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--root", "-r":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "Error: --root requires a directory path\n")
				os.Exit(exitFailure)
			}
			root = args[i+1]
			i++
		case "--plain":
			plain = true
		case "--no-log":
			noLog = true
		default:
			filtered = append(filtered, args[i])
		}
	}

	cmd := "check"
	rest := filtered
	if len(filtered) > 0 {
		cmd, rest = filtered[0], filtered[1:]
	}

	switch cmd {
	case "help", "-h", "--help":
		printUsage()
	case "version", "-V", "--version":
		fmt.Printf("extcheck %s (built %s)\n", version, buildDate)
	case "history":
		historyCmd(rest)
	case "check":
		os.Exit(runCheck(root, plain, noLog))
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", cmd)
		fmt.Fprintf(os.Stderr, "Run 'extcheck help' for usage.\n")
		os.Exit(exitFailure)
	}
}

func runCheck(root string, plain, noLog bool) int {
	root = resolveRoot(root)

	sum := validate.Run(root, os.Stdout, markers(plain))

	if !noLog {
		record(root, sum)
	}

	if sum.OK() {
		return exitSuccess
	}
	return exitFailure
}

// resolveRoot picks the project root. An explicit --root wins. Otherwise the
// current directory is used, falling back to the executable's directory when
// manifest.json isn't found here (the checks are usually run from the
// project root, but the binary may live there instead).
func resolveRoot(explicit string) string {
	if explicit != "" {
		return explicit
	}

	root := "."
	if _, err := os.Stat(filepath.Join(root, paths.ManifestFileName)); err == nil {
		return root
	}

	exe, err := os.Executable()
	if err != nil {
		return root
	}
	exeDir := filepath.Dir(exe)
	if _, err := os.Stat(filepath.Join(exeDir, paths.ManifestFileName)); err == nil {
		fmt.Printf("Switching to executable directory: %s\n", exeDir)
		return exeDir
	}
	return root
}

// markers picks unicode markers for interactive terminals, ASCII otherwise.
func markers(plain bool) validate.Markers {
	if plain || !term.IsTerminal(int(os.Stdout.Fd())) {
		return validate.Plain
	}
	return validate.Unicode
}

// record appends the run to the history database. Best-effort: a storage
// failure is reported on stderr and never affects the check's outcome.
func record(root string, sum validate.Summary) {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}

	s, err := history.Open(paths.HistoryPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "history: %v\n", err)
		return
	}
	defer s.Close()

	if err := s.Record(abs, sum); err != nil {
		fmt.Fprintf(os.Stderr, "history: %v\n", err)
	}
}

func printUsage() {
	fmt.Printf("extcheck %s - Validate the extension project structure\n", version)
	fmt.Println(`
Usage:
  extcheck [check] [options]
  extcheck history [N | clean <days> | clear]

Options:
  --root, -r <path>   Project root (default: current directory, falling
                      back to the directory the binary lives in)
  --plain             ASCII status markers (automatic when not a terminal)
  --no-log            Don't record this run in the history database

Commands:
  check               Run all checks (the default)
  history [N]         Show the last N recorded runs (default: 10)
  history clean <d>   Remove runs older than <d> days
  history clear       Delete the history database
  version, -V         Show version and build date
  help, -h, --help    Show this help message

Exit status is 0 when manifest.json validates and all required files
exist, 1 otherwise.`)
}
