// Package validate runs the full structure validation of an extension
// project and prints the human-readable report. All checks take the project
// root explicitly; nothing here touches the working directory or any other
// process-wide state, so the whole run is testable against a temp tree.
package validate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cnwenf/tify/internal/checks"
	"github.com/cnwenf/tify/internal/layout"
	"github.com/cnwenf/tify/internal/manifest"
)

// Markers are the per-line status prefixes of the report.
type Markers struct {
	Pass string
	Fail string
	Warn string
}

// Unicode markers for interactive terminals, Plain for pipes and CI logs.
var (
	Unicode = Markers{Pass: "✅", Fail: "❌", Warn: "⚠️ "}
	Plain   = Markers{Pass: "[ok]", Fail: "[fail]", Warn: "[warn]"}
)

// Summary is the aggregated outcome of a validation run. Heuristic checks
// are advisory and do not appear here.
type Summary struct {
	ManifestOK bool
	FilesOK    bool
	Missing    int // count of missing required files
}

// OK reports overall validation success.
func (s Summary) OK() bool {
	return s.ManifestOK && s.FilesOK
}

const rule = "============================================================"

// Run validates the project tree at root, writing the report to out.
func Run(root string, out io.Writer, m Markers) Summary {
	fmt.Fprintln(out, "Tidy extension structure check")
	fmt.Fprintln(out, rule)

	var s Summary
	s.ManifestOK = checkManifest(root, out, m)
	s.FilesOK, s.Missing = checkFiles(root, out, m)

	checkScripts(root, out, m)
	checkMarkup(root, out, m)
	checkStyles(root, out, m)

	fmt.Fprintln(out)
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "Result")
	fmt.Fprintln(out, rule)
	if s.OK() {
		fmt.Fprintf(out, "%s All core checks passed.\n", m.Pass)
		fmt.Fprintln(out, "The extension is ready to load in Chrome.")
		printWalkthrough(out)
	} else {
		fmt.Fprintf(out, "%s Problems found. Fix them and re-run the check.\n", m.Fail)
		if !s.ManifestOK {
			fmt.Fprintln(out, "   - manifest.json needs fixing")
		}
		if !s.FilesOK {
			fmt.Fprintln(out, "   - required files are missing")
		}
	}
	return s
}

// checkManifest prints the manifest section and reports pass/fail.
func checkManifest(root string, out io.Writer, m Markers) bool {
	fmt.Fprintln(out, "Checking manifest.json...")

	r := manifest.Check(root)
	switch {
	case r.NotFound:
		fmt.Fprintf(out, "%s manifest.json not found\n", m.Fail)
		return false
	case r.ParseErr != nil:
		fmt.Fprintf(out, "%s manifest.json is not valid JSON: %v\n", m.Fail, r.ParseErr)
		return false
	case len(r.Missing) > 0:
		fmt.Fprintf(out, "%s manifest.json missing required fields: %s\n", m.Fail, strings.Join(r.Missing, ", "))
		return false
	}

	fmt.Fprintf(out, "%s manifest.json is well-formed\n", m.Pass)
	fmt.Fprintf(out, "   - Name: %s\n", r.Name)
	fmt.Fprintf(out, "   - Version: %s\n", r.Version)
	fmt.Fprintf(out, "   - Manifest version: %s\n", r.ManifestVersion)
	return true
}

// checkFiles prints the required and optional file sections. Only required
// files feed the returned pass/fail.
func checkFiles(root string, out io.Writer, m Markers) (bool, int) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Checking file structure...")

	missing := 0
	fmt.Fprintln(out, "Required files:")
	for _, path := range layout.ByCategory(layout.Required) {
		if exists(root, path) {
			fmt.Fprintf(out, "   %s: %s present\n", path, m.Pass)
		} else {
			fmt.Fprintf(out, "   %s: %s missing\n", path, m.Fail)
			missing++
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Optional files:")
	for _, path := range layout.ByCategory(layout.Optional) {
		if exists(root, path) {
			fmt.Fprintf(out, "   %s: %s present\n", path, m.Pass)
		} else {
			fmt.Fprintf(out, "   %s: %s missing\n", path, m.Warn)
		}
	}

	return missing == 0, missing
}

// checkScripts prints the JavaScript heuristics section.
func checkScripts(root string, out io.Writer, m Markers) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Checking JavaScript sources...")

	for _, path := range layout.ByKind(layout.Script) {
		content, ok := readFile(root, path, out, m)
		if !ok {
			continue
		}

		r := checks.CheckScript(content)
		if r.UsesChromeAPI {
			fmt.Fprintf(out, "   %s %s: uses chrome.* APIs\n", m.Pass, path)
		} else {
			fmt.Fprintf(out, "   %s %s: no chrome.* API calls detected\n", m.Warn, path)
		}
		switch {
		case r.BraceMismatch:
			fmt.Fprintf(out, "   %s %s: unbalanced braces {}\n", m.Fail, path)
		case r.ParenMismatch:
			fmt.Fprintf(out, "   %s %s: unbalanced parentheses ()\n", m.Fail, path)
		default:
			fmt.Fprintf(out, "   %s %s: basic syntax check passed\n", m.Pass, path)
		}
	}
}

// checkMarkup prints the HTML heuristics section. Advisory only: missing
// files are warnings here, existence is already covered by checkFiles.
func checkMarkup(root string, out io.Writer, m Markers) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Checking HTML files...")

	for _, path := range layout.ByKind(layout.Markup) {
		if !exists(root, path) {
			fmt.Fprintf(out, "   %s %s: not present\n", m.Warn, path)
			continue
		}
		content, ok := readFile(root, path, out, m)
		if !ok {
			continue
		}

		r := checks.CheckMarkup(content)
		if r.HasDoctype {
			fmt.Fprintf(out, "   %s %s: HTML5 doctype present\n", m.Pass, path)
		} else {
			fmt.Fprintf(out, "   %s %s: missing HTML5 doctype\n", m.Warn, path)
		}
		switch {
		case r.ExternalScript:
			fmt.Fprintf(out, "   %s %s: references an external script\n", m.Pass, path)
		case r.HasScript:
			fmt.Fprintf(out, "   %s %s: contains an inline script\n", m.Pass, path)
		default:
			fmt.Fprintf(out, "   %s %s: no script detected\n", m.Warn, path)
		}
	}
}

// checkStyles prints the CSS heuristics section.
func checkStyles(root string, out io.Writer, m Markers) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Checking CSS files...")

	for _, path := range layout.ByKind(layout.Style) {
		content, ok := readFile(root, path, out, m)
		if !ok {
			continue
		}

		r := checks.CheckStyle(content)
		fmt.Fprintf(out, "   %s %s: %d CSS rules\n", m.Pass, path, r.Rules)
		if r.BraceMismatch {
			fmt.Fprintf(out, "   %s %s: unbalanced braces {}\n", m.Fail, path)
		} else {
			fmt.Fprintf(out, "   %s %s: syntax check passed\n", m.Pass, path)
		}
	}
}

// printWalkthrough prints the load-and-configure instructions shown after a
// fully successful run.
func printWalkthrough(out io.Writer) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "Installation")
	fmt.Fprintln(out, rule)
	fmt.Fprintln(out, "1. Open Chrome")
	fmt.Fprintln(out, "2. Go to chrome://extensions/")
	fmt.Fprintln(out, "3. Enable \"Developer mode\" (top right)")
	fmt.Fprintln(out, "4. Click \"Load unpacked\"")
	fmt.Fprintln(out, "5. Select this project's root directory (the one containing manifest.json)")
	fmt.Fprintln(out, "6. Confirm the extension appears in the list")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Configuration")
	fmt.Fprintln(out, "1. Click the extension icon to open the popup")
	fmt.Fprintln(out, "2. Pick an AI model")
	fmt.Fprintln(out, "3. Expand \"API settings\" and enter your API key")
	fmt.Fprintln(out, "4. Click \"Test\" to verify the connection")
	fmt.Fprintln(out, "5. Turn on the translation toggle")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Testing")
	fmt.Fprintln(out, "1. Open test.html to exercise the extension")
	fmt.Fprintln(out, "2. Or visit any English page and try translating it")
}

// exists reports whether path exists under root.
func exists(root, path string) bool {
	_, err := os.Stat(filepath.Join(root, path))
	return err == nil
}

// readFile reads a project file for a heuristic check. A missing file or a
// read failure is reported on its own line and skips the check; neither is
// fatal to the run.
func readFile(root, path string, out io.Writer, m Markers) (string, bool) {
	data, err := os.ReadFile(filepath.Join(root, path))
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(out, "   %s %s: not present\n", m.Fail, path)
		} else {
			fmt.Fprintf(out, "   %s %s: read failed: %v\n", m.Fail, path, err)
		}
		return "", false
	}
	return string(data), true
}
