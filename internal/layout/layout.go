// Package layout declares the expected file tree of the extension project.
// Every check derives its file list from the one table here, so the
// required/optional lists and the per-kind heuristic lists cannot drift.
package layout

// Category says whether a missing file fails validation.
type Category int

const (
	Required Category = iota
	Optional
)

// Kind selects which heuristic check (if any) applies to a file.
type Kind int

const (
	Manifest Kind = iota
	Script
	Markup
	Style
	Image
	Doc
)

// File is one expected path, relative to the project root.
type File struct {
	Path     string
	Category Category
	Kind     Kind
}

// Files is the full expected layout of an extension project.
var Files = []File{
	{"manifest.json", Required, Manifest},
	{"src/popup/popup.html", Required, Markup},
	{"src/popup/popup.css", Required, Style},
	{"src/popup/popup.js", Required, Script},
	{"src/content/content.js", Required, Script},
	{"src/content/content.css", Required, Style},
	{"src/background/background.js", Required, Script},
	{"src/assets/icon16.png", Required, Image},
	{"src/assets/icon32.png", Required, Image},
	{"src/assets/icon48.png", Required, Image},
	{"src/assets/icon128.png", Required, Image},
	{"src/welcome/welcome.html", Optional, Markup},
	{"test.html", Optional, Markup},
	{"README.md", Optional, Doc},
	{"INSTALLATION.md", Optional, Doc},
}

// ByCategory returns the paths in the given category, in table order.
func ByCategory(c Category) []string {
	var out []string
	for _, f := range Files {
		if f.Category == c {
			out = append(out, f.Path)
		}
	}
	return out
}

// ByKind returns the paths of the given kind, in table order.
func ByKind(k Kind) []string {
	var out []string
	for _, f := range Files {
		if f.Kind == k {
			out = append(out, f.Path)
		}
	}
	return out
}
