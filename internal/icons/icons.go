// Package icons writes the extension's placeholder icon files.
//
// The "icons" are a single pre-encoded 1×1 transparent PNG written under a
// size-named filename for every required size. Chrome only needs the files
// to exist to load an unpacked extension; real rendering happens elsewhere
// in the release pipeline.
package icons

import (
	"encoding/base64"
	"fmt"
	"path/filepath"

	"github.com/cnwenf/tify/internal/paths"
)

// Sizes lists the icon sizes Chrome expects in manifest.json.
var Sizes = []int{16, 32, 48, 128}

// DefaultDir is where the extension's manifest points its icons.
const DefaultDir = "src/assets"

// placeholderB64 is a 1×1 transparent PNG. The same bytes are written for
// every size; the filename alone carries the size.
const placeholderB64 = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8/5+hHgAHggJ/PchI7wAAAABJRU5ErkJggg=="

// Placeholder returns the placeholder PNG bytes.
func Placeholder() []byte {
	data, err := base64.StdEncoding.DecodeString(placeholderB64)
	if err != nil {
		// The constant is fixed at compile time; a decode failure is a bug.
		panic(fmt.Sprintf("icons: bad placeholder constant: %v", err))
	}
	return data
}

// Path returns the output path for one icon size under dir.
func Path(dir string, size int) string {
	return filepath.Join(dir, fmt.Sprintf("icon%d.png", size))
}

// Emit writes the placeholder icon for one size under dir, creating the
// directory chain if needed. Existing files are overwritten atomically, so
// a re-run never leaves a half-written icon behind.
func Emit(dir string, size int) (string, error) {
	out := Path(dir, size)
	if err := paths.AtomicWrite(out, Placeholder()); err != nil {
		return "", fmt.Errorf("write %s: %w", out, err)
	}
	return out, nil
}
