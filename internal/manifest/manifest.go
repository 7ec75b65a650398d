// Package manifest checks the extension's manifest.json: that it parses,
// that the required fields are present, and what the identifying values are.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cnwenf/tify/internal/paths"
)

// RequiredFields are the manifest keys every loadable extension needs.
var RequiredFields = []string{"manifest_version", "name", "version", "description"}

// Result is the outcome of checking one manifest document.
type Result struct {
	// NotFound is set when the file does not exist; all other fields are
	// zero in that case.
	NotFound bool

	// ParseErr holds the decoder's error for a malformed document.
	ParseErr error

	// Missing lists absent required fields, in RequiredFields order.
	Missing []string

	// Identifying values, present on a well-formed manifest.
	Name            string
	Version         string
	ManifestVersion string
}

// OK reports whether the manifest passed: present, parseable, and no
// missing required fields.
func (r Result) OK() bool {
	return !r.NotFound && r.ParseErr == nil && len(r.Missing) == 0
}

// Check reads and validates <root>/manifest.json.
func Check(root string) Result {
	data, err := os.ReadFile(filepath.Join(root, paths.ManifestFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return Result{NotFound: true}
		}
		return Result{ParseErr: err}
	}
	return Parse(data)
}

// Parse validates raw manifest bytes. Field presence is checked on the raw
// key set, so `"name": ""` counts as present while a missing key does not.
func Parse(data []byte) Result {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Result{ParseErr: err}
	}

	var r Result
	for _, f := range RequiredFields {
		if _, ok := fields[f]; !ok {
			r.Missing = append(r.Missing, f)
		}
	}

	r.Name = stringField(fields, "name")
	r.Version = stringField(fields, "version")
	r.ManifestVersion = scalarField(fields, "manifest_version")
	return r
}

// stringField decodes a string-valued field, returning "" if absent or not
// a string.
func stringField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// scalarField renders a field that may be a number (manifest_version is 3,
// not "3") or a string.
func scalarField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return fmt.Sprintf("%s", raw)
}
