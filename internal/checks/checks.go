// Package checks holds the shallow textual heuristics run over extension
// source files. None of them parse the underlying language; they count
// delimiters and look for marker substrings, which is enough to catch the
// usual copy-paste breakage before loading the extension in a browser.
package checks

import "strings"

// chromeAPIs are the namespaces whose presence marks a file as actually
// talking to the extension platform.
var chromeAPIs = []string{"chrome.runtime", "chrome.storage", "chrome.tabs"}

// Script is the heuristic result for a JavaScript file.
type Script struct {
	UsesChromeAPI bool
	BraceMismatch bool // {} counts differ
	ParenMismatch bool // () counts differ; only checked when braces balance
}

// Balanced reports whether no delimiter mismatch was found.
func (s Script) Balanced() bool {
	return !s.BraceMismatch && !s.ParenMismatch
}

// CheckScript runs the script heuristics over file content.
func CheckScript(content string) Script {
	var r Script
	for _, api := range chromeAPIs {
		if strings.Contains(content, api) {
			r.UsesChromeAPI = true
			break
		}
	}
	if strings.Count(content, "{") != strings.Count(content, "}") {
		r.BraceMismatch = true
	} else if strings.Count(content, "(") != strings.Count(content, ")") {
		r.ParenMismatch = true
	}
	return r
}

// Markup is the heuristic result for an HTML file.
type Markup struct {
	HasDoctype     bool
	HasScript      bool
	ExternalScript bool // script tag with a src= reference
}

// CheckMarkup runs the markup heuristics over file content.
func CheckMarkup(content string) Markup {
	r := Markup{
		HasDoctype: strings.Contains(content, "<!DOCTYPE html>"),
		HasScript:  strings.Contains(content, "<script"),
	}
	r.ExternalScript = r.HasScript && strings.Contains(content, "src=")
	return r
}

// Style is the heuristic result for a CSS file.
type Style struct {
	Rules         int // count of "{" as a proxy for rule count
	BraceMismatch bool
}

// CheckStyle runs the style heuristics over file content.
func CheckStyle(content string) Style {
	return Style{
		Rules:         strings.Count(content, "{"),
		BraceMismatch: strings.Count(content, "{") != strings.Count(content, "}"),
	}
}
