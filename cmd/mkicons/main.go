// mkicons writes the placeholder extension icons into src/assets.
// The files are a fixed 1×1 transparent PNG regardless of size; they exist
// so Chrome will load the unpacked extension before real icons are drawn.
package main

import (
	"fmt"
	"os"

	"github.com/cnwenf/tify/internal/icons"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	dir := icons.DefaultDir

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "help", "-h", "--help":
			printUsage()
			return
		case "version", "-V", "--version":
			fmt.Printf("mkicons %s (built %s)\n", version, buildDate)
			return
		case "--dir", "-d":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "Error: --dir requires a directory path\n")
				os.Exit(1)
			}
			dir = args[i+1]
			i++
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown argument %q\n", args[i])
			fmt.Fprintf(os.Stderr, "Run 'mkicons help' for usage.\n")
			os.Exit(1)
		}
	}

	failed := 0
	for _, size := range icons.Sizes {
		out, err := icons.Emit(dir, size)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed++
			continue
		}
		fmt.Printf("Created %s (%dx%d)\n", out, size, size)
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "Error: %d of %d icons could not be written\n", failed, len(icons.Sizes))
		os.Exit(1)
	}

	fmt.Println("Icon generation complete.")
	fmt.Println()
	fmt.Println("Note: these are placeholder icons. For a release, render the real")
	fmt.Println("SVG artwork to PNG (e.g. with Inkscape: inkscape --export-png=...).")
}

func printUsage() {
	fmt.Printf("mkicons %s - Write placeholder extension icons\n", version)
	fmt.Println(`
Usage:
  mkicons [options]

Options:
  --dir, -d <path>   Output directory (default: src/assets)

Commands:
  version, -V        Show version and build date
  help, -h, --help   Show this help message

Writes icon16.png, icon32.png, icon48.png and icon128.png. Each file holds
the same placeholder image; only the filename carries the size.`)
}
