package icons

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestPlaceholderIsPNG(t *testing.T) {
	data := Placeholder()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("placeholder is not a valid PNG: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 1 || b.Dy() != 1 {
		t.Errorf("placeholder bounds = %dx%d, want 1x1", b.Dx(), b.Dy())
	}
}

func TestPath(t *testing.T) {
	got := Path("src/assets", 48)
	want := filepath.Join("src", "assets", "icon48.png")
	if got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
}

func TestEmitAllSizesSameBytes(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "src", "assets")
	want := Placeholder()

	for _, size := range Sizes {
		out, err := Emit(dir, size)
		if err != nil {
			t.Fatalf("Emit(%d): %v", size, err)
		}
		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatalf("ReadFile(%s): %v", out, err)
		}
		if !bytes.Equal(data, want) {
			t.Errorf("icon%d.png content differs from placeholder", size)
		}
	}
}

func TestEmitCreatesMissingDirs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	if _, err := Emit(dir, 16); err != nil {
		t.Fatalf("Emit into missing dirs: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "icon16.png")); err != nil {
		t.Errorf("icon16.png not created: %v", err)
	}
}

func TestEmitLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	if _, err := Emit(dir, 128); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "icon128.png" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("dir contents = %v, want only icon128.png", names)
	}
}

func TestEmitOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "icon32.png")
	if err := os.WriteFile(path, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Emit(dir, 32); err != nil {
		t.Fatalf("Emit over existing file: %v", err)
	}
	data, _ := os.ReadFile(path)
	if !bytes.Equal(data, Placeholder()) {
		t.Errorf("existing file was not overwritten with placeholder")
	}
}
