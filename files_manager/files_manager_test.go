package files_manager

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOutputPath(t *testing.T) {
	got := OutputPath(filepath.Join("assets", "icons"), "icon", 16)
	want := filepath.Join("assets", "icons", "icon16.png")
	if got != want {
		t.Errorf("OutputPath = %q, want %q", got, want)
	}
}

func TestIconBaseName(t *testing.T) {
	cases := map[string]string{
		filepath.Join("assets", "icons", "icon.svg"): "icon",
		"logo.SVG":  "logo",
		"plain.svg": "plain",
	}
	for path, want := range cases {
		if got := IconBaseName(path); got != want {
			t.Errorf("IconBaseName(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestCheckSourceFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid SVG file", func(t *testing.T) {
		path := filepath.Join(dir, "icon.svg")
		if err := os.WriteFile(path, []byte("<svg/>"), 0o644); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}
		if err := CheckSourceFile(path); err != nil {
			t.Errorf("CheckSourceFile failed for valid file: %v", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if err := CheckSourceFile(filepath.Join(dir, "nope.svg")); err == nil {
			t.Error("Expected error for missing file")
		}
	})

	t.Run("directory instead of file", func(t *testing.T) {
		if err := CheckSourceFile(dir); err == nil {
			t.Error("Expected error for directory path")
		}
	})

	t.Run("wrong extension", func(t *testing.T) {
		path := filepath.Join(dir, "icon.png")
		if err := os.WriteFile(path, []byte("png"), 0o644); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}
		if err := CheckSourceFile(path); err == nil {
			t.Error("Expected error for non-SVG extension")
		}
	})
}

func TestEnsureOutputDir(t *testing.T) {
	t.Run("creates missing directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "a", "b")
		if err := EnsureOutputDir(dir); err != nil {
			t.Fatalf("EnsureOutputDir failed: %v", err)
		}
		stat, err := os.Stat(dir)
		if err != nil || !stat.IsDir() {
			t.Errorf("Directory was not created: %v", err)
		}
	})

	t.Run("rejects file in the way", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "blocker")
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}
		if err := EnsureOutputDir(path); err == nil {
			t.Error("Expected error when output path is a file")
		}
	})
}

func TestGetSVGPaths(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"a.svg":    "<svg/>",
		"b.SVG":    "<svg/>",
		"c.png":    "png",
		"._a.svg":  "junk",
		"notes.md": "md",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.svg"), 0o755); err != nil {
		t.Fatalf("Failed to make subdirectory: %v", err)
	}

	paths, size, err := GetSVGPaths(dir)
	if err != nil {
		t.Fatalf("GetSVGPaths failed: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("Expected 2 SVG files, got %d: %v", len(paths), paths)
	}
	if size != int64(len("<svg/>")*2) {
		t.Errorf("Expected total size %d, got %d", len("<svg/>")*2, size)
	}
}
