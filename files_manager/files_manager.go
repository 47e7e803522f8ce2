package files_manager

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CheckSourceFile verifies the SVG source exists before any conversion
// work starts.
func CheckSourceFile(svgPath string) error {
	if svgPath == "" {
		return fmt.Errorf("source SVG path required")
	}
	info, err := os.Stat(svgPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("SVG file not found: %s", svgPath)
		}
		return fmt.Errorf("cannot access SVG file %s: %v", svgPath, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not an SVG file", svgPath)
	}
	if strings.ToLower(filepath.Ext(svgPath)) != ".svg" {
		return fmt.Errorf("%s is not an SVG file", svgPath)
	}
	return nil
}

// EnsureOutputDir creates the output directory if it does not exist yet.
func EnsureOutputDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("output directory required")
	}
	if stat, err := os.Stat(dir); err == nil {
		if !stat.IsDir() {
			return fmt.Errorf("output path %s exists and is not a directory", dir)
		}
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create output directory %s: %v", dir, err)
	}
	return nil
}

// IconBaseName strips the extension: assets/icons/icon.svg -> "icon".
func IconBaseName(svgPath string) string {
	return strings.TrimSuffix(filepath.Base(svgPath), filepath.Ext(svgPath))
}

// OutputPath derives the raster filename for one size: icon16.png.
func OutputPath(outputDir, baseName string, sizePx int) string {
	return filepath.Join(outputDir, fmt.Sprintf("%s%d.png", baseName, sizePx))
}

func ICOPath(outputDir, baseName string) string {
	return filepath.Join(outputDir, baseName+".ico")
}

func SheetPath(outputDir, baseName string) string {
	return filepath.Join(outputDir, baseName+"_sheet.pdf")
}

// GetSVGPaths lists the SVG files directly inside dir, skipping
// AppleDouble droppings the same way finder-managed folders require.
func GetSVGPaths(dir string) ([]string, int64, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, 0, err
	}
	svgFiles := make([]string, 0, len(entries))
	var size int64 = 0
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), "._") {
			continue
		}
		if strings.ToLower(filepath.Ext(entry.Name())) != ".svg" {
			continue
		}
		svgFiles = append(svgFiles, filepath.Join(dir, entry.Name()))
		info, _ := entry.Info()
		size += info.Size()
	}
	return svgFiles, size, nil
}
