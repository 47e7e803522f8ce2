package ico_writer

import (
	"encoding/binary"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"svg2icons/contracts"
)

func solidSquare(sizePx int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, sizePx, sizePx))
	for y := 0; y < sizePx; y++ {
		for x := 0; x < sizePx; x++ {
			img.Set(x, y, color.RGBA{26, 115, 232, 255})
		}
	}
	return img
}

func TestWriteICO(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "icon.ico")

	results := []contracts.RenderResult{
		{Img: solidSquare(16), SizePx: 16, SizeIndex: 0},
		{Img: solidSquare(48), SizePx: 48, SizeIndex: 1},
		{Img: solidSquare(128), SizePx: 128, SizeIndex: 2},
	}

	if err := WriteICO(outPath, results); err != nil {
		t.Fatalf("WriteICO failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("Failed to read ICO output: %v", err)
	}
	if len(data) < 6 {
		t.Fatalf("ICO output too short: %d bytes", len(data))
	}

	// ICONDIR header: reserved(0), type(1), image count
	if reserved := binary.LittleEndian.Uint16(data[0:2]); reserved != 0 {
		t.Errorf("ICONDIR reserved field = %d, want 0", reserved)
	}
	if imgType := binary.LittleEndian.Uint16(data[2:4]); imgType != 1 {
		t.Errorf("ICONDIR type = %d, want 1 (icon)", imgType)
	}
	if count := binary.LittleEndian.Uint16(data[4:6]); count != 3 {
		t.Errorf("ICONDIR image count = %d, want 3", count)
	}
}

func TestWriteICORejectsEmptyInput(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "icon.ico")
	if err := WriteICO(outPath, nil); err == nil {
		t.Error("Expected error for empty result set")
	}
	if _, err := os.Stat(outPath); !os.IsNotExist(err) {
		t.Error("No file should be created for empty result set")
	}
}
