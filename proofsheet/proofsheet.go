package proofsheet

import (
	"bytes"
	"fmt"
	"image/png"
	"path/filepath"

	"github.com/phpdave11/gofpdf"

	"svg2icons/contracts"
)

// CSS reference pixel, 96 per inch.
const mmPerPx = 25.4 / 96.0

// WriteSheet lays every rendered size out on a single A4 page at true
// physical scale, with the output filename next to each icon.
func WriteSheet(path, title string, results []contracts.RenderResult) error {
	if len(results) == 0 {
		return fmt.Errorf("no rendered icons to lay out")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, title)
	pdf.SetFont("Helvetica", "", 9)

	y := 40.0
	for _, result := range results {
		var buf bytes.Buffer
		if err := png.Encode(&buf, result.Img); err != nil {
			return fmt.Errorf("encoding %s for sheet: %v", result.OutputPath, err)
		}

		imageID := fmt.Sprintf("icon_%d_%d", result.SizeIndex, result.SizePx)
		opts := gofpdf.ImageOptions{
			ImageType: "PNG",
			ReadDpi:   false,
		}
		pdf.RegisterImageOptionsReader(imageID, opts, &buf)

		side := float64(result.SizePx) * mmPerPx
		pdf.ImageOptions(imageID, 20, y, side, side, false, opts, 0, "")

		label := fmt.Sprintf("%s (%dx%d)", filepath.Base(result.OutputPath), result.SizePx, result.SizePx)
		pdf.Text(20+side+6, y+side/2, label)

		y += side + 10
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("saving proof sheet %s: %v", path, err)
	}

	fmt.Printf("  Created: %s\n", filepath.Base(path))
	return nil
}
