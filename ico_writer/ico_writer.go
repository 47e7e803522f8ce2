package ico_writer

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	ico "github.com/sergeymakinen/go-ico"

	"svg2icons/contracts"
)

// WriteICO bundles every rendered size into one multi-resolution .ico
// file. ICO entries are capped at 256px, which the extension icon sizes
// stay well under.
func WriteICO(path string, results []contracts.RenderResult) error {
	if len(results) == 0 {
		return fmt.Errorf("no rendered icons to bundle")
	}

	imgs := make([]image.Image, 0, len(results))
	for _, result := range results {
		imgs = append(imgs, result.Img)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create ICO file %s: %v", path, err)
	}
	if err := ico.EncodeAll(f, imgs); err != nil {
		f.Close()
		return fmt.Errorf("encoding ICO %s: %v", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing ICO %s: %v", path, err)
	}

	fmt.Printf("  Created: %s (%d sizes)\n", filepath.Base(path), len(imgs))
	return nil
}
