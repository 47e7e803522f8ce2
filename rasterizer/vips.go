//go:build vips

package rasterizer

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"sync"

	"github.com/davidbyttow/govips/v2/vips"

	"svg2icons/contracts"
)

var vipsStartup sync.Once

type vipsRenderer struct{}

func newRenderer() contracts.Renderer { return vipsRenderer{} }

func (vipsRenderer) Name() string { return "libvips" }

func (vipsRenderer) Ensure() error {
	vipsStartup.Do(func() {
		vips.LoggingSettings(nil, vips.LogLevelError)
		vips.Startup(nil)
	})
	return nil
}

func (vipsRenderer) Render(svg []byte, sizePx int) (image.Image, error) {
	if sizePx <= 0 {
		return nil, fmt.Errorf("invalid size %d", sizePx)
	}

	img, err := vips.NewThumbnailFromBuffer(svg, sizePx, sizePx, vips.InterestingCentre)
	if err != nil {
		return nil, fmt.Errorf("libvips render: %v", err)
	}
	defer img.Close()

	data, _, err := img.ExportPng(vips.NewPngExportParams())
	if err != nil {
		return nil, fmt.Errorf("libvips PNG export: %v", err)
	}
	return png.Decode(bytes.NewReader(data))
}
