//go:build imagick

package rasterizer

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"sync"

	"gopkg.in/gographics/imagick.v2/imagick"

	"svg2icons/contracts"
)

var magickStartup sync.Once

type magickRenderer struct{}

func newRenderer() contracts.Renderer { return magickRenderer{} }

func (magickRenderer) Name() string { return "imagemagick" }

func (magickRenderer) Ensure() error {
	magickStartup.Do(imagick.Initialize)
	return nil
}

func (magickRenderer) Render(svg []byte, sizePx int) (image.Image, error) {
	if sizePx <= 0 {
		return nil, fmt.Errorf("invalid size %d", sizePx)
	}

	mw := imagick.NewMagickWand()
	defer mw.Destroy()

	bg := imagick.NewPixelWand()
	defer bg.Destroy()
	bg.SetColor("none")
	if err := mw.SetBackgroundColor(bg); err != nil {
		return nil, err
	}

	if err := mw.ReadImageBlob(svg); err != nil {
		return nil, fmt.Errorf("imagemagick read: %v", err)
	}
	if err := mw.ResizeImage(uint(sizePx), uint(sizePx), imagick.FILTER_LANCZOS, 1); err != nil {
		return nil, fmt.Errorf("imagemagick resize: %v", err)
	}
	if err := mw.SetImageFormat("PNG32"); err != nil {
		return nil, err
	}
	return png.Decode(bytes.NewReader(mw.GetImageBlob()))
}
