package contracts

import "image"

type Renderer interface {
	// Name identifies the rendering backend in user-facing output.
	Name() string
	// Ensure verifies the rendering capability is available in this
	// process. It never installs anything; conversion is refused when
	// it fails.
	Ensure() error
	// Render rasterizes the SVG document into a square image of
	// sizePx by sizePx pixels.
	Render(svg []byte, sizePx int) (image.Image, error)
}

type RenderResult struct {
	Img        image.Image
	OutputPath string
	SizePx     int
	SizeIndex  int
}
