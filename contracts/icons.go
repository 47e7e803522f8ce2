package contracts

// DefaultSizes are the icon sizes a Chrome extension manifest expects.
var DefaultSizes = []int{16, 48, 128}

// IconSet maps one source SVG to its raster outputs: one PNG per size,
// written into OutputDir under a deterministic, size-derived name.
type IconSet struct {
	SourcePath string
	OutputDir  string
	BaseName   string
	Sizes      []int
}
