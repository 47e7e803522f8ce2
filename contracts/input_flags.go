package contracts

type InputFlags struct {
	SVGPath   string
	OutputDir string
	Sizes     []int
	MakeICO   bool
	MakeSheet bool
	CheckOnly bool
}
