package pixelart

import (
	"errors"
	"math"
)

type Option func(gen *Generator)

// WithGradations sets the number of brightness levels in the output palette.
func WithGradations(n int) Option {
	return func(gen *Generator) {
		gen.gradation = 255 / float64(n)
	}
}

// WithPixelSize sets the side length of each square block, in pixels.
func WithPixelSize(n int) Option {
	return func(gen *Generator) {
		gen.step = n
	}
}

type Generator struct {
	step      int     // Block side length, in pixels
	gradation float64 // Brightness width of one palette level
}

func NewGenerator(opts ...Option) *Generator {
	gen := Generator{
		step:      10,
		gradation: 255 / 6.0,
	}
	for _, opt := range opts {
		opt(&gen)
	}
	return &gen
}

// BlockColor samples the brightness of the block whose top-left corner
// is at row i, column j. Every sample value inside the block is summed,
// channels included, and the sum is floor-divided by the full block
// area. Blocks clipped at the grid edge keep the full divisor, so edge
// blocks read darker than their true average.
func (gen *Generator) BlockColor(grid *Grid, i, j int) float64 {
	iEnd := i + gen.step
	if iEnd > grid.Height {
		iEnd = grid.Height
	}
	jEnd := j + gen.step
	if jEnd > grid.Width {
		jEnd = grid.Width
	}
	var sum float64
	for y := i; y < iEnd; y++ {
		n := grid.PixOffset(y, j)
		for x := j; x < jEnd; x++ {
			for c := 0; c < grid.Channels; c++ {
				sum += grid.Pix[n]
				n++
			}
		}
	}
	return math.Floor(sum / float64(gen.step*gen.step))
}

// SetBlockColor overwrites every cell of the block at row i, column j
// with the palette value that brightness quantizes to. The write is
// clipped at the grid bounds and hits every channel. Out-of-range
// brightness is not clamped; its level carries through unchanged.
func (gen *Generator) SetBlockColor(grid *Grid, i, j int, brightness float64) {
	level := math.Floor(brightness / gen.gradation)
	value := level * gen.gradation / 3
	iEnd := i + gen.step
	if iEnd > grid.Height {
		iEnd = grid.Height
	}
	jEnd := j + gen.step
	if jEnd > grid.Width {
		jEnd = grid.Width
	}
	for y := i; y < iEnd; y++ {
		n := grid.PixOffset(y, j)
		for x := j; x < jEnd; x++ {
			for c := 0; c < grid.Channels; c++ {
				grid.Pix[n] = value
				n++
			}
		}
	}
}

// Generate quantizes the grid in place, sweeping blocks in row-major
// order. Blocks never overlap, so each block samples its own original
// content. Fails if the generator was built with a non-positive pixel
// size or gradation count.
func (gen *Generator) Generate(grid *Grid) error {
	if gen.step < 1 {
		return errors.New("pixelart: pixel size must be a positive integer")
	}
	if gen.gradation <= 0 || math.IsInf(gen.gradation, 1) {
		return errors.New("pixelart: gradations must be a positive integer")
	}
	for i := 0; i < grid.Height; i += gen.step {
		for j := 0; j < grid.Width; j += gen.step {
			gen.SetBlockColor(grid, i, j, gen.BlockColor(grid, i, j))
		}
	}
	return nil
}
