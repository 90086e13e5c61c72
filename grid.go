package pixelart

// Grid holds an image's samples as float64 values in row-major order,
// with channel values interleaved per pixel. Values are expected to be
// in the 0-255 range but are never clamped.
type Grid struct {
	// Pix holds the samples in order (i*Width+j)*Channels + c, where i
	// is the row and j the column.
	Pix []float64
	// Width and Height are the grid dimensions in pixels.
	Width, Height int
	// Channels is the number of samples per pixel.
	Channels int
}

// NewGrid allocates a zeroed grid of the given dimensions.
func NewGrid(width, height, channels int) *Grid {
	return &Grid{
		Pix:      make([]float64, width*height*channels),
		Width:    width,
		Height:   height,
		Channels: channels,
	}
}

// PixOffset returns the index of the first channel of the pixel at row
// i, column j.
func (g *Grid) PixOffset(i, j int) int {
	return (i*g.Width + j) * g.Channels
}

// At returns channel ch of the pixel at row i, column j.
func (g *Grid) At(i, j, ch int) float64 {
	return g.Pix[g.PixOffset(i, j)+ch]
}

// Set assigns channel ch of the pixel at row i, column j.
func (g *Grid) Set(i, j, ch int, v float64) {
	g.Pix[g.PixOffset(i, j)+ch] = v
}
