package pixelart

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Open decodes the image file at path into a Grid. GIF, JPEG, PNG, BMP
// and TIFF inputs are supported.
func Open(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

// FromImage converts a decoded image into a Grid. Grayscale sources map
// to a single channel, non-premultiplied RGBA sources keep all four
// channels including alpha, and every other color model is read as
// 8-bit RGB.
func FromImage(img image.Image) *Grid {
	// An image's bounds do not necessarily start at (0, 0); the grid's
	// always do, so reads are offset by bounds.Min.
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	switch src := img.(type) {
	case *image.Gray:
		grid := NewGrid(w, h, 1)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				n := src.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
				grid.Pix[grid.PixOffset(y, x)] = float64(src.Pix[n])
			}
		}
		return grid
	case *image.Gray16:
		grid := NewGrid(w, h, 1)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				// High byte of the big-endian 16-bit sample.
				n := src.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
				grid.Pix[grid.PixOffset(y, x)] = float64(src.Pix[n])
			}
		}
		return grid
	case *image.NRGBA:
		grid := NewGrid(w, h, 4)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				n := src.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
				m := grid.PixOffset(y, x)
				for c := 0; c < 4; c++ {
					grid.Pix[m+c] = float64(src.Pix[n+c])
				}
			}
		}
		return grid
	default:
		grid := NewGrid(w, h, 3)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
				m := grid.PixOffset(y, x)
				grid.Pix[m+0] = float64(r >> 8)
				grid.Pix[m+1] = float64(g >> 8)
				grid.Pix[m+2] = float64(b >> 8)
			}
		}
		return grid
	}
}

// Image renders the grid back into an image. One channel produces 8-bit
// grayscale, three channels opaque NRGBA, four channels NRGBA with the
// grid's own alpha. Samples are truncated toward zero and wrapped to a
// byte; out-of-range values do not clamp.
func (g *Grid) Image() (image.Image, error) {
	switch g.Channels {
	case 1:
		out := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
		for n, v := range g.Pix {
			out.Pix[n] = uint8(int64(v))
		}
		return out, nil
	case 3:
		out := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))
		n := 0
		for m := 0; m < len(g.Pix); m += 3 {
			out.Pix[n+0] = uint8(int64(g.Pix[m+0]))
			out.Pix[n+1] = uint8(int64(g.Pix[m+1]))
			out.Pix[n+2] = uint8(int64(g.Pix[m+2]))
			out.Pix[n+3] = 0xff
			n += 4
		}
		return out, nil
	case 4:
		out := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))
		for n, v := range g.Pix {
			out.Pix[n] = uint8(int64(v))
		}
		return out, nil
	}
	return nil, fmt.Errorf("pixelart: unsupported channel count: %d", g.Channels)
}

// Save encodes the grid into the file at path. The format is chosen by
// the file extension; jpg, jpeg, png, gif, tif, tiff and bmp are
// supported.
func Save(grid *Grid, path string) error {
	img, err := grid.Image()
	if err != nil {
		return err
	}
	return imaging.Save(img, path)
}
