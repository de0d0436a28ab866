package nes

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// NES PPU generates 256x240 pixels.
const (
	Width  = 256
	Height = 240
)

// Frame is the PPU output, 3 bytes of RGB per pixel, rows top to bottom.
// The PPU writes it in place, readers must copy it between frames if they
// need a stable picture.
type Frame struct {
	pix [Height * Width * 3]byte
}

func (f *Frame) set(x, y int, c color.RGBA) {
	i := (y*Width + x) * 3
	f.pix[i] = c.R
	f.pix[i+1] = c.G
	f.pix[i+2] = c.B
}

// At returns the pixel at x, y.
func (f *Frame) At(x, y int) color.RGBA {
	i := (y*Width + x) * 3
	return color.RGBA{f.pix[i], f.pix[i+1], f.pix[i+2], 0xFF}
}

// Pix returns the backing RGB bytes, suitable for a GL_RGB texture upload.
func (f *Frame) Pix() []byte {
	return f.pix[:]
}

// Image copies the frame into a new RGBA image.
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			img.SetRGBA(x, y, f.At(x, y))
		}
	}
	return img
}

// Scaled returns the frame upscaled n times with nearest neighbour sampling.
func (f *Frame) Scaled(n int) *image.RGBA {
	if n < 1 {
		n = 1
	}
	src := f.Image()
	dst := image.NewRGBA(image.Rect(0, 0, Width*n, Height*n))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
