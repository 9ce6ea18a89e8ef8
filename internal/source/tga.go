package source

import (
	"fmt"
	"image"
	"image/color"
)

// TGA image type constants.
const (
	tgaTypeUncompressed = 2  // Uncompressed true-color
	tgaTypeRLE          = 10 // RLE compressed true-color
)

// DecodeTGA decodes a TGA image. Renderers commonly export cube faces
// as TGA, which the standard image package cannot decode. Supports
// uncompressed true-color (type 2) and RLE compressed (type 10) files
// at 24 or 32 bits per pixel.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < 18 {
		return nil, fmt.Errorf("TGA data too short")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("color-mapped TGA not supported")
	}
	if imageType != tgaTypeUncompressed && imageType != tgaTypeRLE {
		return nil, fmt.Errorf("unsupported TGA type %d (only uncompressed/RLE true-color supported)", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("unsupported TGA bit depth %d (only 24/32 supported)", bpp)
	}

	offset := 18 + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("TGA data truncated")
	}
	pixelData := data[offset:]

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	depth := bpp / 8

	// Bit 5 of the descriptor means rows are stored top-to-bottom;
	// otherwise the image is bottom-up and rows must be flipped.
	topToBottom := (descriptor & 0x20) != 0
	plot := func(idx int, c color.RGBA) {
		x := idx % width
		y := idx / width
		if !topToBottom {
			y = height - 1 - y
		}
		img.SetRGBA(x, y, c)
	}

	if imageType == tgaTypeUncompressed {
		if len(pixelData) < width*height*depth {
			return nil, fmt.Errorf("TGA pixel data truncated")
		}
		for idx := 0; idx < width*height; idx++ {
			plot(idx, tgaPixel(pixelData[idx*depth:], depth))
		}
		return img, nil
	}

	decodeTGARLE(img.Bounds().Dx()*img.Bounds().Dy(), pixelData, depth, plot)
	return img, nil
}

// decodeTGARLE walks RLE packets, emitting each decoded pixel through
// plot. Truncated packets end the stream early, leaving the remaining
// pixels zero, which matches common viewer behavior.
func decodeTGARLE(pixelCount int, pixelData []byte, depth int, plot func(int, color.RGBA)) {
	pixelIdx := 0
	dataIdx := 0

	for pixelIdx < pixelCount && dataIdx < len(pixelData) {
		packet := pixelData[dataIdx]
		dataIdx++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			// RLE packet - one pixel value repeated count times
			if dataIdx+depth > len(pixelData) {
				return
			}
			c := tgaPixel(pixelData[dataIdx:], depth)
			dataIdx += depth

			for i := 0; i < count && pixelIdx < pixelCount; i++ {
				plot(pixelIdx, c)
				pixelIdx++
			}
		} else {
			// Raw packet - count literal pixels
			for i := 0; i < count && pixelIdx < pixelCount; i++ {
				if dataIdx+depth > len(pixelData) {
					return
				}
				plot(pixelIdx, tgaPixel(pixelData[dataIdx:], depth))
				dataIdx += depth
				pixelIdx++
			}
		}
	}
}

// tgaPixel reads one BGR(A) pixel.
func tgaPixel(data []byte, depth int) color.RGBA {
	c := color.RGBA{B: data[0], G: data[1], R: data[2], A: 255}
	if depth == 4 {
		c.A = data[3]
	}
	return c
}
