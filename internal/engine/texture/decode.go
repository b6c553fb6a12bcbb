// Package texture owns the mapping from symbolic tags to GL texture handles
// and texture-unit slots, including image decoding and upload.
package texture

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
)

// DecodeFile decodes the image at path and returns a tightly packed pixel
// buffer in the source channel order, plus dimensions and channel count.
// Rows are flipped vertically so row 0 is the bottom of the image, matching
// the GL texture-coordinate origin.
//
// Channel counts follow the source color model: grayscale decodes as 1,
// grayscale+alpha as 2, opaque color as 3 and color+alpha as 4. Only 3- and
// 4-channel layouts are accepted; others return ErrUnsupportedChannels with
// dimensions still reported for diagnostics.
func DecodeFile(path string) (pix []byte, width, height, channels int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("open image %q: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("decode image %q: %w", path, err)
	}

	bounds := img.Bounds()
	width = bounds.Dx()
	height = bounds.Dy()
	channels = channelCount(img)

	if channels != 3 && channels != 4 {
		return nil, width, height, channels,
			fmt.Errorf("image %q (%s, %d channels): %w", path, format, channels, ErrUnsupportedChannels)
	}

	// Convert through NRGBA to keep color channels straight; At().RGBA()
	// returns alpha-premultiplied values and would scale translucent pixels.
	nrgba := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)

	pix = make([]byte, 0, width*height*channels)
	// Bottom row first: vertical flip is always on.
	for y := height - 1; y >= 0; y-- {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+width*4]
		for x := 0; x < width; x++ {
			p := row[x*4 : x*4+4]
			pix = append(pix, p[0], p[1], p[2])
			if channels == 4 {
				pix = append(pix, p[3])
			}
		}
	}

	return pix, width, height, channels, nil
}

// channelCount maps the decoded image type to its source channel layout.
func channelCount(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	}
	// RGBA, NRGBA, Paletted and the 16-bit forms: treat a fully opaque image
	// as plain color, otherwise it carries alpha.
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return 3
	}
	return 4
}
