package extra

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

// ResizeImage scales an image down to width pixels wide, output is
// always JPEG regardless of the source format.
func ResizeImage(name string, file io.Reader, output io.Writer, width float64) error {
	ext := path.Ext(name)

	var err error
	var src image.Image

	if strings.EqualFold(".png", ext) {
		src, err = png.Decode(file)
		if err != nil {
			return err
		}
	} else if strings.EqualFold(".jpg", ext) || strings.EqualFold(".jpeg", ext) {
		src, err = jpeg.Decode(file)
		if err != nil {
			return err
		}
	} else if strings.EqualFold(".webp", ext) {
		src, err = webp.Decode(file)
		if err != nil {
			return err
		}
	} else {
		return fmt.Errorf("invalid image format: %s", ext)
	}

	srcX := float64(src.Bounds().Max.X)
	srcY := float64(src.Bounds().Max.Y)

	ratio := width / srcX

	x := int(srcX * ratio)
	y := int(srcY * ratio)

	dst := image.NewRGBA(image.Rect(0, 0, x, y))

	draw.ApproxBiLinear.Scale(dst, dst.Rect, src, src.Bounds(), draw.Over, nil)

	opt := &jpeg.Options{
		Quality: 100,
	}
	if err := jpeg.Encode(output, dst, opt); err != nil {
		return err
	}

	return nil
}
