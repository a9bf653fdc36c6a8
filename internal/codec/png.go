package codec

import (
	"image"
	"image/png"
	"io"

	"github.com/disintegration/imaging"

	"github.com/imgforge/imgforge/internal/format"
)

// pngCodec encodes and decodes PNG through the imaging library.
type pngCodec struct {
	level png.CompressionLevel
}

// NewPNG creates a PNG codec with the given compression level.
func NewPNG(level png.CompressionLevel) Codec {
	return &pngCodec{level: level}
}

func (c *pngCodec) Format() format.Format {
	return format.PNG
}

func (c *pngCodec) Decode(r io.Reader) (image.Image, error) {
	return imaging.Decode(r)
}

func (c *pngCodec) Encode(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(c.level))
}
