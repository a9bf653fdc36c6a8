package codec

import (
	"image"
	"io"

	"github.com/disintegration/imaging"

	"github.com/imgforge/imgforge/internal/format"
)

// jpegCodec encodes and decodes JPEG through the imaging library.
type jpegCodec struct {
	quality int
}

// NewJPEG creates a JPEG codec with the given encode quality (1-100).
func NewJPEG(quality int) Codec {
	return &jpegCodec{quality: quality}
}

func (c *jpegCodec) Format() format.Format {
	return format.JPEG
}

func (c *jpegCodec) Decode(r io.Reader) (image.Image, error) {
	return imaging.Decode(r)
}

func (c *jpegCodec) Encode(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(c.quality))
}
