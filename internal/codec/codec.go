// Package codec wraps the external image library behind a per-format
// codec abstraction. The converter dispatches through a registry keyed by
// format, so supporting a new format later means registering another
// implementation rather than editing the dispatch logic.
package codec

import (
	"image"
	"io"

	"github.com/imgforge/imgforge/internal/format"
)

// Codec decodes bytes of one format into pixel data and encodes pixel
// data back into bytes of that format.
type Codec interface {
	Format() format.Format
	Decode(r io.Reader) (image.Image, error)
	Encode(w io.Writer, img image.Image) error
}

// Registry holds the codecs available for dispatch, keyed by format.
type Registry struct {
	codecs map[format.Format]Codec
}

// NewRegistry builds a registry from the given codecs.
func NewRegistry(codecs ...Codec) *Registry {
	r := &Registry{codecs: make(map[format.Format]Codec, len(codecs))}
	for _, c := range codecs {
		r.Register(c)
	}
	return r
}

// Register adds a codec, replacing any previous one for the same format.
func (r *Registry) Register(c Codec) {
	r.codecs[c.Format()] = c
}

// Lookup returns the codec registered for a format.
func (r *Registry) Lookup(f format.Format) (Codec, bool) {
	c, ok := r.codecs[f]
	return c, ok
}
