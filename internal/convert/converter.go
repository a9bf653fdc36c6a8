// Package convert orchestrates a single conversion: validate the job,
// resolve the output location, and dispatch to the codec layer.
package convert

import (
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/wb-go/wbf/zlog"

	"github.com/imgforge/imgforge/internal/codec"
	"github.com/imgforge/imgforge/internal/converr"
	"github.com/imgforge/imgforge/internal/format"
	"github.com/imgforge/imgforge/internal/model"
	"github.com/imgforge/imgforge/internal/validate"
)

// storage defines the file backend the converter reads inputs from and
// writes outputs to.
type storage interface {
	Open(path string) (io.ReadCloser, error)
	Create(path string) (io.WriteCloser, error)
	Remove(path string) error
}

// Converter executes validated conversion jobs through a codec registry.
type Converter struct {
	codecs  *codec.Registry
	storage storage
}

// New creates a Converter with the given codec registry and storage backend.
func New(codecs *codec.Registry, st storage) *Converter {
	return &Converter{codecs: codecs, storage: st}
}

// Convert runs one job and returns the final output path.
//
// The codec is never invoked unless validation fully succeeded. The input
// format is detected again after validation: detection is cheap and
// idempotent, and repeating it keeps the dispatch authoritative even if
// the filesystem changed in between (the file content itself is still
// subject to that race).
func (c *Converter) Convert(job model.Job) (string, error) {
	if err := validate.Job(job); err != nil {
		return "", err
	}

	out := resolveOutputPath(job)
	zlog.Logger.Debug().
		Str("job_id", job.ID.String()).
		Str("input", job.Input).
		Str("output", out).
		Str("target", job.Target.String()).
		Msg("job validated, output resolved")

	in, err := format.FromPath(job.Input)
	if err != nil {
		return "", err
	}
	if !format.CanConvert(in, job.Target) {
		return "", converr.UnsupportedPair(in.String(), job.Target.String())
	}

	// Unreachable after validation unless the registry is incomplete;
	// still reported as a format error rather than panicking.
	dec, ok := c.codecs.Lookup(in)
	if !ok {
		return "", converr.UnsupportedPair(in.String(), job.Target.String())
	}
	enc, ok := c.codecs.Lookup(job.Target)
	if !ok {
		return "", converr.UnsupportedPair(in.String(), job.Target.String())
	}

	src, err := c.storage.Open(job.Input)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return "", converr.PermissionDenied(job.Input, err)
		}
		return "", converr.ReadError(job.Input, err)
	}
	defer src.Close()

	img, err := dec.Decode(src)
	if err != nil {
		return "", converr.ExecutionFailed(job.Input, err)
	}

	dst, err := c.storage.Create(out)
	if err != nil {
		return "", categorizeCreate(out, err)
	}

	if err := enc.Encode(dst, img); err != nil {
		_ = dst.Close()
		// Best effort: do not leave a partial output behind. The encode
		// error itself is still what the caller sees.
		_ = c.storage.Remove(out)
		return "", converr.OutputWriteFailed(out, err)
	}
	if err := dst.Close(); err != nil {
		_ = c.storage.Remove(out)
		return "", converr.OutputWriteFailed(out, err)
	}

	zlog.Logger.Debug().
		Str("job_id", job.ID.String()).
		Str("output", out).
		Msg("conversion complete")

	return out, nil
}

// resolveOutputPath picks the caller-supplied output path, or derives one
// from the input by substituting the target's canonical extension.
func resolveOutputPath(job model.Job) string {
	if job.Output != "" {
		return job.Output
	}
	return strings.TrimSuffix(job.Input, filepath.Ext(job.Input)) + "." + job.Target.Extension()
}

// categorizeCreate maps an output-creation failure to the most specific
// io error: occupied path, permission, broken directory chain, or a
// generic write error.
func categorizeCreate(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrExist):
		return converr.AlreadyExists(path)
	case errors.Is(err, fs.ErrPermission):
		return converr.PermissionDenied(path, err)
	case errors.Is(err, fs.ErrNotExist):
		return converr.MissingParent(filepath.Dir(path))
	default:
		return converr.WriteError(path, err)
	}
}
