// Package format models the supported image formats and the conversion
// pair policy.
package format

import (
	"path/filepath"
	"strings"

	"github.com/imgforge/imgforge/internal/converr"
)

// Format is a closed enumeration of supported image encodings.
type Format int

const (
	PNG Format = iota + 1
	JPEG
)

// NoExtension is the detail reported when a path has no extension at all.
const NoExtension = "<no extension>"

func (f Format) String() string {
	switch f {
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	}
	return "unknown"
}

// Extension returns the canonical file extension for the format, without
// the leading dot.
func (f Format) Extension() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpg"
	}
	return ""
}

// FromPath detects a file's format from its extension, case-insensitively.
// Detection is pure: it never touches the filesystem, so calling it twice
// on the same path yields the same result.
func FromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return 0, converr.UnsupportedInput(NoExtension)
	}
	switch ext {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	}
	return 0, converr.UnsupportedInput(ext)
}

// FromToken parses a target-format token as accepted on the command line.
func FromToken(token string) (Format, bool) {
	switch strings.ToLower(token) {
	case "png":
		return PNG, true
	case "jpg", "jpeg":
		return JPEG, true
	}
	return 0, false
}

// CanConvert reports whether converting from in to out is supported.
// Only cross-format pairs are allowed: same-format requests are rejected
// by policy, since the tool exists for cross-format conversion only.
func CanConvert(in, out Format) bool {
	return (in == PNG && out == JPEG) || (in == JPEG && out == PNG)
}
