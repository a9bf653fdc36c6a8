// Package converr defines the error taxonomy for the conversion pipeline.
//
// Every failure is an *Error with a Kind; kinds are grouped into four
// categories (input, format, conversion, io), each with a stable process
// exit code so scripts can branch on the failure class.
package converr

import "errors"

// Category groups error kinds by failure class.
type Category int

const (
	CategoryInput Category = iota + 1
	CategoryFormat
	CategoryConversion
	CategoryIO
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryInput:
		return "input"
	case CategoryFormat:
		return "format"
	case CategoryConversion:
		return "conversion"
	case CategoryIO:
		return "io"
	}
	return "unknown"
}

// ExitCode returns the stable process exit code for the category.
func (c Category) ExitCode() int {
	switch c {
	case CategoryInput:
		return 2
	case CategoryFormat:
		return 3
	case CategoryConversion:
		return 4
	case CategoryIO:
		return 5
	}
	return 1
}

// Kind identifies a specific failure within a category.
type Kind int

const (
	KindMissingInputFile Kind = iota + 1
	KindMissingTargetFormat
	KindInvalidArgument
	KindUnsupportedInputFormat
	KindUnsupportedOutputFormat
	KindExecutionFailed
	KindOutputWriteFailed
	KindReadError
	KindWriteError
	KindAlreadyExists
	KindMissingParent
	KindPermissionDenied
)

// Category returns the fixed category a kind belongs to.
func (k Kind) Category() Category {
	switch k {
	case KindMissingInputFile, KindMissingTargetFormat, KindInvalidArgument:
		return CategoryInput
	case KindUnsupportedInputFormat, KindUnsupportedOutputFormat:
		return CategoryFormat
	case KindExecutionFailed, KindOutputWriteFailed:
		return CategoryConversion
	case KindReadError, KindWriteError, KindAlreadyExists, KindMissingParent, KindPermissionDenied:
		return CategoryIO
	}
	return 0
}

// Error is a categorized pipeline failure. It always carries the offending
// path or format detail so the caller can correct the request without
// re-running with extra diagnostics.
type Error struct {
	Kind   Kind
	Path   string // offending filesystem path, if any
	Detail string // offending format token, pair or argument, if any
	Err    error  // underlying cause, if any
}

func (e *Error) Error() string {
	msg := e.message()
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) message() string {
	switch e.Kind {
	case KindMissingInputFile:
		return "missing input file: " + e.Path
	case KindMissingTargetFormat:
		return "missing target format"
	case KindInvalidArgument:
		return "invalid argument: " + e.Detail
	case KindUnsupportedInputFormat:
		return "unsupported input format: " + e.Detail
	case KindUnsupportedOutputFormat:
		return "unsupported output format: " + e.Detail
	case KindExecutionFailed:
		return "execution failed: " + e.Path
	case KindOutputWriteFailed:
		return "output write failed: " + e.Path
	case KindReadError:
		return "read error: " + e.Path
	case KindWriteError:
		return "write error: " + e.Path
	case KindAlreadyExists:
		return "file already exists: " + e.Path
	case KindMissingParent:
		return "target directory not found: " + e.Path
	case KindPermissionDenied:
		return "permission denied: " + e.Path
	}
	return "unknown error"
}

// MissingInputFile reports an input path that does not name a regular file.
func MissingInputFile(path string) *Error {
	return &Error{Kind: KindMissingInputFile, Path: path}
}

// MissingTargetFormat reports a request without a target format.
func MissingTargetFormat() *Error {
	return &Error{Kind: KindMissingTargetFormat}
}

// InvalidArgument reports a malformed request argument.
func InvalidArgument(detail string) *Error {
	return &Error{Kind: KindInvalidArgument, Detail: detail}
}

// UnsupportedInput reports an unrecognized input extension. The detail is
// the offending extension, or a sentinel marker when the path has none.
func UnsupportedInput(ext string) *Error {
	return &Error{Kind: KindUnsupportedInputFormat, Detail: ext}
}

// UnsupportedTarget reports an unrecognized target-format token.
func UnsupportedTarget(token string) *Error {
	return &Error{Kind: KindUnsupportedOutputFormat, Detail: token}
}

// UnsupportedPair reports a conversion pair outside the supported policy,
// naming both formats.
func UnsupportedPair(in, out string) *Error {
	return &Error{Kind: KindUnsupportedOutputFormat, Detail: in + " to " + out}
}

// ExecutionFailed reports a codec decode failure for the input path.
func ExecutionFailed(path string, err error) *Error {
	return &Error{Kind: KindExecutionFailed, Path: path, Err: err}
}

// OutputWriteFailed reports a codec encode or write failure for the output path.
func OutputWriteFailed(path string, err error) *Error {
	return &Error{Kind: KindOutputWriteFailed, Path: path, Err: err}
}

// ReadError reports a filesystem-level read failure.
func ReadError(path string, err error) *Error {
	return &Error{Kind: KindReadError, Path: path, Err: err}
}

// WriteError reports a filesystem-level write failure.
func WriteError(path string, err error) *Error {
	return &Error{Kind: KindWriteError, Path: path, Err: err}
}

// AlreadyExists reports an output path that is already occupied.
func AlreadyExists(path string) *Error {
	return &Error{Kind: KindAlreadyExists, Path: path}
}

// MissingParent reports an output location whose directory chain is broken.
func MissingParent(path string) *Error {
	return &Error{Kind: KindMissingParent, Path: path}
}

// PermissionDenied reports a filesystem permission failure.
func PermissionDenied(path string, err error) *Error {
	return &Error{Kind: KindPermissionDenied, Path: path, Err: err}
}

// ExitCode maps an error to its process exit code: 0 for nil, the category
// code for taxonomy errors, 1 for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind.Category().ExitCode()
	}
	return 1
}
