// Package validate runs the pre-conversion checks on a job.
//
// Checks run in a fixed order and fail fast on the first violation:
// input existence, input readability, input format detection, pair
// compatibility, and output location (only when an explicit output path
// is set).
//
// The output-location check probes directory writability by creating and
// immediately removing a marker file, so validation has a transient
// filesystem side effect. The checks and the converter's later write are
// not atomic with respect to each other; that check-then-act race is
// accepted for a single-user CLI.
package validate

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/imgforge/imgforge/internal/converr"
	"github.com/imgforge/imgforge/internal/format"
	"github.com/imgforge/imgforge/internal/model"
)

const probePrefix = ".imgforge-probe-"

type checkFunc func(job model.Job) error

// checks is the ordered list the validator runs. Each entry is
// independent so it can be exercised in isolation.
var checks = []checkFunc{
	checkInputExists,
	checkInputReadable,
	checkInputFormat,
	checkPairSupported,
	checkOutputLocation,
}

// Job validates a conversion request, returning nil or the first
// categorized violation.
func Job(job model.Job) error {
	for _, check := range checks {
		if err := check(job); err != nil {
			return err
		}
	}
	return nil
}

// checkInputExists requires the input path to name a regular file.
func checkInputExists(job model.Job) error {
	info, err := os.Stat(job.Input)
	if err != nil || !info.Mode().IsRegular() {
		return converr.MissingInputFile(job.Input)
	}
	return nil
}

// checkInputReadable requires the input file to be openable for reading,
// distinguishing permission failures from other read failures.
func checkInputReadable(job model.Job) error {
	f, err := os.Open(job.Input)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return converr.PermissionDenied(job.Input, err)
		}
		return converr.ReadError(job.Input, err)
	}
	_ = f.Close()
	return nil
}

// checkInputFormat requires the input extension to map to a supported format.
func checkInputFormat(job model.Job) error {
	_, err := format.FromPath(job.Input)
	return err
}

// checkPairSupported requires the detected input format and requested
// target to form a supported conversion pair.
func checkPairSupported(job model.Job) error {
	in, err := format.FromPath(job.Input)
	if err != nil {
		return err
	}
	if !format.CanConvert(in, job.Target) {
		return converr.UnsupportedPair(in.String(), job.Target.String())
	}
	return nil
}

// checkOutputLocation applies only when the caller supplied an explicit
// output path: it must not exist yet, and the nearest existing ancestor
// of its parent directory must be a writable directory. Missing
// intermediate directories are allowed; the converter creates them.
func checkOutputLocation(job model.Job) error {
	if job.Output == "" {
		return nil
	}
	if _, err := os.Stat(job.Output); err == nil {
		return converr.AlreadyExists(job.Output)
	}

	dir, err := nearestExistingDir(filepath.Dir(job.Output))
	if err != nil {
		return err
	}
	return probeWritable(dir)
}

// nearestExistingDir walks up from dir to the closest ancestor that
// exists. An ancestor that exists but is not a directory breaks the
// chain and cannot be created over.
func nearestExistingDir(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	for {
		info, err := os.Stat(dir)
		if err == nil {
			if !info.IsDir() {
				return "", converr.MissingParent(dir)
			}
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", converr.MissingParent(dir)
		}
		dir = parent
	}
}

// probeWritable creates and immediately removes a uniquely named marker
// file in dir to verify the directory is writable.
func probeWritable(dir string) error {
	probe := filepath.Join(dir, probePrefix+uuid.NewString())
	f, err := os.OpenFile(probe, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return converr.PermissionDenied(dir, err)
	}
	_ = f.Close()
	_ = os.Remove(probe)
	return nil
}
