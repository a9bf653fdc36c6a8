package converr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindCategory(t *testing.T) {
	testCases := []struct {
		kind     Kind
		category Category
	}{
		{KindMissingInputFile, CategoryInput},
		{KindMissingTargetFormat, CategoryInput},
		{KindInvalidArgument, CategoryInput},
		{KindUnsupportedInputFormat, CategoryFormat},
		{KindUnsupportedOutputFormat, CategoryFormat},
		{KindExecutionFailed, CategoryConversion},
		{KindOutputWriteFailed, CategoryConversion},
		{KindReadError, CategoryIO},
		{KindWriteError, CategoryIO},
		{KindAlreadyExists, CategoryIO},
		{KindMissingParent, CategoryIO},
		{KindPermissionDenied, CategoryIO},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.category, tc.kind.Category())
	}
}

func TestCategoryExitCode(t *testing.T) {
	assert.Equal(t, 2, CategoryInput.ExitCode())
	assert.Equal(t, 3, CategoryFormat.ExitCode())
	assert.Equal(t, 4, CategoryConversion.ExitCode())
	assert.Equal(t, 5, CategoryIO.ExitCode())
}

func TestExitCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: 0},
		{name: "input error", err: MissingInputFile("a.png"), expected: 2},
		{name: "format error", err: UnsupportedInput("txt"), expected: 3},
		{name: "conversion error", err: ExecutionFailed("a.png", errors.New("boom")), expected: 4},
		{name: "io error", err: AlreadyExists("out.jpg"), expected: 5},
		{name: "wrapped taxonomy error", err: fmt.Errorf("outer: %w", MissingInputFile("a.png")), expected: 2},
		{name: "plain error", err: errors.New("boom"), expected: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExitCode(tc.err))
		})
	}
}

func TestErrorMessagesCarryDetail(t *testing.T) {
	assert.Contains(t, MissingInputFile("missing.png").Error(), "missing.png")
	assert.Contains(t, UnsupportedInput("txt").Error(), "txt")
	assert.Contains(t, UnsupportedPair("PNG", "PNG").Error(), "PNG to PNG")
	assert.Contains(t, AlreadyExists("out/result.png").Error(), "out/result.png")
	assert.Contains(t, MissingParent("out").Error(), "out")
	assert.Contains(t, InvalidArgument("bad flag").Error(), "bad flag")
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("disk on fire")
	err := OutputWriteFailed("out.jpg", cause)

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk on fire")
}
