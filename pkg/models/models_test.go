package models

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============== FileEntry Tests ==============

func TestPaths(t *testing.T) {
	entries := []FileEntry{
		{Path: "/src/b", RelativePath: "b", Size: 2},
		{Path: "/src/a", RelativePath: "a", Size: 1},
	}
	assert.Equal(t, []string{"/src/b", "/src/a"}, Paths(entries))
	assert.Empty(t, Paths(nil))
}

// ============== Operation Tests ==============

func validOperation() *Operation {
	return &Operation{
		ID:           "op",
		SourcePath:   "/src",
		TargetPath:   "/dst",
		HiddenMarker: DefaultHiddenMarker,
		BufferSize:   65536,
	}
}

func TestOperationValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(op *Operation)
		field  string
	}{
		{"Valid", func(op *Operation) {}, ""},
		{"MissingSource", func(op *Operation) { op.SourcePath = "" }, "SourcePath"},
		{"MissingTarget", func(op *Operation) { op.TargetPath = "" }, "TargetPath"},
		{"EmptyMarker", func(op *Operation) { op.HiddenMarker = "" }, "HiddenMarker"},
		{"LongMarker", func(op *Operation) { op.HiddenMarker = ".." }, "HiddenMarker"},
		{"UnicodeMarker", func(op *Operation) { op.HiddenMarker = "§" }, ""},
		{"SmallBuffer", func(op *Operation) { op.BufferSize = 512 }, "BufferSize"},
		{"BufferJustBelowMinimum", func(op *Operation) { op.BufferSize = 2048 }, "BufferSize"},
		{"MinimumBuffer", func(op *Operation) { op.BufferSize = MinBufferSize }, ""},
		{"NegativeBandwidth", func(op *Operation) { op.BandwidthLimit = -1 }, "BandwidthLimit"},
		{"ValidExclude", func(op *Operation) { op.Exclude = []string{"*.tmp", "build/"} }, ""},
		{"BadExclude", func(op *Operation) { op.Exclude = []string{"[oops"} }, "Exclude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := validOperation()
			tt.modify(op)

			err := op.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

// ============== Error Tests ==============

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{NewError(KindInvalidDirectory, "/nope", nil), "invalid directory path: /nope"},
		{NewError(KindInvalidDirectory, "/nope", os.ErrNotExist), "invalid directory path: /nope: file does not exist"},
		{NewError(KindEnumeration, "/src/locked", os.ErrPermission), "failed to scan: /src/locked: permission denied"},
		{NewError(KindComparison, "/dst/f", os.ErrPermission), "failed to compare: /dst/f: permission denied"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorIs(t *testing.T) {
	err := fmt.Errorf("run: %w", NewError(KindComparison, "/dst/f", os.ErrPermission))

	assert.True(t, errors.Is(err, ErrComparison))
	assert.False(t, errors.Is(err, ErrEnumeration))
	assert.False(t, errors.Is(err, ErrInvalidDirectory))
	assert.True(t, errors.Is(err, os.ErrPermission))

	var typed *Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, "/dst/f", typed.Path)
	assert.Equal(t, KindComparison, typed.Kind)
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "BufferSize", Message: "too small"}
	assert.Equal(t, "BufferSize: too small", err.Error())
}
