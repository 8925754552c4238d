package platform

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix path separators")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"src/", "src"},
		{"./src", "src"},
		{"/data//photos/", "/data/photos"},
		{"a/../b", "b"},
		{".", "."},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePath(tt.in))
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"Relative", "src", false},
		{"Absolute", "/tmp", false},
		{"Empty", "", true},
		{"Blank", "   ", true},
		{"NulByte", "a\x00b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if tt.wantErr {
				var pathErr *PathError
				assert.ErrorAs(t, err, &pathErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestIsUNCPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		assert.True(t, IsUNCPath(`\\server\share`))
	} else {
		assert.False(t, IsUNCPath(`\\server\share`))
	}
	assert.False(t, IsUNCPath("/tmp"))
}
