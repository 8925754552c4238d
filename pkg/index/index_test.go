package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdejongh/dircmp/pkg/models"
)

func entry(path string, size int64) models.FileEntry {
	return models.FileEntry{Path: path, RelativePath: path, Size: size}
}

func TestBuild(t *testing.T) {
	idx := Build([]models.FileEntry{
		entry("a", 5),
		entry("b", 3),
		entry("c", 5),
		entry("empty1", 0),
		entry("empty2", 0),
	})

	assert.Equal(t, 5, idx.Len())
	assert.Equal(t, 3, idx.Buckets())
	assert.Equal(t, []string{"a", "c"}, idx.Lookup(5))
	assert.Equal(t, []string{"b"}, idx.Lookup(3))
	assert.Equal(t, []string{"empty1", "empty2"}, idx.Lookup(0))
	assert.Equal(t, []int64{0, 3, 5}, idx.Sizes())
}

func TestLookupAbsentSize(t *testing.T) {
	idx := Build([]models.FileEntry{entry("a", 1)})

	assert.Empty(t, idx.Lookup(42))
	assert.Empty(t, idx.Lookup(-1))

	// Querying must not create buckets
	assert.Equal(t, 1, idx.Buckets())
	assert.Equal(t, []int64{1}, idx.Sizes())
}

func TestBuildKeepsDuplicatePaths(t *testing.T) {
	idx := Build([]models.FileEntry{entry("dup", 7), entry("dup", 7)})

	assert.Equal(t, []string{"dup", "dup"}, idx.Lookup(7))
	assert.Equal(t, 2, idx.Len())
}

func TestBuildEmpty(t *testing.T) {
	idx := Build(nil)

	assert.Equal(t, 0, idx.Len())
	assert.Equal(t, 0, idx.Buckets())
	assert.Empty(t, idx.Sizes())
	assert.Empty(t, idx.Lookup(0))
}

func TestBuilderDetachesBuiltIndex(t *testing.T) {
	b := NewBuilder()
	b.Add(entry("first", 10))
	idx := b.Build()

	b.Add(entry("second", 10))
	later := b.Build()

	assert.Equal(t, []string{"first"}, idx.Lookup(10))
	assert.Equal(t, 1, idx.Len())
	assert.Equal(t, []string{"second"}, later.Lookup(10))
}

func TestUnionEqualsInput(t *testing.T) {
	input := []models.FileEntry{
		entry("x", 1), entry("y", 2), entry("z", 1), entry("w", 100),
	}
	idx := Build(input)

	var union []string
	for _, size := range idx.Sizes() {
		union = append(union, idx.Lookup(size)...)
	}
	assert.ElementsMatch(t, models.Paths(input), union)
}

func TestSortBySize(t *testing.T) {
	input := []models.FileEntry{
		entry("big", 300),
		entry("small-1", 10),
		entry("zero", 0),
		entry("small-2", 10),
		entry("mid", 50),
	}
	original := append([]models.FileEntry(nil), input...)

	sorted := SortBySize(input)
	require.Len(t, sorted, len(input))

	for i := 1; i < len(sorted); i++ {
		assert.LessOrEqual(t, sorted[i-1].Size, sorted[i].Size)
	}
	assert.Equal(t, "zero", sorted[0].Path)
	assert.Equal(t, "big", sorted[len(sorted)-1].Path)

	// Input is left untouched
	assert.Equal(t, original, input)
}

func TestSortBySizeIsDeterministic(t *testing.T) {
	input := []models.FileEntry{
		entry("c", 2), entry("a", 2), entry("b", 1), entry("d", 2),
	}

	first := SortBySize(input)
	second := SortBySize(input)
	assert.Equal(t, first, second)
}

func TestTotalSize(t *testing.T) {
	assert.EqualValues(t, 0, TotalSize(nil))
	assert.EqualValues(t, 15, TotalSize([]models.FileEntry{entry("a", 5), entry("b", 10)}))
}
