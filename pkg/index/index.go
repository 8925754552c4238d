// Package index groups the files of a tree by size so that only same-size
// files are ever byte-compared.
package index

import (
	"sort"

	"github.com/sdejongh/dircmp/pkg/models"
)

// SizeIndex maps a file size to the paths of every file of that size.
// It is read-only once built and safe for concurrent readers.
type SizeIndex struct {
	buckets map[int64][]string
	count   int
}

// Builder accumulates entries into a SizeIndex
type Builder struct {
	buckets map[int64][]string
	count   int
}

// NewBuilder creates an empty builder
func NewBuilder() *Builder {
	return &Builder{buckets: make(map[int64][]string)}
}

// Add appends the entry's path to the bucket of its size.
// Duplicate paths are kept.
func (b *Builder) Add(entry models.FileEntry) {
	b.buckets[entry.Size] = append(b.buckets[entry.Size], entry.Path)
	b.count++
}

// Build returns the index. The builder starts over afterwards, so later
// Adds never show up in an index already handed out.
func (b *Builder) Build() *SizeIndex {
	idx := &SizeIndex{buckets: b.buckets, count: b.count}
	b.buckets = make(map[int64][]string)
	b.count = 0
	return idx
}

// Build indexes a list of entries
func Build(entries []models.FileEntry) *SizeIndex {
	b := NewBuilder()
	for _, e := range entries {
		b.Add(e)
	}
	return b.Build()
}

// Lookup returns the paths of the given size in insertion order.
// An absent size yields an empty slice and leaves the index untouched.
func (idx *SizeIndex) Lookup(size int64) []string {
	return idx.buckets[size]
}

// Len returns the number of indexed paths
func (idx *SizeIndex) Len() int {
	return idx.count
}

// Buckets returns the number of distinct sizes
func (idx *SizeIndex) Buckets() int {
	return len(idx.buckets)
}

// Sizes returns the distinct sizes in ascending order
func (idx *SizeIndex) Sizes() []int64 {
	sizes := make([]int64, 0, len(idx.buckets))
	for size := range idx.buckets {
		sizes = append(sizes, size)
	}
	sort.Slice(sizes, func(i, j int) bool { return sizes[i] < sizes[j] })
	return sizes
}
