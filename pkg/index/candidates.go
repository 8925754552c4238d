package index

import (
	"sort"

	"github.com/sdejongh/dircmp/pkg/models"
)

// SortBySize returns a copy of entries ordered by ascending size.
// Entries of equal size keep their enumeration order.
func SortBySize(entries []models.FileEntry) []models.FileEntry {
	sorted := make([]models.FileEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Size < sorted[j].Size
	})
	return sorted
}

// TotalSize returns the sum of the entries' sizes
func TotalSize(entries []models.FileEntry) int64 {
	var total int64
	for _, e := range entries {
		total += e.Size
	}
	return total
}
