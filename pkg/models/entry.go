package models

// FileEntry represents a regular file discovered while walking a tree
type FileEntry struct {
	// Path is the enumerated root joined with RelativePath
	Path string `json:"path"`

	// RelativePath is the path relative to the enumerated root
	RelativePath string `json:"relative_path"`

	// Size in bytes
	Size int64 `json:"size"`
}

// Paths returns the Path of every entry, preserving order
func Paths(entries []FileEntry) []string {
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		paths = append(paths, e.Path)
	}
	return paths
}
