package storage

import (
	"path/filepath"
	"strings"
)

// shouldExclude checks if a path relative to the walked root matches any
// exclude pattern. Directories are passed with a trailing slash.
// Patterns support:
//   - Simple glob patterns: *.tmp, *.log
//   - Directory patterns: build/, node_modules/
//   - Path patterns: docs/*.md, **/cache
func shouldExclude(relativePath string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}

	// Normalize path separators for cross-platform support
	normalizedPath := filepath.ToSlash(relativePath)
	isDir := strings.HasSuffix(normalizedPath, "/")
	trimmedPath := strings.TrimSuffix(normalizedPath, "/")
	baseName := filepath.Base(trimmedPath)

	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}

		normalizedPattern := filepath.ToSlash(pattern)

		// Directory patterns only match directories
		if strings.HasSuffix(normalizedPattern, "/") {
			if !isDir {
				continue
			}
			dirPattern := strings.TrimSuffix(normalizedPattern, "/")
			if matchGlob(baseName, dirPattern) || matchGlob(trimmedPath, dirPattern) {
				return true
			}
			continue
		}

		// **/pattern matches pattern at any depth
		if suffix, ok := strings.CutPrefix(normalizedPattern, "**/"); ok {
			if matchGlob(baseName, suffix) || matchGlobSuffix(trimmedPath, suffix) {
				return true
			}
			continue
		}

		if strings.Contains(normalizedPattern, "/") {
			// Pattern applies to the full relative path
			if matchGlob(trimmedPath, normalizedPattern) {
				return true
			}
		} else if matchGlob(baseName, normalizedPattern) {
			// Pattern applies to basename only
			return true
		}
	}

	return false
}

// matchGlob performs glob matching, treating malformed patterns as non-matching
func matchGlob(name, pattern string) bool {
	matched, _ := filepath.Match(pattern, name)
	return matched
}

// matchGlobSuffix checks whether any trailing run of path components matches pattern
func matchGlobSuffix(path, pattern string) bool {
	parts := strings.Split(path, "/")
	for i := range parts {
		if matchGlob(strings.Join(parts[i:], "/"), pattern) {
			return true
		}
	}
	return false
}
