package pathutil

import (
	"path/filepath"
	"strings"
)

// NormalizePath converts Windows-style separators to the current platform's
// separator and cleans the resulting path. Buffer cache keys are produced
// through this so that two spellings of the same file share one buffer.
func NormalizePath(p string) string {
	if p == "" {
		return ""
	}

	replaced := strings.ReplaceAll(p, "\\", "/")
	return filepath.Clean(filepath.FromSlash(replaced))
}

// BufferKey returns the canonical cache key for a file path: absolute when
// possible, otherwise the cleaned input.
func BufferKey(p string) string {
	cleaned := NormalizePath(p)
	abs, err := filepath.Abs(cleaned)
	if err != nil {
		return cleaned
	}
	return abs
}

// VaultRelative returns the path to target relative to the vault directory.
// The returned path always uses forward slashes so tab titles and listings
// render the same on every platform.
func VaultRelative(vaultDir, target string) (string, error) {
	base := NormalizePath(vaultDir)
	cleanedTarget := NormalizePath(target)

	rel, err := filepath.Rel(base, cleanedTarget)
	if err != nil {
		return "", err
	}

	return filepath.ToSlash(rel), nil
}

// DisplayName returns the short label used for a path in the sidebar and
// listings: the base name, or the vault-relative path when the base would be
// ambiguous ("." for the vault root itself).
func DisplayName(vaultDir, target string) string {
	rel, err := VaultRelative(vaultDir, target)
	if err != nil || rel == "." || rel == "" {
		return filepath.Base(NormalizePath(target))
	}

	parts := strings.Split(rel, "/")
	return parts[len(parts)-1]
}
