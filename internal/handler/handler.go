package handler

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Entry is one row of a directory listing.
type Entry struct {
	Name  string
	Path  string
	IsDir bool
}

// FileHandler performs all disk access for a vault. Listings are read fresh
// on every call; the session caches file contents, not directory state.
type FileHandler struct {
	vaultDir string
}

func NewFileHandler(vaultDir string) *FileHandler {
	return &FileHandler{vaultDir: vaultDir}
}

func (h *FileHandler) VaultDir() string {
	return h.vaultDir
}

// ReadDir lists the entries of dir, directories first, each group sorted by
// name. Dotfiles are skipped.
func (h *FileHandler) ReadDir(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, de := range dirEntries {
		name := de.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		entries = append(entries, Entry{
			Name:  name,
			Path:  filepath.Join(dir, name),
			IsDir: de.IsDir(),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}

func (h *FileHandler) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (h *FileHandler) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

// WalkFiles returns every markdown file under the vault in walk order,
// skipping hidden directories. Used by the fuzzy open command.
func (h *FileHandler) WalkFiles() ([]string, error) {
	var files []string

	err := filepath.Walk(
		h.vaultDir,
		func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				if path != h.vaultDir && strings.HasPrefix(filepath.Base(path), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(path) == ".md" {
				files = append(files, path)
			}
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	return files, nil
}
