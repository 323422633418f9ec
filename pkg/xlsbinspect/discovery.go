package xlsbinspect

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// lockFilePrefix marks owner files left by office suites next to open workbooks.
const lockFilePrefix = "~$"

// Discover lists files in dir whose extension matches ext, case-insensitively,
// sorted by name. A missing directory yields no files.
func Discover(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	ext = normalizeExt(ext)
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, lockFilePrefix) {
			continue
		}
		if strings.EqualFold(filepath.Ext(name), ext) {
			files = append(files, filepath.Join(dir, name))
		}
	}

	sort.Strings(files)
	return files, nil
}

// FileKey returns the ResultSet key for a path: its base name in NFC form.
func FileKey(path string) string {
	return norm.NFC.String(filepath.Base(path))
}

func normalizeExt(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
