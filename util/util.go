package util

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cgarz/WSMExtract/constants"
	"golang.org/x/exp/constraints"
)

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

// HasContainerExtension reports whether the name ends in the container
// extension. The check is case insensitive and, like the original tool,
// does not require a dot before the extension.
func HasContainerExtension(name string) bool {
	return strings.HasSuffix(strings.ToUpper(name), constants.FileExtension)
}

// GatherContainerPaths lists dir without recursing and returns the paths of
// entries whose names carry the container extension.
func GatherContainerPaths(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var res []string
	for _, entry := range entries {
		if HasContainerExtension(entry.Name()) {
			res = append(res, filepath.Join(dir, entry.Name()))
		}
	}
	return res, nil
}

// Basename returns the container's filename with its directory and
// extension stripped, for use as the output subdirectory name.
func Basename(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
