package section

import (
	"strings"

	"github.com/cgarz/WSMExtract/util"
)

// Sections whose payload format dictates a fixed on-disk name. The IMG
// payload is a land data file, not an image.
var specialFilenames = map[string]func(basename string) string{
	"WAM ": func(b string) string { return b + ".WAM" },
	"IMG ": func(b string) string { return "LAND_" + b + ".DAT" },
}

// Filename returns the output filename for a section extracted from a
// container with the given basename. Sections without a special rule use
// the trimmed FourCC as the extension.
func Filename(basename, fourCC string) string {
	if special, ok := specialFilenames[fourCC]; ok {
		return special(basename)
	}
	return basename + "." + strings.TrimRight(fourCC, " ")
}

// Names returns the set's trimmed FourCCs in ascending order, for display.
func (s Set) Names() []string {
	names := util.SortedKeys(s)
	for i, n := range names {
		names[i] = strings.TrimRight(n, " ")
	}
	return names
}
