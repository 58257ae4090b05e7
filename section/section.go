package section

import (
	"fmt"
	"strings"

	"github.com/cgarz/WSMExtract/constants"
)

// Set is a duplicate-free selection of section FourCCs.
type Set map[string]struct{}

func (s Set) Contains(fourCC string) bool {
	_, ok := s[fourCC]
	return ok
}

// All returns a Set holding every known section.
func All() Set {
	set := make(Set, len(constants.FileSections))
	for _, fourCC := range constants.FileSections {
		set[fourCC] = struct{}{}
	}
	return set
}

// Known reports whether fourCC is a member of the valid section set.
// The comparison is case sensitive and includes padding spaces.
func Known(fourCC string) bool {
	for _, s := range constants.FileSections {
		if s == fourCC {
			return true
		}
	}
	return false
}

// Validate parses a comma separated selection list. Each candidate is
// trimmed of surrounding whitespace and right padded with spaces to 4
// characters before being checked against the known section set. The first
// unknown candidate fails the whole selection.
func Validate(list string) (Set, error) {
	set := make(Set)
	for _, candidate := range strings.Split(list, ",") {
		padded := pad(strings.TrimSpace(candidate))
		if !Known(padded) {
			return nil, fmt.Errorf("%q is not a valid %s FourCC/section", padded, constants.FileExtension)
		}
		set[padded] = struct{}{}
	}
	return set, nil
}

func pad(s string) string {
	for len(s) < constants.FourCCSize {
		s += " "
	}
	return s
}
