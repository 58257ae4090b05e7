package util

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	errColor  = color.New(color.FgRed)
	saveColor = color.New(color.FgGreen)
)

// InfoPrintf prints normal progress output to stdout.
func InfoPrintf(format string, args ...any) {
	fmt.Printf(format, args...)
}

// SavedPrintf highlights a successful save line.
func SavedPrintf(format string, args ...any) {
	saveColor.Printf(format, args...)
}

// ErrorPrintf prints error messages to stderr.
func ErrorPrintf(format string, args ...any) {
	errColor.Fprintf(color.Error, format, args...)
}
