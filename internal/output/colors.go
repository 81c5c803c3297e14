package output

import (
	"github.com/fatih/color"
)

// ColorScheme defines the colors used for the different elements of the
// stats display.
type ColorScheme struct {
	Label      *color.Color
	Value      *color.Color
	Throughput *color.Color
	Latency    *color.Color
	Warning    *color.Color
}

// DefaultColorScheme returns the default color scheme.
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Label:      color.New(color.FgCyan),
		Value:      color.New(color.FgWhite, color.Bold),
		Throughput: color.New(color.FgGreen, color.Bold),
		Latency:    color.New(color.FgYellow),
		Warning:    color.New(color.FgRed, color.Bold),
	}
}

// NoColorScheme returns a color scheme with all colors disabled.
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()

	scheme.Label.DisableColor()
	scheme.Value.DisableColor()
	scheme.Throughput.DisableColor()
	scheme.Latency.DisableColor()
	scheme.Warning.DisableColor()

	return scheme
}
