package output

import "github.com/fatih/color"

// Color helpers are pure (text, enabled) functions. The color values are
// force-enabled so the enabled flag alone decides, independent of whether
// stdout is a terminal; callers resolve terminal detection up front.
var (
	blue   = newColor(color.FgBlue, color.Bold)
	green  = newColor(color.FgGreen, color.Bold)
	gray   = newColor(color.FgWhite)
	red    = newColor(color.FgRed, color.Bold)
	yellow = newColor(color.FgYellow, color.Bold)
)

func newColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

func paint(c *color.Color, s string, enabled bool) string {
	if !enabled {
		return s
	}
	return c.Sprint(s)
}

// Blue paints s blue when enabled, returning it unchanged otherwise.
func Blue(s string, enabled bool) string { return paint(blue, s, enabled) }

// Green paints s green when enabled.
func Green(s string, enabled bool) string { return paint(green, s, enabled) }

// Gray paints s in the muted color when enabled.
func Gray(s string, enabled bool) string { return paint(gray, s, enabled) }

// Red paints s red when enabled.
func Red(s string, enabled bool) string { return paint(red, s, enabled) }

// Yellow paints s yellow when enabled.
func Yellow(s string, enabled bool) string { return paint(yellow, s, enabled) }
