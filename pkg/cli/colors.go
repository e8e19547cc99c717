package cli

import (
	"strings"

	"github.com/fatih/color"
)

// ColorMode controls when diagnostic codes are colorized.
type ColorMode string

const (
	// ColorAuto colorizes only when the output is a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways colorizes unconditionally.
	ColorAlways ColorMode = "always"
	// ColorNever disables colorization.
	ColorNever ColorMode = "never"
)

// Painter colorizes diagnostic codes for terminal output: error codes red,
// warning codes yellow. In auto mode the underlying color library's terminal
// detection (and NO_COLOR) decides.
type Painter struct {
	errorCode *color.Color
	warnCode  *color.Color
}

// NewPainter creates a Painter for the given mode.
func NewPainter(mode ColorMode) *Painter {
	p := &Painter{
		errorCode: color.New(color.FgRed, color.Bold),
		warnCode:  color.New(color.FgYellow),
	}
	switch mode {
	case ColorAlways:
		p.errorCode.EnableColor()
		p.warnCode.EnableColor()
	case ColorNever:
		p.errorCode.DisableColor()
		p.warnCode.DisableColor()
	}
	return p
}

// Code returns the diagnostic code with severity coloring applied. Codes
// starting with "E" are errors, "W" warnings; anything else passes through
// unchanged.
func (p *Painter) Code(code string) string {
	switch {
	case strings.HasPrefix(code, "E"):
		return p.errorCode.Sprint(code)
	case strings.HasPrefix(code, "W"):
		return p.warnCode.Sprint(code)
	default:
		return code
	}
}
