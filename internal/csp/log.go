package csp

import "github.com/fatih/color"

// Logger receives progress notifications from Solver. A nil Logger
// disables logging; DefaultLogger writes colorized lines the way the
// teacher's solver package does with fatih/color.
type Logger interface {
	Pass(n int)
	Found(pattern string, r, c, val int)
}

type colorLogger struct{}

// DefaultLogger logs solver progress to standard output (fatih/color's
// color.Output) with fatih/color, matching
// the teacher's printProgress/printFound convention.
var DefaultLogger Logger = colorLogger{}

func (colorLogger) Pass(n int) {
	color.HiYellow("CSP solver pass %d", n)
}

func (colorLogger) Found(pattern string, r, c, val int) {
	color.Green("%s: (%d,%d) = %d", pattern, r, c, val)
}
