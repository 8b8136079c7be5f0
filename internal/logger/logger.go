// Package logger provides tag-based console output for the craftcalc server.
package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
)

func colorize(color, s string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return s
	}
	return color + s + reset
}

func line(color, level, tag, msg string) {
	fmt.Printf("%s %s %s\n", colorize(color, level), colorize(bold, "["+tag+"]"), msg)
}

// Info prints an informational message with the given tag.
func Info(tag, msg string) {
	line(cyan, "·", tag, msg)
}

// Success prints a success message with the given tag.
func Success(tag, msg string) {
	line(green, "✓", tag, msg)
}

// Warn prints a warning message with the given tag.
func Warn(tag, msg string) {
	line(yellow, "!", tag, msg)
}

// Error prints an error message with the given tag.
func Error(tag, msg string) {
	line(red, "✗", tag, msg)
}

// Banner prints the startup banner with the build version.
func Banner(version string) {
	if version == "" {
		version = "dev"
	}
	fmt.Println(colorize(cyan, strings.Repeat("─", 46)))
	fmt.Printf("  %s %s\n", colorize(bold, "craftcalc"), colorize(dim, version))
	fmt.Println(colorize(cyan, strings.Repeat("─", 46)))
}

// Section prints a section header for grouped statistics.
func Section(title string) {
	fmt.Printf("\n%s\n", colorize(bold, title))
}

// Stats prints a single labeled statistic under a Section.
func Stats(label string, n int) {
	fmt.Printf("  %-16s %d\n", label, n)
}

// Server prints the listen address once the HTTP server is up.
func Server(addr string) {
	fmt.Printf("%s %s http://%s\n", colorize(green, "▸"), colorize(bold, "[Server]"), addr)
}
