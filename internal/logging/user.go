package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// User-facing output functions with coloured status prefixes.
// edawatch reserves stdout for JSON, so every user message goes to
// userOut (stderr unless Setup was given another writer).

var userOut io.Writer = os.Stderr

var (
	infoPrefix    = color.New(color.FgCyan).Sprint("ℹ")
	successPrefix = color.New(color.FgGreen).Sprint("✓")
	warningPrefix = color.New(color.FgYellow).Sprint("⚠")
)

// UserInfo prints an info message.
func UserInfo(format string, args ...interface{}) {
	fmt.Fprintf(userOut, infoPrefix+" "+format+"\n", args...)
}

// UserSuccess prints a success message.
func UserSuccess(format string, args ...interface{}) {
	fmt.Fprintf(userOut, successPrefix+" "+format+"\n", args...)
}

// UserWarning prints a warning message.
func UserWarning(format string, args ...interface{}) {
	fmt.Fprintf(userOut, warningPrefix+" "+format+"\n", args...)
}
