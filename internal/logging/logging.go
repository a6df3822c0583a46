package logger

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Logger gates informational output behind the CLI's verbose and debug
// flags. The zero value stays silent except for warnings and errors, which
// is what the pack pipeline receives when no command wires a logger up.
type Logger struct {
	Verbose bool
	Debug   bool
}

// Infof reports recovery progress, such as per-entry copy and decrypt
// notices. Printed only when verbose output is enabled.
func (l Logger) Infof(msg string, args ...any) {
	if l.Verbose {
		fmt.Fprintf(os.Stdout, color.GreenString("[info] ")+msg+"\n", args...)
	}
}

// Debugf reports pipeline internals, such as skipped entries and key store
// lookups. Printed only when debug output is enabled.
func (l Logger) Debugf(msg string, args ...any) {
	if l.Debug {
		fmt.Fprintf(os.Stdout, color.CyanString("[debug] ")+msg+"\n", args...)
	}
}

// Warnf reports recoverable oddities. Always printed, to stderr.
func (l Logger) Warnf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, color.YellowString("[warn] ")+msg+"\n", args...)
}

// Errorf reports failures. Always printed, to stderr.
func (l Logger) Errorf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, color.RedString("[error] ")+msg+"\n", args...)
}
