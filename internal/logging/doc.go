// Package logger provides leveled, color-coded logging for Packlift.
//
// Info output is gated behind the verbose flag and debug output behind the
// debug flag; warnings and errors always print to stderr. The zero value is
// a quiet logger, which is what the library core receives when no caller
// wires one up.
package logger
