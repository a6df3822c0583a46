// Package ui provides semantic terminal formatting for Packlift commands.
//
// Commands compose their final messages from these formatters rather than
// calling the color library directly, so that NO_COLOR and dumb terminals
// degrade to a readable plain-text rendering.
package ui
