// Package utils provides small filesystem and formatting helpers used
// across Packlift.
package utils
