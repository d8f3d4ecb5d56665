// Package hints provides actionable error hints for common failure
// scenarios. Hints are formatted consistently as "\n  hint: <text>" for
// appending to error messages.
package hints

import "strings"

// ForNoFont suggests installable font families when export cannot find
// a usable TTF pair.
func ForNoFont(accepted []string) string {
	return format("install one of: " + strings.Join(accepted, ", "))
}

// ForAuthorMissing explains how to satisfy the author requirement.
func ForAuthorMissing() string {
	return format("fill in the Protokollführer field, or set authorName in the config")
}

// ForConfigParse points at the offending config file.
func ForConfigParse(path string) string {
	return format("fix or remove " + path)
}

// ForDialogPending explains why a second file operation was rejected.
func ForDialogPending() string {
	return format("finish or cancel the open file dialog first")
}

func format(hint string) string {
	return "\n  hint: " + hint
}
