// Package common provides shared utilities for the UI.
package common

import "fmt"

// TruncateName truncates a player name to the specified maximum length.
func TruncateName(name string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(name)
	if len(runes) > maxLen {
		return string(runes[:maxLen-1]) + "…"
	}
	return name
}

// CountSets phrases the number of possible sets the way the help panel shows it.
func CountSets(n int) string {
	if n == 1 {
		return "There is 1 possible Set."
	}
	return fmt.Sprintf("There are %d possible Sets.", n)
}
