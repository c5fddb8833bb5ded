package utils

import "strings"

// StripFences removes markdown code fences from model output so the remainder
// can be parsed as JSON. Providers wrap structured replies in ```json fences
// despite instructions not to.
func StripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// Truncate returns at most n entries of list, preserving order.
func Truncate(list []string, n int) []string {
	if len(list) <= n {
		return list
	}
	return list[:n]
}

// ClampScore bounds a score to the inclusive [min, max] range.
func ClampScore(score, min, max int) int {
	if score < min {
		return min
	}
	if score > max {
		return max
	}
	return score
}
