package blog

import "strings"

const wordsPerMinute = 200

// ReadTime estimates reading minutes at 200 words per minute, never less
// than one.
func ReadTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
