package generator

import (
	"path"
	"strconv"
	"strings"
)

// DefaultFilePattern is the destination layout for one day's document. The
// `{day}` placeholder expands to the day number.
const DefaultFilePattern = "day-{day}/practice/interview-questions.md"

const dayPlaceholder = "{day}"

// documentPath expands the file pattern for a day into a slash-separated
// relative path.
func documentPath(pattern string, day int) string {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		pattern = DefaultFilePattern
	}
	expanded := strings.ReplaceAll(pattern, dayPlaceholder, strconv.Itoa(day))
	return strings.TrimLeft(path.Clean(expanded), "/")
}

// joinOutputPath prefixes a relative path with the configured output
// directory, if any.
func joinOutputPath(base string, rel string) string {
	if strings.TrimSpace(base) == "" {
		return strings.TrimLeft(rel, "/")
	}
	return path.Join(strings.Trim(base, "/"), rel)
}
