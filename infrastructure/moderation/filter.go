package moderation

import (
	"os"
	"strings"

	"clipstream/infrastructure/logger"
)

// Filter is an immutable deny-list of substrings. It is loaded once at
// process start and never mutated afterwards.
type Filter struct {
	words []string
}

// NewFilter lowercases and keeps the non-empty entries.
func NewFilter(words []string) *Filter {
	kept := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(strings.ToLower(w))
		if w != "" {
			kept = append(kept, w)
		}
	}
	return &Filter{words: kept}
}

// NewFilterFromFile loads one deny-list entry per line. A missing file
// yields an empty filter that matches nothing.
func NewFilterFromFile(path string) *Filter {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.GetLogger().WithField("path", path).WithField("error", err).Warn("Blacklist file not readable - moderation filter is empty")
		return NewFilter(nil)
	}
	lines := strings.Split(strings.ReplaceAll(string(data), "\r", ""), "\n")
	return NewFilter(lines)
}

// HasBadWords reports whether text contains any deny-list entry,
// case-insensitively. An empty filter never matches.
func (f *Filter) HasBadWords(text string) bool {
	lowered := strings.ToLower(text)
	for _, w := range f.words {
		if strings.Contains(lowered, w) {
			return true
		}
	}
	return false
}
