package bot

import (
	"fmt"
	"strconv"
	"strings"
)

// Normalize canonicalizes raw inbound text: lowercase, trimmed, stripped of
// the option emoji and trailing punctuation the menus themselves use, so
// "2️⃣ Soms!" and "soms" dispatch identically.
func Normalize(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = strings.Trim(s, ".!?,")
	for _, emoji := range menuEmoji {
		s = strings.ReplaceAll(s, emoji, "")
	}
	// Keycap digits ("1️⃣") reduce to the plain digit once the combining
	// marks are removed.
	s = strings.ReplaceAll(s, "️⃣", "")
	return strings.TrimSpace(s)
}

var menuEmoji = []string{
	"✅", "❌", "🤔", "📋", "🔍", "📍", "🛑", "👍", "👎", "💪", "😊", "🧾",
	"🚗", "🍽", "🧹", "🛁", "💊", "❤️", "📅",
}

// IsStop reports whether the input is the global escape command: honored in
// every state, always returns the session to the menu.
func IsStop(input string) bool {
	switch Normalize(input) {
	case "stop", "0", "terug", "menu":
		return true
	}
	return false
}

// normalizeFree trims free-text input (names, relations) without lowercasing.
func normalizeFree(input string) string {
	return strings.TrimSpace(input)
}

// parseMenuNumber parses a single numbered menu choice.
func parseMenuNumber(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("geen geldig nummer: %q", input)
	}
	return n, nil
}

// parseTaskSelection parses a comma- or space-separated list of 1-based task
// numbers ("1,3") into unique 0-based indices, preserving input order. Any
// token outside [1, max] invalidates the whole selection so the user gets one
// clear re-prompt instead of a partial pick.
func parseTaskSelection(input string, max int) ([]int, bool) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == ';'
	})
	if len(fields) == 0 {
		return nil, false
	}

	seen := make(map[int]bool, len(fields))
	indices := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 || n > max {
			return nil, false
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		indices = append(indices, n-1)
	}
	return indices, true
}

// NormalizeAnswer maps a reply to a canonical ja/soms/nee value. Numeric menu
// shortcuts and English synonyms are accepted.
func NormalizeAnswer(input string) (string, bool) {
	switch Normalize(input) {
	case "1", "ja", "yes", "y", "jazeker", "zeker":
		return "ja", true
	case "2", "soms", "sometimes", "af en toe":
		return "soms", true
	case "3", "nee", "no", "n", "nooit":
		return "nee", true
	}
	return "", false
}
