package service

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	articlesRe   = regexp.MustCompile(`\b(?:the|a|an)\s`)
	copulasRe    = regexp.MustCompile(`\b(?:is|are|was|were)\b`)
)

const trailingPunctuation = ".,!?;:"

// CacheKey derives a stable key from raw question text. Questions differing
// only in whitespace, casing, trailing punctuation, leading articles or the
// copulas is/are/was/were collapse to the same key. Content-addressed, not
// reversible, and not collision-free.
func CacheKey(question string) string {
	normalized := strings.ToLower(question)
	normalized = strings.TrimSpace(normalized)
	normalized = whitespaceRe.ReplaceAllString(normalized, " ")

	if len(normalized) > 0 && strings.ContainsRune(trailingPunctuation, rune(normalized[len(normalized)-1])) {
		normalized = normalized[:len(normalized)-1]
	}

	normalized = articlesRe.ReplaceAllString(normalized, "")
	normalized = copulasRe.ReplaceAllString(normalized, "")
	normalized = whitespaceRe.ReplaceAllString(normalized, " ")
	normalized = strings.TrimSpace(normalized)

	digest := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(digest[:])
}
