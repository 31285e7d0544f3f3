package grading

import (
	"encoding/json"
	"regexp"
	"strings"

	"essaycoach/internal/model"
)

// scoreBlockRE locates the first brace-delimited span, non-greedy and
// newline-tolerant. It has no brace-nesting awareness: a nested or earlier
// unrelated brace group will cut the span short. Known limitation, kept
// because the prompt's score block is flat and the grading output carries no
// other braces. ExtractScores and SanitizeFeedback share this one definition
// of the span so they can never disagree about what the fragment is.
var scoreBlockRE = regexp.MustCompile(`(?s)\{.*?\}`)

// ExtractScores parses the embedded score block out of the full feedback
// text. Returns nil when no span exists or the span is not a valid JSON
// object of integer values; both are normal outcomes, not errors, and the
// feedback is still displayable without scores. Keys are passed through
// without validating them against the rubric categories.
func ExtractScores(text string) model.ScoreSet {
	loc := scoreBlockRE.FindStringIndex(text)
	if loc == nil {
		return nil
	}

	var scores model.ScoreSet
	if err := json.Unmarshal([]byte(text[loc[0]:loc[1]]), &scores); err != nil {
		return nil
	}
	// An empty block carries no scores; treat it as absent.
	if len(scores) == 0 {
		return nil
	}
	return scores
}

// SanitizeFeedback removes the first brace-delimited span (the same span
// ExtractScores parses) and trims surrounding whitespace, leaving the prose
// intact for display. Without a span the text is returned trimmed. Idempotent
// once the span is gone.
func SanitizeFeedback(text string) string {
	loc := scoreBlockRE.FindStringIndex(text)
	if loc == nil {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(text[:loc[0]] + text[loc[1]:])
}
