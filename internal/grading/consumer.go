package grading

import (
	"fmt"
	"strings"

	"essaycoach/internal/llm"
)

// Sink receives feedback fragments in arrival order, each forwarded before
// the next fragment is read.
type Sink func(fragment string)

// braceless keeps error text out of the score extractor's way: the marker
// must stay brace-free so extraction returns absent and sanitization passes
// the text through unchanged.
var braceless = strings.NewReplacer("{", "(", "}", ")")

// ErrorMarker formats a generation failure as a displayable feedback
// fragment.
func ErrorMarker(err error) string {
	return braceless.Replace(fmt.Sprintf("（批改服務發生錯誤：%v，請稍後再試）", err))
}

// Consume drains a fragment stream into the full feedback text. Text
// fragments are appended to the accumulator and forwarded to the sink in
// arrival order. A mid-stream failure is not raised: it is appended and
// forwarded as an inline error marker, and the interaction completes in a
// degraded state. Returns the final accumulated text.
func Consume(fragments <-chan llm.Fragment, sink Sink) string {
	var buf strings.Builder
	for f := range fragments {
		switch {
		case f.Err != nil:
			marker := ErrorMarker(f.Err)
			buf.WriteString(marker)
			if sink != nil {
				sink(marker)
			}
			return buf.String()
		case f.Done:
			return buf.String()
		case f.Text != "":
			buf.WriteString(f.Text)
			if sink != nil {
				sink(f.Text)
			}
		}
	}
	return buf.String()
}
