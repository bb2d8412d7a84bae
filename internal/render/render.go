// Package render produces output from a completed session.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/opariy/bedtime-story-generator/internal/session"
)

// JSON produces a pretty-printed JSON representation of the session.
// The output round-trips through json.Unmarshal back to an equal Session.
func JSON(sess *session.Session) ([]byte, error) {
	if sess == nil {
		return nil, fmt.Errorf("render: nil session")
	}
	b, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render: json marshal: %w", err)
	}
	return b, nil
}

// Markdown produces a Markdown summary of the session: the final story,
// then a per-iteration score table. Every iteration recorded in the
// session appears in the output.
func Markdown(sess *session.Session) string {
	if sess == nil {
		return ""
	}
	var sb strings.Builder

	sb.WriteString("## Bedtime Story\n\n")
	fmt.Fprintf(&sb, "**Topic:** %s  \n", mdEscape(sess.Topic))
	fmt.Fprintf(&sb, "**Outcome:** %s  \n", sess.Outcome)
	fmt.Fprintf(&sb, "**Iterations:** %d | **Revisions:** %d\n\n", len(sess.Iterations), sess.Revisions())

	sb.WriteString(sess.Story)
	sb.WriteString("\n")

	for _, it := range sess.Iterations {
		fmt.Fprintf(&sb, "\n### Iteration %d — %s\n\n", it.N, it.Phase)
		if it.Unmatched > 0 {
			fmt.Fprintf(&sb, "%d block(s) of judge output could not be parsed and were ignored.\n\n", it.Unmatched)
		}
		if len(it.Entries) == 0 {
			sb.WriteString("No critique entries were parsed.\n")
			continue
		}
		sb.WriteString("| Category | Score | Reasoning |\n")
		sb.WriteString("|---|---|---|\n")
		for _, e := range it.Entries {
			fmt.Fprintf(&sb, "| %s | %d | %s |\n", mdEscape(e.Category), e.Score, mdEscape(e.Reasoning))
		}
	}

	return sb.String()
}

// mdEscape replaces characters that would break Markdown table cells.
func mdEscape(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", "")
	return s
}
