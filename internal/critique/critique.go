// Package critique turns raw judge output into a structured critique.
//
// The judge is asked for a precise plain-text format but does not reliably
// produce it, so parsing is format-driven rather than schema-driven: the
// parser recognizes the two shapes the judge actually emits and never
// consults the rubric catalog. Category labels are kept exactly as they
// appeared; downstream consumers must tolerate label drift.
package critique

import (
	"fmt"
	"regexp"
	"strings"
)

// Score bounds. Scores are ordinal; MaxScore is the best.
const (
	MinScore = 1
	MaxScore = 4
)

// Entry is a single parsed judgment: one category, one score, and the
// judge's free-form reasoning (possibly empty). Entries are never mutated
// after creation.
type Entry struct {
	Category  string
	Score     int
	Reasoning string
}

// Issue renders the entry in the wire shape the reviser consumes.
func (e Entry) Issue() string {
	return fmt.Sprintf("%s: score %d because %s", e.Category, e.Score, e.Reasoning)
}

// Set is an ordered mapping from category label to Entry. Iteration order
// is the order of first appearance in the raw text. When the same label
// appears more than once, the last occurrence's entry wins but keeps the
// first occurrence's position.
type Set struct {
	order   []string
	entries map[string]Entry
}

func (s *Set) add(e Entry) {
	if s.entries == nil {
		s.entries = make(map[string]Entry)
	}
	if _, dup := s.entries[e.Category]; !dup {
		s.order = append(s.order, e.Category)
	}
	s.entries[e.Category] = e
}

// Len returns the number of distinct categories in the set.
func (s *Set) Len() int {
	return len(s.order)
}

// Get returns the entry for the given category label, if present.
func (s *Set) Get(category string) (Entry, bool) {
	e, ok := s.entries[category]
	return e, ok
}

// Entries returns all entries in iteration order.
func (s *Set) Entries() []Entry {
	out := make([]Entry, 0, len(s.order))
	for _, cat := range s.order {
		out = append(out, s.entries[cat])
	}
	return out
}

// Below returns, in iteration order, every entry whose score is less
// than the given threshold.
func (s *Set) Below(score int) []Entry {
	var out []Entry
	for _, cat := range s.order {
		if e := s.entries[cat]; e.Score < score {
			out = append(out, e)
		}
	}
	return out
}

// Issues joins the wire lines for every sub-max entry, one per line,
// in iteration order. Empty when every entry scores MaxScore.
func (s *Set) Issues() string {
	low := s.Below(MaxScore)
	lines := make([]string, len(low))
	for i, e := range low {
		lines[i] = e.Issue()
	}
	return strings.Join(lines, "\n")
}

// Result is the outcome of parsing one block of judge output. Unmatched
// holds the raw blocks that matched neither shape, so that dropped entries
// are observable rather than silently vanishing. Dropped blocks do not
// affect convergence: a category the parser fails to capture is treated
// as passing downstream.
type Result struct {
	Set       Set
	Unmatched []string
}

var (
	// blockSplitRe separates entries on one or more blank lines.
	blockSplitRe = regexp.MustCompile(`\n\s*\n`)

	// inlineRe matches shape A after internal newlines are collapsed:
	// "Category Name (4): reasoning...". The category is the non-greedy
	// prefix before the parenthesized score; the reasoning capture is
	// greedy to the end of the block, so a colon inside the reasoning
	// never truncates it.
	inlineRe = regexp.MustCompile(`^(.+?)\s*\(\s*([1-4])\s*\)\s*[:\-–]*\s*(.+)$`)

	// headRe matches the first line of shape B: "Category Name: 3",
	// trailing whitespace tolerated, nothing else on the line.
	headRe = regexp.MustCompile(`^(.+?):\s*([1-4])\s*$`)

	// reasonRe matches a justification line inside a shape B block.
	reasonRe = regexp.MustCompile(`(?i)^(?:Justification|Reasoning):\s*(.+)$`)
)

// Parse converts raw judge text into a Result. It is a pure function of
// its input: identical input always yields identical output. Parse never
// fails; malformed blocks land in Result.Unmatched and empty input yields
// an empty set.
func Parse(text string) Result {
	var res Result

	for _, block := range blockSplitRe.Split(strings.TrimSpace(text), -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		// Shape A: collapse internal newlines and try the inline form.
		flat := strings.ReplaceAll(block, "\n", " ")
		if m := inlineRe.FindStringSubmatch(flat); m != nil {
			res.Set.add(Entry{
				Category:  strings.TrimSpace(m[1]),
				Score:     int(m[2][0] - '0'),
				Reasoning: strings.TrimSpace(m[3]),
			})
			continue
		}

		// Shape B: "category: score" on the first non-blank line, with an
		// optional Justification/Reasoning line further down. A missing
		// justification still records the score, with empty reasoning.
		var lines []string
		for _, l := range strings.Split(block, "\n") {
			if l = strings.TrimSpace(l); l != "" {
				lines = append(lines, l)
			}
		}
		if m := headRe.FindStringSubmatch(lines[0]); m != nil {
			reason := ""
			for _, l := range lines[1:] {
				if jm := reasonRe.FindStringSubmatch(l); jm != nil {
					reason = strings.TrimSpace(jm[1])
					break
				}
			}
			res.Set.add(Entry{
				Category:  strings.TrimSpace(m[1]),
				Score:     int(m[2][0] - '0'),
				Reasoning: reason,
			})
			continue
		}

		// Neither shape. Out-of-range scores land here too: [1-4] in the
		// patterns above means a "0" or "5" never matches and the block is
		// dropped, not coerced.
		res.Unmatched = append(res.Unmatched, block)
	}

	return res
}
