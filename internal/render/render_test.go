package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/opariy/bedtime-story-generator/internal/critique"
	"github.com/opariy/bedtime-story-generator/internal/session"
)

func sampleSession() *session.Session {
	return &session.Session{
		ID:    "b7a0c9a2-0000-0000-0000-000000000000",
		Topic: "a sleepy fox",
		Story: "The Sleepy Fox\nA fox finds the perfect nap spot.\nBody...",
		Iterations: []session.Iteration{
			{
				N: 1,
				Entries: []critique.Entry{
					{Category: "theme", Score: 4, Reasoning: "Good fit."},
					{Category: "language", Score: 2, Reasoning: "Too complex | dense."},
				},
				Unmatched: 1,
				Phase:     session.PhaseNeedsRevision,
				Revised:   true,
			},
			{
				N: 2,
				Entries: []critique.Entry{
					{Category: "theme", Score: 4, Reasoning: "Good fit."},
					{Category: "language", Score: 4, Reasoning: "Clear now."},
				},
				Phase: session.PhaseConverged,
			},
		},
		Outcome: session.OutcomeConverged,
	}
}

func TestJSONRoundTrips(t *testing.T) {
	sess := sampleSession()
	b, err := JSON(sess)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var back session.Session
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.ID != sess.ID || back.Topic != sess.Topic || back.Outcome != sess.Outcome {
		t.Errorf("round trip lost fields: %+v", back)
	}
	if len(back.Iterations) != 2 || back.Iterations[0].Entries[1] != sess.Iterations[0].Entries[1] {
		t.Errorf("round trip lost iterations: %+v", back.Iterations)
	}
}

func TestJSONNil(t *testing.T) {
	if _, err := JSON(nil); err == nil {
		t.Error("JSON(nil): err = nil, want error")
	}
}

func TestMarkdown(t *testing.T) {
	out := Markdown(sampleSession())

	for _, want := range []string{
		"**Topic:** a sleepy fox",
		"**Outcome:** CONVERGED",
		"**Iterations:** 2 | **Revisions:** 1",
		"The Sleepy Fox",
		"### Iteration 1 — NEEDS_REVISION",
		"### Iteration 2 — CONVERGED",
		"1 block(s) of judge output could not be parsed",
		"| theme | 4 | Good fit. |",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Markdown output missing %q", want)
		}
	}
	// Pipes inside reasoning must not break the table.
	if !strings.Contains(out, `Too complex \| dense.`) {
		t.Error("Markdown output did not escape pipes in reasoning")
	}
}

func TestMarkdownEmptyIteration(t *testing.T) {
	sess := &session.Session{
		Topic:      "t",
		Story:      "s",
		Iterations: []session.Iteration{{N: 1, Phase: session.PhaseConverged}},
		Outcome:    session.OutcomeConverged,
	}
	if !strings.Contains(Markdown(sess), "No critique entries were parsed.") {
		t.Error("Markdown output missing empty-iteration notice")
	}
}

func TestMarkdownNil(t *testing.T) {
	if Markdown(nil) != "" {
		t.Error("Markdown(nil) != \"\"")
	}
}
