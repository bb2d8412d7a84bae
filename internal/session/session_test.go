package session

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/opariy/bedtime-story-generator/internal/critique"
	"github.com/opariy/bedtime-story-generator/internal/rubric"
)

// mockGenerator returns a fixed story.
type mockGenerator struct {
	story string
	calls int
	err   error
}

func (m *mockGenerator) Generate(_ context.Context, _ string) (string, error) {
	m.calls++
	return m.story, m.err
}

// mockJudge returns verdicts in order; the last entry repeats if exhausted.
type mockJudge struct {
	verdicts []string
	calls    int
	err      error
}

func (m *mockJudge) Judge(_ context.Context, _, _ string, _ rubric.Catalog) (string, error) {
	idx := m.calls
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	if idx >= len(m.verdicts) {
		idx = len(m.verdicts) - 1
	}
	return m.verdicts[idx], nil
}

// mockReviser returns "rev-N" and records the issues it was handed.
type mockReviser struct {
	calls  int
	issues [][]critique.Entry
	err    error
}

func (m *mockReviser) Revise(_ context.Context, _, _ string, issues []critique.Entry) (string, error) {
	m.calls++
	m.issues = append(m.issues, issues)
	if m.err != nil {
		return "", m.err
	}
	return fmt.Sprintf("rev-%d", m.calls), nil
}

func newController(g *mockGenerator, j *mockJudge, r *mockReviser, maxIter int) *Controller {
	return &Controller{
		Generator:     g,
		Judge:         j,
		Reviser:       r,
		Catalog:       rubric.Default(),
		MaxIterations: maxIter,
	}
}

const allFour = "theme: 4\nReasoning: Good fit.\n\nlanguage: 4\nReasoning: Very clear."
const oneLow = "theme: 4\nReasoning: Good fit.\n\nlanguage: 2\nReasoning: Too complex."

func TestEvaluate(t *testing.T) {
	// Converged iff every parsed entry scores 4, vacuous case included.
	cases := []struct {
		name string
		in   string
		want Phase
	}{
		{"allMax", allFour, PhaseConverged},
		{"oneBelow", oneLow, PhaseNeedsRevision},
		{"empty", "", PhaseConverged},
		{"onlyUnparseable", "some prose the judge emitted instead", PhaseConverged},
		{"allBelow", "a: 1\nReasoning: x.\n\nb: 2\nReasoning: y.", PhaseNeedsRevision},
	}
	for _, tc := range cases {
		res := critique.Parse(tc.in)
		if got := Evaluate(&res.Set); got != tc.want {
			t.Errorf("%s: Evaluate = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestRunConvergesFirstIteration(t *testing.T) {
	g := &mockGenerator{story: "a gentle story"}
	j := &mockJudge{verdicts: []string{allFour}}
	r := &mockReviser{}

	sess, err := newController(g, j, r, 5).Run(context.Background(), "thunderstorm")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sess.Outcome != OutcomeConverged {
		t.Errorf("Outcome = %q, want CONVERGED", sess.Outcome)
	}
	if sess.Story != "a gentle story" {
		t.Errorf("Story = %q, want the generated story untouched", sess.Story)
	}
	if g.calls != 1 || j.calls != 1 || r.calls != 0 {
		t.Errorf("calls = gen %d, judge %d, revise %d; want 1, 1, 0", g.calls, j.calls, r.calls)
	}
	if len(sess.Iterations) != 1 || sess.Iterations[0].Phase != PhaseConverged {
		t.Errorf("Iterations = %+v, want one converged iteration", sess.Iterations)
	}
}

func TestRunRevisesThenConverges(t *testing.T) {
	g := &mockGenerator{story: "draft"}
	j := &mockJudge{verdicts: []string{oneLow, allFour}}
	r := &mockReviser{}

	sess, err := newController(g, j, r, 5).Run(context.Background(), "thunderstorm")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sess.Outcome != OutcomeConverged {
		t.Errorf("Outcome = %q, want CONVERGED", sess.Outcome)
	}
	if sess.Story != "rev-1" {
		t.Errorf("Story = %q, want the revised text", sess.Story)
	}
	// One judge call per cycle; one revision on the non-converged cycle only.
	if j.calls != 2 || r.calls != 1 {
		t.Errorf("calls = judge %d, revise %d; want 2, 1", j.calls, r.calls)
	}
	if sess.Revisions() != 1 {
		t.Errorf("Revisions() = %d, want 1", sess.Revisions())
	}
	// The reviser receives exactly the sub-max entries, in set order.
	if len(r.issues) != 1 || len(r.issues[0]) != 1 {
		t.Fatalf("reviser issues = %+v, want one call with one entry", r.issues)
	}
	if e := r.issues[0][0]; e.Category != "language" || e.Score != 2 || e.Reasoning != "Too complex." {
		t.Errorf("issue = %+v, want language/2/Too complex.", e)
	}
}

func TestRunMaxIterationsExceeded(t *testing.T) {
	g := &mockGenerator{story: "draft"}
	j := &mockJudge{verdicts: []string{oneLow}} // never improves
	r := &mockReviser{}

	sess, err := newController(g, j, r, 3).Run(context.Background(), "thunderstorm")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sess.Outcome != OutcomeMaxIterations {
		t.Errorf("Outcome = %q, want MAX_ITERATIONS_EXCEEDED", sess.Outcome)
	}
	if j.calls != 3 {
		t.Errorf("judge calls = %d, want 3", j.calls)
	}
	// No trailing revision after the final judgment: the returned story is
	// the last one a judge actually saw.
	if r.calls != 2 {
		t.Errorf("revise calls = %d, want 2", r.calls)
	}
	if sess.Story != "rev-2" {
		t.Errorf("Story = %q, want rev-2", sess.Story)
	}
	if len(sess.Iterations) != 3 {
		t.Errorf("len(Iterations) = %d, want 3", len(sess.Iterations))
	}
	if last := sess.Iterations[2]; last.Revised || last.Phase != PhaseNeedsRevision {
		t.Errorf("final iteration = %+v, want needs-revision, not revised", last)
	}
}

func TestRunEmptyJudgeOutputConverges(t *testing.T) {
	// Inherited hazard, preserved deliberately: a judge response the
	// parser cannot read at all is indistinguishable from a perfect score.
	g := &mockGenerator{story: "draft"}
	j := &mockJudge{verdicts: []string{""}}
	r := &mockReviser{}

	sess, err := newController(g, j, r, 5).Run(context.Background(), "thunderstorm")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sess.Outcome != OutcomeConverged {
		t.Errorf("Outcome = %q, want CONVERGED on empty judge output", sess.Outcome)
	}
	if r.calls != 0 {
		t.Errorf("revise calls = %d, want 0", r.calls)
	}
	if len(sess.Iterations) != 1 || len(sess.Iterations[0].Entries) != 0 {
		t.Errorf("Iterations = %+v, want one empty iteration", sess.Iterations)
	}
}

func TestRunRecordsUnmatchedBlocks(t *testing.T) {
	g := &mockGenerator{story: "draft"}
	j := &mockJudge{verdicts: []string{"stray prose paragraph\n\ntheme: 4\nReasoning: Fine."}}
	r := &mockReviser{}

	sess, err := newController(g, j, r, 5).Run(context.Background(), "thunderstorm")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sess.Iterations[0].Unmatched != 1 {
		t.Errorf("Unmatched = %d, want 1", sess.Iterations[0].Unmatched)
	}
	// The dropped block is invisible to the convergence check.
	if sess.Outcome != OutcomeConverged {
		t.Errorf("Outcome = %q, want CONVERGED", sess.Outcome)
	}
}

func TestRunGeneratorError(t *testing.T) {
	wantErr := errors.New("boom")
	g := &mockGenerator{err: wantErr}
	sess, err := newController(g, &mockJudge{}, &mockReviser{}, 5).Run(context.Background(), "t")
	if !errors.Is(err, wantErr) {
		t.Errorf("Run err = %v, want wrapped boom", err)
	}
	if sess != nil {
		t.Errorf("sess = %+v, want nil on error", sess)
	}
}

func TestRunJudgeError(t *testing.T) {
	wantErr := errors.New("judge down")
	g := &mockGenerator{story: "draft"}
	j := &mockJudge{err: wantErr}
	_, err := newController(g, j, &mockReviser{}, 5).Run(context.Background(), "t")
	if !errors.Is(err, wantErr) {
		t.Errorf("Run err = %v, want wrapped judge error", err)
	}
}

func TestRunReviserError(t *testing.T) {
	wantErr := errors.New("reviser down")
	g := &mockGenerator{story: "draft"}
	j := &mockJudge{verdicts: []string{oneLow}}
	r := &mockReviser{err: wantErr}
	_, err := newController(g, j, r, 5).Run(context.Background(), "t")
	if !errors.Is(err, wantErr) {
		t.Errorf("Run err = %v, want wrapped reviser error", err)
	}
}

func TestRefineSkipsGeneration(t *testing.T) {
	j := &mockJudge{verdicts: []string{allFour}}
	c := newController(&mockGenerator{}, j, &mockReviser{}, 5)

	sess, err := c.Refine(context.Background(), "topic", "a pre-written story")
	if err != nil {
		t.Fatalf("Refine: %v", err)
	}
	if sess.Story != "a pre-written story" {
		t.Errorf("Story = %q", sess.Story)
	}
	if c.Generator.(*mockGenerator).calls != 0 {
		t.Error("Refine called the generator")
	}
}

func TestObserverSeesEveryIteration(t *testing.T) {
	g := &mockGenerator{story: "draft"}
	j := &mockJudge{verdicts: []string{oneLow, allFour}}
	c := newController(g, j, &mockReviser{}, 5)

	var seen []int
	c.Observer = func(it Iteration) { seen = append(seen, it.N) }

	if _, err := c.Run(context.Background(), "t"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Errorf("observer saw %v, want [1 2]", seen)
	}
}

func TestDefaultMaxIterationsApplied(t *testing.T) {
	g := &mockGenerator{story: "draft"}
	j := &mockJudge{verdicts: []string{oneLow}}
	sess, err := newController(g, j, &mockReviser{}, 0).Run(context.Background(), "t")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if j.calls != DefaultMaxIterations {
		t.Errorf("judge calls = %d, want DefaultMaxIterations (%d)", j.calls, DefaultMaxIterations)
	}
	if sess.Outcome != OutcomeMaxIterations {
		t.Errorf("Outcome = %q", sess.Outcome)
	}
}
