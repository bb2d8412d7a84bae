// Package session drives the generate, judge, parse, revise cycle for one
// story and owns all deterministic loop logic. No LLM calls are made here;
// collaborators are injected as interfaces.
package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/opariy/bedtime-story-generator/internal/critique"
	"github.com/opariy/bedtime-story-generator/internal/rubric"
)

// DefaultMaxIterations bounds the judge/revise loop when the caller does
// not configure a limit. The bound makes non-termination impossible and
// surfaces exhaustion as a distinct outcome.
const DefaultMaxIterations = 5

// Phase is a state of the revision loop.
type Phase string

const (
	PhaseAwaitingJudgment Phase = "AWAITING_JUDGMENT"
	PhaseEvaluating       Phase = "EVALUATING"
	PhaseNeedsRevision    Phase = "NEEDS_REVISION"
	PhaseRevising         Phase = "REVISING"
	PhaseConverged        Phase = "CONVERGED"
)

// Outcome is the terminal result of a run.
type Outcome string

const (
	// OutcomeConverged means every parsed critique entry scored the
	// maximum level on the final judgment.
	OutcomeConverged Outcome = "CONVERGED"
	// OutcomeMaxIterations means the iteration budget ran out before the
	// judge returned an all-max verdict. Never conflated with convergence.
	OutcomeMaxIterations Outcome = "MAX_ITERATIONS_EXCEEDED"
)

// Generator produces the initial story for a topic.
type Generator interface {
	Generate(ctx context.Context, topic string) (string, error)
}

// Judge scores a story against the catalog and returns raw critique text.
// The text arrives in the loose shapes critique.Parse tolerates.
type Judge interface {
	Judge(ctx context.Context, story, topic string, catalog rubric.Catalog) (string, error)
}

// Reviser rewrites a story to address the given sub-max critique entries
// and returns a full replacement text.
type Reviser interface {
	Revise(ctx context.Context, topic, story string, issues []critique.Entry) (string, error)
}

// Iteration records one judge/parse/evaluate cycle.
type Iteration struct {
	N         int              `json:"n"`
	Entries   []critique.Entry `json:"entries"`
	Unmatched int              `json:"unmatched"`
	Phase     Phase            `json:"phase"`
	Revised   bool             `json:"revised"`
}

// Session is the result of one complete run. All history for the run
// lives here and nowhere else; there is no process-global state.
type Session struct {
	ID         string      `json:"id"`
	Topic      string      `json:"topic"`
	Story      string      `json:"story"`
	Iterations []Iteration `json:"iterations"`
	Outcome    Outcome     `json:"outcome"`
}

// Revisions returns the number of revision calls made during the run.
func (s *Session) Revisions() int {
	n := 0
	for _, it := range s.Iterations {
		if it.Revised {
			n++
		}
	}
	return n
}

// Evaluate applies the convergence rule to a parsed critique set:
// converged if and only if every entry present scores the maximum level.
//
// The vacuous case is deliberate: zero entries (including a judge
// response the parser could not read at all) converges. A category the parser dropped is invisible here and
// therefore treated as passing. Callers that want to surface the hazard
// should inspect Iteration.Unmatched and the entry count.
func Evaluate(set *critique.Set) Phase {
	if len(set.Below(critique.MaxScore)) > 0 {
		return PhaseNeedsRevision
	}
	return PhaseConverged
}

// Controller runs the revision loop. All fields except Observer are
// required. A Controller is single-use state-free configuration; the
// per-run state lives in the Session it returns.
type Controller struct {
	Generator Generator
	Judge     Judge
	Reviser   Reviser
	Catalog   rubric.Catalog
	// MaxIterations caps the number of judge cycles. Zero or negative
	// selects DefaultMaxIterations.
	MaxIterations int
	// Observer, when set, is called after each evaluation. Used by the
	// CLI for progress output; the loop itself never prints.
	Observer func(Iteration)
}

// Run generates a story for the topic and refines it to convergence or
// exhaustion. Collaborator failures abort the run and propagate
// unmodified apart from context; there is no retry.
func (c *Controller) Run(ctx context.Context, topic string) (*Session, error) {
	story, err := c.Generator.Generate(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("session: generate: %w", err)
	}
	return c.Refine(ctx, topic, story)
}

// Refine runs the judge/revise loop on an existing story. Each full cycle
// makes exactly one judge call and, unless converged or out of budget,
// exactly one revision call. When the budget runs out on a non-converged
// judgment the story is returned as last judged, without a trailing
// revision that no judge would ever see.
func (c *Controller) Refine(ctx context.Context, topic, story string) (*Session, error) {
	maxIter := c.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}

	sess := &Session{
		ID:    uuid.NewString(),
		Topic: topic,
		Story: story,
	}

	for n := 1; n <= maxIter; n++ {
		raw, err := c.Judge.Judge(ctx, sess.Story, topic, c.Catalog)
		if err != nil {
			return nil, fmt.Errorf("session: judge iteration %d: %w", n, err)
		}

		res := critique.Parse(raw)
		it := Iteration{
			N:         n,
			Entries:   res.Set.Entries(),
			Unmatched: len(res.Unmatched),
			Phase:     Evaluate(&res.Set),
		}

		if it.Phase == PhaseConverged {
			sess.Iterations = append(sess.Iterations, it)
			sess.Outcome = OutcomeConverged
			c.observe(it)
			return sess, nil
		}

		if n == maxIter {
			sess.Iterations = append(sess.Iterations, it)
			sess.Outcome = OutcomeMaxIterations
			c.observe(it)
			return sess, nil
		}

		revised, err := c.Reviser.Revise(ctx, topic, sess.Story, res.Set.Below(critique.MaxScore))
		if err != nil {
			return nil, fmt.Errorf("session: revise iteration %d: %w", n, err)
		}
		sess.Story = revised
		it.Revised = true
		sess.Iterations = append(sess.Iterations, it)
		c.observe(it)
	}

	// Unreachable: the loop always returns on convergence or on n == maxIter.
	return sess, nil
}

func (c *Controller) observe(it Iteration) {
	if c.Observer != nil {
		c.Observer(it)
	}
}
