// Package storyteller implements the text-generation collaborators: story
// generation, rubric judging, revision, topic classification, and topic
// suggestion. Every method is a thin request/response wrapper over an
// llm.Provider; all loop logic lives in the session package.
package storyteller

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/opariy/bedtime-story-generator/internal/critique"
	"github.com/opariy/bedtime-story-generator/internal/llm"
	"github.com/opariy/bedtime-story-generator/internal/profile"
	"github.com/opariy/bedtime-story-generator/internal/rubric"
)

// Classification is the topic-safety verdict for a user-supplied topic.
type Classification string

const (
	ClassSafe          Classification = "SAFE"
	ClassAmbiguous     Classification = "AMBIGUOUS"
	ClassInappropriate Classification = "INAPPROPRIATE"
)

// Per-call generation parameters. Judging runs cold so that scores are
// stable across iterations; creative calls run warm.
const (
	generateMaxTokens = 2000
	generateTemp      = 0.7
	judgeMaxTokens    = 2000
	judgeTemp         = 0.1
	reviseMaxTokens   = 1200
	reviseTemp        = 0.7
	classifyMaxTokens = 16
	classifyTemp      = 0.0
	suggestMaxTokens  = 100
	suggestTemp       = 0.7
)

// Options configures a Client.
type Options struct {
	Provider string // "openai" (default), "anthropic", or "google"
	Model    string
	Debug    bool // print prompts to stderr before each call
}

// Client binds the collaborator methods to one provider and one
// storytelling profile.
type Client struct {
	provider llm.Provider
	prof     profile.Profile
	debug    bool
}

// New creates a Client for the configured provider.
func New(opts Options, prof profile.Profile) (*Client, error) {
	p, err := llm.NewProvider(opts.Provider, opts.Model)
	if err != nil {
		return nil, fmt.Errorf("storyteller: create provider: %w", err)
	}
	return &Client{provider: p, prof: prof, debug: opts.Debug}, nil
}

func (c *Client) complete(ctx context.Context, label, system, user string, maxTokens int, temp float64) (string, error) {
	if c.debug {
		fmt.Fprintf(os.Stderr, "=== DEBUG: %s system prompt ===\n%s\n", label, system)
		fmt.Fprintf(os.Stderr, "=== DEBUG: %s user prompt ===\n%s\n", label, user)
	}
	out, err := c.provider.Complete(ctx, system, user, maxTokens, temp)
	if err != nil {
		return "", fmt.Errorf("storyteller: %s: %w", label, err)
	}
	return out, nil
}

// Generate produces the initial story for a topic: title, one-sentence
// summary, and narrative body as one opaque block. No structural guarantee
// is enforced here.
func (c *Client) Generate(ctx context.Context, topic string) (string, error) {
	out, err := c.complete(ctx, "generate",
		generatorSystemPrompt+c.profileAddendum(),
		generateUserPrompt(topic),
		generateMaxTokens, generateTemp)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Judge scores the story against every criterion in the catalog and
// returns the raw critique text. The prompt requests the two-line format
// critique.Parse recognizes, but the model does not reliably comply; the
// raw text is returned unexamined for the parser to deal with.
func (c *Client) Judge(ctx context.Context, story, topic string, catalog rubric.Catalog) (string, error) {
	user, err := judgeUserPrompt(story, topic, catalog)
	if err != nil {
		return "", fmt.Errorf("storyteller: judge: %w", err)
	}
	return c.complete(ctx, "judge", judgeSystemPrompt, user, judgeMaxTokens, judgeTemp)
}

// Revise rewrites the story to address the given critique entries and
// returns a full replacement text. With no issues the story is returned
// unchanged and no call is made.
func (c *Client) Revise(ctx context.Context, topic, story string, issues []critique.Entry) (string, error) {
	if len(issues) == 0 {
		return story, nil
	}
	out, err := c.complete(ctx, "revise",
		editorSystemPrompt+c.profileAddendum(),
		reviseUserPrompt(topic, story, issues),
		reviseMaxTokens, reviseTemp)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Classify asks whether the topic suits a bedtime story for ages 5-10.
// A response outside the three known categories is an error, never a guess.
func (c *Client) Classify(ctx context.Context, topic string) (Classification, error) {
	out, err := c.complete(ctx, "classify",
		classifierSystemPrompt, classifyUserPrompt(topic),
		classifyMaxTokens, classifyTemp)
	if err != nil {
		return "", err
	}
	switch cls := Classification(strings.ToUpper(strings.Trim(strings.TrimSpace(out), "."))); cls {
	case ClassSafe, ClassAmbiguous, ClassInappropriate:
		return cls, nil
	default:
		return "", fmt.Errorf("storyteller: classify: unrecognized category %q", strings.TrimSpace(out))
	}
}

// Suggest returns up to n safe story topics parsed from the model's
// numbered list. List markers and blank lines are stripped; short
// responses yield fewer than n topics rather than an error.
func (c *Client) Suggest(ctx context.Context, n int) ([]string, error) {
	out, err := c.complete(ctx, "suggest",
		suggesterSystemPrompt, suggestUserPrompt(n),
		suggestMaxTokens, suggestTemp)
	if err != nil {
		return nil, err
	}

	var topics []string
	for _, line := range strings.Split(out, "\n") {
		if line = stripListMarker(line); line != "" {
			topics = append(topics, line)
		}
	}
	if len(topics) > n {
		topics = topics[:n]
	}
	return topics, nil
}

// stripListMarker removes leading numbering ("3. ", "3) ") or a bullet
// ("- ", "* ") plus surrounding whitespace. Lines that are only a marker
// collapse to the empty string.
func stripListMarker(line string) string {
	line = strings.TrimSpace(line)
	trimmed := strings.TrimLeft(line, "0123456789")
	if trimmed != line && len(trimmed) > 0 && (trimmed[0] == '.' || trimmed[0] == ')') {
		line = trimmed[1:]
	}
	for _, pfx := range []string{"- ", "* "} {
		if strings.HasPrefix(line, pfx) {
			line = line[len(pfx):]
		}
	}
	return strings.TrimSpace(line)
}

func (c *Client) profileAddendum() string {
	if c.prof.SystemPromptAddendum == "" {
		return ""
	}
	return " " + c.prof.SystemPromptAddendum
}
