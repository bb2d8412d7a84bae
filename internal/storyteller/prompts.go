package storyteller

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/opariy/bedtime-story-generator/internal/critique"
	"github.com/opariy/bedtime-story-generator/internal/rubric"
)

// storyConstraints is shared by the generator and editor prompts so the
// two roles never disagree about what a finished story must look like.
// The judge enforces the same constraints through the rubric instead.
const storyConstraints = "You need to first provide the title, then a one-sentence summary and then the story itself. " +
	"The story's purpose is to calm the child down, so the story has to avoid high-stakes tension and favor emotional safety. " +
	"It has to include themes suitable for children aged 5-10, such as friendship, adventure, discovery, and imagination. " +
	"The structure has to be simple and predictable, with a clear beginning, middle, and end, only one story arc, no subplots. " +
	"Do not start the story with the exact phrase 'Once upon a time.' Instead open with an engaging scene description, action, dialogue, or question. " +
	"Language has to be simple and easy to understand, with sentences averaging 5-8 words. The story's rhythm should be gentle. " +
	"Do not use complex metaphors, sarcasm, or high vocabulary density. " +
	"The protagonist should be safe, soft, and relatable (for example, a child or young animal). " +
	"Avoid gender stereotypes; use gender-neutral language. " +
	"Add one comfort cue per story: verbal and visual cues of being loved and safe, such as hugs, cuddles, warm blankets, soft toys. " +
	"Always ensure that the story has 500-600 words. When read aloud at ~100 wpm the story has to take 4-6 minutes. " +
	"The story has to have 30 to 50 sentences and provide narrative richness."

const generatorSystemPrompt = "You are a kind and creative children's storyteller. " + storyConstraints

const editorSystemPrompt = "You are a kind, skilled and creative children's story editor. " +
	"Revise the story to address all the critiques listed, while preserving the original story " +
	"and only replacing what is necessary to make it suitable for ages 5-10. " + storyConstraints

const judgeSystemPrompt = "You are a rigorous expert children's story critic. " +
	"You rigorously review stories intended for 5-10 year olds. You are honest, constructive, " +
	"and focus on finding all flaws in the story. " +
	"You only rate the story provided, without considering its potential for improvement."

const classifierSystemPrompt = "You help classify children's story ideas."

const suggesterSystemPrompt = "You help suggest bedtime story topics suitable for children aged 5-10."

func generateUserPrompt(topic string) string {
	return fmt.Sprintf("Write an original bedtime story for kids aged 5-10 about: %s.", topic)
}

// judgeUserPrompt embeds the catalog as insertion-ordered JSON and pins the
// output format to the two-line shape. The format request is best-effort:
// the critique parser tolerates deviation.
func judgeUserPrompt(story, topic string, catalog rubric.Catalog) (string, error) {
	rubricJSON, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("You will evaluate a children's bedtime story using the rubric provided below. ")
	sb.WriteString("Each rubric category is to be evaluated in isolation.\n\n")
	fmt.Fprintf(&sb, "PROMPT:\n%s\n\n", topic)
	fmt.Fprintf(&sb, "STORY:\n%s\n\n", story)
	fmt.Fprintf(&sb, "RUBRIC:\n%s\n\n", rubricJSON)
	sb.WriteString("Output only plain text in the following precise format, with one blank line between categories:\n")
	sb.WriteString("category_key: <score 1-4>\n")
	sb.WriteString("Reasoning: <Explain your reasoning clearly and concisely, providing direct examples from the story to support your argument.>\n\n")
	sb.WriteString("Do not add any extra text, headers, formatting, or numbering. ")
	sb.WriteString("Do not omit, rename, combine, or reorder any categories. ")
	sb.WriteString("If category names, descriptions, or scores seem similar or the same, always treat them as distinct.")
	return sb.String(), nil
}

func reviseUserPrompt(topic, story string, issues []critique.Entry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Original prompt:\n%s\n\n", topic)
	fmt.Fprintf(&sb, "Original story:\n%s\n\n", story)
	sb.WriteString("Critiques to address:\n")
	for _, e := range issues {
		sb.WriteString(e.Issue())
		sb.WriteByte('\n')
	}
	sb.WriteString("\nPlease rewrite the entire story, incorporating improvements for each critique. ")
	sb.WriteString("Maintain a clear beginning, middle, and end. ")
	sb.WriteString("Do not start with 'Once upon a time.'")
	return sb.String()
}

func classifyUserPrompt(topic string) string {
	return fmt.Sprintf("Is this appropriate for a 5-10 year-old bedtime story? '%s'\n\n"+
		"Categories: [SAFE, AMBIGUOUS, INAPPROPRIATE]. Just return the category.", topic)
}

func suggestUserPrompt(n int) string {
	return fmt.Sprintf("Suggest %d original, imaginative, and safe bedtime story topics. "+
		"Each should be calming, age-appropriate, and involve animals, friendships, or gentle adventures. "+
		"Respond in a plain numbered list, one per line.", n)
}
