package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/opariy/bedtime-story-generator/internal/storyteller"
)

// classifier is the slice of the storyteller client the topic loop needs.
type classifier interface {
	Classify(ctx context.Context, topic string) (storyteller.Classification, error)
	Suggest(ctx context.Context, n int) ([]string, error)
}

// collectTopic runs the interactive topic loop: read a topic from in,
// classify it, and either accept it, ask for a rephrase, or offer safe
// suggestions selectable by number. Returns only a SAFE topic.
func collectTopic(ctx context.Context, in io.Reader, out io.Writer, client classifier, nSuggestions int) (string, error) {
	scanner := bufio.NewScanner(in)
	var suggestions []string

	for {
		if len(suggestions) > 0 {
			fmt.Fprint(out, "Enter a new idea or choose a number from above: ")
		} else {
			fmt.Fprint(out, "What should the story be about? ")
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", fmt.Errorf("read topic: %w", err)
			}
			return "", fmt.Errorf("no topic provided")
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		// A bare number picks one of the offered suggestions.
		if n, err := strconv.Atoi(input); err == nil && len(suggestions) > 0 {
			if n >= 1 && n <= len(suggestions) {
				topic := suggestions[n-1]
				fmt.Fprintf(out, "\nGreat, we'll use: %q\n", topic)
				return topic, nil
			}
			fmt.Fprintln(out, "Invalid number. Please select a number from the list.")
			continue
		}

		cls, err := client.Classify(ctx, input)
		if err != nil {
			return "", err
		}
		switch cls {
		case storyteller.ClassSafe:
			return input, nil
		case storyteller.ClassAmbiguous:
			fmt.Fprintln(out, "\nThat's a bit unclear for a story. Can you rephrase it or be more specific?")
		case storyteller.ClassInappropriate:
			fmt.Fprintln(out, "\nThat topic might not be suitable for a bedtime story.")
			suggestions, err = client.Suggest(ctx, nSuggestions)
			if err != nil {
				return "", err
			}
			fmt.Fprintln(out, "Here are some safer ideas:")
			for i, idea := range suggestions {
				fmt.Fprintf(out, "%d. %s\n", i+1, idea)
			}
			fmt.Fprintf(out, "\nYou can type a number (1-%d) to use a suggestion above, or enter a new idea.\n", len(suggestions))
		}
	}
}
