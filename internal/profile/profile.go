// Package profile defines storytelling profiles that modulate prompt
// construction. Each profile provides a SystemPromptAddendum appended to the
// storyteller and editor system prompts; the judge never sees it.
package profile

import "fmt"

// Profile describes a storytelling style.
type Profile struct {
	Name                 string
	Description          string
	SystemPromptAddendum string
}

// builtins is the registry of built-in profiles keyed by name.
var builtins = map[string]Profile{
	"classic": {
		Name:        "classic",
		Description: "Default profile; no extra styling beyond the base bedtime constraints.",
		SystemPromptAddendum: "Keep the telling warm and unhurried, in the voice of a parent " +
			"reading aloud. Let the story breathe; do not rush the ending.",
	},
	"nature": {
		Name:        "nature",
		Description: "Grounds the story in gentle natural settings and animal characters.",
		SystemPromptAddendum: "Set the story outdoors in a gentle natural place such as a meadow, " +
			"forest edge, pond, or garden. Favor young animal protagonists. Weave in soft sensory " +
			"details of nature: rustling leaves, warm sunlight, quiet rain. Nature is always " +
			"friendly and never threatening.",
	},
	"dreamy": {
		Name:        "dreamy",
		Description: "Slow, sleep-forward telling that winds down toward the final lines.",
		SystemPromptAddendum: "Make the story progressively quieter as it goes. Use soft, slow " +
			"rhythms and gentle repetition. Characters should grow sleepy along with the reader, " +
			"and the final paragraph should read like a lullaby that settles everyone to sleep.",
	},
	"silly": {
		Name:        "silly",
		Description: "Light, giggly tone with gentle humor and playful sounds.",
		SystemPromptAddendum: "Add gentle, age-appropriate humor: silly animal noises, harmless " +
			"mix-ups, playful made-up words a child can repeat. Keep the humor soft and kind, " +
			"never at a character's expense, and still wind down calmly at the end.",
	},
}

// Load returns the named built-in profile or an error if the name is unknown.
func Load(name string) (Profile, error) {
	p, ok := builtins[name]
	if !ok {
		return Profile{}, fmt.Errorf("profile: unknown profile %q (available: classic, nature, dreamy, silly)", name)
	}
	return p, nil
}
