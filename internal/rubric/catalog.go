package rubric

// Default returns the built-in bedtime-story catalog.
//
// The final five criteria all measure story length or pacing from slightly
// different angles. The overlap is intentional: length control is the
// weakest dimension of generated stories, and redundant measures keep
// pressure on it during revision.
func Default() Catalog {
	return Catalog{
		{
			Key:         "1_theme_appropriateness",
			Description: "Assesses whether the story's central theme or subject matter is suitable for children aged 5-10, without evaluating language or structure.",
			Levels: [LevelCount]string{
				"Theme is clearly inappropriate for the kids aged 5-10 (e.g., graphic violence, adult relationships, war with gore).",
				"Theme contains mature or scary elements that may unsettle young children, even if not graphic (e.g., implied violence, intense fear).",
				"Theme is generally suitable but includes minor elements that could require parental explanation (e.g., mild suspense, abstract concepts).",
				"Theme is fully appropriate for ages 5-10 (e.g., friendship, adventure, discovery) and poses no risk of distress.",
			},
		},
		{
			Key:         "2_bedtime_suitable",
			Description: "Assesses if the story is calming and suitable for bedtime reading.",
			Levels: [LevelCount]string{
				"Contains high-stakes tension or frightening elements.",
				"Includes some tension but generally calming.",
				"Mostly calming with minor tension.",
				"Completely calming and suitable for bedtime.",
			},
		},
		{
			Key:         "3_coherence_with_prompt",
			Description: "Compares whether the story matches the user's request.",
			Levels: [LevelCount]string{
				"Story is unrelated to the prompt or completely drifts from the theme.",
				"Story loosely reflects the prompt but introduces unrelated content.",
				"Story mostly follows the prompt with minor divergence.",
				"Story directly fulfills the prompt with clear and focused alignment.",
			},
		},
		{
			Key:         "4_structure",
			Description: "Evaluates if the story has a simple, predictable structure with no subplots.",
			Levels: [LevelCount]string{
				"Structure is chaotic.",
				"Story only includes the beginning. No conflict or challenge in the middle, and no resolution at the end.",
				"Story is too complicated for kids aged 5-10, includes extra plots or arcs.",
				"Story has a beginning that introduces characters and setting, followed by a single conflict or challenge in the middle, and a satisfying resolution at the end. Only one story arc and no subplots.",
			},
		},
		{
			Key:         "5_language",
			Description: "Assesses the simplicity and clarity of language.",
			Levels: [LevelCount]string{
				"Uses complex vocabulary, long sentences, or confusing metaphors.",
				"Language is occasionally too advanced.",
				"Generally simple language but includes some difficult phrases.",
				"Uses short, simple sentences with widely understood words. Very clear.",
			},
		},
		{
			Key:         "6_protagonist",
			Description: "Evaluates whether the protagonist is safe, soft, and relatable to children.",
			Levels: [LevelCount]string{
				"Protagonist is violent, scary, or lacks child relatability.",
				"Protagonist has some questionable traits for young kids.",
				"Protagonist is mostly appropriate but not emotionally resonant.",
				"Protagonist is safe, soft, emotionally appropriate, and child-relatable.",
			},
		},
		{
			Key:         "7_inclusivity",
			Description: "Assesses whether the story contains any harmful stereotypes, biased or exclusionary language.",
			Levels: [LevelCount]string{
				"Contains explicit harmful stereotypes or exclusionary language that could alienate or upset children.",
				"Includes subtle biases, outdated terms, or ambiguous phrasing that may unintentionally exclude or stereotype.",
				"Free of harmful or exclusionary content; uses neutral language without any stereotypes.",
				"Completely free of harmful content and employs consistently inclusive, neutral language with careful avoidance of any bias.",
			},
		},
		{
			Key:         "8_psychological_triggers",
			Description: "Checks for comforting and emotionally safe content (e.g. hugs, warmth, love).",
			Levels: [LevelCount]string{
				"Story contains elements that may cause emotional discomfort or stress.",
				"Some comforting cues present but not sustained.",
				"Comforting tone exists but may lack vivid emotional triggers.",
				"Contains strong comforting signals like hugs, warmth, and security cues.",
			},
		},
		{
			Key:         "9_engagement_imagination",
			Description: "Evaluates how interesting and imaginative the story is for a child, considering characters, plot, descriptive language, and emotional connection.",
			Levels: [LevelCount]string{
				"Story is dull or overly mundane with no engaging characters or plot; lacks imagery and emotional appeal.",
				"Contains some interesting elements but feels inconsistent; either characters, plot, or descriptions fall flat.",
				"Generally engaging and imaginative with relatable characters and a gentle plot; uses some vivid imagery and evokes positive feelings.",
				"Highly engaging and creative; features fun or relatable characters, a gentle yet intriguing plot, rich sensory details, and a strong emotional connection that delights children.",
			},
		},
		{
			Key:         "10_clarity_correctness",
			Description: "Assesses the overall quality of writing, ensuring proper grammar, clear references, logical flow, and balanced pacing.",
			Levels: [LevelCount]string{
				"Multiple grammatical or spelling errors; confusing pronoun references; plot progression is illogical or abrupt.",
				"Some minor errors or unclear references; pacing is uneven (too much description or rushed resolution).",
				"Writing is mostly correct with few minor issues; references are generally clear and pacing adequate.",
				"Flawless grammar and spelling; pronouns and references are crystal-clear; plot flows logically with well-balanced pacing throughout.",
			},
		},
		{
			Key:         "11_opening_originality",
			Description: "Evaluates how original and engaging the story's opening is, ensuring it does not start with the cliche 'Once upon a time'.",
			Levels: [LevelCount]string{
				"Story begins exactly with 'Once upon a time' (or a very close variant), showing no originality in the opening.",
				"Story uses a common variation of the cliche (e.g., 'Once in a...'), indicating limited creativity in the opening.",
				"Opening is original and avoids direct cliches, but still employs familiar tropes or structures.",
				"Opening is highly creative and unique, engaging the reader with fresh imagery, action, or dialogue, and completely avoids any form of 'Once upon a time'.",
			},
		},
		{
			Key:         "12_length_appropriateness_combined",
			Description: "Evaluates whether the story's length is appropriate for children aged 5-10, balancing narrative depth with brevity for a calming bedtime read.",
			Levels: [LevelCount]string{
				"Under 300 words or over 800 words: too brief to develop a soothing narrative or too long to sustain a child's attention at bedtime.",
				"300-400 words or 700-800 words: slightly too short (may feel rushed) or slightly too long (may cause restlessness before sleep).",
				"400-500 words or 600-700 words: generally appropriate length with minor pacing concerns that could be smoothed.",
				"500-600 words: ideal bedtime length, providing enough narrative richness without overstaying the typical 5-8 minute attention span.",
			},
		},
		{
			Key:         "13_word_count",
			Description: "Evaluates the story's length in terms of word count.",
			Levels: [LevelCount]string{
				"Under 300 words or over 800.",
				"300-400 words or 700-800 words.",
				"400-500 words or 600-700 words.",
				"500-600 words.",
			},
		},
		{
			Key:         "14_story_length",
			Description: "Evaluates whether the story's length is appropriate for children aged 5-10, balancing narrative depth with brevity for a calming bedtime read.",
			Levels: [LevelCount]string{
				"Too brief to develop a soothing narrative or too long to sustain a child's attention at bedtime.",
				"Slightly too short (may feel rushed) or slightly too long (may cause restlessness before sleep).",
				"Generally appropriate length with minor pacing concerns that could be smoothed.",
				"Ideal bedtime length, providing enough narrative richness without overstaying the typical 5-8 minute attention span.",
			},
		},
		{
			Key:         "15_sentence_count",
			Description: "Evaluates the story's sentence count.",
			Levels: [LevelCount]string{
				"Fewer than 20 sentences or more than 60 sentences.",
				"20-30 sentences or 50-60 sentences.",
				"30-40 sentences or 40-50 sentences.",
				"30 to 50 sentences.",
			},
		},
		{
			Key:         "16_reading_time",
			Description: "Evaluates the estimated read-aloud time (at ~100 wpm).",
			Levels: [LevelCount]string{
				"Under 2 minutes or over 10 minutes.",
				"2-3 minutes or 8-10 minutes.",
				"3-4 minutes or 6-8 minutes.",
				"4-6 minutes.",
			},
		},
	}
}
