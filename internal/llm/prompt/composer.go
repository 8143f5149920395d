// Package prompt assembles the outbound prompt text from personality and
// length preferences, training context entries, and the user's input. All
// functions are pure; callers own persistence and transport.
package prompt

import (
	"fmt"
	"log"
	"strings"

	"promptdesk/internal/models"
)

const (
	trainingBanner  = "Here is some context to inform your responses, ordered by priority:\n\n"
	trainingTrailer = "Please use this context to inform your response to the following:\n"
)

var toneGuides = map[models.Tone]string{
	models.ToneProfessional: "Please respond in a professional and formal manner.",
	models.ToneCasual:       "Please respond in a casual and relaxed tone.",
	models.ToneFriendly:     "Please respond in a friendly and approachable manner.",
	models.ToneTechnical:    "Please respond with technical precision and detail.",
}

var lengthGuides = map[models.LengthPreference]string{
	models.LengthBrief:    "Please keep your responses concise and to the point, using no more than 50 words.",
	models.LengthBalanced: "Please provide balanced responses with moderate detail, using between 50-200 words.",
	models.LengthDetailed: "Please provide detailed and comprehensive responses, using at least 200 words.",
}

// Instructions is the structured prompt pair handed to providers with a real
// system channel: instruction text on the system side, the user's literal
// input on the user side.
type Instructions struct {
	System string
	User   string
}

// ComposeTrainingBlock renders the enabled training entries as a prioritized
// context block. Entries are bucketed high, medium, low, keeping their
// original relative order inside each bucket. Entries with an unknown
// priority are dropped without error. Returns "" when there is nothing to
// inject.
func ComposeTrainingBlock(entries []models.TrainingEntry) string {
	if len(entries) == 0 {
		return ""
	}

	enabled := make([]models.TrainingEntry, 0, len(entries))
	for _, e := range entries {
		if e.IsEnabled {
			enabled = append(enabled, e)
		}
	}
	if len(enabled) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(trainingBanner)
	for _, p := range []models.Priority{models.PriorityHigh, models.PriorityMedium, models.PriorityLow} {
		var contexts []string
		for _, e := range enabled {
			if e.Priority == p {
				contexts = append(contexts, e.Context)
			}
		}
		if len(contexts) == 0 {
			continue
		}
		b.WriteString(strings.ToUpper(string(p)))
		b.WriteString(" PRIORITY CONTEXT:\n")
		b.WriteString(strings.Join(contexts, "\n\n"))
		b.WriteString("\n\n")
	}
	b.WriteString(trainingTrailer)
	return b.String()
}

// ComposePersonalityPrompt renders the tone guidance sentence for the
// configured personality.
func ComposePersonalityPrompt(settings models.ChatSettings) string {
	p := settings.Personality
	if p.Tone == models.ToneCustom && p.CustomTone != "" {
		return fmt.Sprintf("Please respond in the following style: %s.\n\n", p.CustomTone)
	}

	guide, ok := toneGuides[p.Tone]
	if !ok {
		// Out-of-enum tones cannot come from the fixed UI choices.
		log.Printf("prompt: unknown tone %q, skipping personality guidance", p.Tone)
		return ""
	}
	return guide + "\n\n"
}

// ComposeLengthPrompt renders the response-length guidance sentence.
func ComposeLengthPrompt(settings models.ChatSettings) string {
	r := settings.Response
	if r.LengthPreference == models.LengthCustom {
		return fmt.Sprintf("Please keep your response between %d and %d words.\n\n", r.MinWords, r.MaxWords)
	}

	guide, ok := lengthGuides[r.LengthPreference]
	if !ok {
		log.Printf("prompt: unknown length preference %q, skipping length guidance", r.LengthPreference)
		return ""
	}
	return guide + "\n\n"
}

// ComposeFullPrompt concatenates personality guidance, length guidance, the
// training block, and the literal user text, in that order. Each sub-composer
// carries its own trailing blank line; no separator normalization happens
// here, so double blank lines are expected.
func ComposeFullPrompt(userText string, settings models.ChatSettings, entries []models.TrainingEntry) string {
	return ComposePersonalityPrompt(settings) +
		ComposeLengthPrompt(settings) +
		ComposeTrainingBlock(entries) +
		userText
}

// ComposeInstructions builds the structured system/user pair. The instruction
// text (personality, length, training) goes to the system side and the user
// text stays untouched, so providers never have to split a combined string.
func ComposeInstructions(userText string, settings models.ChatSettings, entries []models.TrainingEntry) Instructions {
	return Instructions{
		System: ComposePersonalityPrompt(settings) +
			ComposeLengthPrompt(settings) +
			ComposeTrainingBlock(entries),
		User: userText,
	}
}
