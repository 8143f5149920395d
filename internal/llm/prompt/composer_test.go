package prompt

import (
	"strings"
	"testing"

	"promptdesk/internal/models"
)

func entry(priority models.Priority, context string, enabled bool) models.TrainingEntry {
	return models.TrainingEntry{ID: context, Context: context, IsEnabled: enabled, Priority: priority}
}

func TestComposeTrainingBlock_EmptyInput(t *testing.T) {
	if got := ComposeTrainingBlock(nil); got != "" {
		t.Fatalf("expected empty block, got %q", got)
	}
	if got := ComposeTrainingBlock([]models.TrainingEntry{}); got != "" {
		t.Fatalf("expected empty block, got %q", got)
	}
}

func TestComposeTrainingBlock_AllDisabled(t *testing.T) {
	entries := []models.TrainingEntry{
		entry(models.PriorityHigh, "A", false),
		entry(models.PriorityLow, "B", false),
	}
	if got := ComposeTrainingBlock(entries); got != "" {
		t.Fatalf("expected empty block for disabled entries, got %q", got)
	}
}

func TestComposeTrainingBlock_PriorityOrdering(t *testing.T) {
	// Buckets come out high, medium, low regardless of input order.
	entries := []models.TrainingEntry{
		entry(models.PriorityHigh, "A", true),
		entry(models.PriorityLow, "B", true),
		entry(models.PriorityMedium, "C", true),
	}

	got := ComposeTrainingBlock(entries)
	want := "Here is some context to inform your responses, ordered by priority:\n\n" +
		"HIGH PRIORITY CONTEXT:\nA\n\n" +
		"MEDIUM PRIORITY CONTEXT:\nC\n\n" +
		"LOW PRIORITY CONTEXT:\nB\n\n" +
		"Please use this context to inform your response to the following:\n"
	if got != want {
		t.Fatalf("block mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestComposeTrainingBlock_KeepsRelativeOrderInsideBucket(t *testing.T) {
	entries := []models.TrainingEntry{
		entry(models.PriorityMedium, "first", true),
		entry(models.PriorityHigh, "top", true),
		entry(models.PriorityMedium, "second", true),
	}

	got := ComposeTrainingBlock(entries)
	if !strings.Contains(got, "MEDIUM PRIORITY CONTEXT:\nfirst\n\nsecond\n\n") {
		t.Fatalf("medium bucket lost insertion order:\n%q", got)
	}
}

func TestComposeTrainingBlock_DropsUnknownPriority(t *testing.T) {
	entries := []models.TrainingEntry{
		entry(models.PriorityHigh, "keep", true),
		entry(models.Priority("urgent"), "drop", true),
	}

	got := ComposeTrainingBlock(entries)
	if strings.Contains(got, "drop") {
		t.Fatalf("unknown priority entry leaked into block:\n%q", got)
	}
	if !strings.Contains(got, "keep") {
		t.Fatalf("known priority entry missing from block:\n%q", got)
	}
}

func TestComposeTrainingBlock_SkipsEmptyBuckets(t *testing.T) {
	entries := []models.TrainingEntry{
		entry(models.PriorityLow, "only", true),
	}

	got := ComposeTrainingBlock(entries)
	if strings.Contains(got, "HIGH PRIORITY CONTEXT:") || strings.Contains(got, "MEDIUM PRIORITY CONTEXT:") {
		t.Fatalf("empty buckets emitted headers:\n%q", got)
	}
}

func TestComposePersonalityPrompt_ToneTable(t *testing.T) {
	cases := []struct {
		tone models.Tone
		want string
	}{
		{models.ToneProfessional, "Please respond in a professional and formal manner.\n\n"},
		{models.ToneCasual, "Please respond in a casual and relaxed tone.\n\n"},
		{models.ToneFriendly, "Please respond in a friendly and approachable manner.\n\n"},
		{models.ToneTechnical, "Please respond with technical precision and detail.\n\n"},
	}

	for _, tc := range cases {
		settings := models.DefaultChatSettings()
		settings.Personality.Tone = tc.tone
		if got := ComposePersonalityPrompt(settings); got != tc.want {
			t.Fatalf("%s: got %q want %q", tc.tone, got, tc.want)
		}
	}
}

func TestComposePersonalityPrompt_CustomTone(t *testing.T) {
	settings := models.DefaultChatSettings()
	settings.Personality.Tone = models.ToneCustom
	settings.Personality.CustomTone = "a pirate"

	got := ComposePersonalityPrompt(settings)
	want := "Please respond in the following style: a pirate.\n\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestComposePersonalityPrompt_CustomToneEmptyFallsBack(t *testing.T) {
	// Custom tone with no text cannot produce a style sentence.
	settings := models.DefaultChatSettings()
	settings.Personality.Tone = models.ToneCustom
	settings.Personality.CustomTone = ""

	if got := ComposePersonalityPrompt(settings); got != "" {
		t.Fatalf("expected empty guidance, got %q", got)
	}
}

func TestComposeLengthPrompt_LengthTable(t *testing.T) {
	cases := []struct {
		pref models.LengthPreference
		want string
	}{
		{models.LengthBrief, "Please keep your responses concise and to the point, using no more than 50 words.\n\n"},
		{models.LengthBalanced, "Please provide balanced responses with moderate detail, using between 50-200 words.\n\n"},
		{models.LengthDetailed, "Please provide detailed and comprehensive responses, using at least 200 words.\n\n"},
	}

	for _, tc := range cases {
		settings := models.DefaultChatSettings()
		settings.Response.LengthPreference = tc.pref
		if got := ComposeLengthPrompt(settings); got != tc.want {
			t.Fatalf("%s: got %q want %q", tc.pref, got, tc.want)
		}
	}
}

func TestComposeLengthPrompt_CustomBounds(t *testing.T) {
	settings := models.DefaultChatSettings()
	settings.Response.LengthPreference = models.LengthCustom
	settings.Response.MinWords = 30
	settings.Response.MaxWords = 120

	got := ComposeLengthPrompt(settings)
	want := "Please keep your response between 30 and 120 words.\n\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestComposeFullPrompt_Order(t *testing.T) {
	settings := models.DefaultChatSettings()
	settings.Personality.Tone = models.ToneTechnical
	settings.Response.LengthPreference = models.LengthBrief
	entries := []models.TrainingEntry{entry(models.PriorityHigh, "Be concise", true)}

	got := ComposeFullPrompt("Hello", settings, entries)
	want := "Please respond with technical precision and detail.\n\n" +
		"Please keep your responses concise and to the point, using no more than 50 words.\n\n" +
		"Here is some context to inform your responses, ordered by priority:\n\n" +
		"HIGH PRIORITY CONTEXT:\nBe concise\n\n" +
		"Please use this context to inform your response to the following:\n" +
		"Hello"
	if got != want {
		t.Fatalf("full prompt mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestComposeInstructions_SplitsSystemFromUser(t *testing.T) {
	settings := models.DefaultChatSettings()
	entries := []models.TrainingEntry{entry(models.PriorityHigh, "Be concise", true)}

	in := ComposeInstructions("User: tricky input", settings, entries)
	if in.User != "User: tricky input" {
		t.Fatalf("user text altered: %q", in.User)
	}
	if !strings.Contains(in.System, "Be concise") {
		t.Fatalf("system side missing training context:\n%q", in.System)
	}
	if strings.Contains(in.System, "tricky input") {
		t.Fatalf("user text leaked into system side:\n%q", in.System)
	}
	if in.System+in.User != ComposeFullPrompt("User: tricky input", settings, entries) {
		t.Fatalf("instructions pair does not reassemble into the full prompt")
	}
}
