package models

// Tone selects the personality guidance injected into prompts.
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneCasual       Tone = "casual"
	ToneFriendly     Tone = "friendly"
	ToneTechnical    Tone = "technical"
	ToneCustom       Tone = "custom"
)

// LengthPreference selects the response-length guidance injected into prompts.
type LengthPreference string

const (
	LengthBrief    LengthPreference = "brief"
	LengthBalanced LengthPreference = "balanced"
	LengthDetailed LengthPreference = "detailed"
	LengthCustom   LengthPreference = "custom"
)

type Personality struct {
	Tone       Tone   `json:"tone"`
	CustomTone string `json:"customTone"`
}

type ResponsePrefs struct {
	LengthPreference LengthPreference `json:"lengthPreference"`
	MinWords         int              `json:"minWords"`
	MaxWords         int              `json:"maxWords"`
}

// ChatSettings is the compound personality/response record persisted as one
// JSON blob under a single canonical store key.
type ChatSettings struct {
	Personality Personality   `json:"personality"`
	Response    ResponsePrefs `json:"response"`
}

// DefaultChatSettings returns the settings used when nothing is stored yet.
func DefaultChatSettings() ChatSettings {
	return ChatSettings{
		Personality: Personality{
			Tone:       ToneProfessional,
			CustomTone: "",
		},
		Response: ResponsePrefs{
			LengthPreference: LengthBalanced,
			MinWords:         50,
			MaxWords:         200,
		},
	}
}
