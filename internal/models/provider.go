package models

import "fmt"

// Provider identifies a hosted LLM completion service.
type Provider string

const (
	ProviderGemini  Provider = "gemini"
	ProviderClaude  Provider = "claude"
	ProviderChatGPT Provider = "chatgpt"
)

// Providers lists every supported provider in display order.
func Providers() []Provider {
	return []Provider{ProviderGemini, ProviderClaude, ProviderChatGPT}
}

// ParseProvider validates a raw provider value, typically one read back from
// the store. Unrecognized values are rejected here so callers decide the
// fallback instead of the router defaulting silently.
func ParseProvider(raw string) (Provider, error) {
	switch Provider(raw) {
	case ProviderGemini, ProviderClaude, ProviderChatGPT:
		return Provider(raw), nil
	}
	return "", fmt.Errorf("unknown provider %q", raw)
}

func (p Provider) String() string {
	return string(p)
}
