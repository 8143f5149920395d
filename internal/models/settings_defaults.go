package models

// SettingsDefaults is the immutable fallback record applied whenever the
// store has no value (or a malformed one) for a scalar setting. It is built
// once at startup and passed explicitly to the services that need it, rather
// than re-read ad hoc at call sites.
type SettingsDefaults struct {
	Provider         Provider
	Temperature      float64
	HistoryEnabled   bool
	HistoryLength    int
	MaxHistoryLength int
	MinCustomWords   int
	MaxCustomWords   int
}

// DefaultSettings carries the hard-coded defaults that keep the system usable
// with an empty store.
var DefaultSettings = SettingsDefaults{
	Provider:         ProviderGemini,
	Temperature:      0.7,
	HistoryEnabled:   false,
	HistoryLength:    5,
	MaxHistoryLength: 10,
	MinCustomWords:   10,
	MaxCustomWords:   1000,
}
