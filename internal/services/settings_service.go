package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"promptdesk/internal/models"
	"promptdesk/internal/repositories"
)

// Canonical store keys. One key per record; earlier revisions of the product
// wrote overlapping copies under diverging names, which this layer collapses.
const (
	keySelectedModel         = "selectedModel"
	keyTemperature           = "temperature"
	keyMessageHistoryEnabled = "messageHistoryEnabled"
	keyMessageHistoryLength  = "messageHistoryLength"
	keyChatSettings          = "chatSettings"
)

// SettingsService reads and writes scalar preferences and the compound
// personality/response record. Every getter is total: absent or malformed
// stored values fall back to the defaults record, so the system is usable
// with an empty store.
type SettingsService interface {
	Startup(ctx context.Context)
	SelectedProvider() models.Provider
	SetSelectedProvider(raw string) error
	Temperature() float64
	SetTemperature(v float64) error
	MessageHistoryEnabled() bool
	SetMessageHistoryEnabled(v bool) error
	MessageHistoryLength() int
	SetMessageHistoryLength(v int) error
	ChatSettings() models.ChatSettings
	SetChatSettings(s models.ChatSettings) error
}

type settingsService struct {
	store    repositories.StoreRepository
	defaults models.SettingsDefaults
	ctx      context.Context
}

func NewSettingsService(store repositories.StoreRepository, defaults models.SettingsDefaults) SettingsService {
	return &settingsService{store: store, defaults: defaults}
}

func (s *settingsService) Startup(ctx context.Context) {
	s.ctx = ctx
}

func (s *settingsService) context() context.Context {
	if s.ctx != nil {
		return s.ctx
	}
	return context.Background()
}

func (s *settingsService) SelectedProvider() models.Provider {
	raw, ok := s.read(keySelectedModel)
	if !ok {
		return s.defaults.Provider
	}
	provider, err := models.ParseProvider(raw)
	if err != nil {
		log.Printf("settings: stored provider invalid (%v), using %s", err, s.defaults.Provider)
		return s.defaults.Provider
	}
	return provider
}

func (s *settingsService) SetSelectedProvider(raw string) error {
	provider, err := models.ParseProvider(raw)
	if err != nil {
		return err
	}
	return s.write(keySelectedModel, provider.String())
}

func (s *settingsService) Temperature() float64 {
	raw, ok := s.read(keyTemperature)
	if !ok {
		return s.defaults.Temperature
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("settings: stored temperature invalid (%v), using %g", err, s.defaults.Temperature)
		return s.defaults.Temperature
	}
	return clampFloat(v, 0, 1)
}

func (s *settingsService) SetTemperature(v float64) error {
	v = clampFloat(v, 0, 1)
	return s.write(keyTemperature, strconv.FormatFloat(v, 'g', -1, 64))
}

func (s *settingsService) MessageHistoryEnabled() bool {
	raw, ok := s.read(keyMessageHistoryEnabled)
	if !ok {
		return s.defaults.HistoryEnabled
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("settings: stored history toggle invalid (%v), using %t", err, s.defaults.HistoryEnabled)
		return s.defaults.HistoryEnabled
	}
	return v
}

func (s *settingsService) SetMessageHistoryEnabled(v bool) error {
	return s.write(keyMessageHistoryEnabled, strconv.FormatBool(v))
}

func (s *settingsService) MessageHistoryLength() int {
	raw, ok := s.read(keyMessageHistoryLength)
	if !ok {
		return s.defaults.HistoryLength
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("settings: stored history length invalid (%v), using %d", err, s.defaults.HistoryLength)
		return s.defaults.HistoryLength
	}
	return clampInt(v, 0, s.defaults.MaxHistoryLength)
}

func (s *settingsService) SetMessageHistoryLength(v int) error {
	v = clampInt(v, 0, s.defaults.MaxHistoryLength)
	return s.write(keyMessageHistoryLength, strconv.Itoa(v))
}

func (s *settingsService) ChatSettings() models.ChatSettings {
	raw, ok := s.read(keyChatSettings)
	if !ok {
		return models.DefaultChatSettings()
	}
	var settings models.ChatSettings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		log.Printf("settings: stored chat settings malformed (%v), using defaults", err)
		return models.DefaultChatSettings()
	}
	return settings
}

func (s *settingsService) SetChatSettings(settings models.ChatSettings) error {
	if settings.Response.LengthPreference == models.LengthCustom {
		settings.Response.MinWords = clampInt(settings.Response.MinWords, s.defaults.MinCustomWords, s.defaults.MaxCustomWords)
		settings.Response.MaxWords = clampInt(settings.Response.MaxWords, s.defaults.MinCustomWords, s.defaults.MaxCustomWords)
		// The bounds must stay ordered or the length guidance reads backwards.
		if settings.Response.MinWords > settings.Response.MaxWords {
			settings.Response.MaxWords = settings.Response.MinWords
		}
	}
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("service: encode chat settings: %w", err)
	}
	return s.write(keyChatSettings, string(data))
}

// read returns the stored value for key, treating store errors as absence so
// getters stay total.
func (s *settingsService) read(key string) (string, bool) {
	value, found, err := s.store.Get(s.context(), key)
	if err != nil {
		log.Printf("settings: reading %q: %v", key, err)
		return "", false
	}
	return value, found
}

func (s *settingsService) write(key, value string) error {
	if err := s.store.Set(s.context(), key, value); err != nil {
		return fmt.Errorf("service: persist %q: %w", key, err)
	}
	return nil
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
