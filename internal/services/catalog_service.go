package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"promptdesk/internal/assets"
	"promptdesk/internal/models"
)

// CatalogService exposes the fixed provider catalog (embedded JSON asset) to
// the admin screen's provider picker.
type CatalogService interface {
	Startup(ctx context.Context) error
	ListProviders() ([]models.ProviderInfo, error)
	GetProvider(provider models.Provider) (*models.ProviderInfo, error)
}

type catalogService struct {
	settings SettingsService
	ctx      context.Context

	mu        sync.RWMutex
	order     []models.Provider
	providers map[models.Provider]models.ProviderInfo
}

type rawProviderFile struct {
	Providers []rawProviderEntry `json:"providers"`
}

type rawProviderEntry struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	APIName     string `json:"apiName"`
	EnvVar      string `json:"envVar"`
}

func NewCatalogService(settings SettingsService) CatalogService {
	return &catalogService{
		settings:  settings,
		providers: make(map[models.Provider]models.ProviderInfo),
	}
}

func (s *catalogService) Startup(ctx context.Context) error {
	s.ctx = ctx

	var parsed rawProviderFile
	if err := json.Unmarshal(assets.ProvidersData, &parsed); err != nil {
		return fmt.Errorf("parse providers asset: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = s.order[:0]
	for _, entry := range parsed.Providers {
		provider, err := models.ParseProvider(entry.ID)
		if err != nil {
			return fmt.Errorf("providers asset: %w", err)
		}
		s.order = append(s.order, provider)
		s.providers[provider] = models.ProviderInfo{
			ID:          provider,
			DisplayName: entry.DisplayName,
			APIName:     entry.APIName,
			EnvVar:      entry.EnvVar,
		}
	}
	return nil
}

func (s *catalogService) ListProviders() ([]models.ProviderInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	selected := s.settings.SelectedProvider()
	out := make([]models.ProviderInfo, 0, len(s.order))
	for _, provider := range s.order {
		info := s.providers[provider]
		info.Selected = provider == selected
		out = append(out, info)
	}
	return out, nil
}

func (s *catalogService) GetProvider(provider models.Provider) (*models.ProviderInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info, ok := s.providers[provider]
	if !ok {
		return nil, fmt.Errorf("provider %s not found", provider)
	}
	info.Selected = provider == s.settings.SelectedProvider()
	return &info, nil
}
