package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"promptdesk/internal/models"
	"promptdesk/internal/repositories"
)

// Canonical store key for the training list. Earlier revisions wrote the list
// under two diverging keys; this layer keeps exactly one.
const keyTrainingData = "chatTrainingData"

// ErrTrainingEntryNotFound is returned by mutations targeting an unknown ID.
var ErrTrainingEntryNotFound = errors.New("training entry not found")

// TrainingService owns the list of training entries. Reads fail open to an
// empty list; every mutation persists the full list as one JSON blob.
type TrainingService interface {
	Startup(ctx context.Context)
	List() []models.TrainingEntry
	Save(entries []models.TrainingEntry) error
	Add(contextText string) (*models.TrainingEntry, error)
	UpdateContext(id, contextText string) (*models.TrainingEntry, error)
	SetEnabled(id string, enabled bool) (*models.TrainingEntry, error)
	SetPriority(id string, priority models.Priority) (*models.TrainingEntry, error)
	Remove(id string) error
}

type trainingService struct {
	store repositories.StoreRepository
	ctx   context.Context
}

func NewTrainingService(store repositories.StoreRepository) TrainingService {
	return &trainingService{store: store}
}

func (s *trainingService) Startup(ctx context.Context) {
	s.ctx = ctx
}

func (s *trainingService) context() context.Context {
	if s.ctx != nil {
		return s.ctx
	}
	return context.Background()
}

func (s *trainingService) List() []models.TrainingEntry {
	raw, found, err := s.store.Get(s.context(), keyTrainingData)
	if err != nil {
		log.Printf("training: reading stored entries: %v", err)
		return []models.TrainingEntry{}
	}
	if !found {
		return []models.TrainingEntry{}
	}

	var entries []models.TrainingEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		log.Printf("training: stored entries malformed (%v), starting empty", err)
		return []models.TrainingEntry{}
	}
	if entries == nil {
		entries = []models.TrainingEntry{}
	}
	return entries
}

func (s *trainingService) Save(entries []models.TrainingEntry) error {
	if entries == nil {
		entries = []models.TrainingEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("service: encode training entries: %w", err)
	}
	if err := s.store.Set(s.context(), keyTrainingData, string(data)); err != nil {
		return fmt.Errorf("service: persist training entries: %w", err)
	}
	return nil
}

func (s *trainingService) Add(contextText string) (*models.TrainingEntry, error) {
	contextText = strings.TrimSpace(contextText)
	if contextText == "" {
		return nil, errors.New("training context is required")
	}

	entry := models.TrainingEntry{
		ID:        uuid.NewString(),
		Context:   contextText,
		IsEnabled: true,
		Priority:  models.PriorityMedium,
	}

	entries := append(s.List(), entry)
	if err := s.Save(entries); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *trainingService) UpdateContext(id, contextText string) (*models.TrainingEntry, error) {
	contextText = strings.TrimSpace(contextText)
	if contextText == "" {
		return nil, errors.New("training context is required")
	}
	return s.mutate(id, func(e *models.TrainingEntry) {
		e.Context = contextText
	})
}

func (s *trainingService) SetEnabled(id string, enabled bool) (*models.TrainingEntry, error) {
	return s.mutate(id, func(e *models.TrainingEntry) {
		e.IsEnabled = enabled
	})
}

func (s *trainingService) SetPriority(id string, priority models.Priority) (*models.TrainingEntry, error) {
	if _, known := priority.Rank(); !known {
		return nil, fmt.Errorf("unknown priority %q", priority)
	}
	return s.mutate(id, func(e *models.TrainingEntry) {
		e.Priority = priority
	})
}

func (s *trainingService) Remove(id string) error {
	entries := s.List()
	kept := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return ErrTrainingEntryNotFound
	}
	return s.Save(kept)
}

// mutate applies fn to the entry with the given ID in place (ID preserved)
// and persists the whole list.
func (s *trainingService) mutate(id string, fn func(*models.TrainingEntry)) (*models.TrainingEntry, error) {
	entries := s.List()
	for i := range entries {
		if entries[i].ID != id {
			continue
		}
		fn(&entries[i])
		if err := s.Save(entries); err != nil {
			return nil, err
		}
		updated := entries[i]
		return &updated, nil
	}
	return nil, ErrTrainingEntryNotFound
}
