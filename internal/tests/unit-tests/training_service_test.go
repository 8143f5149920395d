package unit_tests

import (
	"context"
	"errors"
	"testing"

	"promptdesk/internal/models"
	"promptdesk/internal/services"
	"promptdesk/internal/tests/mocks"
	"promptdesk/internal/tests/utils"
)

func TestTrainingService_List_EmptyStore(t *testing.T) {
	service := services.NewTrainingService(mocks.NewStoreRepositoryMock())

	entries := service.List()
	if entries == nil {
		t.Fatal("expected empty slice, got nil")
	}
	utils.Equal(t, len(entries), 0)
}

func TestTrainingService_List_MalformedBlobFailsOpen(t *testing.T) {
	store := mocks.NewStoreRepositoryMock()
	store.Values["chatTrainingData"] = "[{broken"
	service := services.NewTrainingService(store)

	utils.Equal(t, len(service.List()), 0)
}

func TestTrainingService_List_StoreErrorFailsOpen(t *testing.T) {
	store := &mocks.StoreRepositoryMock{
		GetFunc: func(ctx context.Context, key string) (string, bool, error) {
			return "", false, errors.New("database error")
		},
	}
	service := services.NewTrainingService(store)

	utils.Equal(t, len(service.List()), 0)
}

func TestTrainingService_SaveAndList_RoundTrip(t *testing.T) {
	service := services.NewTrainingService(mocks.NewStoreRepositoryMock())

	entries := []models.TrainingEntry{
		{ID: "a", Context: "Always cite sources", IsEnabled: true, Priority: models.PriorityHigh},
		{ID: "b", Context: "Prefer metric units", IsEnabled: false, Priority: models.PriorityLow},
	}
	err := service.Save(entries)
	utils.NilError(t, err)

	got := service.List()
	utils.Equal(t, got, entries)
}

func TestTrainingService_Add_Defaults(t *testing.T) {
	service := services.NewTrainingService(mocks.NewStoreRepositoryMock())

	entry, err := service.Add("  Be concise  ")
	utils.NilError(t, err)
	if entry.ID == "" {
		t.Fatal("expected generated ID")
	}
	utils.Equal(t, entry.Context, "Be concise")
	utils.Equal(t, entry.IsEnabled, true)
	utils.Equal(t, entry.Priority, models.PriorityMedium)

	listed := service.List()
	utils.Equal(t, len(listed), 1)
	utils.Equal(t, listed[0], *entry)
}

func TestTrainingService_Add_RejectsBlankContext(t *testing.T) {
	service := services.NewTrainingService(mocks.NewStoreRepositoryMock())

	if _, err := service.Add("   "); err == nil {
		t.Fatal("expected error for blank context")
	}
	utils.Equal(t, len(service.List()), 0)
}

func TestTrainingService_UpdateContext_PreservesID(t *testing.T) {
	service := services.NewTrainingService(mocks.NewStoreRepositoryMock())
	entry, err := service.Add("old context")
	utils.NilError(t, err)

	updated, err := service.UpdateContext(entry.ID, "new context")
	utils.NilError(t, err)
	utils.Equal(t, updated.ID, entry.ID)
	utils.Equal(t, updated.Context, "new context")
	utils.Equal(t, service.List()[0].Context, "new context")
}

func TestTrainingService_UpdateContext_UnknownID(t *testing.T) {
	service := services.NewTrainingService(mocks.NewStoreRepositoryMock())

	_, err := service.UpdateContext("missing", "text")
	utils.Equal(t, errors.Is(err, services.ErrTrainingEntryNotFound), true)
}

func TestTrainingService_SetEnabled_Toggles(t *testing.T) {
	service := services.NewTrainingService(mocks.NewStoreRepositoryMock())
	entry, err := service.Add("context")
	utils.NilError(t, err)

	updated, err := service.SetEnabled(entry.ID, false)
	utils.NilError(t, err)
	utils.Equal(t, updated.IsEnabled, false)
	utils.Equal(t, service.List()[0].IsEnabled, false)
}

func TestTrainingService_SetPriority_Valid(t *testing.T) {
	service := services.NewTrainingService(mocks.NewStoreRepositoryMock())
	entry, err := service.Add("context")
	utils.NilError(t, err)

	updated, err := service.SetPriority(entry.ID, models.PriorityHigh)
	utils.NilError(t, err)
	utils.Equal(t, updated.Priority, models.PriorityHigh)
}

func TestTrainingService_SetPriority_RejectsUnknown(t *testing.T) {
	service := services.NewTrainingService(mocks.NewStoreRepositoryMock())
	entry, err := service.Add("context")
	utils.NilError(t, err)

	if _, err := service.SetPriority(entry.ID, models.Priority("urgent")); err == nil {
		t.Fatal("expected error for unknown priority")
	}
	utils.Equal(t, service.List()[0].Priority, models.PriorityMedium)
}

func TestTrainingService_Remove(t *testing.T) {
	service := services.NewTrainingService(mocks.NewStoreRepositoryMock())
	first, err := service.Add("first")
	utils.NilError(t, err)
	_, err = service.Add("second")
	utils.NilError(t, err)

	err = service.Remove(first.ID)
	utils.NilError(t, err)

	remaining := service.List()
	utils.Equal(t, len(remaining), 1)
	utils.Equal(t, remaining[0].Context, "second")
}

func TestTrainingService_Remove_UnknownID(t *testing.T) {
	service := services.NewTrainingService(mocks.NewStoreRepositoryMock())

	err := service.Remove("missing")
	utils.Equal(t, errors.Is(err, services.ErrTrainingEntryNotFound), true)
}

func TestTrainingService_Save_PersistenceErrorSurfaces(t *testing.T) {
	store := &mocks.StoreRepositoryMock{
		SetFunc: func(ctx context.Context, key, value string) error {
			return errors.New("database error")
		},
	}
	service := services.NewTrainingService(store)

	if err := service.Save([]models.TrainingEntry{{ID: "a"}}); err == nil {
		t.Fatal("expected persistence error to surface")
	}
}
