package mocks

import (
	"context"
)

// StoreRepositoryMock implements repositories.StoreRepository. Unless a Func
// field is set, calls fall through to an in-memory map so service tests can
// exercise real read/write round trips without a database.
type StoreRepositoryMock struct {
	GetFunc    func(ctx context.Context, key string) (string, bool, error)
	SetFunc    func(ctx context.Context, key, value string) error
	DeleteFunc func(ctx context.Context, key string) error

	Values map[string]string
}

func NewStoreRepositoryMock() *StoreRepositoryMock {
	return &StoreRepositoryMock{Values: map[string]string{}}
}

func (m *StoreRepositoryMock) Get(ctx context.Context, key string) (string, bool, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	value, found := m.Values[key]
	return value, found, nil
}

func (m *StoreRepositoryMock) Set(ctx context.Context, key, value string) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value)
	}
	if m.Values == nil {
		m.Values = map[string]string{}
	}
	m.Values[key] = value
	return nil
}

func (m *StoreRepositoryMock) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	delete(m.Values, key)
	return nil
}
