package storage

import (
	"context"
)

type InMemStorage struct {
	records map[string][]byte
}

func NewInMemStorage() *InMemStorage {
	return &InMemStorage{records: make(map[string][]byte)}
}

func (s *InMemStorage) Get(_ context.Context, key string) ([]byte, bool, error) {
	value, ok := s.records[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

func (s *InMemStorage) Set(_ context.Context, key string, value []byte) error {
	s.records[key] = append([]byte(nil), value...)
	return nil
}

func (s *InMemStorage) Delete(_ context.Context, key string) error {
	delete(s.records, key)
	return nil
}

func (s *InMemStorage) Close() error {
	return nil
}
