package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	graphnode "github.com/SportsToken/AthleteX-Dex-Subgraph/graphnode"
)

// MemoryStore keeps entities as serialized rows so that every Load hands back
// an independent copy, the same isolation a real backend gives.
type MemoryStore struct {
	registry *Registry
	tables   map[string]map[string][]byte
}

type Registry = graphnode.Registry

func NewMemoryStore(registry *Registry) *MemoryStore {
	return &MemoryStore{
		registry: registry,
		tables:   make(map[string]map[string][]byte),
	}
}

func (s *MemoryStore) Load(ctx context.Context, entity graphnode.Entity) error {
	table, err := s.registry.TableName(entity)
	if err != nil {
		return err
	}

	row, ok := s.tables[table][entity.GetID()]
	if !ok {
		entity.SetExists(false)
		return nil
	}

	if err := json.Unmarshal(row, entity); err != nil {
		return fmt.Errorf("decoding %s row %s: %w", table, entity.GetID(), err)
	}
	entity.SetExists(true)
	return nil
}

func (s *MemoryStore) Save(ctx context.Context, entity graphnode.Entity) error {
	table, err := s.registry.TableName(entity)
	if err != nil {
		return err
	}

	row, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("encoding %s row %s: %w", table, entity.GetID(), err)
	}

	if s.tables[table] == nil {
		s.tables[table] = make(map[string][]byte)
	}
	s.tables[table][entity.GetID()] = row
	entity.SetExists(true)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, entity graphnode.Entity) error {
	table, err := s.registry.TableName(entity)
	if err != nil {
		return err
	}
	delete(s.tables[table], entity.GetID())
	entity.SetExists(false)
	return nil
}

func (s *MemoryStore) LoadAllDistinct(ctx context.Context, model graphnode.Entity) ([]graphnode.Entity, error) {
	table, err := s.registry.TableName(model)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(s.tables[table]))
	for id := range s.tables[table] {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]graphnode.Entity, 0, len(ids))
	for _, id := range ids {
		ent, err := s.registry.NewInstance(table)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(s.tables[table][id], ent); err != nil {
			return nil, fmt.Errorf("decoding %s row %s: %w", table, id, err)
		}
		ent.SetExists(true)
		out = append(out, ent)
	}
	return out, nil
}

func (s *MemoryStore) Close() error {
	return nil
}
