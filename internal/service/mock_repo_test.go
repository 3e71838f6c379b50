package service

import (
	"sync"

	"github.com/paintmyrock/crazyfun/internal/game"
	"github.com/paintmyrock/crazyfun/internal/storage"
)

type mockRepo struct {
	mu         sync.Mutex
	nextID     uint
	trainers   map[string]*game.Trainer
	collection map[uint][]*game.SavedFusion
	codex      map[string]*game.CodexEntry
	upserts    int
	txs        int
	failSave   error
	failRecord error
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		trainers:   map[string]*game.Trainer{},
		collection: map[uint][]*game.SavedFusion{},
		codex:      map[string]*game.CodexEntry{},
	}
}

func (m *mockRepo) CreateTrainer(t *game.Trainer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	t.ID = m.nextID
	cp := *t
	m.trainers[t.TrainerUUID] = &cp
	return nil
}

func (m *mockRepo) GetTrainerByUUID(uuid string) (*game.Trainer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.trainers[uuid]
	if !ok {
		return nil, storage.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (m *mockRepo) SaveTrainer(t *game.Trainer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSave != nil {
		return m.failSave
	}
	cp := *t
	m.trainers[t.TrainerUUID] = &cp
	return nil
}

func (m *mockRepo) DeleteTrainer(uuid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.trainers[uuid]
	if !ok {
		return storage.ErrNotFound
	}
	delete(m.collection, t.ID)
	delete(m.trainers, uuid)
	return nil
}

func (m *mockRepo) find(trainerID uint, key string) *game.SavedFusion {
	for _, f := range m.collection[trainerID] {
		if f.FusionKey == key {
			return f
		}
	}
	return nil
}

func (m *mockRepo) AddSavedFusion(f *game.SavedFusion) (*game.SavedFusion, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing := m.find(f.TrainerID, f.FusionKey); existing != nil {
		cp := *existing
		return &cp, false, nil
	}
	m.nextID++
	f.ID = m.nextID
	cp := *f
	m.collection[f.TrainerID] = append(m.collection[f.TrainerID], &cp)
	return f, true, nil
}

func (m *mockRepo) GetSavedFusion(trainerID uint, key string) (*game.SavedFusion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f := m.find(trainerID, key)
	if f == nil {
		return nil, storage.ErrNotFound
	}
	cp := *f
	return &cp, nil
}

func (m *mockRepo) ListCollection(trainerID uint) ([]game.SavedFusion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []game.SavedFusion
	for _, f := range m.collection[trainerID] {
		out = append(out, *f)
	}
	return out, nil
}

func (m *mockRepo) RemoveSavedFusion(trainerID uint, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	list := m.collection[trainerID]
	for i, f := range list {
		if f.FusionKey == key {
			m.collection[trainerID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

func (m *mockRepo) RecordBattleResult(trainerID uint, key string, won bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failRecord != nil {
		return m.failRecord
	}
	f := m.find(trainerID, key)
	if f == nil {
		return storage.ErrNotFound
	}
	if won {
		f.Wins++
	} else {
		f.Losses++
	}
	return nil
}

func (m *mockRepo) CollectionTotals(trainerID uint) (int, int, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var wins, losses int
	for _, f := range m.collection[trainerID] {
		wins += f.Wins
		losses += f.Losses
	}
	return len(m.collection[trainerID]), wins, losses, nil
}

func (m *mockRepo) UpsertCodexEntry(e *game.CodexEntry) (*game.CodexEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upserts++
	if existing, ok := m.codex[e.FusionKey]; ok {
		existing.Discoveries++
		cp := *existing
		return &cp, nil
	}
	cp := *e
	cp.Discoveries = 1
	m.codex[e.FusionKey] = &cp
	out := cp
	return &out, nil
}

func (m *mockRepo) ListCodex() ([]game.CodexEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []game.CodexEntry
	for _, e := range m.codex {
		out = append(out, *e)
	}
	return out, nil
}

// Transaction restores trainers and the collection when fn fails.
func (m *mockRepo) Transaction(fn func(tx storage.Repository) error) error {
	m.mu.Lock()
	m.txs++
	trainers := make(map[string]game.Trainer, len(m.trainers))
	for k, t := range m.trainers {
		trainers[k] = *t
	}
	collection := make(map[uint][]game.SavedFusion, len(m.collection))
	for id, fs := range m.collection {
		for _, f := range fs {
			collection[id] = append(collection[id], *f)
		}
	}
	m.mu.Unlock()

	if err := fn(m); err != nil {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.trainers = map[string]*game.Trainer{}
		for k, t := range trainers {
			cp := t
			m.trainers[k] = &cp
		}
		m.collection = map[uint][]*game.SavedFusion{}
		for id, fs := range collection {
			for i := range fs {
				m.collection[id] = append(m.collection[id], &fs[i])
			}
		}
		return err
	}
	return nil
}
