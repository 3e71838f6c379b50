package catalog

import "github.com/paintmyrock/crazyfun/internal/game"

// Intner is the random source used for picking entities. *rand.Rand satisfies it.
type Intner interface {
	Intn(n int) int
}

// Registry indexes a validated entity list.
type Registry struct {
	entities []game.BaseEntity
	byID     map[string]int
}

// NewRegistry validates entities and builds a registry over a private copy.
func NewRegistry(entities []game.BaseEntity) (*Registry, error) {
	if err := Validate(entities); err != nil {
		return nil, err
	}
	r := &Registry{
		entities: append([]game.BaseEntity(nil), entities...),
		byID:     make(map[string]int, len(entities)),
	}
	for i, e := range r.entities {
		r.byID[e.ID] = i
	}
	return r, nil
}

// LoadDefault builds a registry from the embedded entity list.
func LoadDefault() (*Registry, error) {
	entities, err := Default()
	if err != nil {
		return nil, err
	}
	return NewRegistry(entities)
}

// All returns every entity in catalog order.
func (r *Registry) All() []game.BaseEntity {
	return append([]game.BaseEntity(nil), r.entities...)
}

// Get returns the entity with the given id.
func (r *Registry) Get(id string) (game.BaseEntity, bool) {
	i, ok := r.byID[id]
	if !ok {
		return game.BaseEntity{}, false
	}
	return r.entities[i], true
}

func (r *Registry) Count() int { return len(r.entities) }

// PairCount is the number of distinct unordered entity pairs.
func (r *Registry) PairCount() int {
	n := len(r.entities)
	return n * (n - 1) / 2
}

// RandomPair picks two distinct entities.
func (r *Registry) RandomPair(rng Intner) (game.BaseEntity, game.BaseEntity) {
	n := len(r.entities)
	i := rng.Intn(n)
	j := rng.Intn(n - 1)
	if j >= i {
		j++
	}
	return r.entities[i], r.entities[j]
}
