package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"pet-adoption/internal/domain/history"
)

type historyRepo struct {
	mu    sync.RWMutex
	byPet map[string][]history.Entry
}

func NewHistoryRepo() history.Repository {
	return &historyRepo{
		byPet: make(map[string][]history.Entry),
	}
}

func (r *historyRepo) Create(ctx context.Context, e history.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" || e.PetID == "" {
		return errors.New("entry id and pet id required")
	}
	r.byPet[e.PetID] = append(r.byPet[e.PetID], e)
	return nil
}

func (r *historyRepo) ListByPet(ctx context.Context, petID string, filter history.ListFilter) ([]history.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := filter.Limit
	if limit <= 0 {
		limit = history.DefaultLimit
	}

	allowed := map[history.EntryType]bool{}
	for _, t := range filter.Types {
		allowed[t] = true
	}

	// recorrido inverso: a igual instante gana la última insertada
	entries := r.byPet[petID]
	out := make([]history.Entry, 0)
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if len(allowed) > 0 && !allowed[e.Type] {
			continue
		}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OccurredAt.After(out[j].OccurredAt)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
