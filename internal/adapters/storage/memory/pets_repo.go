package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/platform/apperr"
)

var (
	ErrNotFound = apperr.ErrNotFound
	ErrConflict = apperr.ErrConflict
)

type petRepo struct {
	mu   sync.RWMutex
	byID map[string]pets.Pet
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byID: make(map[string]pets.Pet),
	}
}

// clonePet evita compartir el slice de imágenes con el caller.
func clonePet(p pets.Pet) pets.Pet {
	p.Images = append([]string(nil), p.Images...)
	return p
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return ErrConflict
	}
	r.byID[p.ID] = clonePet(p)
	return nil
}

// Update pisa el registro completo (last-write-wins).
func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.byID[p.ID]
	if !exists {
		return ErrNotFound
	}
	// el dueño y la fecha de alta no se reescriben nunca
	p.OwnerUserID = current.OwnerUserID
	p.CreatedAt = current.CreatedAt
	r.byID[p.ID] = clonePet(p)
	return nil
}

func (r *petRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, ErrNotFound
	}
	return clonePet(p), nil
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	return r.list(func(pets.Pet) bool { return true }), nil
}

func (r *petRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]pets.Pet, error) {
	return r.list(func(p pets.Pet) bool { return p.OwnerUserID == ownerUserID }), nil
}

func (r *petRepo) ListByAdopter(ctx context.Context, adopterUserID string) ([]pets.Pet, error) {
	if strings.TrimSpace(adopterUserID) == "" {
		return []pets.Pet{}, nil
	}
	return r.list(func(p pets.Pet) bool { return p.AdopterUserID == adopterUserID }), nil
}

// list devuelve por created_at desc; a igual fecha, por id para que sea estable.
func (r *petRepo) list(keep func(pets.Pet) bool) []pets.Pet {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, p := range r.byID {
		if keep(p) {
			out = append(out, clonePet(p))
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
