package history

import "context"

type Repository interface {
	Create(ctx context.Context, e Entry) error
	// ListByPet devuelve las entradas más recientes primero.
	ListByPet(ctx context.Context, petID string, filter ListFilter) ([]Entry, error)
}

type ListFilter struct {
	Types []EntryType
	Limit int
}

const (
	DefaultLimit = 50
	MaxLimit     = 200
)
