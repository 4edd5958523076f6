package pets

import "context"

// Repository persiste mascotas. Los listados vienen ordenados por
// CreatedAt descendente. Get/Update/Delete devuelven apperr.ErrNotFound.
// Update pisa todas las columnas mutables (last-write-wins).
type Repository interface {
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)
	List(ctx context.Context) ([]Pet, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error)
	ListByAdopter(ctx context.Context, adopterUserID string) ([]Pet, error)
	Update(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id string) error
}
