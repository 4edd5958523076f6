package history

import "time"

// Entry es una línea del historial de una mascota. Append-only: sobrevive al
// adoptante que reemplaza una visita anterior.
type Entry struct {
	ID    string
	PetID string

	Type        EntryType
	ActorUserID string
	OccurredAt  time.Time
	Notes       string
}
