package pets

import "time"

// Pet es un aviso de adopción.
// OwnerUserID no cambia nunca; AdopterUserID vacío = sin visita agendada;
// Available solo pasa de true a false (al concluir la adopción).
type Pet struct {
	ID string

	Name   string
	Age    int
	Weight float64
	Color  string
	Images []string // al menos una referencia

	OwnerUserID   string
	AdopterUserID string
	Available     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Attributes son los campos editables por el dueño.
type Attributes struct {
	Name   string
	Age    int
	Weight float64
	Color  string
}
