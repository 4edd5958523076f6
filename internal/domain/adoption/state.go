package adoption

import "pet-adoption/internal/domain/pets"

// State es la etapa de una mascota en el ciclo de adopción. Se deriva de
// Available/AdopterUserID; no se persiste aparte.
type State string

const (
	StateAvailable State = "available"
	StateReserved  State = "reserved"
	StateConcluded State = "concluded"
)

// StateOf: concluida gana sobre reservada (se puede concluir sin visita).
func StateOf(p pets.Pet) State {
	switch {
	case !p.Available:
		return StateConcluded
	case p.AdopterUserID != "":
		return StateReserved
	default:
		return StateAvailable
	}
}
