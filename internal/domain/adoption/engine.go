package adoption

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoption/internal/domain/history"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/platform/apperr"
)

const (
	msgAccessDenied     = "Acesso negado!"
	msgOwnPet           = "Você não pode agendar uma visita com o seu próprio pet!"
	msgAlreadyScheduled = "Você já agendou uma visita para esse Pet!"
	msgScheduled        = "A visita foi agendada com sucesso, entre em contato com %s pelo telefone %s"
	msgConcluded        = "Parabens, o ciclo de adoção foi finalizado com sucesso!"
)

// PetStore es lo que el engine necesita de la persistencia de mascotas
// (pets.Repository lo cumple).
type PetStore interface {
	GetByID(ctx context.Context, id string) (pets.Pet, error)
	Update(ctx context.Context, p pets.Pet) error
}

// ContactLookup resuelve el contacto del dueño al confirmar la visita.
type ContactLookup interface {
	OwnerContact(ctx context.Context, userID string) (name, phone string, err error)
}

type HistoryRecorder interface {
	Record(ctx context.Context, in history.RecordInput) error
}

// TransitionObserver recibe las transiciones exitosas (métricas).
type TransitionObserver interface {
	ObserveTransition(name string)
}

type Engine struct {
	pets     PetStore
	contacts ContactLookup
	history  HistoryRecorder
	observer TransitionObserver
	now      func() time.Time
}

type Options struct {
	History  HistoryRecorder    // opcional
	Observer TransitionObserver // opcional
}

func NewEngine(store PetStore, contacts ContactLookup, opts Options) *Engine {
	return &Engine{
		pets:     store,
		contacts: contacts,
		history:  opts.History,
		observer: opts.Observer,
		now:      time.Now,
	}
}

// Confirmation es lo que se devuelve al agendar una visita.
type Confirmation struct {
	PetID      string
	OwnerName  string
	OwnerPhone string
	// PreviousAdopterUserID queda seteado si la visita pisó la de otro usuario.
	PreviousAdopterUserID string
}

func (c Confirmation) Message() string {
	return fmt.Sprintf(msgScheduled, c.OwnerName, c.OwnerPhone)
}

// Schedule agenda una visita: adopter = caller.
//
// No bloquea si ya hay otro adoptante (se pisa) ni si la adopción ya se
// concluyó. Lectura y escritura no son atómicas: dos Schedule concurrentes
// sobre la misma mascota resuelven last-write-wins en el repositorio.
func (e *Engine) Schedule(ctx context.Context, petID, callerUserID string) (Confirmation, error) {
	callerUserID = strings.TrimSpace(callerUserID)
	if callerUserID == "" {
		return Confirmation{}, apperr.Unauthorized(msgAccessDenied)
	}
	p, err := e.load(ctx, petID)
	if err != nil {
		return Confirmation{}, err
	}

	if p.IsOwnedBy(callerUserID) {
		return Confirmation{}, apperr.Forbidden(msgOwnPet)
	}
	if p.IsAdoptedBy(callerUserID) {
		return Confirmation{}, apperr.Conflict(msgAlreadyScheduled)
	}

	// el contacto se resuelve antes de escribir para no dejar un adoptante
	// sin confirmación
	name, phone, err := e.contacts.OwnerContact(ctx, p.OwnerUserID)
	if err != nil {
		return Confirmation{}, apperr.Internal(fmt.Errorf("owner contact: %w", err))
	}

	previous := p.AdopterUserID
	p.AdopterUserID = callerUserID
	p.UpdatedAt = e.now()

	if err := e.save(ctx, p); err != nil {
		return Confirmation{}, err
	}

	notes := ""
	if previous != "" {
		notes = "replaced adopter " + previous
	}
	e.record(ctx, p.ID, history.TypeVisitScheduled, callerUserID, notes)
	e.observe("scheduled")

	return Confirmation{
		PetID:                 p.ID,
		OwnerName:             name,
		OwnerPhone:            phone,
		PreviousAdopterUserID: previous,
	}, nil
}

// Conclude marca la mascota como no disponible. Solo el dueño; idempotente
// y sin exigir una visita previa.
func (e *Engine) Conclude(ctx context.Context, petID, callerUserID string) error {
	callerUserID = strings.TrimSpace(callerUserID)
	if callerUserID == "" {
		return apperr.Unauthorized(msgAccessDenied)
	}
	p, err := e.load(ctx, petID)
	if err != nil {
		return err
	}
	if !p.IsOwnedBy(callerUserID) {
		return apperr.Forbidden(pets.MsgNotAllowed)
	}

	p.Available = false
	p.UpdatedAt = e.now()

	if err := e.save(ctx, p); err != nil {
		return err
	}

	e.record(ctx, p.ID, history.TypeAdoptionConcluded, callerUserID, "")
	e.observe("concluded")
	return nil
}

func (e *Engine) load(ctx context.Context, petID string) (pets.Pet, error) {
	id, err := pets.ValidateID(petID)
	if err != nil {
		return pets.Pet{}, err
	}
	p, err := e.pets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return pets.Pet{}, apperr.NotFound(pets.MsgNotFound)
		}
		return pets.Pet{}, apperr.Internal(err)
	}
	return p, nil
}

func (e *Engine) save(ctx context.Context, p pets.Pet) error {
	if err := e.pets.Update(ctx, p); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.NotFound(pets.MsgNotFound)
		}
		return apperr.Internal(err)
	}
	return nil
}

func (e *Engine) record(ctx context.Context, petID string, t history.EntryType, actorID, notes string) {
	if e.history == nil {
		return
	}
	_ = e.history.Record(ctx, history.RecordInput{
		PetID:       petID,
		Type:        t,
		ActorUserID: actorID,
		Notes:       notes,
	})
}

func (e *Engine) observe(name string) {
	if e.observer != nil {
		e.observer.ObserveTransition(name)
	}
}
