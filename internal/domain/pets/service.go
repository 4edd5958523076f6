package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-adoption/internal/domain/history"
	"pet-adoption/internal/platform/apperr"
	"pet-adoption/internal/ports/images"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"
)

const (
	MsgInvalidID  = "ID inválido!"
	MsgNotFound   = "Pet não encontrado!"
	MsgNotAllowed = "Houve um problema em processar a sua solicitação, tente novamente mais tarde!"

	msgNameRequired   = "O nome é obrigatório"
	msgAgeRequired    = "A idade é obrigatória"
	msgAgePositive    = "A idade deve ser um número inteiro positivo"
	msgWeightRequired = "O peso é obrigatório"
	msgWeightPositive = "O peso deve ser um número positivo"
	msgColorRequired  = "A cor é obrigatória"
	msgImageRequired  = "A imagem é obrigatória"
	msgAllRequired    = "Todos os campos são obrigatórios"
)

// HistoryRecorder registra entradas del historial de la mascota.
type HistoryRecorder interface {
	Record(ctx context.Context, in history.RecordInput) error
}

type Service struct {
	repo    Repository
	images  images.Store
	history HistoryRecorder
	now     func() time.Time
}

type Options struct {
	Images  images.Store
	History HistoryRecorder // opcional
}

func NewService(repo Repository, opts Options) *Service {
	return &Service{
		repo:    repo,
		images:  opts.Images,
		history: opts.History,
		now:     time.Now,
	}
}

type CreateInput struct {
	Attributes
	Uploads []images.Upload
}

type UpdateInput struct {
	Attributes
	Uploads []images.Upload
}

// ValidateID rechaza ids que no son uuid (422 "ID inválido!").
func ValidateID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return "", apperr.Validation(MsgInvalidID)
	}
	return id, nil
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Pet, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return Pet{}, apperr.Unauthorized("Acesso negado!")
	}

	attrs := normalize(in.Attributes)
	if err := validateAttributes(attrs, ""); err != nil {
		return Pet{}, err
	}
	refs, err := s.storeImages(ctx, in.Uploads)
	if err != nil {
		return Pet{}, err
	}

	now := s.now()
	p := Pet{
		ID:          uuid.NewString(),
		Name:        attrs.Name,
		Age:         attrs.Age,
		Weight:      attrs.Weight,
		Color:       attrs.Color,
		Images:      refs,
		OwnerUserID: ownerUserID,
		Available:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, apperr.Internal(err)
	}

	s.record(ctx, p.ID, history.TypePetCreated, ownerUserID, "")
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return items, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id, err := ValidateID(id)
	if err != nil {
		return Pet{}, err
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Pet{}, apperr.NotFound(MsgNotFound)
		}
		return Pet{}, apperr.Internal(err)
	}
	return p, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	items, err := s.repo.ListByOwner(ctx, strings.TrimSpace(ownerUserID))
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return items, nil
}

func (s *Service) ListByAdopter(ctx context.Context, adopterUserID string) ([]Pet, error) {
	items, err := s.repo.ListByAdopter(ctx, strings.TrimSpace(adopterUserID))
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return items, nil
}

// Update reemplaza atributos e imágenes completos (no agrega imágenes).
// Orden de chequeos: existe -> es el dueño -> campos -> imágenes.
func (s *Service) Update(ctx context.Context, id, callerUserID string, in UpdateInput) error {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !p.IsOwnedBy(callerUserID) {
		return apperr.Forbidden(MsgNotAllowed)
	}

	attrs := normalize(in.Attributes)
	if err := validateAttributes(attrs, msgAllRequired); err != nil {
		return err
	}
	refs, err := s.storeImages(ctx, in.Uploads)
	if err != nil {
		return err
	}

	p.Name = attrs.Name
	p.Age = attrs.Age
	p.Weight = attrs.Weight
	p.Color = attrs.Color
	p.Images = refs
	p.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, p); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.NotFound(MsgNotFound)
		}
		return apperr.Internal(err)
	}

	s.record(ctx, p.ID, history.TypePetUpdated, callerUserID, "")
	return nil
}

func (s *Service) Remove(ctx context.Context, id, callerUserID string) error {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !p.IsOwnedBy(callerUserID) {
		return apperr.Forbidden(MsgNotAllowed)
	}

	if err := s.repo.Delete(ctx, p.ID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.NotFound(MsgNotFound)
		}
		return apperr.Internal(err)
	}
	return nil
}

func normalize(a Attributes) Attributes {
	a.Name = strings.TrimSpace(a.Name)
	a.Color = strings.TrimSpace(a.Color)
	return a
}

// validateAttributes valida en el orden name, age, weight, color.
// allRequired != "" reemplaza los mensajes de "obligatorio" (update).
func validateAttributes(a Attributes, allRequired string) error {
	msg := func(m string) string {
		if allRequired != "" {
			return allRequired
		}
		return m
	}

	checks := []struct {
		value any
		rules []validation.Rule
	}{
		{a.Name, []validation.Rule{validation.Required.Error(msg(msgNameRequired))}},
		{a.Age, []validation.Rule{
			validation.Required.Error(msg(msgAgeRequired)),
			validation.Min(1).Error(msgAgePositive),
		}},
		{a.Weight, []validation.Rule{
			validation.Required.Error(msg(msgWeightRequired)),
			validation.Min(0.0).Exclusive().Error(msgWeightPositive),
		}},
		{a.Color, []validation.Rule{validation.Required.Error(msg(msgColorRequired))}},
	}
	for _, c := range checks {
		if err := validation.Validate(c.value, c.rules...); err != nil {
			return apperr.Validation(err.Error())
		}
	}
	return nil
}

// storeImages exige al menos una imagen y valida todas las extensiones
// antes de guardar la primera.
func (s *Service) storeImages(ctx context.Context, uploads []images.Upload) ([]string, error) {
	if len(uploads) == 0 {
		return nil, apperr.Validation(msgImageRequired)
	}
	for _, up := range uploads {
		if err := images.ValidateExtension(up.Filename); err != nil {
			return nil, err
		}
	}
	if s.images == nil {
		return nil, apperr.Internal(errors.New("pets: image store not configured"))
	}

	refs := make([]string, 0, len(uploads))
	for _, up := range uploads {
		ref, err := s.images.Save(ctx, images.ResourcePets, up)
		if err != nil {
			if apperr.KindOf(err) == apperr.KindValidation {
				return nil, err
			}
			return nil, apperr.Internal(fmt.Errorf("save image %q: %w", up.Filename, err))
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// record es best-effort: una falla del historial no revierte la operación.
func (s *Service) record(ctx context.Context, petID string, t history.EntryType, actorID, notes string) {
	if s.history == nil {
		return
	}
	_ = s.history.Record(ctx, history.RecordInput{
		PetID:       petID,
		Type:        t,
		ActorUserID: actorID,
		Notes:       notes,
	})
}
