package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pet-adoption/internal/platform/apperr"
	"pet-adoption/internal/platform/logger"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

type RecordInput struct {
	PetID       string
	Type        EntryType
	ActorUserID string
	Notes       string
}

// Record agrega una entrada. Los errores se loguean acá; los callers los
// ignoran (el historial no bloquea la operación principal).
func (s *Service) Record(ctx context.Context, in RecordInput) error {
	petID := strings.TrimSpace(in.PetID)
	actor := strings.TrimSpace(in.ActorUserID)
	if petID == "" || actor == "" || !in.Type.Valid() {
		return apperr.Validation(fmt.Sprintf("history: invalid entry %q", in.Type))
	}

	e := Entry{
		ID:          uuid.NewString(),
		PetID:       petID,
		Type:        in.Type,
		ActorUserID: actor,
		OccurredAt:  s.now(),
		Notes:       strings.TrimSpace(in.Notes),
	}

	if err := s.repo.Create(ctx, e); err != nil {
		s.log.Warn("history record failed", map[string]any{
			"pet_id": petID,
			"type":   string(in.Type),
			"err":    err,
		})
		return apperr.Internal(err)
	}
	return nil
}

func (s *Service) ListByPet(ctx context.Context, petID string, filter ListFilter) ([]Entry, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultLimit
	}
	if filter.Limit > MaxLimit {
		filter.Limit = MaxLimit
	}
	items, err := s.repo.ListByPet(ctx, strings.TrimSpace(petID), filter)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return items, nil
}
