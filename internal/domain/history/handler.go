package history

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/apperr"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

// PetOwnerLookup evita importar pets (pets ya importa history).
type PetOwnerLookup interface {
	OwnerOf(ctx context.Context, petID string) (string, error)
}

const msgNotOwner = "Houve um problema em processar a sua solicitação, tente novamente mais tarde!"

// RegisterRoutes recibe el subrouter montado en /pets.
func RegisterRoutes(pr chi.Router, svc *Service, pets PetOwnerLookup, requireAuth func(http.Handler) http.Handler, log logger.Logger) {
	if log == nil {
		log = logger.NewNop()
	}
	pr.With(requireAuth).Get("/{id}/history", listHistoryHandler(svc, pets, log))
}

// entryResponse es una entrada del historial devuelta por la API.
type entryResponse struct {
	ID          string    `json:"_id"`
	Pet         string    `json:"pet"`
	Type        EntryType `json:"type" enums:"PET_CREATED,PET_UPDATED,VISIT_SCHEDULED,ADOPTION_CONCLUDED"`
	ActorUserID string    `json:"actor"`
	OccurredAt  time.Time `json:"occurredAt"`
	Notes       string    `json:"notes,omitempty"`
}

type historyEnvelope struct {
	History []entryResponse `json:"history"`
}

// listHistoryHandler godoc
// @Summary Historial de una mascota
// @Description Solo el dueño. Entradas más recientes primero.
// @Tags history
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID de la mascota"
// @Param limit query int false "Máximo de entradas (1-200). Por defecto 50"
// @Param types query string false "Lista CSV de tipos (ej: VISIT_SCHEDULED,ADOPTION_CONCLUDED)"
// @Success 200 {object} historyEnvelope
// @Failure 400 {object} respond.MessageBody "Token inválido!"
// @Failure 401 {object} respond.MessageBody "Acesso negado!"
// @Failure 404 {object} respond.MessageBody "Pet não encontrado!"
// @Failure 422 {object} respond.MessageBody "ID inválido / no es el dueño"
// @Router /pets/{id}/history [get]
func listHistoryHandler(svc *Service, pets PetOwnerLookup, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		petID := chi.URLParam(r, "id")
		owner, err := pets.OwnerOf(r.Context(), petID)
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		if strings.TrimSpace(owner) == "" || owner != strings.TrimSpace(claims.UserID) {
			respond.Error(w, r, log, apperr.Forbidden(msgNotOwner))
			return
		}

		items, err := svc.ListByPet(r.Context(), petID, parseListFilter(r))
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}

		out := make([]entryResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEntryResponse(e))
		}
		respond.JSON(w, http.StatusOK, historyEnvelope{History: out})
	}
}

func parseListFilter(r *http.Request) ListFilter {
	filter := ListFilter{Limit: DefaultLimit}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= MaxLimit {
			filter.Limit = n
		}
	}

	// types=VISIT_SCHEDULED,ADOPTION_CONCLUDED; tipos desconocidos se ignoran
	if v := strings.TrimSpace(r.URL.Query().Get("types")); v != "" {
		for _, p := range strings.Split(v, ",") {
			t := EntryType(strings.ToUpper(strings.TrimSpace(p)))
			if t.Valid() {
				filter.Types = append(filter.Types, t)
			}
		}
	}
	return filter
}

func toEntryResponse(e Entry) entryResponse {
	return entryResponse{
		ID:          e.ID,
		Pet:         e.PetID,
		Type:        e.Type,
		ActorUserID: e.ActorUserID,
		OccurredAt:  e.OccurredAt,
		Notes:       e.Notes,
	}
}
