package adoption

import (
	"net/http"

	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes recibe el subrouter montado en /pets.
func RegisterRoutes(pr chi.Router, engine *Engine, requireAuth func(http.Handler) http.Handler, log logger.Logger) {
	if log == nil {
		log = logger.NewNop()
	}
	pr.Group(func(ar chi.Router) {
		ar.Use(requireAuth)
		ar.Patch("/schedule/{id}", scheduleHandler(engine, log))
		ar.Patch("/conclude/{id}", concludeHandler(engine, log))
	})
}

// scheduleHandler godoc
// @Summary Agendar visita
// @Description El usuario autenticado pasa a ser el adoptante. La respuesta incluye nombre y teléfono del dueño.
// @Tags adoption
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID de la mascota"
// @Success 200 {object} respond.MessageBody
// @Failure 400 {object} respond.MessageBody "Token inválido!"
// @Failure 401 {object} respond.MessageBody "Acesso negado!"
// @Failure 404 {object} respond.MessageBody "Pet não encontrado!"
// @Failure 422 {object} respond.MessageBody "mascota propia / visita ya agendada / ID inválido"
// @Router /pets/schedule/{id} [patch]
func scheduleHandler(engine *Engine, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		conf, err := engine.Schedule(r.Context(), chi.URLParam(r, "id"), claims.UserID)
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		if conf.PreviousAdopterUserID != "" {
			log.Info("adopter replaced", map[string]any{
				"pet_id":           conf.PetID,
				"previous_adopter": conf.PreviousAdopterUserID,
				"adopter":          claims.UserID,
			})
		}
		respond.Message(w, http.StatusOK, conf.Message())
	}
}

// concludeHandler godoc
// @Summary Concluir adopción
// @Description Solo el dueño. Idempotente.
// @Tags adoption
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID de la mascota"
// @Success 200 {object} respond.MessageBody
// @Failure 401 {object} respond.MessageBody "Acesso negado!"
// @Failure 404 {object} respond.MessageBody "Pet não encontrado!"
// @Failure 422 {object} respond.MessageBody "no es el dueño / ID inválido"
// @Router /pets/conclude/{id} [patch]
func concludeHandler(engine *Engine, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		if err := engine.Conclude(r.Context(), chi.URLParam(r, "id"), claims.UserID); err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.Message(w, http.StatusOK, msgConcluded)
	}
}
