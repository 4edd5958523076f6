package respond

import (
	"encoding/json"
	"net/http"

	"pet-adoption/internal/platform/apperr"
	"pet-adoption/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Mensaje genérico para 500; el detalle solo va al log.
const internalErrorMessage = "Erro interno do servidor"

// MessageBody es el cuerpo {"message": "..."} que esperan los clientes.
type MessageBody struct {
	Message string `json:"message"`
}

// JSON antes estaba duplicado por handler (pets/events); con usuarios,
// mascotas, adopción e historial ya convenía extraerlo.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, MessageBody{Message: msg})
}

// Error traduce un error de dominio a status + mensaje.
// Los errores internos se loguean con el request id y nunca se exponen.
func Error(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status := apperr.HTTPStatus(err)
	msg := apperr.MessageOf(err)

	if status == http.StatusInternalServerError || msg == "" {
		if log != nil {
			log.Error("request failed", map[string]any{
				"err":        err,
				"method":     r.Method,
				"path":       r.URL.Path,
				"request_id": chimw.GetReqID(r.Context()),
			})
		}
		if status == http.StatusInternalServerError {
			msg = internalErrorMessage
		}
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	Message(w, status, msg)
}
