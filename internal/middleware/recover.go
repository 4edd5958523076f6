package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/respond"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Recover reemplaza a chi/middleware.Recoverer: loguea el panic con el
// logger del proceso y responde el 500 en el formato {message}.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.Error("panic recovered", map[string]any{
					"panic":      fmt.Sprint(rec),
					"method":     r.Method,
					"path":       r.URL.Path,
					"request_id": chimw.GetReqID(r.Context()),
					"stack":      string(debug.Stack()),
				})
				respond.Message(w, http.StatusInternalServerError, "Erro interno do servidor")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
