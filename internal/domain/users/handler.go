package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/apperr"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/respond"
	"pet-adoption/internal/ports/auth"
	"pet-adoption/internal/ports/images"

	"github.com/go-chi/chi/v5"
)

const maxFormMemory = 32 << 20

type RouteOptions struct {
	Tokens      auth.TokenIssuer
	RequireAuth func(http.Handler) http.Handler
	// AuthLimit se aplica a register/login; nil = sin límite.
	AuthLimit func(http.Handler) http.Handler
	Log       logger.Logger
}

func RegisterRoutes(r chi.Router, svc *Service, opts RouteOptions) {
	log := opts.Log
	if log == nil {
		log = logger.NewNop()
	}

	r.Route("/users", func(ur chi.Router) {
		ur.Group(func(lr chi.Router) {
			if opts.AuthLimit != nil {
				lr.Use(opts.AuthLimit)
			}
			lr.Post("/register", registerHandler(svc, opts.Tokens, log))
			lr.Post("/login", loginHandler(svc, opts.Tokens, log))
		})

		ur.Get("/checkuser", checkUserHandler(svc, log))
		ur.Get("/{id}", getUserHandler(svc, log))

		ur.With(opts.RequireAuth).Patch("/edit/{id}", editUserHandler(svc, log))
	})
}

// credentialsRequest sirve para register y login (JSON o form).
type credentialsRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmpassword"`
}

// tokenResponse es la respuesta de register/login.
type tokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	UserID  string `json:"userId"`
}

// userResponse es el usuario público (sin password).
type userResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type userEnvelope struct {
	User userResponse `json:"user"`
}

func decodeCredentials(r *http.Request) (credentialsRequest, error) {
	var req credentialsRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, err
		}
		return req, nil
	}
	req.Name = r.FormValue("name")
	req.Email = r.FormValue("email")
	req.Phone = r.FormValue("phone")
	req.Password = r.FormValue("password")
	req.ConfirmPassword = r.FormValue("confirmpassword")
	return req, nil
}

func issueToken(w http.ResponseWriter, r *http.Request, tokens auth.TokenIssuer, log logger.Logger, u User) {
	token, err := tokens.Issue(u.ID, u.Name)
	if err != nil {
		respond.Error(w, r, log, apperr.Internal(err))
		return
	}
	respond.JSON(w, http.StatusOK, tokenResponse{
		Message: "Você está autenticado",
		Token:   token,
		UserID:  u.ID,
	})
}

// registerHandler godoc
// @Summary Registrar usuario
// @Description Crea la cuenta y devuelve un token válido por 7 días. Acepta JSON o form.
// @Tags users
// @Accept json
// @Produce json
// @Param payload body credentialsRequest true "name, email, phone, password, confirmpassword"
// @Success 200 {object} tokenResponse
// @Failure 422 {object} respond.MessageBody "JSON inválido, validación o email ya usado"
// @Failure 429 {object} respond.MessageBody "demasiados intentos"
// @Router /users/register [post]
func registerHandler(svc *Service, tokens auth.TokenIssuer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeCredentials(r)
		if err != nil {
			respond.Error(w, r, log, apperr.Validation(msgInvalidJSON))
			return
		}

		u, err := svc.Register(r.Context(), RegisterInput{
			Name:            req.Name,
			Email:           req.Email,
			Phone:           req.Phone,
			Password:        req.Password,
			ConfirmPassword: req.ConfirmPassword,
		})
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}

		log.Info("user registered", map[string]any{"user_id": u.ID})
		issueToken(w, r, tokens, log, u)
	}
}

// loginHandler godoc
// @Summary Login
// @Tags users
// @Accept json
// @Produce json
// @Param payload body credentialsRequest true "email y password"
// @Success 200 {object} tokenResponse
// @Failure 422 {object} respond.MessageBody "Usuário ou Senha inválido!"
// @Failure 429 {object} respond.MessageBody "demasiados intentos"
// @Router /users/login [post]
func loginHandler(svc *Service, tokens auth.TokenIssuer, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeCredentials(r)
		if err != nil {
			respond.Error(w, r, log, apperr.Validation(msgInvalidJSON))
			return
		}

		u, err := svc.Authenticate(r.Context(), req.Email, req.Password)
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		issueToken(w, r, tokens, log, u)
	}
}

// checkUserHandler godoc
// @Summary Usuario actual
// @Description Devuelve el usuario del token o null si no viene header Authorization.
// @Tags users
// @Produce json
// @Param Authorization header string false "Bearer token"
// @Success 200 {object} userResponse
// @Failure 400 {object} respond.MessageBody "Token inválido!"
// @Failure 401 {object} respond.MessageBody "Acesso negado!"
// @Router /users/checkuser [get]
func checkUserHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := middleware.GetAuthError(r.Context()); err != nil {
			respond.Error(w, r, log, err)
			return
		}

		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			respond.JSON(w, http.StatusOK, nil)
			return
		}

		u, err := svc.GetByID(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				respond.JSON(w, http.StatusOK, nil)
				return
			}
			respond.Error(w, r, log, err)
			return
		}
		respond.JSON(w, http.StatusOK, toUserResponse(u))
	}
}

// getUserHandler godoc
// @Summary Obtener usuario
// @Tags users
// @Produce json
// @Param id path string true "ID del usuario"
// @Success 200 {object} userEnvelope
// @Failure 422 {object} respond.MessageBody "Usuário não encontrado!"
// @Router /users/{id} [get]
func getUserHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := svc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			// los clientes esperan 422 en esta ruta
			if errors.Is(err, apperr.ErrNotFound) {
				err = apperr.Validation(apperr.MessageOf(err))
			}
			respond.Error(w, r, log, err)
			return
		}
		respond.JSON(w, http.StatusOK, userEnvelope{User: toUserResponse(u)})
	}
}

// editUserHandler godoc
// @Summary Editar perfil
// @Description Solo el propio usuario. Form multipart; image opcional (png/jpg/jpeg).
// @Tags users
// @Accept mpfd
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID del usuario"
// @Param name formData string true "Nombre"
// @Param phone formData string true "Teléfono"
// @Param email formData string false "Email"
// @Param password formData string false "Nueva contraseña"
// @Param confirmpassword formData string false "Confirmación"
// @Param image formData file false "Imagen de perfil"
// @Success 200 {object} respond.MessageBody
// @Failure 400 {object} respond.MessageBody "Token inválido!"
// @Failure 401 {object} respond.MessageBody "Acesso negado!"
// @Failure 404 {object} respond.MessageBody "Usuário não encontrado!"
// @Failure 422 {object} respond.MessageBody "validación, email en uso u otro usuario"
// @Router /users/edit/{id} [patch]
func editUserHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		if err := r.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			respond.Error(w, r, log, apperr.Validation(msgInvalidForm))
			return
		}

		in := UpdateInput{
			Name:            r.FormValue("name"),
			Email:           r.FormValue("email"),
			Phone:           r.FormValue("phone"),
			Password:        r.FormValue("password"),
			ConfirmPassword: r.FormValue("confirmpassword"),
		}

		if r.MultipartForm != nil {
			if files := r.MultipartForm.File["image"]; len(files) > 0 {
				uploads, closeAll, err := images.OpenMultipart(files[:1])
				defer closeAll()
				if err != nil {
					respond.Error(w, r, log, err)
					return
				}
				in.Image = &uploads[0]
			}
		}

		if err := svc.UpdateProfile(r.Context(), chi.URLParam(r, "id"), claims.UserID, in); err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.Message(w, http.StatusOK, "Usuário atualizado com sucesso!")
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Image:     u.Image,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
