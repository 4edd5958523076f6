package pets

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/apperr"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/respond"
	"pet-adoption/internal/ports/images"

	"github.com/go-chi/chi/v5"
)

const maxFormMemory = 32 << 20

// RegisterRoutes recibe el subrouter ya montado en /pets (adopción e
// historial cuelgan del mismo). Las rutas fijas (mypets, myadoptions)
// conviven con /{id}: chi prioriza el segmento estático.
func RegisterRoutes(pr chi.Router, svc *Service, requireAuth func(http.Handler) http.Handler, log logger.Logger) {
	if log == nil {
		log = logger.NewNop()
	}

	pr.Get("/", listPetsHandler(svc, log))
	pr.Get("/{id}", getPetHandler(svc, log))

	pr.Group(func(ar chi.Router) {
		ar.Use(requireAuth)
		ar.Post("/create", createPetHandler(svc, log))
		ar.Get("/mypets", listMyPetsHandler(svc, log))
		ar.Get("/myadoptions", listMyAdoptionsHandler(svc, log))
		ar.Delete("/{id}", removePetHandler(svc, log))
		ar.Patch("/{id}", updatePetHandler(svc, log))
	})
}

// petResponse conserva los nombres de campo que leen los clientes
// ("avaliable", "user" = dueño).
type petResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Weight    float64   `json:"weight"`
	Color     string    `json:"color"`
	Images    []string  `json:"images"`
	Available bool      `json:"avaliable"`
	User      string    `json:"user"`
	Adopter   string    `json:"adopter,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type petEnvelope struct {
	Pet petResponse `json:"pet"`
}

type petsEnvelope struct {
	Pets []petResponse `json:"pets"`
}

type createdResponse struct {
	Message string      `json:"message"`
	NewPet  petResponse `json:"newPet"`
}

// parsePetForm lee name/age/weight/color e images[] de un form multipart.
// Un número vacío queda en 0 ("obrigatório"); uno ilegible queda en -1 para
// que el service lo rechace en su orden de validación.
func parsePetForm(r *http.Request) (Attributes, []images.Upload, func(), error) {
	noop := func() {}
	if err := r.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return Attributes{}, nil, noop, apperr.Validation("Formulário inválido!")
	}

	attrs := Attributes{
		Name:  r.FormValue("name"),
		Color: r.FormValue("color"),
	}
	if v := strings.TrimSpace(r.FormValue("age")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			n = -1
		}
		attrs.Age = n
	}
	if v := strings.TrimSpace(r.FormValue("weight")); v != "" {
		f, err := strconv.ParseFloat(strings.Replace(v, ",", ".", 1), 64)
		if err != nil {
			f = -1
		}
		attrs.Weight = f
	}

	if r.MultipartForm == nil {
		return attrs, nil, noop, nil
	}
	uploads, closeAll, err := images.OpenMultipart(r.MultipartForm.File["images"])
	if err != nil {
		closeAll()
		return Attributes{}, nil, noop, err
	}
	return attrs, uploads, closeAll, nil
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description El usuario autenticado queda como dueño. Form multipart con al menos una imagen (png/jpg/jpeg).
// @Tags pets
// @Accept mpfd
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param name formData string true "Nombre"
// @Param age formData int true "Edad"
// @Param weight formData number true "Peso"
// @Param color formData string true "Color"
// @Param images formData file true "Imágenes"
// @Success 201 {object} createdResponse
// @Failure 400 {object} respond.MessageBody "Token inválido!"
// @Failure 401 {object} respond.MessageBody "Acesso negado!"
// @Failure 422 {object} respond.MessageBody "validación"
// @Router /pets/create [post]
func createPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		attrs, uploads, closeAll, err := parsePetForm(r)
		defer closeAll()
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}

		p, err := svc.Create(r.Context(), claims.UserID, CreateInput{Attributes: attrs, Uploads: uploads})
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}

		respond.JSON(w, http.StatusCreated, createdResponse{
			Message: "Pet cadastrado com sucesso!",
			NewPet:  toPetResponse(p),
		})
	}
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Todas las mascotas, más recientes primero. Público.
// @Tags pets
// @Produce json
// @Success 200 {object} petsEnvelope
// @Router /pets [get]
func listPetsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.JSON(w, http.StatusOK, toPetsEnvelope(items))
	}
}

// listMyPetsHandler godoc
// @Summary Mis mascotas
// @Tags pets
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} petsEnvelope
// @Failure 401 {object} respond.MessageBody "Acesso negado!"
// @Router /pets/mypets [get]
func listMyPetsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.JSON(w, http.StatusOK, toPetsEnvelope(items))
	}
}

// listMyAdoptionsHandler godoc
// @Summary Mis adopciones
// @Description Mascotas donde el usuario autenticado agendó la visita.
// @Tags pets
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} petsEnvelope
// @Failure 401 {object} respond.MessageBody "Acesso negado!"
// @Router /pets/myadoptions [get]
func listMyAdoptionsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		items, err := svc.ListByAdopter(r.Context(), claims.UserID)
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.JSON(w, http.StatusOK, toPetsEnvelope(items))
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param id path string true "ID de la mascota"
// @Success 200 {object} petEnvelope
// @Failure 404 {object} respond.MessageBody "Pet não encontrado!"
// @Failure 422 {object} respond.MessageBody "ID inválido!"
// @Router /pets/{id} [get]
func getPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.JSON(w, http.StatusOK, petEnvelope{Pet: toPetResponse(p)})
	}
}

// removePetHandler godoc
// @Summary Eliminar mascota
// @Description Solo el dueño.
// @Tags pets
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID de la mascota"
// @Success 200 {object} respond.MessageBody
// @Failure 401 {object} respond.MessageBody "Acesso negado!"
// @Failure 404 {object} respond.MessageBody "Pet não encontrado!"
// @Failure 422 {object} respond.MessageBody "ID inválido / no es el dueño"
// @Router /pets/{id} [delete]
func removePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		if err := svc.Remove(r.Context(), chi.URLParam(r, "id"), claims.UserID); err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.Message(w, http.StatusOK, "Pet removido com sucesso")
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description Solo el dueño. Reemplaza atributos e imágenes completos.
// @Tags pets
// @Accept mpfd
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID de la mascota"
// @Param name formData string true "Nombre"
// @Param age formData int true "Edad"
// @Param weight formData number true "Peso"
// @Param color formData string true "Color"
// @Param images formData file true "Imágenes"
// @Success 200 {object} respond.MessageBody
// @Failure 401 {object} respond.MessageBody "Acesso negado!"
// @Failure 404 {object} respond.MessageBody "Pet não encontrado!"
// @Failure 422 {object} respond.MessageBody "validación / no es el dueño"
// @Router /pets/{id} [patch]
func updatePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		attrs, uploads, closeAll, err := parsePetForm(r)
		defer closeAll()
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}

		err = svc.Update(r.Context(), chi.URLParam(r, "id"), claims.UserID, UpdateInput{
			Attributes: attrs,
			Uploads:    uploads,
		})
		if err != nil {
			respond.Error(w, r, log, err)
			return
		}
		respond.Message(w, http.StatusOK, "Pet atualizado com sucesso!")
	}
}

func toPetsEnvelope(items []Pet) petsEnvelope {
	out := make([]petResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toPetResponse(p))
	}
	return petsEnvelope{Pets: out}
}

func toPetResponse(p Pet) petResponse {
	imgs := p.Images
	if imgs == nil {
		imgs = []string{}
	}
	return petResponse{
		ID:        p.ID,
		Name:      p.Name,
		Age:       p.Age,
		Weight:    p.Weight,
		Color:     p.Color,
		Images:    imgs,
		Available: p.Available,
		User:      p.OwnerUserID,
		Adopter:   p.AdopterUserID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
