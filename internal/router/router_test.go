package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pet-adoption/internal/adapters/auth/jwtauth"
	"pet-adoption/internal/adapters/images/disk"
	"pet-adoption/internal/domain/users"
	"pet-adoption/internal/platform/metrics"
	"pet-adoption/internal/platform/ratelimit"
	"pet-adoption/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testServer struct {
	*httptest.Server
	metrics *metrics.Metrics
}

func newTestServer(t *testing.T, limiter ratelimit.Limiter) *testServer {
	t.Helper()

	tokens, err := jwtauth.NewService("test-secret", time.Hour)
	require.NoError(t, err)

	dir := t.TempDir()
	store, err := disk.New(dir)
	require.NoError(t, err)

	m := metrics.New()
	h := router.NewRouter(router.Options{
		AuthVerifier: tokens,
		Tokens:       tokens,
		Images:       store,
		ImageDir:     dir,
		Hasher:       users.NewBcryptHasher(bcrypt.MinCost),
		PhoneRegion:  "BR",
		Metrics:      m,
		AuthLimiter:  limiter,
		CORSOrigin:   "http://localhost:3000",
	})

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return &testServer{Server: ts, metrics: m}
}

type session struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

func doJSON(t *testing.T, ts *testServer, method, path, token string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, ts.URL+path, body)
	require.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return send(t, req)
}

func send(t *testing.T, req *http.Request) (int, []byte) {
	t.Helper()
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	b, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, b
}

func register(t *testing.T, ts *testServer, name, email string) session {
	t.Helper()
	st, body := doJSON(t, ts, http.MethodPost, "/users/register", "", map[string]string{
		"name":            name,
		"email":           email,
		"phone":           "11987654321",
		"password":        "secret123",
		"confirmpassword": "secret123",
	})
	require.Equal(t, http.StatusOK, st, string(body))
	var s session
	require.NoError(t, json.Unmarshal(body, &s))
	return s
}

func login(t *testing.T, ts *testServer, email string) session {
	t.Helper()
	st, body := doJSON(t, ts, http.MethodPost, "/users/login", "", map[string]string{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, st, string(body))
	var s session
	require.NoError(t, json.Unmarshal(body, &s))
	return s
}

type petBody struct {
	ID        string   `json:"_id"`
	Name      string   `json:"name"`
	Age       int      `json:"age"`
	Weight    float64  `json:"weight"`
	Images    []string `json:"images"`
	Available bool     `json:"avaliable"`
	User      string   `json:"user"`
	Adopter   string   `json:"adopter"`
}

func createPet(t *testing.T, ts *testServer, token string, fields map[string]string, files ...string) (int, []byte) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, name := range files {
		fw, err := mw.CreateFormFile("images", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/pets/create", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	return send(t, req)
}

func getPet(t *testing.T, ts *testServer, id string) petBody {
	t.Helper()
	st, body := doJSON(t, ts, http.MethodGet, "/pets/"+id, "", nil)
	require.Equal(t, http.StatusOK, st, string(body))
	var env struct {
		Pet petBody `json:"pet"`
	}
	require.NoError(t, json.Unmarshal(body, &env))
	return env.Pet
}

func messageOf(t *testing.T, body []byte) string {
	t.Helper()
	var m struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(body, &m))
	return m.Message
}

func TestHTTP_EndToEnd_AdoptionLifecycle(t *testing.T) {
	ts := newTestServer(t, nil)

	// 1) A se registra, hace login y publica a Rex
	register(t, ts, "Ana", "ana@mail.com")
	a := login(t, ts, "ANA@mail.com")

	st, body := createPet(t, ts, a.Token, map[string]string{
		"name": "Rex", "age": "3", "weight": "12.5", "color": "brown",
	}, "rex.jpg")
	require.Equal(t, http.StatusCreated, st, string(body))

	var created struct {
		Message string  `json:"message"`
		NewPet  petBody `json:"newPet"`
	}
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, "Pet cadastrado com sucesso!", created.Message)
	assert.Equal(t, a.UserID, created.NewPet.User)
	assert.True(t, created.NewPet.Available)
	require.Len(t, created.NewPet.Images, 1)
	petID := created.NewPet.ID

	// 2) B agenda la visita y recibe el contacto del dueño
	register(t, ts, "Bia", "bia@mail.com")
	b := login(t, ts, "bia@mail.com")

	st, body = doJSON(t, ts, http.MethodPatch, "/pets/schedule/"+petID, b.Token, nil)
	require.Equal(t, http.StatusOK, st, string(body))
	msg := messageOf(t, body)
	assert.Contains(t, msg, "Ana")
	assert.Contains(t, msg, "+5511987654321")
	assert.Equal(t, b.UserID, getPet(t, ts, petID).Adopter)

	st, body = doJSON(t, ts, http.MethodGet, "/pets/myadoptions", b.Token, nil)
	require.Equal(t, http.StatusOK, st)
	var adoptions struct {
		Pets []petBody `json:"pets"`
	}
	require.NoError(t, json.Unmarshal(body, &adoptions))
	require.Len(t, adoptions.Pets, 1)
	assert.Equal(t, petID, adoptions.Pets[0].ID)

	// el dueño no puede agendar su propia mascota
	st, _ = doJSON(t, ts, http.MethodPatch, "/pets/schedule/"+petID, a.Token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, st)

	// 3) A concluye
	st, body = doJSON(t, ts, http.MethodPatch, "/pets/conclude/"+petID, a.Token, nil)
	require.Equal(t, http.StatusOK, st, string(body))
	assert.Equal(t, "Parabens, o ciclo de adoção foi finalizado com sucesso!", messageOf(t, body))
	assert.False(t, getPet(t, ts, petID).Available)

	// 4) B no puede borrar la mascota de A
	st, _ = doJSON(t, ts, http.MethodDelete, "/pets/"+petID, b.Token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, st)

	// historial: solo el dueño
	st, body = doJSON(t, ts, http.MethodGet, "/pets/"+petID+"/history", a.Token, nil)
	require.Equal(t, http.StatusOK, st, string(body))
	var hist struct {
		History []struct {
			Type string `json:"type"`
		} `json:"history"`
	}
	require.NoError(t, json.Unmarshal(body, &hist))
	require.Len(t, hist.History, 3)
	assert.Equal(t, "ADOPTION_CONCLUDED", hist.History[0].Type)

	st, _ = doJSON(t, ts, http.MethodGet, "/pets/"+petID+"/history", b.Token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, st)

	// la imagen se sirve estática
	st, _ = doJSON(t, ts, http.MethodGet, "/images/pets/"+created.NewPet.Images[0], "", nil)
	assert.Equal(t, http.StatusOK, st)

	st, body = doJSON(t, ts, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, st)
	assert.Contains(t, string(body), `pet_adoption_adoption_transitions_total{transition="concluded"} 1`)
}

func TestHTTP_PetsListingAndOwnerActions(t *testing.T) {
	ts := newTestServer(t, nil)
	a := register(t, ts, "Ana", "ana@mail.com")

	st, body := createPet(t, ts, a.Token, map[string]string{
		"name": "Mia", "age": "1", "weight": "3", "color": "branco",
	})
	require.Equal(t, http.StatusUnprocessableEntity, st)
	assert.Equal(t, "A imagem é obrigatória", messageOf(t, body))

	st, _ = createPet(t, ts, a.Token, map[string]string{
		"name": "Mia", "age": "1", "weight": "3", "color": "branco",
	}, "mia.gif")
	require.Equal(t, http.StatusUnprocessableEntity, st)

	st, body = createPet(t, ts, a.Token, map[string]string{
		"name": "Mia", "age": "1", "weight": "3", "color": "branco",
	}, "mia.png", "mia2.JPG")
	require.Equal(t, http.StatusCreated, st, string(body))

	st, body = doJSON(t, ts, http.MethodGet, "/pets", "", nil)
	require.Equal(t, http.StatusOK, st)
	var all struct {
		Pets []petBody `json:"pets"`
	}
	require.NoError(t, json.Unmarshal(body, &all))
	require.Len(t, all.Pets, 1)
	assert.Len(t, all.Pets[0].Images, 2)
	petID := all.Pets[0].ID

	st, body = doJSON(t, ts, http.MethodGet, "/pets/mypets", a.Token, nil)
	require.Equal(t, http.StatusOK, st)
	assert.Contains(t, string(body), petID)

	st, _ = doJSON(t, ts, http.MethodGet, "/pets/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, st)

	st, body = doJSON(t, ts, http.MethodDelete, "/pets/"+petID, a.Token, nil)
	require.Equal(t, http.StatusOK, st, string(body))
	assert.Equal(t, "Pet removido com sucesso", messageOf(t, body))

	st, _ = doJSON(t, ts, http.MethodGet, "/pets/"+petID, "", nil)
	assert.Equal(t, http.StatusNotFound, st)
}

func TestHTTP_AuthErrors(t *testing.T) {
	ts := newTestServer(t, nil)

	st, body := doJSON(t, ts, http.MethodGet, "/pets/mypets", "", nil)
	assert.Equal(t, http.StatusUnauthorized, st)
	assert.Equal(t, "Acesso negado!", messageOf(t, body))

	st, body = doJSON(t, ts, http.MethodGet, "/pets/mypets", "garbage", nil)
	assert.Equal(t, http.StatusBadRequest, st)
	assert.Equal(t, "Token inválido!", messageOf(t, body))

	// sin token checkuser responde null
	st, body = doJSON(t, ts, http.MethodGet, "/users/checkuser", "", nil)
	assert.Equal(t, http.StatusOK, st)
	assert.Equal(t, "null", strings.TrimSpace(string(body)))

	a := register(t, ts, "Ana", "ana@mail.com")
	st, body = doJSON(t, ts, http.MethodGet, "/users/checkuser", a.Token, nil)
	assert.Equal(t, http.StatusOK, st)
	assert.Contains(t, string(body), `"ana@mail.com"`)
	assert.NotContains(t, string(body), "password")

	st, body = doJSON(t, ts, http.MethodPost, "/users/login", "", map[string]string{
		"email": "ana@mail.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, st)
	assert.Equal(t, "Usuário ou Senha inválido!", messageOf(t, body))

	st, body = doJSON(t, ts, http.MethodPost, "/users/register", "", map[string]string{
		"name": "Outra", "email": "ana@mail.com", "phone": "11987654321",
		"password": "x", "confirmpassword": "x",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, st)
	assert.Equal(t, "Por favor, utilize outro email!", messageOf(t, body))
}

func TestHTTP_MalformedJSONIsValidationError(t *testing.T) {
	ts := newTestServer(t, nil)

	for _, path := range []string{"/users/register", "/users/login"} {
		req, err := http.NewRequest(http.MethodPost, ts.URL+path, strings.NewReader(`{"email": `))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")

		st, body := send(t, req)
		assert.Equal(t, http.StatusUnprocessableEntity, st, path)
		assert.Equal(t, "JSON inválido!", messageOf(t, body), path)
	}
}

func TestHTTP_AuthRateLimit(t *testing.T) {
	limiter, err := ratelimit.NewLocal(2)
	require.NoError(t, err)
	ts := newTestServer(t, limiter)

	payload := map[string]string{"email": "nobody@mail.com", "password": "x"}
	for i := 0; i < 2; i++ {
		st, _ := doJSON(t, ts, http.MethodPost, "/users/login", "", payload)
		require.Equal(t, http.StatusUnprocessableEntity, st)
	}

	st, body := doJSON(t, ts, http.MethodPost, "/users/login", "", payload)
	assert.Equal(t, http.StatusTooManyRequests, st)
	assert.Equal(t, "Muitas tentativas, tente novamente mais tarde!", messageOf(t, body))

	// el resto de la API no se limita
	st, _ = doJSON(t, ts, http.MethodGet, "/pets", "", nil)
	assert.Equal(t, http.StatusOK, st)
}

func TestHTTP_HealthAndSwagger(t *testing.T) {
	ts := newTestServer(t, nil)

	st, body := doJSON(t, ts, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, st)
	assert.Equal(t, "ok", string(body))

	st, body = doJSON(t, ts, http.MethodGet, "/swagger/doc.json", "", nil)
	assert.Equal(t, http.StatusOK, st)
	assert.Contains(t, string(body), "/pets/schedule/{id}")
}
