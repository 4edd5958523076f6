package router

import (
	"database/sql"
	"net/http"
	"strings"

	_ "pet-adoption/docs"
	mem "pet-adoption/internal/adapters/storage/memory"
	pg "pet-adoption/internal/adapters/storage/postgres"
	"pet-adoption/internal/domain/adoption"
	"pet-adoption/internal/domain/history"
	"pet-adoption/internal/domain/pets"
	"pet-adoption/internal/domain/users"
	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/metrics"
	"pet-adoption/internal/platform/ratelimit"
	"pet-adoption/internal/ports/auth"
	"pet-adoption/internal/ports/images"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Log logger.Logger

	AuthVerifier auth.AuthVerifier
	Tokens       auth.TokenIssuer

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Images images.Store
	// ImageDir se sirve en /images/ (solo store en disco).
	ImageDir string

	Hasher      users.PasswordHasher
	PhoneRegion string

	Metrics     *metrics.Metrics  // opcional
	AuthLimiter ratelimit.Limiter // opcional; limita register/login
	CORSOrigin  string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recover(log))
	r.Use(middleware.RequestLog(log))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}
	r.Use(middleware.CORS(opts.CORSOrigin))
	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	if dir := strings.TrimSpace(opts.ImageDir); dir != "" {
		r.Handle("/images/*", http.StripPrefix("/images/", http.FileServer(http.Dir(dir))))
	}

	var (
		userRepo    users.Repository
		petRepo     pets.Repository
		historyRepo history.Repository
	)
	if opts.DB != nil {
		userRepo = pg.NewUsersRepo(opts.DB)
		petRepo = pg.NewPetsRepo(opts.DB)
		historyRepo = pg.NewHistoryRepo(opts.DB)
	} else {
		userRepo = mem.NewUserRepo()
		petRepo = mem.NewPetRepo()
		historyRepo = mem.NewHistoryRepo()
	}

	// Services por módulo
	historySvc := history.NewService(historyRepo, log)
	usersSvc := users.NewService(userRepo, users.Options{
		Hasher:      opts.Hasher,
		Images:      opts.Images,
		PhoneRegion: opts.PhoneRegion,
	})
	petsSvc := pets.NewService(petRepo, pets.Options{
		Images:  opts.Images,
		History: historySvc,
	})
	engineOpts := adoption.Options{History: historySvc}
	if opts.Metrics != nil {
		engineOpts.Observer = opts.Metrics
	}
	engine := adoption.NewEngine(petRepo, usersSvc, engineOpts)

	requireAuth := middleware.RequireAuth(opts.AuthVerifier, log)

	var authLimit func(http.Handler) http.Handler
	if opts.AuthLimiter != nil {
		authLimit = middleware.RateLimit(opts.AuthLimiter, "auth", log)
	}

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc, users.RouteOptions{
		Tokens:      opts.Tokens,
		RequireAuth: requireAuth,
		AuthLimit:   authLimit,
		Log:         log,
	})
	r.Route("/pets", func(pr chi.Router) {
		pets.RegisterRoutes(pr, petsSvc, requireAuth, log)
		adoption.RegisterRoutes(pr, engine, requireAuth, log)
		history.RegisterRoutes(pr, historySvc, petsSvc, requireAuth, log)
	})

	return r
}
