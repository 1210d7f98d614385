package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mindwellhq/mindwell-backend/internal/api/handlers"
	"github.com/mindwellhq/mindwell-backend/internal/api/httpx"
	"github.com/mindwellhq/mindwell-backend/internal/auth"
	"github.com/mindwellhq/mindwell-backend/internal/config"
	"github.com/mindwellhq/mindwell-backend/internal/middleware"
	"github.com/mindwellhq/mindwell-backend/internal/models"
	"github.com/mindwellhq/mindwell-backend/internal/ocr"
	"github.com/mindwellhq/mindwell-backend/internal/services"
	"github.com/mindwellhq/mindwell-backend/internal/upload"
)

// Deps carries everything the router wires together.
type Deps struct {
	Cfg         config.Config
	TM          *auth.TokenManager
	AuthSvc     *services.AuthService
	AdminSvc    *services.AdminService
	ResourceSvc *services.ResourceService
	Uploads     *upload.Store
	OCR         *ocr.Client
}

// NewRouter builds the full HTTP surface. Protected routes run the
// bearer-token middleware followed by a role check; services behind them
// trust the verified identity.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(d.Cfg.RateRPS), middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{d.Cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	authMW := middleware.NewAuthMiddleware(d.TM)
	adminOnly := func(next http.Handler) http.Handler {
		return authMW.Auth(middleware.RequireRole(models.RoleAdmin)(next))
	}

	authH := handlers.NewAuthHandler(d.AuthSvc)
	adminH := handlers.NewAdminHandler(d.AdminSvc)
	resourceH := handlers.NewResourceHandler(d.ResourceSvc)
	uploadH := handlers.NewUploadHandler(d.Uploads)
	ocrH := handlers.NewOCRHandler(d.OCR, d.Uploads)

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", authH.Signup)
		r.Post("/login", authH.Login)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Post("/register", adminH.Register)
		r.Post("/login", adminH.Login)
		r.With(adminOnly).Get("/profile", adminH.Profile)
		r.With(adminOnly).Put("/profile", adminH.UpdateProfile)
	})

	r.Route("/api/resources", func(r chi.Router) {
		// public reads
		r.Get("/", resourceH.List)
		r.Get("/type/{type}", resourceH.ListByType)
		r.Get("/{id}", resourceH.GetByID)
		// admin writes
		r.With(adminOnly).Post("/", resourceH.Create)
		r.With(adminOnly).Put("/{id}", resourceH.Update)
		r.With(adminOnly).Delete("/{id}", resourceH.Delete)
	})

	r.Post("/api/upload", uploadH.Upload)
	r.Post("/api/ocr", ocrH.Recognize)
	r.Get("/api/ocr/health", ocrH.Health)

	// static read-only serving of stored uploads
	fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(d.Uploads.Dir())))
	r.Get("/uploads/*", fs.ServeHTTP)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteError(w, http.StatusNotFound, "not_found", "route "+r.Method+" "+r.URL.Path+" not found", nil)
	})

	return r
}
