package router

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/auth"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/catalog"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/database/repository"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/http-server/form"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/http-server/handler/auth/login"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/http-server/handler/content/bulkdelete"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/http-server/handler/content/create"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/http-server/handler/content/delete"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/http-server/handler/content/get"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/http-server/handler/content/list"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/http-server/handler/content/reorder"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/http-server/handler/content/toggle"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/http-server/handler/content/update"
	authmw "github.com/debraj09/geemadhura-admin-panel-sub000/internal/http-server/middleware/auth"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/http-server/middleware/logger"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/http-server/middleware/metrics"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/http-server/middleware/validator"
	"github.com/debraj09/geemadhura-admin-panel-sub000/internal/media"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Config struct {
	Pagination     validator.Pagination
	MaxBodySize    int64
	AllowedOrigins []string
	Requests       int
	LoginRequests  int
	Window         time.Duration
}

type Deps struct {
	Catalog    *catalog.Catalog
	Repository repository.ContentRepository
	Media      *media.Store
	MediaURL   string
	Decoder    *form.Decoder
	Authorizer *auth.Authorizer
	Metrics    *metrics.Metrics
	Gatherer   prometheus.Gatherer
}

// New wires the admin API:
//
//	GET    /api/{resource}/                     list, public
//	GET    /api/{resource}/{id}                 get, public
//	POST   /api/{resource}/create               create
//	PUT    /api/{resource}/update/{id}          update
//	DELETE /api/{resource}/delete/{id}          delete
//	DELETE /api/{resource}/{id}                 delete
//	PATCH  /api/{resource}/toggle-{toggle}/{id} toggle
//	POST   /api/{resource}/delete-multiple      bulk delete
//	PUT    /api/{resource}/reorder              reorder
//	POST   /api/auth/login                      login
//
// Every write endpoint needs a bearer token from /api/auth/login.
func New(log *slog.Logger, cfg Config, deps Deps) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(logger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(deps.Metrics.Handler)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(middleware.Heartbeat("/health"))
	router.Use(httprate.LimitByIP(cfg.Requests, cfg.Window))
	router.Use(middleware.Compress(5))

	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))

	if prefix := strings.TrimRight(deps.MediaURL, "/"); strings.HasPrefix(prefix, "/") {
		router.Method(http.MethodGet, prefix+"/*", uploads(prefix, deps.Media.Dir()))
	}

	repo := deps.Repository
	requireAuth := authmw.New(log, deps.Authorizer)
	recordID := validator.RecordID(log)

	router.Route("/api", func(r chi.Router) {
		r.Use(middleware.RequestSize(cfg.MaxBodySize))

		r.With(httprate.LimitByIP(cfg.LoginRequests, cfg.Window)).Post("/auth/login", login.New(log, deps.Authorizer))

		r.Route("/{resource}", func(r chi.Router) {
			r.Use(validator.Resource(log, deps.Catalog))

			r.With(validator.List(log, cfg.Pagination)).Get("/", list.New(log, repo))
			r.With(recordID).Get("/{id}", get.New(log, repo))

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)

				r.Post("/create", create.New(log, deps.Decoder, deps.Media, repo))
				r.Post("/delete-multiple", bulkdelete.New(log, deps.Media, repo))
				r.Put("/reorder", reorder.New(log, repo))
				r.With(recordID).Put("/update/{id}", update.New(log, deps.Decoder, deps.Media, repo))
				r.With(recordID).Delete("/delete/{id}", delete.New(log, deps.Media, repo))
				r.With(recordID).Delete("/{id}", delete.New(log, deps.Media, repo))
				r.With(recordID).Patch("/toggle-{toggle}/{id}", toggle.New(log, repo))
			})
		})
	})

	return router
}

// uploads serves stored files without directory listings.
func uploads(prefix, dir string) http.Handler {
	fs := http.StripPrefix(prefix, http.FileServer(http.Dir(dir)))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Content-Security-Policy", "default-src 'none'; sandbox")
		fs.ServeHTTP(w, r)
	})
}
