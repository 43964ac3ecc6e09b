package api

import (
	"net/http"

	"resource-hub/internal/config"
	"resource-hub/internal/database"
	"resource-hub/internal/metrics"
	"resource-hub/internal/resources"
	"resource-hub/internal/websocket"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Server struct {
	config *config.Config
	store  *database.Store
	svc    *resources.Service
	wsHub  *websocket.Hub
	log    *logrus.Entry
}

func NewServer(cfg *config.Config, store *database.Store, svc *resources.Service, wsHub *websocket.Hub, log *logrus.Entry) *Server {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Server{
		config: cfg,
		store:  store,
		svc:    svc,
		wsHub:  wsHub,
		log:    log.WithField("component", "api"),
	}
}

// Router wires every route of the service.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.config.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://"+s.config.AppHost+"/swagger/doc.json"),
	))
	r.Get("/health", s.HealthCheckHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/ws", s.ServeWsHandler)
	r.Get("/ws/drag", s.ServeDragWsHandler)

	r.Post("/api/v1/auth/login", s.LoginHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(s.AuthMiddleware)
		r.Get("/me", s.GetCurrentUserHandler)

		r.Get("/resources", s.ListResourcesHandler)
		r.Post("/resources", s.CreateLinkResourceHandler)
		r.Post("/resources/file", s.UploadResourceFileHandler)
		r.Get("/resources/{resourceId}", s.GetResourceHandler)
		r.Patch("/resources/{resourceId}", s.UpdateResourceHandler)
		r.Delete("/resources/{resourceId}", s.DeleteResourceHandler)
		r.Get("/resources/{resourceId}/download", s.DownloadResourceHandler)
		r.Post("/resources/{resourceId}/move", s.MoveResourceHandler)
		r.Post("/resources/{resourceId}/copy", s.CopyResourceHandler)
		r.Post("/resources/{resourceId}/archive", s.ArchiveResourceHandler)
		r.Post("/resources/{resourceId}/unarchive", s.UnarchiveResourceHandler)
		r.Post("/resources/{resourceId}/restore", s.RestoreResourceHandler)
		r.Delete("/resources/{resourceId}/purge", s.PurgeResourceHandler)

		r.Get("/folders", s.ListFoldersHandler)
		r.Post("/folders", s.CreateFolderHandler)
		r.Post("/folders/merge", s.MergeResourcesHandler)
		r.Get("/folders/{folderId}", s.GetFolderHandler)
		r.Patch("/folders/{folderId}", s.UpdateFolderHandler)
		r.Delete("/folders/{folderId}", s.DeleteFolderHandler)
		r.Post("/folders/{folderId}/move", s.MoveFolderHandler)
		r.Post("/folders/{folderId}/archive", s.ArchiveFolderHandler)
		r.Post("/folders/{folderId}/unarchive", s.UnarchiveFolderHandler)
		r.Post("/folders/{folderId}/restore", s.RestoreFolderHandler)
		r.Delete("/folders/{folderId}/purge", s.PurgeFolderHandler)

		r.Get("/trash", s.ListTrashHandler)
		r.Delete("/trash/purge", s.PurgeTrashHandler)
		r.Get("/events", s.GetEventsHandler)
	})

	return r
}
