package httpapi

import (
	"net/http"

	"homefix-backend-go/internal/config"
	"homefix-backend-go/internal/services"
	"homefix-backend-go/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Server struct {
	Store      *store.Store
	Config     config.Config
	MetricsLog *services.MetricsLog
	MetricsHub *services.MetricsHub
}

func NewServer(st *store.Store, cfg config.Config, log *services.MetricsLog, hub *services.MetricsHub) *Server {
	return &Server{
		Store:      st,
		Config:     cfg,
		MetricsLog: log,
		MetricsHub: hub,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	if len(s.Config.CorsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.Config.CorsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Route("/api", func(api chi.Router) {
		api.Route("/appliances", func(appliances chi.Router) {
			appliances.Get("/", s.ListAppliances)
			appliances.Get("/type/{type}", s.AppliancesByType)
			appliances.Get("/search/{query}", s.SearchAppliances)
			appliances.Get("/{id}", s.GetAppliance)
			appliances.Get("/{id}/repairs", s.ApplianceRepairs)
		})

		api.Route("/repairs", func(repairs chi.Router) {
			repairs.Get("/popular", s.PopularRepairs)
			repairs.Get("/{id}", s.RepairDetail)
			repairs.Get("/{id}/steps", s.RepairSteps)
			repairs.Get("/{id}/parts", s.RepairParts)
		})

		api.Route("/history", func(history chi.Router) {
			history.Post("/start", s.StartRepair)
			history.Post("/update", s.UpdateRepairProgress)
			history.Get("/{userId}", s.UserHistory)
			history.Get("/{userId}/recent", s.RecentUserHistory)
		})

		api.Route("/users", func(users chi.Router) {
			users.Post("/", s.Signup)
			users.Get("/{username}", s.UserByUsername)
		})

		api.Get("/metrics/history", s.MetricsHistory)
	})

	r.Get("/ws/metrics", s.MetricsSocket)
	return r
}
