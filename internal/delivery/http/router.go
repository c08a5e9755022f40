package http

import (
	"net/http"

	"pharma-info-service/internal/delivery/http/handler"
	"pharma-info-service/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router           *mux.Router
	authHandler      *handler.AuthHandler
	drugHandler      *handler.DrugHandler
	searchLogHandler *handler.SearchLogHandler
	authMiddleware   *middleware.AuthMiddleware
	corsMiddleware   *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	drugHandler *handler.DrugHandler,
	searchLogHandler *handler.SearchLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		authHandler:      authHandler,
		drugHandler:      drugHandler,
		searchLogHandler: searchLogHandler,
		authMiddleware:   authMiddleware,
		corsMiddleware:   corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Require)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Drug information gateway (identity is optional: anonymous callers get
	// results, authenticated callers additionally get their searches logged)
	fda := api.PathPrefix("/fda").Subrouter()
	fda.Use(r.authMiddleware.Optional)
	fda.HandleFunc("/drugs", r.drugHandler.SearchDrugs).Methods(http.MethodGet)
	fda.HandleFunc("/drugs/{drugId}", r.drugHandler.GetDrugDetails).Methods(http.MethodGet)
	fda.HandleFunc("/adverse-events", r.drugHandler.GetAdverseEvents).Methods(http.MethodGet)
	fda.HandleFunc("/drug-recalls", r.drugHandler.GetDrugRecalls).Methods(http.MethodGet)

	// Search history (protected)
	history := api.PathPrefix("/fda").Subrouter()
	history.Use(r.authMiddleware.Require)
	history.HandleFunc("/search-history", r.searchLogHandler.GetMyHistory).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Require)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/search-logs", r.searchLogHandler.ListSearchLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok", "message": "server is running"}`))
}
