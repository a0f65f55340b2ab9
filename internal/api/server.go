// Package api is the REST surface: one short-lived stateless transaction
// per request. Auth gate first, then payload validation, then the store.
package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Omiixx-nova/Bloom-Heaven/internal/auth"
	"github.com/Omiixx-nova/Bloom-Heaven/internal/bouquet"
	"github.com/Omiixx-nova/Bloom-Heaven/internal/common"
	"github.com/Omiixx-nova/Bloom-Heaven/internal/config"
	"github.com/Omiixx-nova/Bloom-Heaven/internal/upload"
)

type Server struct {
	cfg      *config.Config
	auth     auth.Service
	bouquets bouquet.Service
	files    upload.FileStore

	// non-empty when the disk upload backend is active; served under /uploads/
	uploadsDir string
}

func NewServer(cfg *config.Config, authSvc auth.Service, bouquetSvc bouquet.Service, files upload.FileStore, uploadsDir string) *Server {
	return &Server{
		cfg:        cfg,
		auth:       authSvc,
		bouquets:   bouquetSvc,
		files:      files,
		uploadsDir: uploadsDir,
	}
}

func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()

	// public
	router.HandleFunc("/api/register", s.handleRegister).Methods("POST")
	router.HandleFunc("/api/login", s.handleLogin).Methods("POST")
	router.HandleFunc("/api/messages/{id}", s.handleGetMessage).Methods("GET")
	router.HandleFunc("/health", s.handleHealth).Methods("GET")

	// protected
	router.HandleFunc("/api/logout", common.RequireAuth(s.auth, s.handleLogout)).Methods("POST")
	router.HandleFunc("/api/user", common.RequireAuth(s.auth, s.handleCurrentUser)).Methods("GET")
	router.HandleFunc("/api/bouquets", common.RequireAuth(s.auth, s.handleListBouquets)).Methods("GET")
	router.HandleFunc("/api/bouquets", common.RequireAuth(s.auth, s.handleCreateBouquet)).Methods("POST")
	router.HandleFunc("/api/bouquets/{bouquetId}/messages", common.RequireAuth(s.auth, s.handleCreateMessage)).Methods("POST")
	router.HandleFunc("/api/upload", common.RequireAuth(s.auth, s.handleUpload)).Methods("POST")

	// uploaded assets, flat names, public by design
	if s.uploadsDir != "" {
		router.PathPrefix("/uploads/").Handler(
			http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.uploadsDir))))
	}

	return router
}

// origin returns the externally visible scheme+host for share links.
// Config wins; otherwise fall back to what the request itself saw.
func (s *Server) origin(r *http.Request) string {
	if s.cfg.Server.PublicBaseURL != "" {
		return s.cfg.Server.PublicBaseURL
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if forwarded := r.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}
	return scheme + "://" + r.Host
}
