package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/Biniyan/sociomap/internal/assistant"
	"github.com/Biniyan/sociomap/internal/model"
)

//go:embed all:static
var staticFS embed.FS

// Server serves the interactive map web app and API. The dataset is
// loaded once and never mutated while serving.
type Server struct {
	Dataset *model.Dataset
	Session *assistant.Session
	Addr    string
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	mux := http.NewServeMux()

	// API endpoints
	mux.HandleFunc("/api/categories", s.handleCategories)
	mux.HandleFunc("/api/provinces", s.handleProvinces)
	mux.HandleFunc("/api/features", s.handleFeatures)
	mux.HandleFunc("/api/overlays", s.handleOverlays)
	mux.HandleFunc("/api/list", s.handleList)
	mux.HandleFunc("/api/highways", s.handleHighways)
	mux.HandleFunc("/api/assistant", s.handleAssistant)

	// Static files
	staticSub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return fmt.Errorf("creating sub filesystem: %w", err)
	}
	mux.Handle("/", http.FileServer(http.FS(staticSub)))

	fmt.Printf("Serving at http://%s\n", s.Addr)
	return http.ListenAndServe(s.Addr, mux)
}
