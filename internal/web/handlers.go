package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/Biniyan/sociomap/internal/assistant"
	"github.com/Biniyan/sociomap/internal/category"
	"github.com/Biniyan/sociomap/internal/filter"
	"github.com/Biniyan/sociomap/internal/listview"
	"github.com/Biniyan/sociomap/internal/model"
	"github.com/Biniyan/sociomap/internal/overlay"
)

// filterQuery decodes the shared query grammar:
// ?categories=a,b&province=P&q=text. Unknown category keys and unknown
// province names are kept as given and simply match nothing
// (silent-empty policy).
func filterQuery(r *http.Request) (active map[model.CategoryKey]bool, province, query string) {
	active = make(map[model.CategoryKey]bool)
	for _, part := range strings.Split(r.URL.Query().Get("categories"), ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			active[model.CategoryKey(part)] = true
		}
	}
	return active, r.URL.Query().Get("province"), r.URL.Query().Get("q")
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, category.All())
}

type provinceInfo struct {
	Name    string        `json:"name"`
	Capital model.Feature `json:"capital"`
}

func (s *Server) handleProvinces(w http.ResponseWriter, r *http.Request) {
	var out []provinceInfo
	for i := range s.Dataset.Provinces {
		p := &s.Dataset.Provinces[i]
		out = append(out, provinceInfo{Name: p.Name, Capital: p.Capital})
	}
	writeJSON(w, out)
}

func (s *Server) handleFeatures(w http.ResponseWriter, r *http.Request) {
	active, province, q := filterQuery(r)
	writeJSON(w, filter.Candidates(s.Dataset, active, province, q))
}

func (s *Server) handleOverlays(w http.ResponseWriter, r *http.Request) {
	active, province, q := filterQuery(r)
	cands := filter.Candidates(s.Dataset, active, province, q)
	writeJSON(w, overlay.Compose(cands, s.Dataset.Highways, active))
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	active, province, q := filterQuery(r)
	cands := filter.Candidates(s.Dataset, active, province, q)
	writeJSON(w, listview.Project(cands))
}

func (s *Server) handleHighways(w http.ResponseWriter, r *http.Request) {
	// Highways are never province-scoped.
	writeJSON(w, s.Dataset.Highways)
}

type assistantRequest struct {
	Text string `json:"text"`
}

type assistantResponse struct {
	Turns   []model.ConversationTurn `json:"turns"`
	Pending bool                     `json:"pending"`
}

func (s *Server) handleAssistant(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		writeJSON(w, assistantResponse{Turns: s.Session.Turns(), Pending: s.Session.Pending()})
		return
	}
	if r.Method == http.MethodDelete {
		s.Session.Reset()
		writeJSON(w, assistantResponse{Turns: s.Session.Turns(), Pending: s.Session.Pending()})
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req assistantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := s.Session.Submit(r.Context(), req.Text); err != nil {
		if errors.Is(err, assistant.ErrBusy) {
			http.Error(w, "a question is already pending", http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, assistantResponse{Turns: s.Session.Turns(), Pending: s.Session.Pending()})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	// Wildcard CORS, this is a classroom tool, not a public API.
	w.Header().Set("Access-Control-Allow-Origin", "*")
	// Empty result lists serialize as [], not null.
	if v == nil || (reflect.ValueOf(v).Kind() == reflect.Slice && reflect.ValueOf(v).IsNil()) {
		_, _ = w.Write([]byte("[]"))
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}
