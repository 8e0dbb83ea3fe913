package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"networth/internal/core"
	"networth/internal/log"
	"networth/internal/ports"
	"networth/internal/taxonomy"
)

// recentLimit caps the entry list embedded in the summary payload.
const recentLimit = 20

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	kind, err := core.ParseKind(r.URL.Query().Get("kind"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, struct {
		Kind       string   `json:"kind"`
		Categories []string `json:"categories"`
	}{Kind: string(kind), Categories: s.registry.Categories(kind)})
}

func (s *Server) handleSubcategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	kind, err := core.ParseKind(r.URL.Query().Get("kind"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	category := r.URL.Query().Get("category")

	subs, err := s.registry.Subcategories(kind, category)
	if err != nil {
		writeError(w, r, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, struct {
		Kind          string   `json:"kind"`
		Category      string   `json:"category"`
		Subcategories []string `json:"subcategories"`
	}{Kind: string(kind), Category: category, Subcategories: subs})
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	kind, err := core.ParseKind(q.Get("kind"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	category := q.Get("category")
	subcategory := q.Get("subcategory")

	schema, err := s.registry.Schema(kind, category, subcategory)
	if err != nil {
		writeError(w, r, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, struct {
		Kind        string          `json:"kind"`
		Category    string          `json:"category"`
		Subcategory string          `json:"subcategory"`
		Fields      []fieldResponse `json:"fields"`
	}{Kind: string(kind), Category: category, Subcategory: subcategory, Fields: toFieldResponses(schema)})
}

func (s *Server) handleEntries(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleListEntries(w, r)
	case http.MethodPost:
		s.handleCreateEntry(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := log.FromContext(ctx)

	var req createEntryRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err := dec.Decode(&req); err != nil {
		logger.WarnContext(ctx, "Entry payload decoding failed", "error", err)
		writeError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}

	kind, err := core.ParseKind(req.Kind)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	in := core.EntryInput{
		Name:     req.Name,
		Currency: strings.TrimSpace(req.Currency),
		Owner:    strings.TrimSpace(req.Owner),
		Amount:   req.Amount,
		Details:  req.Details,
	}

	entry, err := s.service.Record(ctx, kind, req.Category, req.Subcategory, in)
	switch {
	case err == nil:
	case errors.Is(err, taxonomy.ErrUnknownCategory), errors.Is(err, taxonomy.ErrUnknownSubcategory):
		writeError(w, r, http.StatusNotFound, err.Error())
		return
	case isValidationError(err):
		writeValidationError(w, r, err)
		return
	default:
		logger.ErrorContext(ctx, "Entry recording failed", "error", err, "kind", kind, "category", req.Category)
		writeError(w, r, http.StatusInternalServerError, "failed to record entry")
		return
	}

	s.invalidateReads()
	writeJSON(w, r, http.StatusCreated, toEntryResponse(entry))
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	var f ports.Filter
	if raw := q.Get("kind"); raw != "" {
		kind, err := core.ParseKind(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		f.Kind = kind
	}
	f.Category = q.Get("category")

	key := entriesCacheKey(f)
	if cached, ok := s.entriesCache.Get(key); ok {
		writeJSON(w, r, http.StatusOK, struct {
			Entries []entryResponse `json:"entries"`
		}{Entries: cached})
		return
	}

	entries, err := s.service.List(ctx, f)
	if err != nil {
		log.FromContext(ctx).ErrorContext(ctx, "Entry listing failed", "error", err)
		writeError(w, r, http.StatusInternalServerError, "failed to list entries")
		return
	}

	resp := toEntryResponses(entries)
	s.entriesCache.Set(key, resp)
	writeJSON(w, r, http.StatusOK, struct {
		Entries []entryResponse `json:"entries"`
	}{Entries: resp})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	if cached, ok := s.summaryCache.Get(summaryCacheKey); ok {
		writeJSON(w, r, http.StatusOK, cached)
		return
	}

	totals, err := s.service.Totals(ctx)
	if err != nil {
		log.FromContext(ctx).ErrorContext(ctx, "Totals computation failed", "error", err)
		writeError(w, r, http.StatusInternalServerError, "failed to compute totals")
		return
	}

	entries, err := s.service.List(ctx, ports.Filter{})
	if err != nil {
		log.FromContext(ctx).ErrorContext(ctx, "Recent entries lookup failed", "error", err)
		writeError(w, r, http.StatusInternalServerError, "failed to list entries")
		return
	}
	if len(entries) > recentLimit {
		entries = entries[:recentLimit]
	}

	resp := summaryResponse{
		TotalAssets:      totals.Assets.String(),
		TotalLiabilities: totals.Liabilities.String(),
		NetWorth:         totals.NetWorth().String(),
		Recent:           toEntryResponses(entries),
	}
	s.summaryCache.Set(summaryCacheKey, resp)
	writeJSON(w, r, http.StatusOK, resp)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func entriesCacheKey(f ports.Filter) string {
	return string(f.Kind) + "|" + f.Category
}

func (s *Server) invalidateReads() {
	s.summaryCache.Purge()
	s.entriesCache.Purge()
}
