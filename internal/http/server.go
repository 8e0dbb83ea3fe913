package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"networth/internal/cache"
	"networth/internal/log"
	"networth/internal/middleware/trace"
	"networth/internal/services"
	"networth/internal/taxonomy"
)

const (
	maxRequestBody  = 1 << 20 // 1 MiB
	summaryCacheKey = "summary"
	readCacheTTL    = 30 * time.Second
)

// Server serves the JSON API. Listing and summary responses are cached with
// a short TTL; any successfully recorded entry purges both caches.
type Server struct {
	http.Server
	service  *services.EntryService
	registry *taxonomy.Registry

	summaryCache *cache.LRU[summaryResponse]
	entriesCache *cache.LRU[[]entryResponse]

	stopJanitors context.CancelFunc
	shutdownOnce sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run server.
func NewServer(addr string, service *services.EntryService, registry *taxonomy.Registry, logger *log.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		service:      service,
		registry:     registry,
		summaryCache: cache.NewLRU[summaryResponse](8, readCacheTTL),
		entriesCache: cache.NewLRU[[]entryResponse](64, readCacheTTL),
	}

	mux.HandleFunc("/api/categories", s.handleCategories)
	mux.HandleFunc("/api/subcategories", s.handleSubcategories)
	mux.HandleFunc("/api/schema", s.handleSchema)
	mux.HandleFunc("/api/entries", s.handleEntries)
	mux.HandleFunc("/api/summary", s.handleSummary)
	mux.HandleFunc("/health", handleHealth)

	var handler http.Handler = mux
	handler = trace.NewMiddleware().Middleware(handler)
	handler = log.Middleware(logger)(handler)

	s.Server = http.Server{
		Addr:           addr,
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}

	janitorCtx, cancel := context.WithCancel(context.Background())
	s.stopJanitors = cancel
	s.summaryCache.StartJanitor(janitorCtx, 5*time.Minute)
	s.entriesCache.StartJanitor(janitorCtx, 5*time.Minute)

	return s
}

// Shutdown stops the cache janitors and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		if s.stopJanitors != nil {
			s.stopJanitors()
		}
		err = s.Server.Shutdown(ctx)
	})
	return err
}
