package http

import (
	"context"
	"net/http"
	"time"

	"pokemcp/internal/logger"
	"pokemcp/internal/ratelimit"

	"github.com/gorilla/mux"
)

// Server represents the HTTP server with all dependencies
type Server struct {
	handler *Handler
	logger  logger.Service
	server  *http.Server
}

// NewServer creates a new HTTP server
func NewServer(
	addr string,
	handler *Handler,
	logger logger.Service,
	rateLimiter ratelimit.Service,
	readTimeout, writeTimeout time.Duration,
) *Server {
	router := mux.NewRouter()

	srv := &Server{
		handler: handler,
		logger:  logger,
		server: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
	}

	// Register middleware (order matters: logging -> rate limiting -> cors -> recovery)
	router.Use(loggingMiddleware(logger))
	router.Use(rateLimitingMiddleware(rateLimiter, logger))
	router.Use(corsMiddleware())
	router.Use(recoveryMiddleware(logger))

	srv.registerRoutes(router)

	return srv
}

// registerRoutes sets up all API routes. Tool operations live under /api,
// raw entity views under /resources.
func (s *Server) registerRoutes(router *mux.Router) {
	router.HandleFunc("/health", s.handler.HealthCheck).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()

	// Pokémon
	api.HandleFunc("/pokemon", s.handler.ListPokemon).Methods("GET")
	api.HandleFunc("/pokemon/{name}", s.handler.GetPokemon).Methods("GET")
	api.HandleFunc("/pokemon/{name}/species", s.handler.GetPokemonSpecies).Methods("GET")
	api.HandleFunc("/pokemon/{name}/stats", s.handler.GetPokemonStats).Methods("GET")
	api.HandleFunc("/pokemon/{name}/abilities", s.handler.GetPokemonAbilities).Methods("GET")
	api.HandleFunc("/pokemon/{name}/evolution-chain", s.handler.GetEvolutionChain).Methods("GET")
	api.HandleFunc("/pokemon/{name}/moves", s.handler.GetPokemonMoves).Methods("GET")

	// Moves
	api.HandleFunc("/moves", s.handler.ListMoves).Methods("GET")
	api.HandleFunc("/moves/{name}", s.handler.GetMove).Methods("GET")
	api.HandleFunc("/moves/{name}/summary", s.handler.GetMoveSummary).Methods("GET")

	// Items
	api.HandleFunc("/items", s.handler.ListItems).Methods("GET")
	api.HandleFunc("/items/{name}", s.handler.GetItem).Methods("GET")
	api.HandleFunc("/items/{name}/summary", s.handler.GetItemSummary).Methods("GET")
	api.HandleFunc("/items/{name}/holders", s.handler.GetItemHolders).Methods("GET")
	api.HandleFunc("/item-categories/{category}", s.handler.GetItemCategory).Methods("GET")

	// Types
	api.HandleFunc("/types", s.handler.ListTypes).Methods("GET")
	api.HandleFunc("/types/{name}", s.handler.GetType).Methods("GET")
	api.HandleFunc("/types/{name}/matchups", s.handler.GetTypeMatchups).Methods("GET")
	api.HandleFunc("/types/{name}/defenses", s.handler.GetTypeDefenses).Methods("GET")
	api.HandleFunc("/types/{name}/pokemon", s.handler.GetTypePokemon).Methods("GET")
	api.HandleFunc("/types/{name}/moves", s.handler.GetTypeMoves).Methods("GET")
	api.HandleFunc("/types/{one}/combined/{two}", s.handler.GetDualTypeMatchups).Methods("GET")

	// Raw entity resources
	router.HandleFunc("/resources/{entity}/{id}", s.handler.GetResource).Methods("GET")

	// Root handler
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message":"PokeMCP API","version":"1.0.0","endpoints":["/health","/api/pokemon","/api/moves","/api/items","/api/types","/resources/{entity}/{id}"]}`))
	}).Methods("GET")
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.LogInfo(context.Background(), logger.OpServerStart, "Starting HTTP server", map[string]interface{}{
		"addr": s.server.Addr,
	})

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.LogInfo(ctx, logger.OpServerShutdown, "Shutting down HTTP server", nil)
	return s.server.Shutdown(ctx)
}
