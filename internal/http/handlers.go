package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"pokemcp/internal/logger"
	"pokemcp/internal/models"
	"pokemcp/internal/pokedex"

	"github.com/gorilla/mux"
)

// Handler contains the HTTP handlers for the API
type Handler struct {
	pokedex pokedex.Service
	logger  logger.Service
}

// NewHandler creates a new HTTP handler
func NewHandler(
	pokedexService pokedex.Service,
	logger logger.Service,
) *Handler {
	return &Handler{
		pokedex: pokedexService,
		logger:  logger,
	}
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthResponse represents a health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// operationFunc is the service call a route handler delegates to
type operationFunc func(ctx context.Context) (interface{}, error)

// respond runs the operation and writes either the payload or a mapped error
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, operation, target string, fn operationFunc) {
	ctx := r.Context()

	result, err := fn(ctx)
	if err != nil {
		h.logger.LogError(ctx, operation, target, "Operation failed", err, models.LogSeverityMedium, nil)
		h.writeErrorResponse(w, r, statusCodeForError(err), operation+" failed", err.Error())
		return
	}

	if err := h.writeJSONResponse(w, r, http.StatusOK, result); err != nil {
		// Response already sent with 200, but log the encoding error
		h.logger.LogError(ctx, operation, target, "Failed to encode response", err, models.LogSeverityLow, nil)
		return
	}

	h.logger.LogSuccess(ctx, operation, target, "Operation completed", nil)
}

// --- Pokémon routes ---

// GetPokemon handles GET /api/pokemon/{name}
func (h *Handler) GetPokemon(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	h.respond(w, r, logger.OpToolCall, name, func(ctx context.Context) (interface{}, error) {
		return h.pokedex.GetPokemon(ctx, name)
	})
}

// GetPokemonSpecies handles GET /api/pokemon/{name}/species
func (h *Handler) GetPokemonSpecies(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	h.respond(w, r, logger.OpToolCall, name, func(ctx context.Context) (interface{}, error) {
		return h.pokedex.GetPokemonSpecies(ctx, name)
	})
}

// GetPokemonStats handles GET /api/pokemon/{name}/stats
func (h *Handler) GetPokemonStats(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	h.respond(w, r, logger.OpToolCall, name, func(ctx context.Context) (interface{}, error) {
		return h.pokedex.GetPokemonStats(ctx, name)
	})
}

// GetPokemonAbilities handles GET /api/pokemon/{name}/abilities
func (h *Handler) GetPokemonAbilities(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	h.respond(w, r, logger.OpToolCall, name, func(ctx context.Context) (interface{}, error) {
		return h.pokedex.GetPokemonAbilities(ctx, name)
	})
}

// GetEvolutionChain handles GET /api/pokemon/{name}/evolution-chain
func (h *Handler) GetEvolutionChain(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	h.respond(w, r, logger.OpToolCall, name, func(ctx context.Context) (interface{}, error) {
		return h.pokedex.GetEvolutionChain(ctx, name)
	})
}

// GetPokemonMoves handles GET /api/pokemon/{name}/moves
func (h *Handler) GetPokemonMoves(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	h.respond(w, r, logger.OpToolCall, name, func(ctx context.Context) (interface{}, error) {
		return h.pokedex.GetMovesLearnedByPokemon(ctx, name)
	})
}

// ListPokemon handles GET /api/pokemon
func (h *Handler) ListPokemon(w http.ResponseWriter, r *http.Request) {
	limit, offset := parseListParams(r)
	h.respond(w, r, logger.OpToolCall, "pokemon_list", func(ctx context.Context) (interface{}, error) {
		return h.pokedex.ListPokemon(ctx, limit, offset)
	})
}

// --- Move routes ---

// GetMove handles GET /api/moves/{name}
func (h *Handler) GetMove(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	h.respond(w, r, logger.OpToolCall, name, func(ctx context.Context) (interface{}, error) {
		return h.pokedex.GetMove(ctx, name)
	})
}

// GetMoveSummary handles GET /api/moves/{name}/summary
func (h *Handler) GetMoveSummary(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	h.respond(w, r, logger.OpToolCall, name, func(ctx context.Context) (interface{}, error) {
		return h.pokedex.GetMoveSummary(ctx, name)
	})
}

// ListMoves handles GET /api/moves
func (h *Handler) ListMoves(w http.ResponseWriter, r *http.Request) {
	limit, offset := parseListParams(r)
	h.respond(w, r, logger.OpToolCall, "moves_list", func(ctx context.Context) (interface{}, error) {
		return h.pokedex.ListMoves(ctx, limit, offset)
	})
}

// --- Item routes ---

// GetItem handles GET /api/items/{name}
func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	h.respond(w, r, logger.OpToolCall, name, func(ctx context.Context) (interface{}, error) {
		return h.pokedex.GetItem(ctx, name)
	})
}

// GetItemSummary handles GET /api/items/{name}/summary
func (h *Handler) GetItemSummary(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	h.respond(w, r, logger.OpToolCall, name, func(ctx context.Context) (interface{}, error) {
		return h.pokedex.GetItemSummary(ctx, name)
	})
}

// GetItemHolders handles GET /api/items/{name}/holders
func (h *Handler) GetItemHolders(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	h.respond(w, r, logger.OpToolCall, name, func(ctx context.Context) (interface{}, error) {
		return h.pokedex.GetItemHeldByPokemon(ctx, name)
	})
}

// ListItems handles GET /api/items
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	limit, offset := parseListParams(r)
	h.respond(w, r, logger.OpToolCall, "items_list", func(ctx context.Context) (interface{}, error) {
		return h.pokedex.ListItems(ctx, limit, offset)
	})
}

// GetItemCategory handles GET /api/item-categories/{category}
func (h *Handler) GetItemCategory(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]
	h.respond(w, r, logger.OpToolCall, category, func(ctx context.Context) (interface{}, error) {
		return h.pokedex.GetItemsByCategory(ctx, category)
	})
}

// --- Type routes ---

// ListTypes handles GET /api/types
func (h *Handler) ListTypes(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, logger.OpToolCall, "types", func(ctx context.Context) (interface{}, error) {
		return map[string][]string{"types": h.pokedex.ListTypes()}, nil
	})
}

// GetType handles GET /api/types/{name}
func (h *Handler) GetType(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	h.respond(w, r, logger.OpToolCall, name, func(ctx context.Context) (interface{}, error) {
		return h.pokedex.GetType(ctx, name)
	})
}

// GetTypeMatchups handles GET /api/types/{name}/matchups
func (h *Handler) GetTypeMatchups(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	h.respond(w, r, logger.OpToolCall, name, func(ctx context.Context) (interface{}, error) {
		return h.pokedex.GetTypeMatchups(ctx, name)
	})
}

// GetTypeDefenses handles GET /api/types/{name}/defenses
func (h *Handler) GetTypeDefenses(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	h.respond(w, r, logger.OpToolCall, name, func(ctx context.Context) (interface{}, error) {
		return h.pokedex.GetTypeDefenses(ctx, name)
	})
}

// GetTypePokemon handles GET /api/types/{name}/pokemon
func (h *Handler) GetTypePokemon(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	h.respond(w, r, logger.OpToolCall, name, func(ctx context.Context) (interface{}, error) {
		return h.pokedex.SearchPokemonByType(ctx, name)
	})
}

// GetTypeMoves handles GET /api/types/{name}/moves
func (h *Handler) GetTypeMoves(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	h.respond(w, r, logger.OpToolCall, name, func(ctx context.Context) (interface{}, error) {
		return h.pokedex.GetMovesByType(ctx, name)
	})
}

// GetDualTypeMatchups handles GET /api/types/{one}/combined/{two}
func (h *Handler) GetDualTypeMatchups(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	one, two := vars["one"], vars["two"]
	h.respond(w, r, logger.OpToolCall, one+"/"+two, func(ctx context.Context) (interface{}, error) {
		return h.pokedex.GetDualTypeMatchups(ctx, one, two)
	})
}

// --- Resources ---

// GetResource handles GET /resources/{entity}/{id}
func (h *Handler) GetResource(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	entity, id := vars["entity"], vars["id"]
	h.respond(w, r, logger.OpResourceRead, entity+":"+id, func(ctx context.Context) (interface{}, error) {
		return h.pokedex.GetResource(ctx, entity, id)
	})
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   "1.0.0",
	}

	if err := h.writeJSONResponse(w, r, http.StatusOK, response); err != nil {
		h.logger.LogError(ctx, logger.OpHealthCheck, "", "Failed to encode health response", err, models.LogSeverityLow, nil)
		return
	}

	h.logger.LogInfo(ctx, logger.OpHealthCheck, "Health check performed successfully", nil)
}

// writeJSONResponse writes a JSON response with standard headers including X-Request-ID
func (h *Handler) writeJSONResponse(w http.ResponseWriter, r *http.Request, statusCode int, data interface{}) error {
	logEvent := logger.GetLogEvent(r.Context())

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Request-ID", logEvent.ProcessID)
	w.WriteHeader(statusCode)

	return json.NewEncoder(w).Encode(data)
}

// writeErrorResponse writes a standardized error response
func (h *Handler) writeErrorResponse(w http.ResponseWriter, r *http.Request, statusCode int, errText, message string) {
	response := ErrorResponse{
		Error:     errText,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}

	if err := h.writeJSONResponse(w, r, statusCode, response); err != nil {
		h.logger.LogError(r.Context(), "response_encoding", "", "Failed to encode error response", err, models.LogSeverityLow, nil)
	}
}

// statusCodeForError maps service errors to HTTP status codes
func statusCodeForError(err error) int {
	var upstreamErr *models.UpstreamError

	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidIdentifier), errors.Is(err, models.ErrEmptyCacheKey):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrFetchTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, models.ErrMalformedPayload):
		return http.StatusBadGateway
	case errors.As(err, &upstreamErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// parseListParams reads the limit/offset query parameters, falling back to
// the service defaults on absent or unparsable values
func parseListParams(r *http.Request) (limit, offset int) {
	q := r.URL.Query()

	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	if v := q.Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			offset = n
		}
	}
	return limit, offset
}
