package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"reel_fetcher/internal/domain"
	"reel_fetcher/internal/progress"
	"reel_fetcher/internal/source/instagram"
)

// Pipeline runs one ingestion end to end, publishing progress for the
// session as it goes.
type Pipeline interface {
	Run(ctx context.Context, input domain.RunInput, sessionID string) *domain.RunResult
}

type LocationDirectory interface {
	Search(ctx context.Context, query string) ([]domain.Location, error)
	Insert(ctx context.Context, loc *domain.Location) error
}

type CategoryDirectory interface {
	List(ctx context.Context) ([]domain.Category, error)
	Insert(ctx context.Context, category *domain.Category) error
}

type UserLookup interface {
	LookupUser(ctx context.Context, username string) (*instagram.UserData, error)
}

type PlaceSearcher interface {
	TextSearch(ctx context.Context, query string) (json.RawMessage, error)
}

// Server exposes the ingestion pipeline and the admin surface over
// HTTP. Progress streams to observers as SSE bridged off the bus.
type Server struct {
	pipeline   Pipeline
	bus        *progress.Bus
	locations  LocationDirectory
	categories CategoryDirectory
	instagram  UserLookup
	places     PlaceSearcher
	logger     *slog.Logger
}

func New(
	pipeline Pipeline,
	bus *progress.Bus,
	locations LocationDirectory,
	categories CategoryDirectory,
	userLookup UserLookup,
	placeSearch PlaceSearcher,
	logger *slog.Logger,
) *Server {
	return &Server{
		pipeline:   pipeline,
		bus:        bus,
		locations:  locations,
		categories: categories,
		instagram:  userLookup,
		places:     placeSearch,
		logger:     logger.With("component", "server"),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/reels/fetch", s.handleFetchReels)
	mux.HandleFunc("GET /api/reels/events/{session}", s.handleReelEvents)
	mux.HandleFunc("GET /api/locations", s.handleSearchLocations)
	mux.HandleFunc("POST /api/locations", s.handleAddLocation)
	mux.HandleFunc("GET /api/categories", s.handleListCategories)
	mux.HandleFunc("POST /api/categories", s.handleAddCategory)
	mux.HandleFunc("GET /api/instagram/user", s.handleLookupUser)
	mux.HandleFunc("GET /api/places/search", s.handleSearchPlaces)

	return mux
}

// handleFetchReels runs the pipeline synchronously and returns its
// final result. Observers watching progress open the SSE stream for the
// same session before posting here.
func (s *Server) handleFetchReels(w http.ResponseWriter, r *http.Request) {
	var req struct {
		domain.RunInput
		SessionID string `json:"sessionId"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Location == "" || req.SessionID == "" {
		s.writeError(w, http.StatusBadRequest, "locationName and sessionId are required")
		return
	}

	result := s.pipeline.Run(r.Context(), req.RunInput, req.SessionID)

	s.writeJSON(w, http.StatusOK, result)
}

// handleReelEvents bridges the session's progress events onto an SSE
// stream until the client disconnects. Disconnecting only stops
// delivery; the run itself carries on.
func (s *Server) handleReelEvents(w http.ResponseWriter, r *http.Request) {
	session := r.PathValue("session")

	sw, err := NewSSEWriter(w)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	events := make(chan domain.ProgressEvent, 16)
	unsubscribe := s.bus.Subscribe(session, func(event domain.ProgressEvent) {
		select {
		case events <- event:
		default:
			s.logger.Warn("dropped event for slow client", "session_id", session)
		}
	})
	defer unsubscribe()

	for {
		select {
		case <-r.Context().Done():
			return
		case event := <-events:
			if err := sw.WriteEvent(string(event.Type), event); err != nil {
				return
			}
		}
	}
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
