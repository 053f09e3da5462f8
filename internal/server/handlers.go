package server

import (
	"net/http"

	"github.com/google/uuid"

	"reel_fetcher/internal/domain"
)

func (s *Server) handleSearchLocations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		s.writeError(w, http.StatusBadRequest, "Query parameter is required")
		return
	}

	locations, err := s.locations.Search(r.Context(), query)
	if err != nil {
		s.logger.Error("location search failed", "query", query, "error", err)
		s.writeError(w, http.StatusInternalServerError, "An error occurred while searching for locations.")
		return
	}

	s.writeJSON(w, http.StatusOK, locations)
}

type addLocationRequest struct {
	Name              string  `json:"name"`
	FormattedAddress  *string `json:"formattedAddress"`
	PlaceID           *string `json:"placeId"`
	Category          string  `json:"category"`
	InstagramHandle   string  `json:"instagramId"`
	InstagramUsername *string `json:"instagramUsername"`
	InstagramBio      *string `json:"instagramBio"`
}

func (s *Server) handleAddLocation(w http.ResponseWriter, r *http.Request) {
	var req addLocationRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	categoryID, err := uuid.Parse(req.Category)
	if err != nil || req.Name == "" {
		s.writeError(w, http.StatusBadRequest, "name and category are required")
		return
	}

	loc := &domain.Location{
		Name:              req.Name,
		FormattedAddress:  req.FormattedAddress,
		PlaceID:           req.PlaceID,
		InstagramHandle:   req.InstagramHandle,
		InstagramUsername: req.InstagramUsername,
		InstagramBio:      req.InstagramBio,
		CategoryID:        categoryID,
	}
	if err := s.locations.Insert(r.Context(), loc); err != nil {
		s.logger.Error("failed to add location", "name", req.Name, "error", err)
		s.writeError(w, http.StatusInternalServerError, "Failed to add location. Please try again.")
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Location added successfully",
		"id":      loc.ID,
	})
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.categories.List(r.Context())
	if err != nil {
		s.logger.Error("failed to list categories", "error", err)
		s.writeError(w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}

	s.writeJSON(w, http.StatusOK, categories)
}

type addCategoryRequest struct {
	Name                 string  `json:"name"`
	PopularityPercentage float64 `json:"popularityPercentage"`
	Type                 string  `json:"type"`
}

func (s *Server) handleAddCategory(w http.ResponseWriter, r *http.Request) {
	var req addCategoryRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		s.writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	category := &domain.Category{
		Name:                 req.Name,
		PopularityPercentage: req.PopularityPercentage,
		Type:                 req.Type,
	}
	if err := s.categories.Insert(r.Context(), category); err != nil {
		s.logger.Error("failed to add category", "name", req.Name, "error", err)
		s.writeError(w, http.StatusInternalServerError, "Failed to add category. Please try again.")
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Category added successfully",
		"id":      category.ID,
	})
}

func (s *Server) handleLookupUser(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		s.writeError(w, http.StatusBadRequest, "Username parameter is required")
		return
	}

	user, err := s.instagram.LookupUser(r.Context(), username)
	if err != nil {
		s.logger.Error("instagram lookup failed", "username", username, "error", err)
		s.writeError(w, http.StatusInternalServerError, "An error occurred while fetching Instagram data.")
		return
	}

	s.writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleSearchPlaces(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		s.writeError(w, http.StatusBadRequest, "Query parameter is required")
		return
	}

	result, err := s.places.TextSearch(r.Context(), query)
	if err != nil {
		s.logger.Error("place search failed", "query", query, "error", err)
		s.writeError(w, http.StatusInternalServerError, "An error occurred while searching for places.")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result)
}
