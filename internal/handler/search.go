package handler

import (
	"log/slog"
	"net/http"

	"chatpaat/internal/domain/services"
	"chatpaat/internal/httputil"
)

// SearchHandler handles search history HTTP requests
type SearchHandler struct {
	searchService services.SearchService
	logger        *slog.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService services.SearchService, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		logger:        logger,
	}
}

// RecordQuery appends a search query to the user's history
// POST /api/search
// Returns 201 with the stored record, 400 on an empty query
func (h *SearchHandler) RecordQuery(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	var req searchRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	record, err := h.searchService.RecordQuery(r.Context(), userID, req.Query)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, record)
}
