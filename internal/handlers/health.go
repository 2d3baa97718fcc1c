package handlers

import (
	"net/http"

	"github.com/rohanvyas/form-extractor-api/internal/repository"
	"github.com/rohanvyas/form-extractor-api/internal/utils"
)

type HealthHandler struct {
	repo   repository.MetadataRepository
	logger *utils.Logger
}

func NewHealthHandler(repo repository.MetadataRepository, logger *utils.Logger) *HealthHandler {
	return &HealthHandler{
		repo:   repo,
		logger: logger,
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Ping(r.Context()); err != nil {
		h.logger.Error("Database ping failed", "error", err)
		respondJSON(w, h.logger, http.StatusServiceUnavailable, map[string]string{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]string{
		"status":   "healthy",
		"database": "connected",
	})
}
