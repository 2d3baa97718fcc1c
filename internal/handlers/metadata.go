package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rohanvyas/form-extractor-api/internal/models"
	"github.com/rohanvyas/form-extractor-api/internal/services"
	"github.com/rohanvyas/form-extractor-api/internal/utils"
)

type MetadataHandler struct {
	service services.MetadataService
	logger  *utils.Logger
}

func NewMetadataHandler(service services.MetadataService, logger *utils.Logger) *MetadataHandler {
	return &MetadataHandler{
		service: service,
		logger:  logger,
	}
}

// CreateMetadata appends one analytics record for an extraction attempt.
// The body fields are all optional and stored unverified.
func (h *MetadataHandler) CreateMetadata(w http.ResponseWriter, r *http.Request) {
	var req models.MetadataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, utils.NewInternalError(err.Error()))
		return
	}

	id, err := h.service.Record(r.Context(), &req, clientInfo(r))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, models.MetadataResponse{
		Success: true,
		Message: "Metadata stored successfully",
		ID:      id,
	})
}

// ListMetadata returns the most recent records, newest first.
func (h *MetadataHandler) ListMetadata(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	records, err := h.service.Recent(r.Context(), limit)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, models.MetadataListResponse{
		Records: records,
		Count:   len(records),
	})
}
