package router

import (
	"net/http"

	"github.com/rohanvyas/form-extractor-api/internal/handlers"
	"github.com/rohanvyas/form-extractor-api/internal/middleware"
	"github.com/rohanvyas/form-extractor-api/internal/repository"
	"github.com/rohanvyas/form-extractor-api/internal/services"
	"github.com/rohanvyas/form-extractor-api/internal/utils"

	"github.com/gorilla/mux"
)

func NewRouter(
	extraction services.ExtractionService,
	metadata services.MetadataService,
	repo repository.MetadataRepository,
	logger *utils.Logger,
) http.Handler {
	r := mux.NewRouter()

	// Middlewares
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Recovery(logger))

	extractHandler := handlers.NewExtractHandler(extraction, logger)
	metadataHandler := handlers.NewMetadataHandler(metadata, logger)
	healthHandler := handlers.NewHealthHandler(repo, logger)

	// Routes
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", healthHandler.Health).Methods(http.MethodGet)

	// Extraction endpoints, one per form type
	api.HandleFunc("/ocr", extractHandler.ExtractAdmission).Methods(http.MethodPost)
	api.HandleFunc("/ocr/hindi", extractHandler.ExtractDevanagari).Methods(http.MethodPost)

	// Analytics logging
	api.HandleFunc("/metadata", metadataHandler.CreateMetadata).Methods(http.MethodPost)
	api.HandleFunc("/metadata", metadataHandler.ListMetadata).Methods(http.MethodGet)

	return r
}
