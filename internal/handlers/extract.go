package handlers

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/rohanvyas/form-extractor-api/internal/models"
	"github.com/rohanvyas/form-extractor-api/internal/prompt"
	"github.com/rohanvyas/form-extractor-api/internal/services"
	"github.com/rohanvyas/form-extractor-api/internal/utils"
)

const (
	MaxFileSize = 10 << 20 // 10MB
)

type ExtractHandler struct {
	service services.ExtractionService
	logger  *utils.Logger
}

func NewExtractHandler(service services.ExtractionService, logger *utils.Logger) *ExtractHandler {
	return &ExtractHandler{
		service: service,
		logger:  logger,
	}
}

// ExtractAdmission handles uploads of the school-admission form.
func (h *ExtractHandler) ExtractAdmission(w http.ResponseWriter, r *http.Request) {
	h.extract(w, r, prompt.AdmissionForm)
}

// ExtractDevanagari handles uploads of the Devanagari data-collection form.
func (h *ExtractHandler) ExtractDevanagari(w http.ResponseWriter, r *http.Request) {
	h.extract(w, r, prompt.DevanagariForm)
}

func (h *ExtractHandler) extract(w http.ResponseWriter, r *http.Request, formType prompt.FormType) {
	// Reject oversized requests before reading the body
	if r.ContentLength > MaxFileSize {
		respondError(w, h.logger, utils.NewBadRequestError("File size exceeds 10MB limit"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxFileSize)

	if err := r.ParseMultipartForm(MaxFileSize); err != nil {
		if strings.Contains(err.Error(), "request body too large") {
			respondError(w, h.logger, utils.NewBadRequestError("File size exceeds 10MB limit"))
			return
		}
		respondError(w, h.logger, utils.NewBadRequestError("No PDF provided"))
		return
	}

	// A plain string value in the "file" field is not a file upload;
	// FormFile rejects both that and an absent field.
	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, h.logger, utils.NewBadRequestError("No PDF provided"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, h.logger, utils.NewInternalError("Failed to read file"))
		return
	}

	if len(data) == 0 {
		respondError(w, h.logger, utils.NewBadRequestError("Uploaded file is empty"))
		return
	}

	contentType := determineContentType(header.Filename, header.Header.Get("Content-Type"))

	h.logger.Info("Received file",
		"form_type", formType,
		"filename", header.Filename,
		"content_type", contentType)

	req := &models.ExtractionRequest{
		File:        data,
		Filename:    header.Filename,
		ContentType: contentType,
	}

	result, err := h.service.Extract(r.Context(), formType, req)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}

// determineContentType resolves the declared media type from the filename
// extension, falling back to whatever the client reported. Nothing is
// rejected on type; the model receives the declaration as-is.
func determineContentType(filename, headerContentType string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	}

	if headerContentType != "" {
		return headerContentType
	}

	return "application/octet-stream"
}
