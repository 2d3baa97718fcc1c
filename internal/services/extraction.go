package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rohanvyas/form-extractor-api/internal/analyzer"
	"github.com/rohanvyas/form-extractor-api/internal/docinfo"
	"github.com/rohanvyas/form-extractor-api/internal/models"
	"github.com/rohanvyas/form-extractor-api/internal/prompt"
	"github.com/rohanvyas/form-extractor-api/internal/storage"
	"github.com/rohanvyas/form-extractor-api/internal/utils"
)

type ExtractionService interface {
	Extract(ctx context.Context, formType prompt.FormType, req *models.ExtractionRequest) (*models.ExtractionResult, error)
}

type extractionService struct {
	analyzer analyzer.Analyzer
	archive  storage.Storage // nil when archiving is not configured
	logger   *utils.Logger
}

func NewExtractionService(llm analyzer.Analyzer, archive storage.Storage, logger *utils.Logger) ExtractionService {
	return &extractionService{
		analyzer: llm,
		archive:  archive,
		logger:   logger,
	}
}

// Extract submits the uploaded form to the vision model and reshapes the
// reply into the raw/structured pair. The reply is returned even when it
// cannot be parsed; only the model call itself can fail.
func (s *extractionService) Extract(ctx context.Context, formType prompt.FormType, req *models.ExtractionRequest) (*models.ExtractionResult, error) {
	p, err := prompt.ForType(formType)
	if err != nil {
		s.logger.Warn("Unknown form type", "form_type", formType)
		return nil, utils.NewBadRequestError(err.Error())
	}

	s.logger.Info("Starting form extraction",
		"form_type", formType,
		"filename", req.Filename,
		"content_type", req.ContentType,
		"file_size", len(req.File))

	rawText, err := s.analyzer.Extract(ctx, p, req.File, req.ContentType)
	if err != nil {
		s.logger.Error("Failed to extract form", "error", err, "form_type", formType)
		return nil, utils.NewInternalError(err.Error())
	}

	structured := analyzer.ParseStructured(rawText)
	if len(structured) == 0 {
		s.logger.Warn("Model reply did not parse as JSON",
			"form_type", formType,
			"raw_length", len(rawText))
	}

	s.archiveUpload(ctx, formType, req)

	s.logger.Info("Form extracted successfully",
		"form_type", formType,
		"raw_length", len(rawText),
		"structured_keys", len(structured))

	return &models.ExtractionResult{
		RawText:    rawText,
		Structured: structured,
	}, nil
}

// archiveUpload keeps a copy of the scanned form for the research dataset.
// Failures are logged and swallowed; the extraction result already computed
// must reach the caller regardless.
func (s *extractionService) archiveUpload(ctx context.Context, formType prompt.FormType, req *models.ExtractionRequest) {
	if s.archive == nil {
		return
	}

	key := fmt.Sprintf("uploads/%s/%s-%s", formType, utils.GenerateID(), req.Filename)

	metadata := map[string]string{"form-type": string(formType)}
	if docinfo.IsPDF(req.ContentType) {
		metadata["page-count"] = strconv.Itoa(docinfo.PageCount(req.File))
	}

	if err := s.archive.Upload(ctx, key, req.File, req.ContentType, metadata); err != nil {
		s.logger.Warn("Failed to archive upload", "error", err, "key", key)
		return
	}

	s.logger.Info("Upload archived", "key", key)
}
