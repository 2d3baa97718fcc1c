package services

import (
	"context"
	"time"

	"github.com/rohanvyas/form-extractor-api/internal/models"
	"github.com/rohanvyas/form-extractor-api/internal/repository"
	"github.com/rohanvyas/form-extractor-api/internal/utils"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type MetadataService interface {
	Record(ctx context.Context, req *models.MetadataRequest, client models.ClientInfo) (string, error)
	Recent(ctx context.Context, limit int) ([]models.MetadataRecord, error)
}

type metadataService struct {
	repo   repository.MetadataRepository
	logger *utils.Logger
}

func NewMetadataService(repo repository.MetadataRepository, logger *utils.Logger) MetadataService {
	return &metadataService{
		repo:   repo,
		logger: logger,
	}
}

// Record appends one analytics row for an extraction attempt. All
// caller-supplied fields are stored as received; nothing is validated or
// verified.
func (s *metadataService) Record(ctx context.Context, req *models.MetadataRequest, client models.ClientInfo) (string, error) {
	rec := &models.MetadataRecord{
		ID:           utils.GenerateID(),
		UserName:     req.UserName,
		UserEmail:    req.UserEmail,
		IPAddress:    client.IPAddress,
		UserAgent:    client.UserAgent,
		Device:       client.Device,
		FileName:     req.FileName,
		FileType:     req.FileType,
		FormType:     req.FormType,
		AIRawText:    req.AIRawText,
		AIStructured: req.AIStructured,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, rec); err != nil {
		s.logger.Error("Failed to save metadata", "error", err, "id", rec.ID)
		return "", utils.NewInternalError(err.Error())
	}

	s.logger.Info("Metadata stored",
		"id", rec.ID,
		"form_type", rec.FormType,
		"device", rec.Device,
		"ip", rec.IPAddress)

	return rec.ID, nil
}

func (s *metadataService) Recent(ctx context.Context, limit int) ([]models.MetadataRecord, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	records, err := s.repo.Recent(ctx, limit)
	if err != nil {
		s.logger.Error("Failed to list metadata", "error", err)
		return nil, utils.NewInternalError(err.Error())
	}

	return records, nil
}
