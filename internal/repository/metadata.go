package repository

import (
	"context"

	"github.com/rohanvyas/form-extractor-api/internal/models"
	"github.com/jmoiron/sqlx"
)

// MetadataRepository is the append-only store of extraction-attempt
// records. Records are never updated or deleted.
type MetadataRepository interface {
	Insert(ctx context.Context, rec *models.MetadataRecord) error
	Recent(ctx context.Context, limit int) ([]models.MetadataRecord, error)
	Ping(ctx context.Context) error
}

type metadataRepository struct {
	db *sqlx.DB
}

func NewMetadataRepository(db *sqlx.DB) MetadataRepository {
	return &metadataRepository{db: db}
}

func (r *metadataRepository) Insert(ctx context.Context, rec *models.MetadataRecord) error {
	query := `
		INSERT INTO metadata_records
			(id, user_name, user_email, ip_address, user_agent, device,
			 file_name, file_type, form_type, ai_raw_text, ai_structured, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.UserName,
		rec.UserEmail,
		rec.IPAddress,
		rec.UserAgent,
		rec.Device,
		rec.FileName,
		rec.FileType,
		rec.FormType,
		rec.AIRawText,
		string(rec.AIStructured),
		rec.CreatedAt,
	)

	return err
}

func (r *metadataRepository) Recent(ctx context.Context, limit int) ([]models.MetadataRecord, error) {
	query := `
		SELECT id, user_name, user_email, ip_address, user_agent, device,
		       file_name, file_type, form_type, ai_raw_text, ai_structured, created_at
		FROM metadata_records
		ORDER BY created_at DESC
		LIMIT $1
	`

	records := []models.MetadataRecord{}
	if err := r.db.SelectContext(ctx, &records, query, limit); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *metadataRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
