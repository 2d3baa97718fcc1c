package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rohanvyas/form-extractor-api/internal/models"
	"github.com/rohanvyas/form-extractor-api/internal/services"
	"github.com/rohanvyas/form-extractor-api/internal/utils"
)

// stubRepository captures the inserted record.
type stubRepository struct {
	inserted *models.MetadataRecord
	err      error
	records  []models.MetadataRecord
}

func (s *stubRepository) Insert(ctx context.Context, rec *models.MetadataRecord) error {
	if s.err != nil {
		return s.err
	}
	s.inserted = rec
	return nil
}

func (s *stubRepository) Recent(ctx context.Context, limit int) ([]models.MetadataRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	if limit < len(s.records) {
		return s.records[:limit], nil
	}
	return s.records, nil
}

func (s *stubRepository) Ping(ctx context.Context) error {
	return s.err
}

func newMetadataHandler(repo *stubRepository) *MetadataHandler {
	logger := utils.NewLogger("error")
	return NewMetadataHandler(services.NewMetadataService(repo, logger), logger)
}

func TestCreateMetadataMobileClient(t *testing.T) {
	repo := &stubRepository{}
	handler := newMetadataHandler(repo)

	body := `{
		"userName": "Asha",
		"userEmail": "asha@example.com",
		"fileName": "form.pdf",
		"fileType": "application/pdf",
		"formType": "admission",
		"aiRawText": "{\"a\":1}",
		"aiStructured": {"a": 1}
	}`

	r := httptest.NewRequest("POST", "/api/v1/metadata", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("User-Agent", "Mozilla/5.0 (Linux; Android) Mobile")
	w := httptest.NewRecorder()

	handler.CreateMetadata(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}

	var resp models.MetadataResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if !resp.Success {
		t.Error("success = false, want true")
	}
	if resp.Message != "Metadata stored successfully" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.ID == "" {
		t.Error("id missing from response")
	}

	rec := repo.inserted
	if rec == nil {
		t.Fatal("no record inserted")
	}
	if rec.ID != resp.ID {
		t.Errorf("stored id %q does not match response id %q", rec.ID, resp.ID)
	}
	// No forwarding header on the request
	if rec.IPAddress != "unknown" {
		t.Errorf("ipAddress = %q, want unknown", rec.IPAddress)
	}
	if rec.Device != "mobile" {
		t.Errorf("device = %q, want mobile", rec.Device)
	}
	if rec.UserName != "Asha" || rec.FormType != "admission" {
		t.Errorf("caller fields not stored: %+v", rec)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("createdAt not assigned at write time")
	}

	var structured map[string]any
	if err := json.Unmarshal(rec.AIStructured, &structured); err != nil {
		t.Errorf("aiStructured not stored as JSON: %v", err)
	}
}

func TestCreateMetadataForwardedChain(t *testing.T) {
	repo := &stubRepository{}
	handler := newMetadataHandler(repo)

	r := httptest.NewRequest("POST", "/api/v1/metadata", strings.NewReader(`{}`))
	r.Header.Set("X-Forwarded-For", "1.2.3.4, 5.6.7.8")
	w := httptest.NewRecorder()

	handler.CreateMetadata(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if repo.inserted.IPAddress != "1.2.3.4" {
		t.Errorf("ipAddress = %q, want 1.2.3.4", repo.inserted.IPAddress)
	}
}

func TestCreateMetadataEmptyBodyAllowed(t *testing.T) {
	repo := &stubRepository{}
	handler := newMetadataHandler(repo)

	// All fields optional
	r := httptest.NewRequest("POST", "/api/v1/metadata", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	handler.CreateMetadata(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}
	if repo.inserted == nil {
		t.Fatal("no record inserted")
	}
}

func TestCreateMetadataPersistenceFailure(t *testing.T) {
	repo := &stubRepository{err: errors.New("disk I/O error")}
	handler := newMetadataHandler(repo)

	r := httptest.NewRequest("POST", "/api/v1/metadata", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	handler.CreateMetadata(w, r)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("error response is not valid JSON: %v", err)
	}
	if resp["error"] != "disk I/O error" {
		t.Errorf("error = %q, want the underlying message", resp["error"])
	}
}

func TestCreateMetadataMalformedBody(t *testing.T) {
	repo := &stubRepository{}
	handler := newMetadataHandler(repo)

	r := httptest.NewRequest("POST", "/api/v1/metadata", strings.NewReader(`{not json`))
	w := httptest.NewRecorder()

	handler.CreateMetadata(w, r)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if repo.inserted != nil {
		t.Error("record inserted despite malformed body")
	}
}

func TestListMetadata(t *testing.T) {
	repo := &stubRepository{
		records: []models.MetadataRecord{
			{ID: "b", Device: "mobile"},
			{ID: "a", Device: "desktop"},
		},
	}
	handler := newMetadataHandler(repo)

	r := httptest.NewRequest("GET", "/api/v1/metadata?limit=50", nil)
	w := httptest.NewRecorder()

	handler.ListMetadata(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp models.MetadataListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if resp.Count != 2 || len(resp.Records) != 2 {
		t.Errorf("count = %d, records = %d, want 2", resp.Count, len(resp.Records))
	}
	if resp.Records[0].ID != "b" {
		t.Errorf("records not in stored order: %+v", resp.Records)
	}
}
