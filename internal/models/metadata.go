package models

import (
	"encoding/json"
	"time"
)

// MetadataRequest is the JSON body accepted by the metadata logging
// endpoint. Every field is optional; the client sends whatever it has.
type MetadataRequest struct {
	UserName     string          `json:"userName"`
	UserEmail    string          `json:"userEmail"`
	FileName     string          `json:"fileName"`
	FileType     string          `json:"fileType"`
	FormType     string          `json:"formType"`
	AIRawText    string          `json:"aiRawText"`
	AIStructured json.RawMessage `json:"aiStructured"`
}

// ClientInfo carries the request-derived fields attached to every record.
type ClientInfo struct {
	IPAddress string
	UserAgent string
	Device    string
}

// MetadataRecord is one append-only analytics row describing an
// extraction attempt.
type MetadataRecord struct {
	ID           string          `json:"id" db:"id"`
	UserName     string          `json:"userName,omitempty" db:"user_name"`
	UserEmail    string          `json:"userEmail,omitempty" db:"user_email"`
	IPAddress    string          `json:"ipAddress" db:"ip_address"`
	UserAgent    string          `json:"userAgent" db:"user_agent"`
	Device       string          `json:"device" db:"device"`
	FileName     string          `json:"fileName,omitempty" db:"file_name"`
	FileType     string          `json:"fileType,omitempty" db:"file_type"`
	FormType     string          `json:"formType,omitempty" db:"form_type"`
	AIRawText    string          `json:"aiRawText,omitempty" db:"ai_raw_text"`
	AIStructured json.RawMessage `json:"aiStructured,omitempty" db:"ai_structured"`
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`
}

type MetadataResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

type MetadataListResponse struct {
	Records []MetadataRecord `json:"records"`
	Count   int              `json:"count"`
}
