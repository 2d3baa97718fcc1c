package models

// ExtractionRequest holds one uploaded form for the duration of a single
// request. Nothing here is persisted.
type ExtractionRequest struct {
	File        []byte
	Filename    string
	ContentType string
}

// ExtractionResult pairs the model's verbatim reply with its best-effort
// parse. Structured is an empty object when the reply is not valid JSON;
// no invariant ties its shape to the prompt's schema.
type ExtractionResult struct {
	RawText    string         `json:"rawText"`
	Structured map[string]any `json:"structured"`
}
