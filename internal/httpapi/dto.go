package httpapi

import "github.com/mirelabs/arcanum/internal/reading"

type ErrorResponse struct {
	Error string `json:"error"`
}

// ComposeRequest is the POST /v1/readings body. It is the service request
// plus transport-level options.
type ComposeRequest struct {
	reading.Request
	Interpret bool  `json:"interpret,omitempty"`
	Persist   *bool `json:"persist,omitempty"`
}

// ReadingResponse wraps a composed reading with per-request metadata.
type ReadingResponse struct {
	Reading        *reading.Reading `json:"reading"`
	AlternateVoice string           `json:"alternateVoice,omitempty"`
	Meta           MetaResponse     `json:"meta"`
}

type MetaResponse struct {
	RequestID string `json:"requestId"`
	Persisted bool   `json:"persisted"`
}

type SpreadsResponse struct {
	Spreads []string `json:"spreads"`
}

type ListResponse struct {
	Readings []*reading.Reading `json:"readings"`
}
