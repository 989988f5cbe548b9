package models

import (
	"encoding/json"
)

// SuccessEnvelope wraps a downstream result
type SuccessEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// ErrorEnvelope wraps a failure message
type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// NewSuccessEnvelope creates a success envelope around raw JSON data
func NewSuccessEnvelope(data json.RawMessage) *SuccessEnvelope {
	return &SuccessEnvelope{Success: true, Data: data}
}

// NewErrorEnvelope creates a failure envelope from an error
func NewErrorEnvelope(err error) *ErrorEnvelope {
	return &ErrorEnvelope{Success: false, Error: err.Error()}
}
