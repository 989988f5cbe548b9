package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrBodyNotObject is returned when the request body decodes to something
// other than a JSON object
var ErrBodyNotObject = errors.New("request body must be a JSON object")

// ReceiptRequest is the inbound body of a receipt processing request.
// Field values are kept as raw JSON and forwarded without type checks; a nil
// value means the key was absent.
type ReceiptRequest struct {
	ObjectKey json.RawMessage
	GroupID   json.RawMessage
}

// ParserPayload is sent to the textract parser function
type ParserPayload struct {
	BucketName string          `json:"bucket_name" validate:"required"`
	ObjectKey  json.RawMessage `json:"object_key"`
	GroupID    json.RawMessage `json:"group_id"`
}

// ParseReceiptRequest decodes a request body. An empty body is treated as an
// empty object.
func ParseReceiptRequest(body string) (*ReceiptRequest, error) {
	fields := map[string]json.RawMessage{}
	if err := decodeObject(body, &fields); err != nil {
		return nil, err
	}

	return &ReceiptRequest{
		ObjectKey: presentValue(fields, "object_key"),
		GroupID:   presentValue(fields, "group_id"),
	}, nil
}

// presentValue returns the raw value for key, or nil if the key is absent
func presentValue(fields map[string]json.RawMessage, key string) json.RawMessage {
	raw, ok := fields[key]
	if !ok {
		return nil
	}
	if len(raw) == 0 {
		return json.RawMessage("null")
	}
	return raw
}

// ToParserPayload builds the downstream payload, falling back to the given
// defaults for keys missing from the request
func (r *ReceiptRequest) ToParserPayload(bucket, defaultObjectKey, defaultGroupID string) *ParserPayload {
	payload := &ParserPayload{
		BucketName: bucket,
		ObjectKey:  encodeString(defaultObjectKey),
		GroupID:    encodeString(defaultGroupID),
	}

	if r.ObjectKey != nil {
		payload.ObjectKey = r.ObjectKey
	}
	if r.GroupID != nil {
		payload.GroupID = r.GroupID
	}

	return payload
}

func encodeString(s string) json.RawMessage {
	// Marshalling a string cannot fail
	raw, _ := json.Marshal(s)
	return raw
}

// decodeObject unmarshals body into dst, rejecting non-object documents
func decodeObject(body string, dst interface{}) error {
	if len(body) == 0 {
		return nil
	}

	var doc interface{}
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return fmt.Errorf("failed to parse request body: %w", err)
	}
	if _, ok := doc.(map[string]interface{}); !ok {
		return ErrBodyNotObject
	}

	if err := json.Unmarshal([]byte(body), dst); err != nil {
		return fmt.Errorf("failed to parse request body: %w", err)
	}
	return nil
}
