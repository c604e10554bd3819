package api

import (
	"context"
	"encoding/json"
)

// decodeInto unmarshals a response body into out, unwrapping the
// {"message": ..., "data": ...} envelope when present.
func decodeInto(body []byte, out interface{}) error {
	if out == nil || len(body) == 0 {
		return nil
	}
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
		return json.Unmarshal(envelope.Data, out)
	}
	return json.Unmarshal(body, out)
}

// DecodeList accepts a bare array or a "data" envelope and falls back to
// an empty slice when the body matches neither shape.
func DecodeList[T any](body []byte) []T {
	var items []T
	if err := json.Unmarshal(body, &items); err == nil && items != nil {
		return items
	}
	var envelope struct {
		Data []T `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Data != nil {
		return envelope.Data
	}
	return []T{}
}

// FetchList GETs a collection endpoint and decodes it defensively.
func FetchList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	resp, err := c.http.R().SetContext(ctx).Get(path)
	if err != nil {
		return nil, err
	}
	return DecodeList[T](resp.Body()), nil
}
