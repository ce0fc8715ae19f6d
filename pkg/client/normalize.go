package client

import (
	"bytes"
	"context"
	"encoding/json"
)

// Meta is the pagination metadata of an envelope response. Bare array
// responses carry none, so callers get nil.
type Meta struct {
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	Size    int   `json:"size"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

// Normalize resolves the two list shapes the backend has used over
// time: a bare JSON array, or an envelope object with an items field.
// It returns the raw items sequence untouched, preserving order, plus
// the envelope metadata when there was one. Any other shape is a
// contract violation.
func Normalize(raw []byte) (json.RawMessage, *Meta, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, nil, &MalformedResponseError{Reason: "cuerpo vacío"}
	}

	switch trimmed[0] {
	case '[':
		return json.RawMessage(trimmed), nil, nil
	case '{':
		var env struct {
			Items json.RawMessage `json:"items"`
			Meta
		}
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, nil, &MalformedResponseError{Reason: err.Error()}
		}
		// a missing items field leaves the RawMessage nil; an explicit
		// JSON null keeps the literal bytes. Neither is a sequence.
		if env.Items == nil || string(bytes.TrimSpace(env.Items)) == "null" {
			return nil, nil, &MalformedResponseError{Reason: "objeto sin campo 'items'"}
		}
		m := env.Meta
		return env.Items, &m, nil
	default:
		return nil, nil, &MalformedResponseError{Reason: "ni arreglo ni objeto"}
	}
}

// listar fetches a collection endpoint and decodes whichever list
// shape comes back into typed records.
func listar[T any](ctx context.Context, c *Client, path string) ([]T, *Meta, error) {
	var raw json.RawMessage
	if err := c.get(ctx, path, &raw); err != nil {
		return nil, nil, err
	}
	items, meta, err := Normalize(raw)
	if err != nil {
		return nil, nil, err
	}
	var out []T
	if err := json.Unmarshal(items, &out); err != nil {
		return nil, nil, &MalformedResponseError{Reason: err.Error()}
	}
	return out, meta, nil
}
