package models

import (
	"encoding/json"
	"fmt"
)

// Response is the envelope every backend endpoint returns
type Response struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Status  int             `json:"status"`
}

// Decode unmarshals the envelope data into v
func (r *Response) Decode(v interface{}) error {
	if v == nil || len(r.Data) == 0 || string(r.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

// ErrorBody is the best-effort body of a non-2xx response
type ErrorBody struct {
	Message string `json:"message"`
}

// PageMeta describes a paginated listing
type PageMeta struct {
	CurrentPage int `json:"current_page"`
	Total       int `json:"total"`
	PerPage     int `json:"per_page"`
	LastPage    int `json:"last_page"`
	From        int `json:"from,omitempty"`
}

// ListParams are the common listing filters
type ListParams struct {
	Page    int
	PerPage int
	Search  string
	Status  string
}
