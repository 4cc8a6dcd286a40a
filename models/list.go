// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Limits applied to list queries.
const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// ListQuery describes a filtered, paginated listing of owned documents.
type ListQuery struct {
	// OwnerID restricts results to one owner. Empty means any owner.
	OwnerID string

	// Equals holds exact-match conditions keyed by field name.
	Equals map[string]string

	// SearchField and SearchTerm describe a case-insensitive substring match.
	SearchField string
	SearchTerm  string

	// SortField is a field name; SortDesc reverses the order.
	SortField string
	SortDesc  bool

	Limit int64
	Skip  int64
}

// Where adds an exact-match condition and returns q for chaining.
func (q ListQuery) Where(field, value string) ListQuery {
	equals := make(map[string]string, len(q.Equals)+1)
	for k, v := range q.Equals {
		equals[k] = v
	}
	equals[field] = value
	q.Equals = equals
	return q
}

// ListResponse wraps a page of documents.
type ListResponse[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Limit int64 `json:"limit"`
	Skip  int64 `json:"skip"`
}
