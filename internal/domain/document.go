package domain

import (
	"encoding/json"
	"fmt"
)

// Document is the opaque unit the store persists. ID is assigned by the store
// when a document with ID 0 is written.
type Document struct {
	Kind Kind
	ID   int64
	Body json.RawMessage
}

// Filter is an equality match on a top-level attribute of the document body.
type Filter struct {
	Field string
	Value any
}

// Page selects a window of query results ordered by ascending id.
type Page struct {
	Limit  int
	Offset int
}

// PageResult is one window of query results. More reports whether documents
// exist past the end of the window.
type PageResult struct {
	Documents []Document
	More      bool
}

// NewDocument encodes v as the body of a document of the given kind.
func NewDocument(kind Kind, id int64, v any) (Document, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return Document{}, fmt.Errorf("encoding %s %d: %w", kind, id, err)
	}
	return Document{Kind: kind, ID: id, Body: body}, nil
}

// Decode unmarshals the document body into v.
func (d Document) Decode(v any) error {
	if err := json.Unmarshal(d.Body, v); err != nil {
		return fmt.Errorf("decoding %s %d: %w", d.Kind, d.ID, err)
	}
	return nil
}
