// Package wire implements the JSON-over-HTTP formats shared by the service
// and its clients. The service speaks a document-store dialect in which every
// record carries its key as `_id`; the rest of the system uses `id`.
package wire

import (
	"encoding/json"
	"log"
	"net/http"
)

const (
	idKey  = "id"
	docKey = "_id"
)

// Normalize rewrites a document's native `_id` key to `id`. Records that
// already use `id` pass through unchanged.
func Normalize(raw []byte) ([]byte, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	if v, ok := m[docKey]; ok {
		m[idKey] = v
		delete(m, docKey)
	}
	return json.Marshal(m)
}

// Document marshals a record the way the service emits it, with the key
// under `_id`.
func Document(v any) (json.RawMessage, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	if id, ok := m[idKey]; ok {
		m[docKey] = id
		delete(m, idKey)
	}
	return json.Marshal(m)
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

// WriteError emits the service's error payload shape.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"error": message})
}
