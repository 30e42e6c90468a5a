// Copyright 2026 NoteDrill
// SPDX-License-Identifier: AGPL-3.0

// Package rest holds the JSON plumbing shared by the HTTP handler packages.
package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/matheuspuca/NoteDrill-sub001/internal/storage"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, ErrorResponse{Error: msg})
}

// WriteStorageError maps the storage sentinel errors onto HTTP statuses.
// Anything unrecognized is a 500.
func WriteStorageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		WriteError(w, http.StatusNotFound, "not found")
	case errors.Is(err, storage.ErrDuplicateKey):
		WriteError(w, http.StatusConflict, "already exists")
	case errors.Is(err, storage.ErrForeignKeyViolation):
		WriteError(w, http.StatusUnprocessableEntity, "referenced resource does not exist")
	default:
		WriteError(w, http.StatusInternalServerError, "internal error")
	}
}

func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
