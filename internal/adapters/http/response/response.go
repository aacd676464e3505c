// Package response
package response

import (
	"encoding/json"
	"net/http"
)

// Detail is the error/message body shape: {"detail": "..."}.
type Detail struct {
	Detail string `json:"detail"`
}

type ValidationErrors struct {
	Detail string            `json:"detail"`
	Errors map[string]string `json:"errors"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func Error(w http.ResponseWriter, status int, detail string) {
	JSON(w, status, Detail{Detail: detail})
}

func Message(w http.ResponseWriter, status int, detail string) {
	JSON(w, status, Detail{Detail: detail})
}

func ValidationError(w http.ResponseWriter, errs map[string]string) {
	JSON(w, http.StatusBadRequest, ValidationErrors{
		Detail: "validation failed",
		Errors: errs,
	})
}
