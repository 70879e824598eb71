package handler

import (
	"encoding/json"
	"net/http"

	"storefront/internal/api/dto"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, body dto.ErrorBody) {
	writeJSON(w, status, dto.ErrorResponse{Error: body})
}
