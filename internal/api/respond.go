package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Omiixx-nova/Bloom-Heaven/internal/common"
)

type errorBody struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			log.Printf("response encode failed: %v", err)
		}
	}
}

// writeError converts a service error into the nearest taxonomy status.
// Nothing is retried and nothing escalates past this response.
func writeError(w http.ResponseWriter, err error) {
	var verr *common.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorBody{Message: verr.Message, Field: verr.Field})
	case errors.Is(err, common.ErrDuplicateUsername):
		writeJSON(w, http.StatusBadRequest, errorBody{Message: err.Error(), Field: "username"})
	case errors.Is(err, common.ErrUnauthenticated):
		writeJSON(w, http.StatusUnauthorized, errorBody{Message: err.Error()})
	case errors.Is(err, common.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Message: "not found"})
	case errors.Is(err, common.ErrPayloadTooLarge):
		writeJSON(w, http.StatusBadRequest, errorBody{Message: err.Error(), Field: "file"})
	default:
		log.Printf("internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Message: "Internal Server Error"})
	}
}
