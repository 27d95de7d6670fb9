package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMalformed(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Malformed data"})
}

func writeNotFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "Not found"})
}

// writeServerError logs the failure with full detail and echoes the
// message in the body, preserving the {"server error": msg} contract
// clients depend on.
func writeServerError(w http.ResponseWriter, logger *zap.Logger, op string, err error) {
	logger.Error("request failed", zap.String("op", op), zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, map[string]string{"server error": err.Error()})
}
