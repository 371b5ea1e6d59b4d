package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"anarchyauth/internal/domain"
)

// Transport-level error kinds. Domain kinds come from domain.KindOf.
const (
	kindInvalidRequest domain.Kind = "invalid_request"
	kindInvalidUpload  domain.Kind = "invalid_upload"
	kindTooLarge       domain.Kind = "payload_too_large"
	kindRateLimited    domain.Kind = "rate_limited"
)

type failure struct {
	Error string      `json:"error"`
	Kind  domain.Kind `json:"kind"`
}

func writeJSON(w http.ResponseWriter, v any) {
	writeJSONStatus(w, http.StatusOK, v)
}

func writeJSONStatus(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeFailure(w http.ResponseWriter, code int, msg string, kind domain.Kind) {
	writeJSONStatus(w, code, failure{Error: msg, Kind: kind})
}

// writeError renders err with the status of its kind. Internal errors are
// logged and not echoed.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeFailure(w, http.StatusRequestEntityTooLarge, "request body too large", kindTooLarge)
		return
	}

	kind := domain.KindOf(err)
	s.metrics.Failed(string(kind))
	code := statusFor(kind)
	msg := err.Error()
	if kind == domain.KindInternal {
		s.log.Error("request failed", "path", r.URL.Path, "err", err)
		msg = "internal error"
	}
	writeFailure(w, code, msg, kind)
}

func statusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindImageLoadFailed,
		domain.KindEmptyMessage,
		domain.KindInvalidSignatureEncoding,
		domain.KindInvalidKeyType:
		return http.StatusBadRequest
	case domain.KindTemplateExtractionFailed, domain.KindNoCodesGenerated:
		return http.StatusUnprocessableEntity
	case domain.KindSessionNotFound:
		return http.StatusNotFound
	case domain.KindSessionCapacity, domain.KindSessionIDCollision:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, limit int64, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	return json.NewDecoder(r.Body).Decode(v)
}
