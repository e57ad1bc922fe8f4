package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"lovinamom/internal/service"
	"lovinamom/internal/sheet"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func readBodyJSON(r *http.Request, maxBytes int64, out any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBytes))
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

// writeError maps the failure taxonomy onto HTTP statuses: validation
// errors are the caller's fault, everything network-shaped is a bad
// gateway, the rest is internal.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if service.IsValidation(err) {
		status = http.StatusBadRequest
	} else if kind, ok := sheet.KindOf(err); ok {
		switch kind {
		case sheet.FailOffline, sheet.FailTransport, sheet.FailServerFault,
			sheet.FailApplication, sheet.FailMalformed:
			status = http.StatusBadGateway
		}
	} else if errors.Is(err, service.ErrFetchInFlight) {
		// callers that get here chose not to treat the snapshot as success
		status = http.StatusConflict
	}
	writeJSON(w, status, Fail(err.Error()))
}
