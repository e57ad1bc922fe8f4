package httpapi

import (
	"crypto/subtle"
	"net/http"

	"go.uber.org/zap"
)

// AuthHandler verifies the staff PIN. There are no sessions or tokens;
// the front-end persists a single authenticated flag after a match.
type AuthHandler struct {
	pin    string
	logger *zap.Logger
}

func NewAuthHandler(pin string, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{pin: pin, logger: logger}
}

// CheckPIN compares in constant time so response timing leaks nothing.
func (h *AuthHandler) CheckPIN(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PIN string `json:"pin"`
	}
	if err := readBodyJSON(r, 4<<10, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	if subtle.ConstantTimeCompare([]byte(req.PIN), []byte(h.pin)) != 1 {
		h.logger.Warn("PIN check failed", zap.String("remote", r.RemoteAddr))
		writeJSON(w, http.StatusUnauthorized, Fail("PIN salah"))
		return
	}
	writeJSON(w, http.StatusOK, Ok(map[string]bool{"authenticated": true}))
}
