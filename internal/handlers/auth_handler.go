package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/pkg/logging"
)

type AuthHandler struct {
	authenticator auth.Authenticator
	logger        *logging.Logger
}

func NewAuthHandler(authenticator auth.Authenticator, logger *logging.Logger) *AuthHandler {
	return &AuthHandler{authenticator: authenticator, logger: logger}
}

// --------- Requests ---------

type LoginRequest struct {
	Password string `json:"password"`
}

// --------- Handlers ---------

// Login checks the shared admin secret. The token returned is the secret
// itself; clients send it back as a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
		httperr.BadRequest(c, "missing_password", "Passwort erforderlich")
		return
	}

	if !h.authenticator.Configured() {
		h.logger.Error("ADMIN_PASSWORD is not set")
		httperr.Internal(c, "server_misconfigured", "Server-Konfigurationsfehler")
		return
	}

	if !h.authenticator.Authenticate(req.Password) {
		httperr.Unauthorized(c, "invalid_password", "Falsches Passwort")
		return
	}

	httpresp.Success(c, http.StatusOK, gin.H{"token": req.Password})
}
