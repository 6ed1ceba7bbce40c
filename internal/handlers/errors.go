package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
	"github.com/BruksfildServices01/barber-booking/pkg/logging"
)

const (
	codeValidation = "validation_error"
	codeInternal   = "internal_error"
)

// writeValidation answers 400 with the field issues when err is a
// ValidationError and reports whether it did.
func writeValidation(c *gin.Context, err error, message string) bool {
	ve, ok := validators.AsValidation(err)
	if !ok {
		return false
	}
	httperr.WriteDetails(c, http.StatusBadRequest, codeValidation, message, ve.Issues)
	return true
}

// writeInternal logs the cause and answers 500 with a generic message.
func writeInternal(c *gin.Context, logger *logging.Logger, message string, err error) {
	logger.Error(message,
		"error", err,
		"path", c.FullPath(),
	)
	httperr.Internal(c, codeInternal, message)
}
