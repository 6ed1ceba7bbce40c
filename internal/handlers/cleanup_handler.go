package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/usecase/cleanup"
	"github.com/BruksfildServices01/barber-booking/pkg/logging"
)

type CleanupHandler struct {
	runUC  *cleanup.RunCleanup
	logger *logging.Logger
}

func NewCleanupHandler(runUC *cleanup.RunCleanup, logger *logging.Logger) *CleanupHandler {
	return &CleanupHandler{runUC: runUC, logger: logger}
}

func (h *CleanupHandler) Run(c *gin.Context) {
	res, err := h.runUC.Execute(c.Request.Context())
	cleanupDate := domain.FormatInstant(res.Cutoff)

	if err != nil {
		h.logger.Error("cleanup failed", "error", err)
		// categories that succeeded are still reported
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":       "Fehler beim Aufräumen",
			"code":        "cleanup_failed",
			"deleted":     res,
			"cleanupDate": cleanupDate,
		})
		return
	}

	httpresp.Success(c, http.StatusOK, gin.H{
		"deleted":     res,
		"cleanupDate": cleanupDate,
		"message": fmt.Sprintf("%d Termine und %d Sperrzeiten wurden gelöscht",
			res.PastAppointments+res.TerminalAppointments, res.PastBlockedTimes),
	})
}
