package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/usecase/blockedtime"
	"github.com/BruksfildServices01/barber-booking/pkg/logging"
)

type BlockedTimeHandler struct {
	createUC *blockedtime.CreateBlockedTime
	listUC   *blockedtime.ListBlockedTimes
	deleteUC *blockedtime.DeleteBlockedTime
	logger   *logging.Logger
}

func NewBlockedTimeHandler(
	createUC *blockedtime.CreateBlockedTime,
	listUC *blockedtime.ListBlockedTimes,
	deleteUC *blockedtime.DeleteBlockedTime,
	logger *logging.Logger,
) *BlockedTimeHandler {
	return &BlockedTimeHandler{
		createUC: createUC,
		listUC:   listUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

func (h *BlockedTimeHandler) List(c *gin.Context) {
	blocks, err := h.listUC.Execute(
		c.Request.Context(),
		blockedtime.ListInput{
			From: c.Query("from"),
			To:   c.Query("to"),
		},
	)
	if err != nil {
		if writeValidation(c, err, "Ungültige Parameter") {
			return
		}
		writeInternal(c, h.logger, "Fehler beim Laden", err)
		return
	}

	httpresp.OK(c, gin.H{"blockedTimes": dto.NewBlockedTimeDTOs(blocks)})
}

func (h *BlockedTimeHandler) Create(c *gin.Context) {
	var req blockedtime.CreateInput
	// an unreadable body is reported as missing bounds below
	_ = c.ShouldBindJSON(&req)

	bt, err := h.createUC.Execute(c.Request.Context(), req)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, blockedtime.CodeMissingBounds):
			httperr.BadRequest(c, blockedtime.CodeMissingBounds, "Start- und Endzeit erforderlich")
		case httperr.IsBusiness(err, blockedtime.CodeInvalidRange):
			httperr.BadRequest(c, blockedtime.CodeInvalidRange, "Endzeit muss nach der Startzeit liegen")
		case writeValidation(c, err, "Ungültige Daten"):
		default:
			writeInternal(c, h.logger, "Fehler beim Erstellen", err)
		}
		return
	}

	httpresp.Success(c, http.StatusCreated, gin.H{"blockedTime": dto.NewBlockedTimeDTO(*bt)})
}

func (h *BlockedTimeHandler) Delete(c *gin.Context) {
	raw := strings.TrimSpace(c.Query("id"))
	if raw == "" {
		httperr.BadRequest(c, "missing_id", "ID erforderlich")
		return
	}

	id, ok := parseID(raw)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Ungültige ID")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		if httperr.IsBusiness(err, blockedtime.CodeNotFound) {
			httperr.NotFound(c, blockedtime.CodeNotFound, "Sperrzeit nicht gefunden")
			return
		}
		writeInternal(c, h.logger, "Fehler beim Löschen", err)
		return
	}

	httpresp.Success(c, http.StatusOK, nil)
}
