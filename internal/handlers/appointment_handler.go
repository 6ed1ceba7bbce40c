package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
	"github.com/BruksfildServices01/barber-booking/pkg/logging"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	listUC    *appointment.ListAppointments
	confirmUC *appointment.ConfirmAppointment
	rejectUC  *appointment.RejectAppointment
	cancelUC  *appointment.CancelAppointment
	logger    *logging.Logger
}

func NewAppointmentHandler(
	listUC *appointment.ListAppointments,
	confirmUC *appointment.ConfirmAppointment,
	rejectUC *appointment.RejectAppointment,
	cancelUC *appointment.CancelAppointment,
	logger *logging.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		listUC:    listUC,
		confirmUC: confirmUC,
		rejectUC:  rejectUC,
		cancelUC:  cancelUC,
		logger:    logger,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type TransitionRequest struct {
	Reason string `json:"reason"`
}

// German wording per action.
var transitionTexts = map[domain.Action]struct {
	participle string
	failure    string
}{
	domain.ActionConfirm: {"bestätigt", "Fehler beim Bestätigen des Termins"},
	domain.ActionReject:  {"abgelehnt", "Fehler beim Ablehnen des Termins"},
	domain.ActionCancel:  {"storniert", "Fehler beim Stornieren des Termins"},
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	aps, err := h.listUC.Execute(
		c.Request.Context(),
		appointment.ListAppointmentsInput{
			Date:   c.Query("date"),
			Status: c.Query("status"),
		},
	)
	if err != nil {
		if writeValidation(c, err, "Ungültige Parameter") {
			return
		}
		writeInternal(c, h.logger, "Fehler beim Laden der Termine", err)
		return
	}

	httpresp.List(c, "appointments", dto.NewAppointmentDTOs(aps))
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, domain.ActionConfirm, func(id uuid.UUID, _ string) (*models.Appointment, error) {
		return h.confirmUC.Execute(c.Request.Context(), id)
	})
}

func (h *AppointmentHandler) Reject(c *gin.Context) {
	h.transition(c, domain.ActionReject, func(id uuid.UUID, reason string) (*models.Appointment, error) {
		return h.rejectUC.Execute(c.Request.Context(), id, reason)
	})
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, domain.ActionCancel, func(id uuid.UUID, reason string) (*models.Appointment, error) {
		return h.cancelUC.Execute(c.Request.Context(), id, reason)
	})
}

func (h *AppointmentHandler) transition(
	c *gin.Context,
	action domain.Action,
	run func(id uuid.UUID, reason string) (*models.Appointment, error),
) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		httperr.BadRequest(c, "invalid_id", "Ungültige Termin-ID")
		return
	}

	// body is optional; an empty one means "no reason"
	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.BadRequest(c, codeValidation, "Ungültige Daten")
		return
	}

	texts := transitionTexts[action]

	ap, err := run(id, req.Reason)
	if err != nil {
		be, isBusiness := httperr.AsBusiness(err)
		switch {
		case isBusiness && be.Code == appointment.CodeAppointmentNotFound:
			httperr.NotFound(c, be.Code, "Termin nicht gefunden")
		case isBusiness && be.Code == domain.CodeInvalidState:
			httperr.BadRequest(c, be.Code,
				fmt.Sprintf("Termin kann nicht %s werden (Status: %v)", texts.participle, be.Meta["status"]))
		default:
			writeInternal(c, h.logger, texts.failure, err)
		}
		return
	}

	httpresp.Success(c, http.StatusOK, gin.H{
		"message":       "Termin wurde " + texts.participle,
		"appointmentId": ap.ID.String(),
	})
}
