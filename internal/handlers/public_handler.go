package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
	"github.com/BruksfildServices01/barber-booking/pkg/logging"
)

const maxSlotDurationMinutes = 480

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	schedule     *domain.Schedule
	availability *appointment.GetAvailability
	request      *appointment.RequestAppointment
	logger       *logging.Logger
}

func NewPublicHandler(
	schedule *domain.Schedule,
	availability *appointment.GetAvailability,
	request *appointment.RequestAppointment,
	logger *logging.Logger,
) *PublicHandler {
	return &PublicHandler{
		schedule:     schedule,
		availability: availability,
		request:      request,
		logger:       logger,
	}
}

////////////////////////////////////////////////////////
// CONFIG
////////////////////////////////////////////////////////

func (h *PublicHandler) Config(c *gin.Context) {
	cfg := h.schedule.Config()

	c.JSON(http.StatusOK, gin.H{
		"services":          cfg.Services,
		"openingHours":      cfg.OpeningHoursByDay(),
		"bookingWindowDays": cfg.BookingWindowDays,
		"durations":         cfg.Durations,
		"slotInterval":      cfg.SlotIntervalMinutes,
		"timezone":          cfg.Timezone,
	})
}

////////////////////////////////////////////////////////
// SLOTS
////////////////////////////////////////////////////////

func (h *PublicHandler) Slots(c *gin.Context) {
	loc := h.schedule.Location()
	defaultFrom, defaultTo := h.availability.DefaultRange()

	var issues []validators.Issue

	from, err := parseDateQuery(c.Query("from"), defaultFrom, loc)
	if err != nil {
		issues = append(issues, validators.Issue{Field: "from", Message: "Ungültiges Datumsformat (YYYY-MM-DD)"})
	}
	to, err := parseDateQuery(c.Query("to"), defaultTo, loc)
	if err != nil {
		issues = append(issues, validators.Issue{Field: "to", Message: "Ungültiges Datumsformat (YYYY-MM-DD)"})
	}

	var duration time.Duration
	if raw := strings.TrimSpace(c.Query("duration")); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes < 1 || minutes > maxSlotDurationMinutes {
			issues = append(issues, validators.Issue{Field: "duration", Message: "Ungültige Dauer"})
		} else {
			duration = time.Duration(minutes) * time.Minute
		}
	}

	if len(issues) > 0 {
		httperr.WriteDetails(c, http.StatusBadRequest, "invalid_params", "Ungültige Parameter", issues)
		return
	}

	slots, err := h.availability.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			From:     from,
			To:       to,
			Duration: duration,
		},
	)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, appointment.CodeInvalidRange):
			httperr.BadRequest(c, appointment.CodeInvalidRange, "Startdatum muss vor dem Enddatum liegen")
		case httperr.IsBusiness(err, appointment.CodeRangeTooLong):
			httperr.BadRequest(c, appointment.CodeRangeTooLong,
				fmt.Sprintf("Zeitraum darf maximal %d Tage umfassen", h.availability.MaxDays()))
		default:
			writeInternal(c, h.logger, "Fehler beim Laden der Termine", err)
		}
		return
	}

	cfg := h.schedule.Config()
	c.JSON(http.StatusOK, gin.H{
		"slots": slots,
		"bookingWindow": gin.H{
			"from": formatDate(from, loc),
			"to":   formatDate(to, loc),
		},
		"config": gin.H{
			"slotInterval":     cfg.SlotIntervalMinutes,
			"defaultDuration":  cfg.Durations.Default,
			"extendedDuration": cfg.Durations.Extended,
			"buffer":           cfg.Durations.Buffer,
			"serviceThreshold": cfg.Durations.ServiceThreshold,
		},
	})
}

////////////////////////////////////////////////////////
// BOOKING REQUEST
////////////////////////////////////////////////////////

func (h *PublicHandler) RequestAppointment(c *gin.Context) {
	var req validators.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.WriteDetails(c, http.StatusBadRequest, codeValidation, "Ungültige Daten",
			[]validators.Issue{{Field: "body", Message: "Ungültiges JSON"}})
		return
	}

	ap, err := h.request.Execute(c.Request.Context(), req)
	if err != nil {
		h.mapRequestErrors(c, err)
		return
	}

	httpresp.Success(c, http.StatusCreated, gin.H{
		"appointment": dto.NewBookingDTO(*ap),
		"message":     "Deine Terminanfrage wurde erfolgreich eingereicht!",
	})
}

func (h *PublicHandler) mapRequestErrors(c *gin.Context, err error) {
	if writeValidation(c, err, "Ungültige Daten") {
		return
	}

	be, ok := httperr.AsBusiness(err)
	if !ok {
		writeInternal(c, h.logger, "Fehler beim Erstellen des Termins. Bitte versuche es erneut.", err)
		return
	}

	switch be.Code {
	case appointment.CodeOutsideBookingWindow:
		httperr.BadRequest(c, be.Code,
			fmt.Sprintf("Dieser Termin liegt außerhalb des Buchungszeitraums (max. %d Tage im Voraus)",
				h.schedule.Config().BookingWindowDays))

	case appointment.CodeDuplicateActiveBooking:
		body := gin.H{
			"error": "Du hast bereits einen aktiven Termin",
			"code":  be.Code,
		}
		if id, ok := be.Meta["id"]; ok {
			body["existingAppointment"] = dto.ExistingBookingDTO{
				ID:      fmt.Sprint(id),
				StartAt: fmt.Sprint(be.Meta["startAt"]),
			}
		}
		c.JSON(http.StatusConflict, body)

	case appointment.CodeSlotUnavailable:
		httperr.Conflict(c, be.Code, "Dieser Termin ist leider nicht mehr verfügbar. Bitte wähle einen anderen.")

	default:
		writeInternal(c, h.logger, "Ein unerwarteter Fehler ist aufgetreten", err)
	}
}
