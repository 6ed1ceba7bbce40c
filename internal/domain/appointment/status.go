package appointment

import "github.com/BruksfildServices01/barber-booking/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

// ActiveStatuses are the non-terminal statuses that occupy the calendar.
var ActiveStatuses = []Status{StatusPending, StatusConfirmed}

// TerminalStatuses allow no further transitions.
var TerminalStatuses = []Status{StatusRejected, StatusCancelled}

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusRejected, StatusCancelled:
		return Status(s), true
	}
	return "", false
}

func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusCancelled
}

// ===============================
// Validations
// ===============================

const CodeInvalidState = "invalid_state"

func invalidState(action Action, current Status) error {
	return httperr.ErrBusinessWith(CodeInvalidState, map[string]any{
		"action": string(action),
		"status": string(current),
	})
}

// CanConfirm only accepts PENDING appointments.
func CanConfirm(current Status) error {
	if current != StatusPending {
		return invalidState(ActionConfirm, current)
	}
	return nil
}

// CanReject only accepts PENDING appointments.
func CanReject(current Status) error {
	if current != StatusPending {
		return invalidState(ActionReject, current)
	}
	return nil
}

// CanCancel accepts PENDING and CONFIRMED appointments.
func CanCancel(current Status) error {
	if !current.IsActive() {
		return invalidState(ActionCancel, current)
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
