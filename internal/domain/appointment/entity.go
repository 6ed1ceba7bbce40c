package appointment

import "github.com/BruksfildServices01/barber-booking/internal/models"

// ===============================
// Domain Actions
// ===============================

type Action string

const (
	ActionConfirm Action = "confirm"
	ActionReject  Action = "reject"
	ActionCancel  Action = "cancel"
)

// Transition describes one guarded edge of the appointment lifecycle.
type Transition struct {
	Action Action
	From   []Status
	To     Status
	Guard  func(Status) error
}

var transitions = map[Action]Transition{
	ActionConfirm: {
		Action: ActionConfirm,
		From:   []Status{StatusPending},
		To:     StatusConfirmed,
		Guard:  CanConfirm,
	},
	ActionReject: {
		Action: ActionReject,
		From:   []Status{StatusPending},
		To:     StatusRejected,
		Guard:  CanReject,
	},
	ActionCancel: {
		Action: ActionCancel,
		From:   []Status{StatusPending, StatusConfirmed},
		To:     StatusCancelled,
		Guard:  CanCancel,
	},
}

func TransitionFor(action Action) (Transition, bool) {
	t, ok := transitions[action]
	return t, ok
}

// Apply validates the current status and mutates ap in place.
func Apply(ap *models.Appointment, action Action) error {
	t, ok := TransitionFor(action)
	if !ok {
		return invalidState(action, Status(ap.Status))
	}
	if err := t.Guard(Status(ap.Status)); err != nil {
		return err
	}
	ap.Status = string(t.To)
	return nil
}

func Confirm(ap *models.Appointment) error {
	return Apply(ap, ActionConfirm)
}

func Reject(ap *models.Appointment) error {
	return Apply(ap, ActionReject)
}

func Cancel(ap *models.Appointment) error {
	return Apply(ap, ActionCancel)
}
