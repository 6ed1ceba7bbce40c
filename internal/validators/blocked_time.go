package validators

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	ErrMissingBounds    = errors.New("validators: start and end are required")
	ErrEndNotAfterStart = errors.New("validators: end must be after start")
)

// BlockedTimeRequest is the raw admin payload for a new block.
type BlockedTimeRequest struct {
	StartAt string  `json:"startAt" validate:"required,isoinstant"`
	EndAt   string  `json:"endAt" validate:"required,isoinstant,instantafter=StartAt"`
	Reason  *string `json:"reason"`
}

type BlockedTimeWindow struct {
	StartAt time.Time
	EndAt   time.Time
	Reason  *string
}

// ValidateBlockedTime reports missing bounds first, then unparsable
// instants, then an empty or inverted range.
func ValidateBlockedTime(req BlockedTimeRequest) (BlockedTimeWindow, error) {
	req.StartAt = strings.TrimSpace(req.StartAt)
	req.EndAt = strings.TrimSpace(req.EndAt)

	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return BlockedTimeWindow{}, err
		}

		var issues []Issue
		inverted := false
		for _, fe := range fieldErrs {
			switch fe.Tag() {
			case "required":
				return BlockedTimeWindow{}, ErrMissingBounds
			case "instantafter":
				inverted = true
			default:
				issues = append(issues, Issue{Field: fieldPath(fe), Message: "Ungültiges Datum"})
			}
		}
		if len(issues) > 0 {
			return BlockedTimeWindow{}, &ValidationError{Issues: issues}
		}
		if inverted {
			return BlockedTimeWindow{}, ErrEndNotAfterStart
		}
	}

	start, _ := ParseInstant(req.StartAt)
	end, _ := ParseInstant(req.EndAt)

	var reason *string
	if req.Reason != nil {
		if r := strings.TrimSpace(*req.Reason); r != "" {
			reason = &r
		}
	}

	return BlockedTimeWindow{StartAt: start, EndAt: end, Reason: reason}, nil
}
