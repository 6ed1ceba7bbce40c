package validators

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// BookingRequest is the raw customer payload.
type BookingRequest struct {
	StartAt       string   `json:"startAt" validate:"required,isoinstant"`
	CustomerName  string   `json:"customerName" validate:"min=2,max=100"`
	CustomerPhone string   `json:"customerPhone" validate:"required,dephone"`
	Services      []string `json:"services" validate:"min=1,max=10,dive,required,max=50"`
}

// Booking is a validated, normalized BookingRequest.
type Booking struct {
	StartAt       time.Time
	CustomerName  string
	CustomerPhone string
	Services      []string
}

type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, is := range e.Issues {
		parts[i] = is.Field + ": " + is.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("dephone", func(fl validator.FieldLevel) bool {
		return IsValidPhone(fl.Field().String())
	})
	_ = v.RegisterValidation("isoinstant", func(fl validator.FieldLevel) bool {
		_, err := ParseInstant(fl.Field().String())
		return err == nil
	})
	// instantafter=Field: this instant is strictly after the sibling's.
	// Unparsable values are left to isoinstant.
	_ = v.RegisterValidation("instantafter", func(fl validator.FieldLevel) bool {
		other := fl.Parent().FieldByName(fl.Param())
		if !other.IsValid() || other.Kind() != reflect.String {
			return false
		}
		start, err := ParseInstant(other.String())
		if err != nil {
			return true
		}
		end, err := ParseInstant(fl.Field().String())
		if err != nil {
			return true
		}
		return end.After(start)
	})

	return v
}

// ParseInstant accepts RFC 3339 timestamps with optional fractional seconds.
func ParseInstant(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
}

// ValidateBooking checks every field and reports all violations at once.
func ValidateBooking(req BookingRequest) (Booking, error) {
	req.CustomerName = strings.TrimSpace(req.CustomerName)

	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return Booking{}, err
		}
		issues := make([]Issue, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			issues = append(issues, Issue{
				Field:   fieldPath(fe),
				Message: bookingMessage(fe),
			})
		}
		return Booking{}, &ValidationError{Issues: issues}
	}

	start, _ := ParseInstant(req.StartAt)

	return Booking{
		StartAt:       start,
		CustomerName:  req.CustomerName,
		CustomerPhone: NormalizePhone(req.CustomerPhone),
		Services:      req.Services,
	}, nil
}

// fieldPath strips the struct name from the namespace: services[2], customerName.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func bookingMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "startAt":
		return "Ungültiges Datum"
	case "customerName":
		if fe.Tag() == "max" {
			return "Name darf maximal 100 Zeichen haben"
		}
		return "Name muss mindestens 2 Zeichen haben"
	case "customerPhone":
		return "Bitte gib eine gültige Telefonnummer ein"
	case "services":
		if fe.Tag() == "max" {
			return "Maximal 10 Leistungen möglich"
		}
		return "Bitte wähle mindestens eine Leistung"
	}
	if strings.HasPrefix(fe.Field(), "services[") {
		return "Ungültige Leistung"
	}
	return "Ungültiger Wert"
}
