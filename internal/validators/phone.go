package validators

import (
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const defaultRegion = "DE"

var germanPhonePattern = regexp.MustCompile(`^(\+49|0049|0)?[1-9]\d{6,14}$`)

var phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", "/", "")

// SanitizePhone drops the separators people type between digit groups.
func SanitizePhone(raw string) string {
	return phoneSeparators.Replace(strings.TrimSpace(raw))
}

func IsValidPhone(raw string) bool {
	return germanPhonePattern.MatchString(SanitizePhone(raw))
}

// NormalizePhone converts a valid German phone number to +49 E.164 form.
func NormalizePhone(raw string) string {
	phone := SanitizePhone(raw)

	if num, err := phonenumbers.Parse(phone, defaultRegion); err == nil {
		return phonenumbers.Format(num, phonenumbers.E164)
	}

	switch {
	case strings.HasPrefix(phone, "+"):
		return phone
	case strings.HasPrefix(phone, "0049"):
		return "+49" + phone[4:]
	case strings.HasPrefix(phone, "0"):
		return "+49" + phone[1:]
	default:
		return "+49" + phone
	}
}
