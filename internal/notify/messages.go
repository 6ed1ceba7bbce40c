package notify

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/shopconfig"
)

type Kind string

const (
	KindRequestReceived Kind = "request_received"
	KindConfirmed       Kind = "confirmed"
	KindRejected        Kind = "rejected"
	KindCancelled       Kind = "cancelled"
)

// Details is what every template needs to know about an appointment.
type Details struct {
	Phone        string
	CustomerName string
	StartAt      time.Time
	Services     []string
}

// Formatter renders German SMS texts.
type Formatter struct {
	catalog shopconfig.Config
	loc     *time.Location
}

func NewFormatter(catalog shopconfig.Config, loc *time.Location) *Formatter {
	if loc == nil {
		loc = time.UTC
	}
	return &Formatter{catalog: catalog, loc: loc}
}

func (f *Formatter) date(t time.Time) string {
	return t.In(f.loc).Format("02.01.2006")
}

func (f *Formatter) clock(t time.Time) string {
	return t.In(f.loc).Format("15:04")
}

func (f *Formatter) services(ids []string) string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = f.catalog.ServiceName(id)
	}
	return strings.Join(names, ", ")
}

func (f *Formatter) RequestReceived(d Details) string {
	return "Hallo " + d.CustomerName + "! Deine Terminanfrage ist eingegangen:\n\n" +
		"📅 " + f.date(d.StartAt) + " um " + f.clock(d.StartAt) + " Uhr\n" +
		"✂️ " + f.services(d.Services) + "\n\n" +
		"Wir melden uns bald bei dir!"
}

func (f *Formatter) Confirmed(d Details) string {
	return "✅ Termin bestätigt!\n\n" +
		"Hallo " + d.CustomerName + "!\n\n" +
		"📅 " + f.date(d.StartAt) + " um " + f.clock(d.StartAt) + " Uhr\n" +
		"✂️ " + f.services(d.Services) + "\n\n" +
		"Wir freuen uns auf dich!"
}

func (f *Formatter) Rejected(d Details, reason string) string {
	msg := "Hallo " + d.CustomerName + ", leider können wir deinen Termin am " +
		f.date(d.StartAt) + " um " + f.clock(d.StartAt) + " Uhr nicht bestätigen."
	if reason = strings.TrimSpace(reason); reason != "" {
		msg += "\n\nGrund: " + reason
	}
	return msg + "\n\nBitte buche einen anderen Termin."
}

func (f *Formatter) Cancelled(d Details, reason string) string {
	msg := "⚠️ Termin storniert\n\n" +
		"Hallo " + d.CustomerName + ", dein Termin am " +
		f.date(d.StartAt) + " um " + f.clock(d.StartAt) + " Uhr wurde storniert."
	if reason = strings.TrimSpace(reason); reason != "" {
		msg += "\n\nGrund: " + reason
	}
	return msg + "\n\nBitte buche einen neuen Termin."
}
