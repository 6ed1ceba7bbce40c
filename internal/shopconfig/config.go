// Package shopconfig holds the static business rules of the shop: opening
// hours, the service catalog, slot granularity and duration rules.
package shopconfig

import "time"

type Hours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Service struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Durations struct {
	Default          int `json:"default"`
	Extended         int `json:"extended"`
	Buffer           int `json:"buffer"`
	ServiceThreshold int `json:"serviceThreshold"`
}

type Config struct {
	BookingWindowDays   int
	SlotIntervalMinutes int
	Timezone            string
	Durations           Durations

	// nil entry means closed
	OpeningHours map[time.Weekday]*Hours
	Services     []Service
}

var Default = Config{
	BookingWindowDays:   21,
	SlotIntervalMinutes: 15,
	Timezone:            "Europe/Berlin",
	Durations: Durations{
		Default:          60,
		Extended:         75,
		Buffer:           0,
		ServiceThreshold: 3,
	},
	OpeningHours: map[time.Weekday]*Hours{
		time.Sunday:    nil,
		time.Monday:    {Start: "09:00", End: "18:00"},
		time.Tuesday:   {Start: "09:00", End: "18:00"},
		time.Wednesday: {Start: "09:00", End: "18:00"},
		time.Thursday:  {Start: "09:00", End: "18:00"},
		time.Friday:    {Start: "09:00", End: "18:00"},
		time.Saturday:  {Start: "09:00", End: "14:00"},
	},
	Services: []Service{
		{ID: "haircut", Name: "Haarschnitt", Description: "Klassischer Herrenhaarschnitt"},
		{ID: "beard", Name: "Bart trimmen", Description: "Bart in Form bringen"},
		{ID: "beard-shave", Name: "Rasur", Description: "Nassrasur mit heißem Tuch"},
		{ID: "wash", Name: "Haare waschen", Description: "Waschen mit Massage"},
		{ID: "styling", Name: "Styling", Description: "Haare stylen mit Produkt"},
		{ID: "color", Name: "Färben", Description: "Haare oder Bart färben"},
		{ID: "eyebrows", Name: "Augenbrauen", Description: "Augenbrauen in Form"},
		{ID: "kids", Name: "Kinderhaarschnitt", Description: "Für Kinder bis 12 Jahre"},
	},
}

// ServiceName maps a catalog id to its display name. Unknown ids come back unchanged.
func (c Config) ServiceName(id string) string {
	for _, s := range c.Services {
		if s.ID == id {
			return s.Name
		}
	}
	return id
}

// OpeningHoursByDay renders the weekly table keyed by weekday number (0 = Sunday).
func (c Config) OpeningHoursByDay() map[int]*Hours {
	out := make(map[int]*Hours, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		out[int(d)] = c.OpeningHours[d]
	}
	return out
}
