package domain

import (
	"fmt"
	"time"
)

const timeOfDayLayout = "15:04:05"

// TimeOfDay is a wall-clock time without a date, stored as seconds since midnight.
type TimeOfDay int

func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(hour*3600 + minute*60 + second)
}

// ParseTimeOfDay accepts HH:MM:SS or HH:MM.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{timeOfDayLayout, "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return NewTimeOfDay(t.Hour(), t.Minute(), t.Second()), nil
		}
	}
	return 0, fmt.Errorf("invalid time of day %q", s)
}

// Add returns the time of day d later, wrapping past midnight.
func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	const day = 24 * 3600
	secs := (int(t) + int(d/time.Second)) % day
	if secs < 0 {
		secs += day
	}
	return TimeOfDay(secs)
}

func (t TimeOfDay) String() string {
	secs := int(t)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs/60)%60, secs%60)
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(b []byte) error {
	v, err := ParseTimeOfDay(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Flight is a scheduled daily service on one directed edge of the airport graph.
type Flight struct {
	FlightNumber    string    `json:"flightNumber"`
	Origin          string    `json:"from"`
	Destination     string    `json:"to"`
	Price           int64     `json:"price"`
	DepartureTime   TimeOfDay `json:"departureTime"`
	ArrivalTime     TimeOfDay `json:"arrivalTime"`
	DurationMinutes int       `json:"durationMinutes"`
	DistanceKm      float64   `json:"distance"`
}
