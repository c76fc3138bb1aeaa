package engine

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// DefaultTemperature is assumed whenever the weather source cannot be reached.
const DefaultTemperature = 28.0

// Event is an ambient occasion that influences menu scoring. Not to be
// confused with a booking or an order.
type Event string

const (
	EventNone            Event = ""
	EventFestivalWeekend Event = "Festival Weekend"
	EventGameday         Event = "Gameday"
)

// Context carries the ambient signals a scoring request runs under. It is
// rebuilt for every request and never cached, so two requests seconds apart
// may see different weather or events.
type Context struct {
	Temperature float64
	Event       Event
}

// WeatherClient fetches the current outside temperature from an Open-Meteo
// style endpoint. It never returns an error: any failure falls back to
// DefaultTemperature so a flaky weather source cannot fail a menu request.
type WeatherClient struct {
	URL    string
	Client *http.Client
}

func NewWeatherClient(url string) *WeatherClient {
	return &WeatherClient{
		URL:    url,
		Client: &http.Client{Timeout: 5 * time.Second},
	}
}

// Temperature returns the current temperature in °C, or DefaultTemperature on
// any network, status, or payload failure.
func (w *WeatherClient) Temperature(ctx context.Context) float64 {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.URL, nil)
	if err != nil {
		log.Printf("Could not build weather request: %v", err)
		return DefaultTemperature
	}
	resp, err := w.Client.Do(req)
	if err != nil {
		log.Printf("Could not fetch weather data: %v", err)
		return DefaultTemperature
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Printf("Could not fetch weather data: status %d", resp.StatusCode)
		return DefaultTemperature
	}
	var payload struct {
		CurrentWeather struct {
			Temperature float64 `json:"temperature"`
		} `json:"current_weather"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("Could not decode weather payload: %v", err)
		return DefaultTemperature
	}
	return payload.CurrentWeather.Temperature
}

// LocalEvent rolls for an ambient event. Festival Weekends can only fire
// Friday through Sunday (40% chance); a Gameday (10% chance) is checked on any
// day but only when no Festival Weekend fired, so one call never yields both.
func LocalEvent(now time.Time, rng Rand) Event {
	switch now.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		if rng.Float64() < 0.4 {
			return EventFestivalWeekend
		}
	}
	if rng.Float64() < 0.1 {
		return EventGameday
	}
	return EventNone
}
