package engine

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// scriptedRand replays a fixed sequence of rolls.
type scriptedRand struct {
	rolls []float64
	i     int
}

func (s *scriptedRand) Float64() float64 {
	v := s.rolls[s.i]
	s.i++
	return v
}

var (
	aFriday = time.Date(2025, time.June, 6, 12, 0, 0, 0, time.UTC)
	aMonday = time.Date(2025, time.June, 2, 12, 0, 0, 0, time.UTC)
)

func TestFestivalWeekendOnlyFiresFridayToSunday(t *testing.T) {
	if got := LocalEvent(aFriday, &scriptedRand{rolls: []float64{0.39}}); got != EventFestivalWeekend {
		t.Fatalf("Friday roll 0.39: expected Festival Weekend, got %q", got)
	}
	// Same roll on a Monday never reaches the festival check
	if got := LocalEvent(aMonday, &scriptedRand{rolls: []float64{0.39}}); got != EventNone {
		t.Fatalf("Monday roll 0.39: expected no event, got %q", got)
	}
}

func TestGamedayFiresAnyDay(t *testing.T) {
	if got := LocalEvent(aMonday, &scriptedRand{rolls: []float64{0.05}}); got != EventGameday {
		t.Fatalf("Monday roll 0.05: expected Gameday, got %q", got)
	}
	// On a Friday the festival roll comes first; a miss still allows Gameday
	if got := LocalEvent(aFriday, &scriptedRand{rolls: []float64{0.9, 0.05}}); got != EventGameday {
		t.Fatalf("Friday rolls 0.9,0.05: expected Gameday, got %q", got)
	}
}

func TestEventsAreMutuallyExclusive(t *testing.T) {
	// When the festival fires, the gameday roll never happens
	s := &scriptedRand{rolls: []float64{0.1, 0.0}}
	if got := LocalEvent(aFriday, s); got != EventFestivalWeekend {
		t.Fatalf("expected Festival Weekend, got %q", got)
	}
	if s.i != 1 {
		t.Fatalf("gameday must not be rolled after a festival fired, %d rolls used", s.i)
	}
}

func TestNoEvent(t *testing.T) {
	if got := LocalEvent(aFriday, &scriptedRand{rolls: []float64{0.8, 0.8}}); got != EventNone {
		t.Fatalf("expected no event, got %q", got)
	}
}

func TestTemperatureParsesPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"current_weather":{"temperature":18.4}}`))
	}))
	defer srv.Close()

	client := NewWeatherClient(srv.URL)
	if got := client.Temperature(context.Background()); got != 18.4 {
		t.Fatalf("expected 18.4, got %v", got)
	}
}

func TestTemperatureFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewWeatherClient(srv.URL)
	if got := client.Temperature(context.Background()); got != DefaultTemperature {
		t.Fatalf("expected fallback %v, got %v", DefaultTemperature, got)
	}
}

func TestTemperatureFallsBackOnBadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client := NewWeatherClient(srv.URL)
	if got := client.Temperature(context.Background()); got != DefaultTemperature {
		t.Fatalf("expected fallback %v, got %v", DefaultTemperature, got)
	}
}

func TestTemperatureFallsBackWhenUnreachable(t *testing.T) {
	client := NewWeatherClient("http://127.0.0.1:1/nope")
	if got := client.Temperature(context.Background()); got != DefaultTemperature {
		t.Fatalf("expected fallback %v, got %v", DefaultTemperature, got)
	}
}
