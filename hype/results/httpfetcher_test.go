package results

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPFetcher_Schedule(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/seasons/2024/schedule" {
			t.Errorf("unexpected path %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"events":[
			{"name":"Italian Grand Prix Grand Prix","date":"2024-09-01T14:00:00Z"},
			{"name":"Japanese Grand Prix","date":"2024-09-15T06:00:00Z"}
		]}`))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(srv.URL, 5*time.Second)
	entries, err := f.Schedule(context.Background(), 2024)
	if err != nil {
		t.Fatalf("Schedule() unexpected error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Schedule() = %d entries, want 2", len(entries))
	}
	if entries[0].Name != "Italian Grand Prix" {
		t.Errorf("entry name = %q, want duplicated suffix collapsed", entries[0].Name)
	}
	if entries[0].Date != time.Date(2024, 9, 1, 14, 0, 0, 0, time.UTC) {
		t.Errorf("entry date = %v", entries[0].Date)
	}
}

func TestHTTPFetcher_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/seasons/2024/events/Italian Grand Prix/results" {
			t.Errorf("unexpected path %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"event_date":"2024-09-01T14:00:00Z",
			"qualifying":[{"driver":"VER","position":1}],
			"race":[{"driver":"VER","position":1}]
		}`))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(srv.URL, 5*time.Second)
	res, err := f.Fetch(context.Background(), 2024, "Italian Grand Prix Grand Prix")
	if err != nil {
		t.Fatalf("Fetch() unexpected error = %v", err)
	}
	if res.Event != "Italian Grand Prix" {
		t.Errorf("Event = %q, want normalized name", res.Event)
	}
	if len(res.Qualifying) != 1 || len(res.Race) != 1 {
		t.Errorf("sessions = %d/%d, want 1/1", len(res.Qualifying), len(res.Race))
	}
}

func TestHTTPFetcher_Fetch_NotFoundIsPermanent(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := NewHTTPFetcher(srv.URL, 5*time.Second)
	_, err := f.Fetch(context.Background(), 2024, "Phantom Grand Prix")
	if !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("Fetch() error = %v, want %v", err, ErrFetchFailed)
	}
	if hits != 1 {
		t.Errorf("provider hit %d times for a 404, want 1 (no retries)", hits)
	}
}

func TestHTTPFetcher_Fetch_MissingSessionFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"event_date":"2024-09-01T14:00:00Z","qualifying":[],"race":[{"driver":"VER","position":1}]}`))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(srv.URL, 5*time.Second)
	if _, err := f.Fetch(context.Background(), 2024, "Italian Grand Prix"); !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("Fetch() error = %v, want %v", err, ErrFetchFailed)
	}
}
