package results

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/apexgrid/gridhype/hype/logger"
	"github.com/apexgrid/gridhype/hype/scoring"
	"github.com/cenkalti/backoff/v4"
)

const (
	defaultTimeout    = 15 * time.Second
	maxFetchElapsed   = 2 * time.Minute
	initialRetryDelay = 2 * time.Second
)

// HTTPFetcher talks to a REST results provider. Endpoints:
//
//	GET {base}/seasons/{season}/schedule
//	GET {base}/seasons/{season}/events/{event}/results
//
// Transient failures are retried with exponential backoff; a 404 means the
// event has not run yet and is surfaced as ErrFetchFailed immediately.
type HTTPFetcher struct {
	baseURL string
	client  *http.Client
}

var _ Fetcher = (*HTTPFetcher)(nil)

func NewHTTPFetcher(baseURL string, timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPFetcher{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type scheduleResponse struct {
	Events []struct {
		Name string    `json:"name"`
		Date time.Time `json:"date"`
	} `json:"events"`
}

type positionEntry struct {
	Driver   string `json:"driver"`
	Position int    `json:"position"`
}

type resultsResponse struct {
	EventDate  time.Time       `json:"event_date"`
	Qualifying []positionEntry `json:"qualifying"`
	Race       []positionEntry `json:"race"`
}

func (f *HTTPFetcher) Schedule(ctx context.Context, season int) ([]ScheduleEntry, error) {
	endpoint := fmt.Sprintf("%s/seasons/%d/schedule", f.baseURL, season)

	var payload scheduleResponse
	if err := f.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, fmt.Errorf("schedule for season %d: %w", season, err)
	}

	entries := make([]ScheduleEntry, 0, len(payload.Events))
	for _, e := range payload.Events {
		entries = append(entries, ScheduleEntry{
			Name: scoring.NormalizeEventName(e.Name),
			Date: e.Date,
		})
	}
	return entries, nil
}

func (f *HTTPFetcher) Fetch(ctx context.Context, season int, event string) (*EventResults, error) {
	event = scoring.NormalizeEventName(event)
	endpoint := fmt.Sprintf("%s/seasons/%d/events/%s/results",
		f.baseURL, season, url.PathEscape(event))

	start := time.Now()
	var payload resultsResponse
	err := f.getJSON(ctx, endpoint, &payload)
	logger.LogFetch(season, event, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("results for %d %s: %w", season, event, err)
	}
	if len(payload.Qualifying) == 0 || len(payload.Race) == 0 {
		return nil, fmt.Errorf("results for %d %s: missing session data: %w", season, event, ErrFetchFailed)
	}

	res := &EventResults{
		Event:     event,
		EventDate: payload.EventDate,
	}
	for _, p := range payload.Qualifying {
		res.Qualifying = append(res.Qualifying, SessionResult{Driver: p.Driver, Position: p.Position})
	}
	for _, p := range payload.Race {
		res.Race = append(res.Race, SessionResult{Driver: p.Driver, Position: p.Position})
	}
	return res, nil
}

func (f *HTTPFetcher) getJSON(ctx context.Context, endpoint string, out any) error {
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := f.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return backoff.Permanent(fmt.Errorf("provider returned 404: %w", ErrFetchFailed))
		case resp.StatusCode >= 500:
			return fmt.Errorf("provider returned %d", resp.StatusCode)
		case resp.StatusCode != http.StatusOK:
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return backoff.Permanent(fmt.Errorf("unexpected status %d: %s: %w", resp.StatusCode, string(body), ErrFetchFailed))
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return backoff.Permanent(fmt.Errorf("failed to decode response: %w", err))
		}
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = initialRetryDelay
	b.MaxElapsedTime = maxFetchElapsed

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return err
	}
	return nil
}
