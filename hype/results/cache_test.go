package results_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/apexgrid/gridhype/hype/database/models"
	repomock "github.com/apexgrid/gridhype/hype/database/repositories/mock"
	"github.com/apexgrid/gridhype/hype/results"
	fetchmock "github.com/apexgrid/gridhype/hype/results/mock"
	"go.uber.org/mock/gomock"
)

var raceDate = time.Date(2024, 9, 1, 14, 0, 0, 0, time.UTC)

func validRow(driver string, quali, race int) *models.EventResult {
	gained := quali - race
	if gained < 0 {
		gained = 0
	}
	r := &models.EventResult{
		Driver:             driver,
		Season:             2024,
		Event:              "Italian Grand Prix",
		EventDate:          raceDate,
		QualifyingPosition: quali,
		RacePosition:       race,
		PositionsGained:    gained,
		PointsQuali:        (21 - quali) * 3,
		PointsRace:         21 - race,
		PointsGain:         gained * 2,
	}
	r.TotalPoints = r.PointsQuali + r.PointsRace + r.PointsGain
	return r
}

func TestCache_GetOrFetch_CachedHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomock.NewMockEventResultRepository(ctrl)
	fetcher := fetchmock.NewMockFetcher(ctrl)

	cached := []*models.EventResult{validRow("VER", 1, 1), validRow("HAM", 3, 2)}
	repo.EXPECT().
		GetByEvent(gomock.Any(), 2024, "Italian Grand Prix").
		Return(cached, nil)

	c := results.NewCache(fetcher, repo, time.Millisecond)
	got, err := c.GetOrFetch(context.Background(), 2024, "Italian Grand Prix")
	if err != nil {
		t.Fatalf("GetOrFetch() unexpected error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("GetOrFetch() returned %d rows, want 2", len(got))
	}
}

func TestCache_GetOrFetch_NormalizesEventName(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomock.NewMockEventResultRepository(ctrl)
	fetcher := fetchmock.NewMockFetcher(ctrl)

	repo.EXPECT().
		GetByEvent(gomock.Any(), 2024, "Italian Grand Prix").
		Return([]*models.EventResult{validRow("VER", 1, 1)}, nil)

	c := results.NewCache(fetcher, repo, time.Millisecond)
	if _, err := c.GetOrFetch(context.Background(), 2024, "Italian Grand Prix Grand Prix"); err != nil {
		t.Fatalf("GetOrFetch() unexpected error = %v", err)
	}
}

func TestCache_GetOrFetch_MissFetchesScoresAndCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomock.NewMockEventResultRepository(ctrl)
	fetcher := fetchmock.NewMockFetcher(ctrl)

	repo.EXPECT().
		GetByEvent(gomock.Any(), 2024, "Italian Grand Prix").
		Return(nil, nil)
	fetcher.EXPECT().
		Fetch(gomock.Any(), 2024, "Italian Grand Prix").
		Return(&results.EventResults{
			Event:     "Italian Grand Prix",
			EventDate: raceDate,
			Qualifying: []results.SessionResult{
				{Driver: "VER", Position: 1},
				{Driver: "HAM", Position: 10},
			},
			Race: []results.SessionResult{
				{Driver: "VER", Position: 1},
				{Driver: "HAM", Position: 3},
				{Driver: "DNQ", Position: 20}, // absent from qualifying
			},
		}, nil)

	var stored []*models.EventResult
	repo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rows []*models.EventResult) error {
			stored = rows
			return nil
		})

	c := results.NewCache(fetcher, repo, time.Millisecond)
	got, err := c.GetOrFetch(context.Background(), 2024, "Italian Grand Prix")
	if err != nil {
		t.Fatalf("GetOrFetch() unexpected error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("GetOrFetch() returned %d rows, want 2 (driver missing a session must be excluded)", len(got))
	}
	if len(stored) != 2 {
		t.Fatalf("Upsert received %d rows, want 2", len(stored))
	}
	for _, row := range got {
		if row.Driver == "HAM" {
			if row.PositionsGained != 7 || row.TotalPoints != 65 {
				t.Errorf("HAM scored gained=%d total=%d, want gained=7 total=65", row.PositionsGained, row.TotalPoints)
			}
		}
		if row.EventDate != raceDate {
			t.Errorf("row for %s carries date %v, want %v", row.Driver, row.EventDate, raceDate)
		}
	}
}

func TestCache_GetOrFetch_FetchFailureIsEmptyNotError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomock.NewMockEventResultRepository(ctrl)
	fetcher := fetchmock.NewMockFetcher(ctrl)

	repo.EXPECT().
		GetByEvent(gomock.Any(), 2024, "Las Vegas Grand Prix").
		Return(nil, nil)
	fetcher.EXPECT().
		Fetch(gomock.Any(), 2024, "Las Vegas Grand Prix").
		Return(nil, results.ErrFetchFailed)

	c := results.NewCache(fetcher, repo, time.Millisecond)
	got, err := c.GetOrFetch(context.Background(), 2024, "Las Vegas Grand Prix")
	if err != nil {
		t.Fatalf("GetOrFetch() unexpected error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("GetOrFetch() returned %d rows after fetch failure, want 0", len(got))
	}
}

func TestCache_GetOrFetch_InvalidCachedRowsRefetched(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomock.NewMockEventResultRepository(ctrl)
	fetcher := fetchmock.NewMockFetcher(ctrl)

	stale := validRow("VER", 1, 1)
	stale.TotalPoints = 999 // breaks the component-sum invariant

	repo.EXPECT().
		GetByEvent(gomock.Any(), 2024, "Italian Grand Prix").
		Return([]*models.EventResult{stale}, nil)
	fetcher.EXPECT().
		Fetch(gomock.Any(), 2024, "Italian Grand Prix").
		Return(&results.EventResults{
			Event:      "Italian Grand Prix",
			EventDate:  raceDate,
			Qualifying: []results.SessionResult{{Driver: "VER", Position: 1}},
			Race:       []results.SessionResult{{Driver: "VER", Position: 1}},
		}, nil)
	repo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		Return(nil)

	c := results.NewCache(fetcher, repo, time.Millisecond)
	got, err := c.GetOrFetch(context.Background(), 2024, "Italian Grand Prix")
	if err != nil {
		t.Fatalf("GetOrFetch() unexpected error = %v", err)
	}
	if len(got) != 1 || got[0].TotalPoints != 80 {
		t.Errorf("GetOrFetch() did not replace stale row, got %+v", got)
	}
}

func TestCache_GetOrFetch_StorageFailureIsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomock.NewMockEventResultRepository(ctrl)
	fetcher := fetchmock.NewMockFetcher(ctrl)

	storeErr := errors.New("connection reset")
	repo.EXPECT().
		GetByEvent(gomock.Any(), 2024, "Italian Grand Prix").
		Return(nil, storeErr)

	c := results.NewCache(fetcher, repo, time.Millisecond)
	if _, err := c.GetOrFetch(context.Background(), 2024, "Italian Grand Prix"); !errors.Is(err, storeErr) {
		t.Fatalf("GetOrFetch() error = %v, want wrapped %v", err, storeErr)
	}
}

func TestCache_PreloadSeason(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomock.NewMockEventResultRepository(ctrl)
	fetcher := fetchmock.NewMockFetcher(ctrl)

	fetcher.EXPECT().
		Schedule(gomock.Any(), 2024).
		Return([]results.ScheduleEntry{
			{Name: "Italian Grand Prix", Date: raceDate},
			{Name: "Japanese Grand Prix", Date: raceDate.AddDate(0, 0, 14)},
			{Name: "Qatar Grand Prix", Date: raceDate.AddDate(0, 0, 28)},
			{Name: "Future Grand Prix", Date: time.Now().AddDate(10, 0, 0)},
		}, nil)

	// Already cached, served without a provider round trip.
	repo.EXPECT().
		GetByEvent(gomock.Any(), 2024, "Italian Grand Prix").
		Return([]*models.EventResult{validRow("VER", 1, 1)}, nil)

	// Miss that fetches and caches.
	repo.EXPECT().
		GetByEvent(gomock.Any(), 2024, "Japanese Grand Prix").
		Return(nil, nil)
	fetcher.EXPECT().
		Fetch(gomock.Any(), 2024, "Japanese Grand Prix").
		Return(&results.EventResults{
			Event:      "Japanese Grand Prix",
			EventDate:  raceDate.AddDate(0, 0, 14),
			Qualifying: []results.SessionResult{{Driver: "VER", Position: 2}},
			Race:       []results.SessionResult{{Driver: "VER", Position: 1}},
		}, nil)
	repo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		Return(nil)

	// Miss whose fetch fails; counted, not fatal.
	repo.EXPECT().
		GetByEvent(gomock.Any(), 2024, "Qatar Grand Prix").
		Return(nil, nil)
	fetcher.EXPECT().
		Fetch(gomock.Any(), 2024, "Qatar Grand Prix").
		Return(nil, results.ErrFetchFailed)

	c := results.NewCache(fetcher, repo, time.Millisecond)
	cached, failed, err := c.PreloadSeason(context.Background(), 2024)
	if err != nil {
		t.Fatalf("PreloadSeason() unexpected error = %v", err)
	}
	if cached != 2 {
		t.Errorf("PreloadSeason() cached = %d, want 2", cached)
	}
	if failed != 1 {
		t.Errorf("PreloadSeason() failed = %d, want 1", failed)
	}
}

func TestCache_PreloadSeason_ScheduleFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomock.NewMockEventResultRepository(ctrl)
	fetcher := fetchmock.NewMockFetcher(ctrl)

	schedErr := errors.New("provider down")
	fetcher.EXPECT().
		Schedule(gomock.Any(), 2024).
		Return(nil, schedErr)

	c := results.NewCache(fetcher, repo, time.Millisecond)
	if _, _, err := c.PreloadSeason(context.Background(), 2024); !errors.Is(err, schedErr) {
		t.Fatalf("PreloadSeason() error = %v, want wrapped %v", err, schedErr)
	}
}
