package ratings

import (
	"context"
	"testing"
	"time"

	"github.com/apexgrid/gridhype/hype/database/models"
	repomock "github.com/apexgrid/gridhype/hype/database/repositories/mock"
	"go.uber.org/mock/gomock"
)

func resultRow(season int, event string, date time.Time, total int) *models.EventResult {
	return &models.EventResult{
		Driver:             "VER",
		Season:             season,
		Event:              event,
		EventDate:          date,
		QualifyingPosition: 1,
		RacePosition:       1,
		TotalPoints:        total,
	}
}

// Six events across two seasons: career mean 51.67, seasonal mean 52.5,
// last-3 mean 60, previous-3 mean 46.67.
func verHistory() []*models.EventResult {
	base := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	return []*models.EventResult{
		resultRow(2023, "Monaco Grand Prix", base, 40),
		resultRow(2023, "Italian Grand Prix", base.AddDate(0, 1, 0), 60),
		resultRow(2024, "Bahrain Grand Prix", base.AddDate(1, 0, 0), 30),
		resultRow(2024, "Monaco Grand Prix", base.AddDate(1, 1, 0), 50),
		resultRow(2024, "Italian Grand Prix", base.AddDate(1, 2, 0), 60),
		resultRow(2024, "Japanese Grand Prix", base.AddDate(1, 3, 0), 70),
	}
}

func fixedNow() time.Time {
	return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
}

func TestAggregator_BuildRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomock.NewMockEventResultRepository(ctrl)
	repo.EXPECT().
		GetByDriver(gomock.Any(), "VER").
		Return(verHistory(), nil)

	a := NewAggregator(repo, Config{CurrentSeason: 2024})
	a.nowFn = fixedNow

	rec, err := a.BuildRecord(context.Background(), "VER")
	if err != nil {
		t.Fatalf("BuildRecord() unexpected error = %v", err)
	}
	if rec.Unrated() {
		t.Fatal("BuildRecord() returned an unrated record for a driver with current-season events")
	}
	if got, want := *rec.Hype, 53.92; got != want {
		t.Errorf("Hype = %v, want %v", got, want)
	}
	if got, want := *rec.PreviousWeighted, 51.25; got != want {
		t.Errorf("PreviousWeighted = %v, want %v", got, want)
	}
	if got, want := *rec.FantasyValue, int64(13302083); got != want {
		t.Errorf("FantasyValue = %v, want %v", got, want)
	}
	if len(rec.Rows) != 6 {
		t.Errorf("Rows = %d, want 6", len(rec.Rows))
	}

	wantScopes := []string{
		models.ScopeCareerAverage,
		models.ScopeSeasonalAverage,
		models.ScopeLast3Average,
		models.ScopePrev3Average,
	}
	if len(rec.Scopes) != len(wantScopes) {
		t.Fatalf("Scopes = %d, want %d", len(rec.Scopes), len(wantScopes))
	}
	for i, want := range wantScopes {
		if rec.Scopes[i].Scope != want {
			t.Errorf("Scopes[%d] = %q, want %q", i, rec.Scopes[i].Scope, want)
		}
	}
	if got := rec.Scopes[2].TotalPoints; got != 60 {
		t.Errorf("last-3 mean total = %v, want 60", got)
	}
	if got := rec.Scopes[3].TotalPoints; got < 46.66 || got > 46.67 {
		t.Errorf("previous-3 mean total = %v, want ~46.67", got)
	}
}

func TestAggregator_BuildRecord_SingleSeasonCareer(t *testing.T) {
	// Five current-season events and nothing before them: the career and
	// seasonal means coincide at 50, the last-3 window averages 53.33 and
	// the previous-3 window averages 55.
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	totals := []int{40, 50, 60, 55, 45}
	events := []string{
		"Bahrain Grand Prix",
		"Saudi Arabian Grand Prix",
		"Australian Grand Prix",
		"Japanese Grand Prix",
		"Chinese Grand Prix",
	}
	history := make([]*models.EventResult, 0, len(totals))
	for i, total := range totals {
		row := resultRow(2024, events[i], base.AddDate(0, i, 0), total)
		row.Driver = "ABC"
		history = append(history, row)
	}

	ctrl := gomock.NewController(t)
	repo := repomock.NewMockEventResultRepository(ctrl)
	repo.EXPECT().
		GetByDriver(gomock.Any(), "ABC").
		Return(history, nil)

	a := NewAggregator(repo, Config{CurrentSeason: 2024})
	a.nowFn = fixedNow

	rec, err := a.BuildRecord(context.Background(), "ABC")
	if err != nil {
		t.Fatalf("BuildRecord() unexpected error = %v", err)
	}
	if got, want := *rec.Hype, 50.67; got != want {
		t.Errorf("Hype = %v, want %v", got, want)
	}
	if got, want := *rec.PreviousWeighted, 51.0; got != want {
		t.Errorf("PreviousWeighted = %v, want %v", got, want)
	}
	if got, want := *rec.FantasyValue, int64(12583333); got != want {
		t.Errorf("FantasyValue = %v, want %v", got, want)
	}
}

func TestAggregator_BuildRecord_NoHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomock.NewMockEventResultRepository(ctrl)
	repo.EXPECT().
		GetByDriver(gomock.Any(), "ROO").
		Return(nil, nil)

	a := NewAggregator(repo, Config{CurrentSeason: 2024})
	a.nowFn = fixedNow

	rec, err := a.BuildRecord(context.Background(), "ROO")
	if err != nil {
		t.Fatalf("BuildRecord() unexpected error = %v", err)
	}
	if !rec.Unrated() {
		t.Error("driver with no events must be unrated")
	}
	if len(rec.Rows) != 0 || len(rec.Scopes) != 0 {
		t.Errorf("empty driver carries rows=%d scopes=%d, want none", len(rec.Rows), len(rec.Scopes))
	}
}

func TestAggregator_BuildRecord_CareerWithoutSeason(t *testing.T) {
	history := verHistory()[:2] // 2023 only

	tests := []struct {
		name          string
		inheritCareer bool
		wantUnrated   bool
		wantScopes    int
	}{
		{name: "unrated by default", inheritCareer: false, wantUnrated: true, wantScopes: 1},
		{name: "inherits career when configured", inheritCareer: true, wantUnrated: false, wantScopes: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := repomock.NewMockEventResultRepository(ctrl)
			repo.EXPECT().
				GetByDriver(gomock.Any(), "VER").
				Return(history, nil)

			a := NewAggregator(repo, Config{CurrentSeason: 2024, InheritCareer: tt.inheritCareer})
			a.nowFn = fixedNow

			rec, err := a.BuildRecord(context.Background(), "VER")
			if err != nil {
				t.Fatalf("BuildRecord() unexpected error = %v", err)
			}
			if rec.Unrated() != tt.wantUnrated {
				t.Errorf("Unrated() = %v, want %v", rec.Unrated(), tt.wantUnrated)
			}
			if len(rec.Scopes) != tt.wantScopes {
				t.Errorf("Scopes = %d, want %d", len(rec.Scopes), tt.wantScopes)
			}
			if tt.inheritCareer {
				// Seasonal windows fall back to the career rows: mean 50.
				if got := rec.Scopes[1].TotalPoints; got != 50 {
					t.Errorf("seasonal mean total = %v, want 50", got)
				}
			}
		})
	}
}

func TestAggregator_BuildRecord_ShortSeasonWindows(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	history := []*models.EventResult{
		resultRow(2024, "Bahrain Grand Prix", base, 44),
	}

	ctrl := gomock.NewController(t)
	repo := repomock.NewMockEventResultRepository(ctrl)
	repo.EXPECT().
		GetByDriver(gomock.Any(), "VER").
		Return(history, nil)

	a := NewAggregator(repo, Config{CurrentSeason: 2024})
	a.nowFn = fixedNow

	rec, err := a.BuildRecord(context.Background(), "VER")
	if err != nil {
		t.Fatalf("BuildRecord() unexpected error = %v", err)
	}
	// With a single event every window collapses to it, including the
	// previous-3 fallback.
	for i, scope := range rec.Scopes {
		if scope.TotalPoints != 44 {
			t.Errorf("Scopes[%d] (%s) mean total = %v, want 44", i, scope.Scope, scope.TotalPoints)
		}
	}
	if *rec.Hype != *rec.PreviousWeighted {
		t.Errorf("previous weighted %v should equal hype %v when no prior window exists", *rec.PreviousWeighted, *rec.Hype)
	}
}

func TestAggregator_BuildRecord_ExcludesFutureEvents(t *testing.T) {
	history := verHistory()
	history = append(history, resultRow(2024, "Phantom Grand Prix", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 1000))

	ctrl := gomock.NewController(t)
	repo := repomock.NewMockEventResultRepository(ctrl)
	repo.EXPECT().
		GetByDriver(gomock.Any(), "VER").
		Return(history, nil)

	a := NewAggregator(repo, Config{CurrentSeason: 2024})
	a.nowFn = fixedNow

	rec, err := a.BuildRecord(context.Background(), "VER")
	if err != nil {
		t.Fatalf("BuildRecord() unexpected error = %v", err)
	}
	if len(rec.Rows) != 6 {
		t.Errorf("Rows = %d, want 6 (future-dated event must be excluded)", len(rec.Rows))
	}
	if got, want := *rec.Hype, 53.92; got != want {
		t.Errorf("Hype = %v, want %v", got, want)
	}
}

func TestAggregator_GetRecord_CachesUntilInvalidated(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomock.NewMockEventResultRepository(ctrl)
	repo.EXPECT().
		GetByDriver(gomock.Any(), "VER").
		Return(verHistory(), nil).
		Times(2)

	a := NewAggregator(repo, Config{CurrentSeason: 2024})
	a.nowFn = fixedNow

	ctx := context.Background()
	if _, err := a.GetRecord(ctx, "VER"); err != nil {
		t.Fatalf("GetRecord() unexpected error = %v", err)
	}
	if _, err := a.GetRecord(ctx, "VER"); err != nil {
		t.Fatalf("GetRecord() cached call unexpected error = %v", err)
	}

	a.Invalidate("VER")
	if _, err := a.GetRecord(ctx, "VER"); err != nil {
		t.Fatalf("GetRecord() after invalidation unexpected error = %v", err)
	}
}

func TestRatingRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomock.NewMockEventResultRepository(ctrl)
	repo.EXPECT().
		GetByDriver(gomock.Any(), "VER").
		Return(verHistory(), nil)

	a := NewAggregator(repo, Config{CurrentSeason: 2024})
	a.nowFn = fixedNow

	rec, err := a.BuildRecord(context.Background(), "VER")
	if err != nil {
		t.Fatalf("BuildRecord() unexpected error = %v", err)
	}

	rows := RatingRows(rec)
	if len(rows) != 10 {
		t.Fatalf("RatingRows() = %d rows, want 10 (6 raw + 4 scopes)", len(rows))
	}
	for i, row := range rows[:6] {
		if row.Scope != "" {
			t.Errorf("raw row %d carries scope %q, want empty", i, row.Scope)
		}
		if row.Event == "" || row.EventDate.IsZero() {
			t.Errorf("raw row %d missing event identity", i)
		}
	}
	for i, row := range rows[6:] {
		if row.Scope == "" {
			t.Errorf("scope row %d missing scope label", i)
		}
		if row.Event != "" {
			t.Errorf("scope row %d carries event %q, want empty", i, row.Event)
		}
	}
}
