package migration

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/apexgrid/gridhype/hype/database/models"
	"github.com/apexgrid/gridhype/hype/database/repositories"
	"github.com/apexgrid/gridhype/hype/scoring"
)

// DateResolver maps a (season, event) pair to its event date, typically
// backed by the provider's schedule. The legacy cache files carry no dates.
type DateResolver func(season int, event string) (time.Time, bool)

// Importer ingests the legacy flat-file cache: one CSV per event named
// "<season> - <event>.csv" in a single directory. Derived files (driver
// ratings, averages, summaries) are skipped; scores are recomputed from the
// position columns rather than trusted from the file.
type Importer struct {
	events repositories.EventResultRepository
	dates  DateResolver
	dir    string
}

func NewImporter(events repositories.EventResultRepository, dates DateResolver, dir string) *Importer {
	return &Importer{events: events, dates: dates, dir: dir}
}

// ImportAll walks the cache directory and imports every event file. One
// malformed file never aborts the batch.
func (im *Importer) ImportAll(ctx context.Context) (imported, skipped int, err error) {
	entries, err := os.ReadDir(im.dir)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read cache directory %s: %w", im.dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		season, event, ok := parseEventFileName(entry.Name())
		if !ok {
			continue
		}

		date, ok := im.dates(season, event)
		if !ok {
			slog.Warn("No schedule date for legacy event, skipping",
				slog.Int("season", season),
				slog.String("event", event))
			skipped++
			continue
		}

		rows, err := im.parseEventFile(filepath.Join(im.dir, entry.Name()), season, event, date)
		if err != nil {
			slog.Error("Failed to parse legacy event file",
				slog.String("file", entry.Name()),
				slog.Any("error", err))
			skipped++
			continue
		}
		if len(rows) == 0 {
			skipped++
			continue
		}

		if err := im.events.Upsert(ctx, rows); err != nil {
			return imported, skipped, fmt.Errorf("failed to import %s: %w", entry.Name(), err)
		}
		imported++
	}

	slog.Info("Legacy cache import finished",
		slog.Int("imported", imported),
		slog.Int("skipped", skipped))
	return imported, skipped, nil
}

// parseEventFileName matches "<season> - <event>.csv" and rejects the
// derived files the legacy app kept in the same directory.
func parseEventFileName(name string) (season int, event string, ok bool) {
	if !strings.HasSuffix(name, ".csv") {
		return 0, "", false
	}
	base := strings.TrimSuffix(name, ".csv")

	for _, prefix := range []string{"Driver Rating", "averages", "driver_rating_summary"} {
		if strings.HasPrefix(base, prefix) {
			return 0, "", false
		}
	}

	parts := strings.SplitN(base, " - ", 2)
	if len(parts) != 2 {
		return 0, "", false
	}
	season, err := strconv.Atoi(parts[0])
	if err != nil || season < 1950 {
		return 0, "", false
	}
	return season, scoring.NormalizeEventName(parts[1]), true
}

func (im *Importer) parseEventFile(path string, season int, event string, date time.Time) ([]*models.EventResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	driverIdx, ok := cols["Driver"]
	if !ok {
		return nil, fmt.Errorf("missing Driver column")
	}
	qualiIdx, ok := cols["Quali"]
	if !ok {
		return nil, fmt.Errorf("missing Quali column")
	}
	raceIdx, ok := cols["Race"]
	if !ok {
		return nil, fmt.Errorf("missing Race column")
	}

	var rows []*models.EventResult
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		driver := strings.TrimSpace(record[driverIdx])
		if driver == "" {
			continue
		}
		qualiPos, err := parsePosition(record[qualiIdx])
		if err != nil {
			return nil, fmt.Errorf("driver %s: %w", driver, err)
		}
		racePos, err := parsePosition(record[raceIdx])
		if err != nil {
			return nil, fmt.Errorf("driver %s: %w", driver, err)
		}

		b, err := scoring.Score(qualiPos, racePos)
		if err != nil {
			return nil, fmt.Errorf("driver %s: %w", driver, err)
		}
		rows = append(rows, &models.EventResult{
			Driver:             driver,
			Season:             season,
			Event:              event,
			EventDate:          date,
			QualifyingPosition: qualiPos,
			RacePosition:       racePos,
			PositionsGained:    b.PositionsGained,
			PointsQuali:        b.PointsQuali,
			PointsRace:         b.PointsRace,
			PointsGain:         b.PointsGain,
			TotalPoints:        b.TotalPoints,
		})
	}
	return rows, nil
}

// parsePosition tolerates the float formatting pandas left behind
// ("3.0" instead of "3").
func parsePosition(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if v, err := strconv.Atoi(raw); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed position %q", raw)
	}
	return int(f), nil
}
