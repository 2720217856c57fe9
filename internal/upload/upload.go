package upload

import (
	"fmt"
	"log/slog"

	"github.com/claude/hevylift/internal/catalog"
	"github.com/claude/hevylift/internal/models"
)

// Stats tracks submission progress.
type Stats struct {
	RoutinesTotal    int
	RoutinesCreated  int
	RoutinesSkipped  int
	ExercisesDropped int

	UnmappedExercises []string
}

// Uploader converts routines to Hevy payloads and submits them one at a
// time, in week-block order then day-group order. The first failed
// submission aborts the remaining sequence.
type Uploader struct {
	client      *Client
	state       *StateDB
	cat         *catalog.Catalog
	programName string
	dryRun      bool
	log         *slog.Logger
	stats       Stats
}

// New creates an Uploader. client may be nil in dry-run mode; state may be
// nil to disable submission tracking.
func New(client *Client, state *StateDB, cat *catalog.Catalog, programName string, dryRun bool, log *slog.Logger) *Uploader {
	return &Uploader{
		client:      client,
		state:       state,
		cat:         cat,
		programName: programName,
		dryRun:      dryRun,
		log:         log,
	}
}

// Run logs the discovered routines, then converts and submits each in
// order. Already-submitted routines are skipped; dry-run renders what would
// be created without contacting Hevy.
func (u *Uploader) Run(routines []models.Routine) (*Stats, error) {
	u.stats.RoutinesTotal = len(routines)

	u.log.Info("found routines", "count", len(routines))
	for _, r := range routines {
		u.log.Info("routine", "title", r.Title(), "exercises", len(r.Exercises))
	}

	seenUnmapped := map[string]bool{}

	for _, r := range routines {
		payload, unmapped := Convert(r, u.cat, u.programName, u.log)
		for _, name := range unmapped {
			if !seenUnmapped[name] {
				u.stats.UnmappedExercises = append(u.stats.UnmappedExercises, name)
				seenUnmapped[name] = true
			}
		}
		u.stats.ExercisesDropped += len(r.Exercises) - len(payload.Routine.Exercises)

		title := payload.Routine.Title
		hash, err := HashPayload(payload)
		if err != nil {
			return &u.stats, fmt.Errorf("hashing routine %q: %w", title, err)
		}

		if u.state != nil {
			done, err := u.state.IsSubmitted(title, hash)
			if err != nil {
				return &u.stats, fmt.Errorf("checking state for %q: %w", title, err)
			}
			if done {
				u.log.Info("already submitted, skipping", "title", title)
				u.stats.RoutinesSkipped++
				continue
			}
		}

		if u.dryRun {
			u.log.Info("would create routine",
				"title", title,
				"exercises", len(payload.Routine.Exercises),
				"sets", payload.SetCount(),
			)
			continue
		}

		if _, err := u.client.CreateRoutine(payload); err != nil {
			return &u.stats, err
		}
		u.stats.RoutinesCreated++
		u.log.Info("created routine", "title", title)

		if u.state != nil {
			if err := u.state.MarkSubmitted(title, hash); err != nil {
				return &u.stats, fmt.Errorf("recording state for %q: %w", title, err)
			}
		}
	}

	return &u.stats, nil
}
