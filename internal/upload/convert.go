package upload

import (
	"fmt"
	"log/slog"

	"github.com/claude/hevylift/internal/catalog"
	"github.com/claude/hevylift/internal/models"
)

// Convert assembles the Hevy payload for one routine. Exercises missing a
// catalog mapping or a parseable rep lower bound are dropped with a warning;
// exercises with no working sets are dropped silently. Drops never affect
// sibling exercises or other routines. Returns the payload and the names of
// unmapped exercises.
func Convert(r models.Routine, cat *catalog.Catalog, programName string, log *slog.Logger) (models.CreateRoutineRequest, []string) {
	var exercises []models.RoutineExercise
	var unmapped []string

	for _, ex := range r.Exercises {
		templateID, ok := cat.TemplateID(ex.Name)
		if !ok {
			log.Warn("no Hevy template ID mapped for exercise", "exercise", ex.Name)
			unmapped = append(unmapped, ex.Name)
			continue
		}
		if ex.WorkingSets <= 0 {
			continue
		}
		if ex.RepLower == nil {
			log.Warn("could not parse rep range lower bound", "exercise", ex.Name)
			continue
		}

		reps := *ex.RepLower
		sets := make([]models.RoutineSet, 0, ex.WarmupCount+ex.WorkingSets)
		for i := 0; i < ex.WarmupCount; i++ {
			sets = append(sets, newSet(models.SetTypeWarmup, reps))
		}
		for i := 0; i < ex.WorkingSets; i++ {
			sets = append(sets, newSet(models.SetTypeNormal, reps))
		}

		// SupersetID and RestSeconds stay null: rest is carried in the
		// notes text, not structured fields.
		exercises = append(exercises, models.RoutineExercise{
			ExerciseTemplateID: templateID,
			Notes:              ex.Notes,
			Sets:               sets,
		})
	}

	return models.CreateRoutineRequest{
		Routine: models.RoutineRequest{
			Title:     r.Title(),
			Notes:     fmt.Sprintf("%s · Week %d · %s", programName, r.Week, r.Day),
			Exercises: exercises,
		},
	}, unmapped
}

// newSet builds a set entry with the shared target reps and every other
// numeric field left null.
func newSet(t models.SetType, reps int) models.RoutineSet {
	r := reps
	return models.RoutineSet{
		Type:     t,
		Reps:     &r,
		RepRange: &models.RepRange{Start: &r},
	}
}
