package minmax

import (
	"github.com/claude/hevylift/internal/models"
)

// sheetSource is the minimal sheet access buildRoutines needs. *Workbook
// implements it; tests substitute an in-memory fake.
type sheetSource interface {
	Labels() []string
	ExerciseNames() []string
	Row(i int) []string
	LinkSource
}

// Parse reads the program sheet and returns the routines it defines, in
// week-block encounter order, then day-group order within each week.
func Parse(path, sheet string) ([]models.Routine, error) {
	wb, err := Open(path, sheet)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	return buildRoutines(wb), nil
}

// buildRoutines segments the sheet into week blocks and day groups, then
// extracts every exercise row of every retained group.
func buildRoutines(src sheetSource) []models.Routine {
	labels := src.Labels()
	names := src.ExerciseNames()

	var routines []models.Routine
	for _, wk := range findWeeks(labels) {
		for _, day := range parseDays(labels, names, wk.start, wk.end) {
			exercises := make([]models.Exercise, 0, len(day.rows))
			for _, r := range day.rows {
				link, ok := src.ExerciseLink(r)
				exercises = append(exercises, extractExercise(src.Row(r), link, ok))
			}
			routines = append(routines, models.Routine{
				Week:      wk.number,
				Day:       day.name,
				Exercises: exercises,
			})
		}
	}
	return routines
}
