package models

// SetType distinguishes warm-up sets from working sets in a Hevy routine.
type SetType string

const (
	SetTypeWarmup SetType = "warmup"
	SetTypeNormal SetType = "normal"
)

// The Hevy routines API expects every set field to be present, with JSON
// null for anything unset. All optional fields are therefore pointers
// without omitempty.

// RepRange is the target rep window for a set.
type RepRange struct {
	Start *int `json:"start"`
	End   *int `json:"end"`
}

// RoutineSet is a single set entry in a routine exercise.
type RoutineSet struct {
	Type            SetType   `json:"type"`
	WeightKg        *float64  `json:"weight_kg"`
	Reps            *int      `json:"reps"`
	DistanceMeters  *float64  `json:"distance_meters"`
	DurationSeconds *int      `json:"duration_seconds"`
	CustomMetric    *float64  `json:"custom_metric"`
	RepRange        *RepRange `json:"rep_range"`
}

// RoutineExercise is one exercise within a routine payload.
type RoutineExercise struct {
	ExerciseTemplateID string       `json:"exercise_template_id"`
	SupersetID         *int         `json:"superset_id"`
	RestSeconds        *int         `json:"rest_seconds"`
	Notes              string       `json:"notes"`
	Sets               []RoutineSet `json:"sets"`
}

// RoutineRequest is the routine object inside a create request.
type RoutineRequest struct {
	Title     string            `json:"title"`
	FolderID  *string           `json:"folder_id"`
	Notes     string            `json:"notes"`
	Exercises []RoutineExercise `json:"exercises"`
}

// CreateRoutineRequest is the document POSTed to /v1/routines.
type CreateRoutineRequest struct {
	Routine RoutineRequest `json:"routine"`
}

// SetCount returns the total number of sets across all exercises.
func (r CreateRoutineRequest) SetCount() int {
	n := 0
	for _, ex := range r.Routine.Exercises {
		n += len(ex.Sets)
	}
	return n
}
