package minmax

import (
	"strconv"
	"strings"

	"github.com/claude/hevylift/internal/models"
)

// extractExercise assembles a normalized Exercise from one raw data row and
// its optional video link.
func extractExercise(row []string, link string, hasLink bool) models.Exercise {
	ex := models.Exercise{
		Name:        safeString(getCell(row, colExercise), "N/A"),
		WarmupCount: warmupCount(getCell(row, colWarmup)),
		RIR1:        safeString(getCell(row, colRIR1), "N/A"),
		RIR2:        safeString(getCell(row, colRIR2), "N/A"),
		Rest:        safeString(getCell(row, colRest), "N/A"),
		Sub1:        safeString(getCell(row, colSub1), "-"),
		Sub2:        safeString(getCell(row, colSub2), "-"),
	}

	if n, ok := repLower(getCell(row, colReps)); ok {
		ex.RepLower = &n
	}

	if s := strings.TrimSpace(getCell(row, colSets)); s != "" {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			ex.WorkingSets = int(f)
		}
	}

	if hasLink {
		ex.VideoLink = link
	}

	ex.Notes = exerciseNotes(ex)
	return ex
}

// exerciseNotes renders the fixed-order notes block carried into the Hevy
// payload: RIR set 1 and 2, rest, both substitutions, then the video link
// when one is attached.
func exerciseNotes(ex models.Exercise) string {
	lines := []string{
		"Set 1 RIR: " + ex.RIR1,
		"Set 2 RIR: " + ex.RIR2,
		"Rest: " + ex.Rest,
		"Sub 1: " + ex.Sub1,
		"Sub 2: " + ex.Sub2,
	}
	if ex.VideoLink != "" {
		lines = append(lines, "Video: "+ex.VideoLink)
	}
	return strings.Join(lines, "\n")
}
