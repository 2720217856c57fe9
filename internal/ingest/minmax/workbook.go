package minmax

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// labelHeader is the literal header of the week/day label column.
const labelHeader = "The Min-Max Program"

// Fixed 0-based column positions of the exercise fields. The sheet layout is
// a documented contract; anything else is a structural failure.
const (
	colExercise = 2
	colWarmup   = 4
	colSets     = 5
	colReps     = 6
	colRIR1     = 11
	colRIR2     = 12
	colRest     = 13
	colSub1     = 14
	colSub2     = 15
)

// LinkSource looks up an optional video link for a logical data row. Kept as
// an interface so backends other than xlsx cell hyperlinks can supply links.
type LinkSource interface {
	ExerciseLink(row int) (string, bool)
}

// Workbook wraps an open xlsx file and exposes the program sheet's data rows.
type Workbook struct {
	f        *excelize.File
	sheet    string
	rows     [][]string // data rows, header row excluded
	labelCol int
}

// Open loads the workbook and locates the label column on the named sheet.
func Open(path, sheet string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		f.Close()
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	labelCol := -1
	for i, h := range rows[0] {
		if strings.TrimSpace(h) == labelHeader {
			labelCol = i
			break
		}
	}
	if labelCol < 0 {
		f.Close()
		return nil, fmt.Errorf("sheet %q has no %q header column", sheet, labelHeader)
	}

	return &Workbook{f: f, sheet: sheet, rows: rows[1:], labelCol: labelCol}, nil
}

// Close releases the underlying file.
func (w *Workbook) Close() error { return w.f.Close() }

// Labels returns the label-column value of every data row.
func (w *Workbook) Labels() []string {
	labels := make([]string, len(w.rows))
	for i, row := range w.rows {
		labels[i] = getCell(row, w.labelCol)
	}
	return labels
}

// ExerciseNames returns the exercise-name column of every data row.
func (w *Workbook) ExerciseNames() []string {
	names := make([]string, len(w.rows))
	for i, row := range w.rows {
		names[i] = getCell(row, colExercise)
	}
	return names
}

// Row returns the raw cells of data row i.
func (w *Workbook) Row(i int) []string { return w.rows[i] }

// ExerciseLink returns the hyperlink attached to the exercise-name cell of
// data row i. The header occupies physical row 1, so data row i maps to
// physical row i+2; the exercise name lives in the sheet's third column.
func (w *Workbook) ExerciseLink(row int) (string, bool) {
	cell, err := excelize.CoordinatesToCellName(colExercise+1, row+2)
	if err != nil {
		return "", false
	}
	ok, target, err := w.f.GetCellHyperLink(w.sheet, cell)
	if err != nil || !ok || target == "" {
		return "", false
	}
	return target, true
}

// getCell returns row[i], or "" when the row is short. GetRows trims
// trailing empty cells, so short rows are routine.
func getCell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
