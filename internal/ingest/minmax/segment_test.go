package minmax

import "testing"

// TestFindWeeks verifies that "Week N" headers partition the data rows into
// contiguous blocks ordered by first appearance.
func TestFindWeeks(t *testing.T) {
	labels := []string{"Week 1", "Full Body", "Bench", "Week 2", "Upper", "Row"}

	blocks := findWeeks(labels)
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}

	if blocks[0].number != 1 || blocks[0].start != 1 || blocks[0].end != 3 {
		t.Errorf("block 0 = %+v, want {number:1 start:1 end:3}", blocks[0])
	}
	if blocks[1].number != 2 || blocks[1].start != 4 || blocks[1].end != 6 {
		t.Errorf("block 1 = %+v, want {number:2 start:4 end:6}", blocks[1])
	}
}

// TestFindWeeksNonContiguous verifies week numbers are taken verbatim, not
// renumbered.
func TestFindWeeksNonContiguous(t *testing.T) {
	labels := []string{"Week 3", "Lower", "Week 9", "Upper"}

	blocks := findWeeks(labels)
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if blocks[0].number != 3 || blocks[1].number != 9 {
		t.Errorf("week numbers = %d, %d; want 3, 9", blocks[0].number, blocks[1].number)
	}
}

// TestFindWeeksRejectsNonHeaders verifies labels that merely resemble week
// headers do not open blocks.
func TestFindWeeksRejectsNonHeaders(t *testing.T) {
	labels := []string{"Weekly Notes", "Week", "Week one", "Week 0", "Week 1"}

	blocks := findWeeks(labels)
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if blocks[0].number != 1 || blocks[0].start != 5 {
		t.Errorf("block = %+v, want {number:1 start:5}", blocks[0])
	}
}

// TestParseDays verifies day grouping: rest-day rows start no group, and a
// day label row may itself carry an exercise.
func TestParseDays(t *testing.T) {
	labels := []string{"Full Body", "", "", "Rest Day", "Arms", ""}
	names := []string{"Squat", "Bench", "", "", "Curl", ""}

	groups := parseDays(labels, names, 0, len(labels))
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}

	if groups[0].name != "Full Body" || len(groups[0].rows) != 2 {
		t.Errorf("group 0 = %q with %d rows, want Full Body with 2", groups[0].name, len(groups[0].rows))
	}
	if groups[0].rows[0] != 0 || groups[0].rows[1] != 1 {
		t.Errorf("group 0 rows = %v, want [0 1]", groups[0].rows)
	}
	if groups[1].name != "Arms" || len(groups[1].rows) != 1 || groups[1].rows[0] != 4 {
		t.Errorf("group 1 = %+v, want Arms with row 4", groups[1])
	}
}

// TestParseDaysDropsEmptyGroups verifies consecutive day labels with no
// exercise rows between them leave no empty group behind.
func TestParseDaysDropsEmptyGroups(t *testing.T) {
	labels := []string{"Upper", "Lower", "", ""}
	names := []string{"", "Squat", "Lunge", ""}

	groups := parseDays(labels, names, 0, len(labels))
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if groups[0].name != "Lower" || len(groups[0].rows) != 2 {
		t.Errorf("group = %q with %d rows, want Lower with 2", groups[0].name, len(groups[0].rows))
	}
}

// TestParseDaysRowsBeforeFirstLabel verifies exercise rows seen before any
// day label contribute nothing.
func TestParseDaysRowsBeforeFirstLabel(t *testing.T) {
	labels := []string{"", "Rest Days", "Push", ""}
	names := []string{"Stray", "", "Bench", "Fly"}

	groups := parseDays(labels, names, 0, len(labels))
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if groups[0].name != "Push" || len(groups[0].rows) != 2 {
		t.Errorf("group = %q with %d rows, want Push with 2", groups[0].name, len(groups[0].rows))
	}
	if groups[0].rows[0] != 2 || groups[0].rows[1] != 3 {
		t.Errorf("rows = %v, want [2 3]", groups[0].rows)
	}
}
